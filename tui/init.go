// Package tui implements the interactive playback widget.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/vidmark-cli/vidmark/key"
	"github.com/vidmark-cli/vidmark/player"
)

// clockStartedMsg signals that the playback engine spawned and its event
// stream is live.
type clockStartedMsg struct{}

// clockEventMsg carries one confirmed clock notification, stamped with the
// source generation it belongs to. Stale generations are dropped by the engine.
type clockEventMsg struct {
	generation uint64
	event      player.Event
}

// scrubCommitMsg ends an in-progress drag once no further scrub input arrived.
type scrubCommitMsg struct {
	seq int
}

const scrubCommitDelay = 400 * time.Millisecond

// Init attaches a fresh clock and spawns the playback process.
//
// The attach happens synchronously on the event loop: the transport state is
// back at defaults before the new source produces a single event.
func (b *widgetBubble) Init() tea.Cmd {
	clock := player.NewMPV(viper.GetString(key.PlayerBinary))
	b.generation = b.engine.Attach(clock, b.options.Annotations)
	b.clock = clock

	return tea.Batch(b.spinnerC.Tick, b.startClock())
}

// startClock launches the external playback process for the configured source.
func (b *widgetBubble) startClock() tea.Cmd {
	clock := b.clock
	url, title := b.options.URL, b.options.Title

	return func() tea.Msg {
		if err := clock.Load(url, title); err != nil {
			return err
		}

		if err := clock.SetVolume(viper.GetFloat64(key.PlayerVolume)); err != nil {
			return err
		}

		return clockStartedMsg{}
	}
}

// waitForClockEvent pumps a single confirmed notification from the clock's
// event stream into the update loop, stamped with the live generation.
func (b *widgetBubble) waitForClockEvent() tea.Cmd {
	clock, generation := b.clock, b.generation

	return func() tea.Msg {
		ev, ok := <-clock.Events()
		if !ok {
			return clockEventMsg{generation: generation, event: player.Exited{}}
		}
		return clockEventMsg{generation: generation, event: ev}
	}
}

// scheduleScrubCommit arms the drag-end debounce; only the newest sequence
// number commits the scrub.
func (b *widgetBubble) scheduleScrubCommit() tea.Cmd {
	seq := b.scrubSeq
	return tea.Tick(scrubCommitDelay, func(time.Time) tea.Msg {
		return scrubCommitMsg{seq: seq}
	})
}
