// Package tui implements the interactive playback widget.
package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidmark-cli/vidmark/engine"
	"github.com/vidmark-cli/vidmark/internal/ui"
	"github.com/vidmark-cli/vidmark/log"
	"github.com/vidmark-cli/vidmark/player"
	"github.com/vidmark-cli/vidmark/timecode"
)

const (
	scrubStep  = 0.02
	volumeStep = 0.05
)

func (b *widgetBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Process Ephemeral UI Notifications (captures `string` and `ui.ClearNotificationMsg`)
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = tea.Batch(cmd, uiCmd)
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, cmd

	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, cmd

	case clockStartedMsg:
		b.newState(playingState)
		return b, tea.Batch(cmd, b.waitForClockEvent())

	case clockEventMsg:
		return b.updateClockEvent(msg, cmd)

	case scrubCommitMsg:
		// Only the newest pending commit ends the drag.
		if msg.seq == b.scrubSeq && b.engine.State().Scrubbing {
			if err := b.engine.EndScrub(); err != nil {
				log.Warnf("scrub seek: %v", err)
			}
		}
		return b, cmd

	case tea.KeyMsg:
		return b.updateKey(msg, cmd)
	}

	switch b.state {
	case loadingState:
		b.spinnerC, cmd = b.spinnerC.Update(msg)
	}

	return b, cmd
}

// updateClockEvent folds a confirmed clock notification into the engine.
func (b *widgetBubble) updateClockEvent(msg clockEventMsg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	b.engine.Apply(msg.generation, msg.event)

	if _, exited := msg.event.(player.Exited); exited {
		return b, tea.Quit
	}

	return b, tea.Batch(cmd, b.waitForClockEvent())
}

// updateKey routes keyboard input. The global spacebar toggle is suppressed
// while any control that accepts text input has focus — the capability check,
// not a key enumeration, decides.
func (b *widgetBubble) updateKey(msg tea.KeyMsg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if bubblesKey.Matches(msg, b.keymap.forceQuit) {
		return b, tea.Quit
	}

	// KeyboardBridge guard: an editable control owns the keyboard.
	if b.jumpInputC.Focused() {
		return b.updateJumpInput(msg, cmd)
	}

	switch b.state {
	case errorState:
		if bubblesKey.Matches(msg, b.keymap.quit) || bubblesKey.Matches(msg, b.keymap.back) {
			return b, tea.Quit
		}
		return b, cmd

	case loadingState:
		if bubblesKey.Matches(msg, b.keymap.quit) {
			return b, tea.Quit
		}
		return b, cmd
	}

	switch {
	case bubblesKey.Matches(msg, b.keymap.quit):
		return b, tea.Quit

	case bubblesKey.Matches(msg, b.keymap.playPause):
		if err := b.engine.TogglePlay(); err != nil {
			log.Warnf("toggle play: %v", err)
		}

	case bubblesKey.Matches(msg, b.keymap.scrubBack):
		return b, tea.Batch(cmd, b.scrub(-scrubStep))

	case bubblesKey.Matches(msg, b.keymap.scrubForward):
		return b, tea.Batch(cmd, b.scrub(+scrubStep))

	case bubblesKey.Matches(msg, b.keymap.mute):
		if err := b.engine.ToggleMute(); err != nil {
			log.Warnf("toggle mute: %v", err)
		}

	case bubblesKey.Matches(msg, b.keymap.volumeUp):
		if err := b.engine.AdjustVolume(+volumeStep); err != nil {
			log.Warnf("volume: %v", err)
		}

	case bubblesKey.Matches(msg, b.keymap.volumeDown):
		if err := b.engine.AdjustVolume(-volumeStep); err != nil {
			log.Warnf("volume: %v", err)
		}

	case bubblesKey.Matches(msg, b.keymap.rate):
		if err := b.engine.CycleRate(); err != nil {
			log.Warnf("cycle rate: %v", err)
		}
		return b, tea.Batch(cmd, ui.Notify(fmt.Sprintf("speed %gx", b.engine.State().Rate)))

	case bubblesKey.Matches(msg, b.keymap.fullscreen):
		if err := b.engine.ToggleFullscreen(); err != nil {
			log.Warnf("fullscreen: %v", err)
		}

	case bubblesKey.Matches(msg, b.keymap.jump):
		b.jumpInputC.SetValue("")
		return b, tea.Batch(cmd, b.jumpInputC.Focus())

	case bubblesKey.Matches(msg, b.keymap.showHelp):
		b.showHelp = !b.showHelp
		b.helpC.ShowAll = b.showHelp
	}

	return b, cmd
}

// scrub performs one keyboard drag step and re-arms the commit debounce.
// The first step begins the drag; the commit tick ends it with exactly one seek.
func (b *widgetBubble) scrub(delta float64) tea.Cmd {
	b.engine.BeginScrub()
	b.engine.MoveScrub(b.engine.State().Fraction() + delta)

	b.scrubSeq++
	return b.scheduleScrubCommit()
}

// updateJumpInput handles keyboard input while the timecode field is focused.
func (b *widgetBubble) updateJumpInput(msg tea.KeyMsg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case bubblesKey.Matches(msg, b.keymap.back):
		b.jumpInputC.Blur()
		return b, cmd

	case bubblesKey.Matches(msg, b.keymap.confirm):
		value := b.jumpInputC.Value()
		b.jumpInputC.Blur()

		seconds, err := timecode.ParseClock(value)
		if err != nil {
			return b, tea.Batch(cmd, ui.Notify(fmt.Sprintf("bad timecode %q", value)))
		}

		return b, tea.Batch(cmd, b.activateMarker(seconds))
	}

	var inputCmd tea.Cmd
	b.jumpInputC, inputCmd = b.jumpInputC.Update(msg)
	return b, tea.Batch(cmd, inputCmd)
}

// activateMarker reports a marker activation to the host, which answers with
// a token-stamped seek request; without a host hook the widget stamps its own.
func (b *widgetBubble) activateMarker(seconds float64) tea.Cmd {
	var req engine.SeekRequest
	if b.options.JumpToTimecode != nil {
		req = b.options.JumpToTimecode(seconds)
	} else {
		req = engine.SeekRequest{Time: seconds, Token: b.nextToken()}
	}

	if err := b.engine.SubmitSeek(req); err != nil {
		log.Warnf("marker seek: %v", err)
	}

	return ui.Notify(fmt.Sprintf("jumped to %s", timecode.FormatClock(seconds)))
}
