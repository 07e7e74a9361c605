// Package tui implements the interactive playback widget.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/samber/lo"
	"github.com/vidmark-cli/vidmark/engine"
	"github.com/vidmark-cli/vidmark/internal/ui"
	"github.com/vidmark-cli/vidmark/player"
	"github.com/vidmark-cli/vidmark/timecode"
	"github.com/vidmark-cli/vidmark/util"
)

// widgetBubble encapsulates the playback widget state: the synchronization
// engine, the live clock, and the Bubble Tea component models.
type widgetBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *widgetKeymap

	engine     *engine.Engine
	clock      player.Clock
	generation uint64

	// components
	spinnerC   spinner.Model
	scrubC     progress.Model
	helpC      help.Model
	jumpInputC textinput.Model

	showHelp bool

	// scrubSeq invalidates pending scrub-commit ticks; only the newest
	// scheduled commit ends the drag.
	scrubSeq int

	// tokenCounter stamps marker-activated seek requests when the host does
	// not supply its own broker tokens.
	tokenCounter int64

	// maxValue scales the numeric annotation gauge.
	maxValue float64

	lastError error

	width, height int
	notifier      *ui.Model

	options *Options
}

func newBubble(options *Options) *widgetBubble {
	spinnerC := spinner.New()
	spinnerC.Spinner = spinner.Dot

	scrubC := progress.New(progress.WithDefaultGradient())
	scrubC.ShowPercentage = false

	jumpInputC := textinput.New()
	jumpInputC.Placeholder = "1:23"
	jumpInputC.CharLimit = 10
	jumpInputC.Width = 12

	b := &widgetBubble{
		state:      loadingState,
		keymap:     newWidgetKeymap(),
		engine:     engine.New(),
		spinnerC:   spinnerC,
		scrubC:     scrubC,
		helpC:      help.New(),
		jumpInputC: jumpInputC,
		notifier:   &ui.Model{},
		options:    options,
	}

	b.maxValue = maxAbsValue(options.Annotations)

	if w, h, err := util.TerminalSize(); err == nil {
		b.resize(w, h)
	}

	return b
}

// maxAbsValue finds the largest numeric annotation magnitude, used to scale the gauge.
func maxAbsValue(list timecode.List) float64 {
	var max float64
	for _, entry := range list {
		if entry.Value == nil {
			continue
		}
		v := *entry.Value
		if v < 0 {
			v = -v
		}
		max = util.Max(max, v)
	}
	return max
}

// raiseError dispatches a terminal error and transitions the widget to the failure view.
// The widget performs no retry; recovery is the caller's responsibility.
func (b *widgetBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

// setState performs a synchronous transition of the widget view.
func (b *widgetBubble) setState(s state) {
	b.state = s
}

// newState facilitates an idempotent transition, recording the previous state
// in the navigation history when appropriate.
func (b *widgetBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *widgetBubble) resize(width, height int) {
	b.width = width
	b.height = height
	b.helpC.Width = width

	b.scrubC.Width = util.Clamp(width-10, 10, 80)
}

// nextToken stamps a widget-originated seek request.
func (b *widgetBubble) nextToken() int64 {
	b.tokenCounter++
	return b.tokenCounter
}
