// Package tui implements the interactive playback widget.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// widgetKeymap defines the keyboard interactions available within the playback widget.
type widgetKeymap struct {
	quit, forceQuit,
	playPause,
	scrubBack, scrubForward,
	mute, volumeUp, volumeDown,
	rate,
	fullscreen,
	jump, confirm, back,
	showHelp key.Binding
}

func newWidgetKeymap() *widgetKeymap {
	return &widgetKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		playPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		scrubBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "scrub back"),
		),
		scrubForward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "scrub forward"),
		),
		mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		volumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "volume up"),
		),
		volumeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "volume down"),
		),
		rate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "cycle speed"),
		),
		fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		jump: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to timecode"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k *widgetKeymap) ShortHelp() []key.Binding {
	return []key.Binding{k.playPause, k.scrubBack, k.scrubForward, k.jump, k.showHelp, k.quit}
}

// FullHelp implements help.KeyMap.
func (k *widgetKeymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.playPause, k.scrubBack, k.scrubForward, k.jump},
		{k.mute, k.volumeUp, k.volumeDown, k.rate},
		{k.fullscreen, k.confirm, k.back, k.quit},
	}
}
