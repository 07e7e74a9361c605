// Package tui implements the interactive playback widget.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidmark-cli/vidmark/engine"
	"github.com/vidmark-cli/vidmark/timecode"
)

// Options encapsulates the runtime configuration for the playback widget.
type Options struct {
	// URL locates the media to load; the widget owns exactly one live clock for it.
	URL string

	// Title is the display name shown in the widget and the player window.
	Title string

	// Annotations is the ascending time-indexed list produced by an external
	// annotation source; may be empty.
	Annotations timecode.List

	// JumpToTimecode converts a marker activation into a token-stamped seek
	// request. When nil, the widget stamps monotonic tokens itself.
	JumpToTimecode func(seconds float64) engine.SeekRequest
}

// Run initializes and executes the playback widget loop.
func Run(options *Options) error {
	bubble := newBubble(options)

	defer func() {
		if bubble.clock != nil {
			_ = bubble.clock.Close()
		}
	}()

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
