// Package tui implements the interactive playback widget.
package tui

type state int

const (
	loadingState state = iota
	playingState
	errorState
)
