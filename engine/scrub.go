package engine

import "github.com/vidmark-cli/vidmark/util"

// Scrub coordination: while a drag is in progress the user owns the displayed
// position and clock time updates must not snap the handle back. No seek is
// issued until the drag ends, so the clock is never flooded mid-drag.

// BeginScrub enters scrubbing mode, freezing the displayed fraction at its
// current value.
func (e *Engine) BeginScrub() {
	if e.state.Scrubbing {
		return
	}

	e.state.scrubFraction = e.state.Fraction()
	e.state.Scrubbing = true
}

// MoveScrub updates the displayed fraction only. Calling it outside a drag
// has no effect.
func (e *Engine) MoveScrub(fraction float64) {
	if !e.state.Scrubbing {
		return
	}

	e.state.scrubFraction = util.Clamp(fraction, 0, 1)
}

// EndScrub leaves scrubbing mode and issues exactly one seek to the dragged
// position.
func (e *Engine) EndScrub() error {
	if !e.state.Scrubbing {
		return nil
	}

	fraction := e.state.scrubFraction
	e.state.Scrubbing = false

	return e.Seek(fraction * e.state.Duration)
}
