// Package engine implements the playback synchronization core: a single owned
// transport state record, named transition operations, and the reconciliation
// rules that keep clock events, user scrubbing, and host seek requests from
// stepping on each other.
package engine

import (
	"math"

	"github.com/vidmark-cli/vidmark/util"
)

// Rates is the fixed, ordered set of playback speed multipliers the rate
// toggle cycles through.
var Rates = []float64{0.5, 1, 1.5, 2}

// State is the transport state owned exclusively by the engine. It is mutated
// only through the engine's transition operations and is reset wholesale when
// the media source changes.
type State struct {
	CurrentTime float64
	Duration    float64 // 0 until metadata loads

	Playing    bool
	Scrubbing  bool
	Muted      bool
	Fullscreen bool

	Volume float64 // stored volume in [0, 1]; survives muting
	Rate   float64

	// scrubFraction is the displayed position while a drag is in progress.
	scrubFraction float64
}

// defaultState returns the transport defaults applied on every source change.
func defaultState() State {
	return State{
		Volume: 1,
		Rate:   1,
	}
}

// Fraction returns the displayed scrub position in [0, 1].
//
// While a drag is in progress the dragged fraction wins; otherwise the
// fraction derives from the clock. An unknown duration degrades to 0 rather
// than propagating a division by zero.
func (s State) Fraction() float64 {
	if s.Scrubbing {
		return s.scrubFraction
	}

	if s.Duration <= 0 || math.IsNaN(s.Duration) {
		return 0
	}

	return util.Clamp(s.CurrentTime/s.Duration, 0, 1)
}

// EffectiveVolume returns the volume the pipeline should produce: 0 while
// muted, the stored volume otherwise.
func (s State) EffectiveVolume() float64 {
	if s.Muted {
		return 0
	}
	return s.Volume
}
