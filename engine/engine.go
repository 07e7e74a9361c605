package engine

import (
	"github.com/samber/mo"
	"github.com/vidmark-cli/vidmark/log"
	"github.com/vidmark-cli/vidmark/player"
	"github.com/vidmark-cli/vidmark/timecode"
)

// Engine arbitrates the three asynchronous update sources of the playback
// widget — clock events, user input, and host seek requests — over a single
// State record. It is single-threaded by contract: all methods must be called
// from the owning event loop.
type Engine struct {
	state State
	clock player.Clock
	index *timecode.Index

	// generation identifies the live media source. Events stamped with an
	// older generation belong to a replaced source and are discarded.
	generation uint64

	seenTokens map[int64]struct{}
}

// New creates an engine with no attached source.
func New() *Engine {
	return &Engine{
		state:      defaultState(),
		index:      timecode.NewIndex(nil),
		seenTokens: make(map[int64]struct{}),
	}
}

// Attach transfers ownership to a new media source: the transport state is
// reset synchronously before the source starts loading, the annotation list
// is swapped, and a fresh generation is issued. Events from the previous
// source keep their old generation and are ignored from this point on.
func (e *Engine) Attach(clock player.Clock, list timecode.List) uint64 {
	e.state = defaultState()
	e.clock = clock
	e.index.Set(list)
	e.generation++

	log.Infof("engine attached source generation %d (%d annotations)", e.generation, len(list))
	return e.generation
}

// Generation returns the identifier of the live source.
func (e *Engine) Generation() uint64 {
	return e.generation
}

// State returns a copy of the current transport state.
func (e *Engine) State() State {
	return e.state
}

// Active resolves the annotation applicable at the current position. It is
// derived state: recomputed on demand, never stored, so a source reset or a
// backward scrub immediately yields the correct entry.
func (e *Engine) Active() mo.Option[*timecode.Entry] {
	return e.index.At(e.state.CurrentTime)
}

// Annotations exposes the index for rendering (marker lists, counts).
func (e *Engine) Annotations() *timecode.Index {
	return e.index
}

// Apply folds a confirmed clock event into the state. Events whose generation
// does not match the live source are stale and dropped without effect.
//
// The clock is the sole authority for the playing, fullscreen, and rate
// flags: commands never flip them optimistically (rate cycling being the
// documented exception), only their confirmation events do.
func (e *Engine) Apply(generation uint64, ev player.Event) {
	if generation != e.generation {
		log.Debugf("dropping stale event %T (generation %d, live %d)", ev, generation, e.generation)
		return
	}

	switch ev := ev.(type) {
	case player.DurationChanged:
		if ev.Seconds > 0 {
			e.state.Duration = ev.Seconds
		} else {
			e.state.Duration = 0
		}

	case player.TimeChanged:
		// While a drag is in progress the displayed fraction is owned by the
		// scrub coordinator; the raw clock position still advances underneath.
		e.state.CurrentTime = ev.Seconds

	case player.PauseChanged:
		e.state.Playing = !ev.Paused

	case player.FullscreenChanged:
		e.state.Fullscreen = ev.Enabled

	case player.RateChanged:
		e.state.Rate = ev.Rate

	case player.EndReached:
		e.state.Playing = false
		if e.state.Duration > 0 {
			e.state.CurrentTime = e.state.Duration
		}

	case player.Exited:
		e.state.Playing = false
	}
}

// Seek issues a clamped absolute seek. A seek on a source whose metadata has
// not loaded yet (unknown duration) is a no-op, not an error.
func (e *Engine) Seek(seconds float64) error {
	if e.clock == nil || e.state.Duration <= 0 {
		return nil
	}

	if seconds < 0 {
		seconds = 0
	}
	if seconds > e.state.Duration {
		seconds = e.state.Duration
	}

	return e.clock.Seek(seconds)
}
