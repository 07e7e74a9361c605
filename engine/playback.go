package engine

import (
	"github.com/vidmark-cli/vidmark/util"
)

// TogglePlay issues play or pause based on the current confirmed playing
// flag. The flag itself flips only when the clock's PauseChanged event
// arrives; command intent and confirmed state may transiently diverge.
func (e *Engine) TogglePlay() error {
	if e.clock == nil {
		return nil
	}

	if e.state.Playing {
		return e.clock.Pause()
	}
	return e.clock.Play()
}

// SetVolume clamps and applies a volume. Setting exactly 0 also mutes, as a
// one-way coupling: raising the volume later does not auto-unmute.
func (e *Engine) SetVolume(v float64) error {
	if e.clock == nil {
		return nil
	}

	v = util.Clamp(v, 0, 1)
	e.state.Volume = v

	if v == 0 && !e.state.Muted {
		e.state.Muted = true
		if err := e.clock.SetMuted(true); err != nil {
			return err
		}
	}

	return e.clock.SetVolume(v)
}

// AdjustVolume nudges the stored volume by delta.
func (e *Engine) AdjustVolume(delta float64) error {
	return e.SetVolume(e.state.Volume + delta)
}

// ToggleMute flips the independent mute flag. The stored volume is never
// discarded, so unmuting restores the exact previous value.
func (e *Engine) ToggleMute() error {
	if e.clock == nil {
		return nil
	}

	e.state.Muted = !e.state.Muted
	return e.clock.SetMuted(e.state.Muted)
}

// CycleRate advances to the next multiplier in Rates, wrapping circularly.
// A rate outside the set behaves as index -1, so the next cycle lands on
// Rates[0].
func (e *Engine) CycleRate() error {
	index := -1
	for i, rate := range Rates {
		if e.state.Rate == rate {
			index = i
			break
		}
	}

	next := Rates[(index+1)%len(Rates)]
	e.state.Rate = next

	if e.clock == nil {
		return nil
	}
	return e.clock.SetRate(next)
}
