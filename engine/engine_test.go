package engine

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidmark-cli/vidmark/player"
	"github.com/vidmark-cli/vidmark/timecode"
)

// fakeClock records issued commands and lets tests feed back confirmations.
type fakeClock struct {
	commands []string
	events   chan player.Event
}

func newFakeClock() *fakeClock {
	return &fakeClock{events: make(chan player.Event, 16)}
}

func (f *fakeClock) record(format string, args ...interface{}) error {
	f.commands = append(f.commands, fmt.Sprintf(format, args...))
	return nil
}

func (f *fakeClock) Load(url, title string) error     { return f.record("load %s", url) }
func (f *fakeClock) Play() error                      { return f.record("play") }
func (f *fakeClock) Pause() error                     { return f.record("pause") }
func (f *fakeClock) Seek(seconds float64) error       { return f.record("seek %v", seconds) }
func (f *fakeClock) SetVolume(v float64) error        { return f.record("volume %v", v) }
func (f *fakeClock) SetMuted(muted bool) error        { return f.record("muted %v", muted) }
func (f *fakeClock) SetRate(rate float64) error       { return f.record("rate %v", rate) }
func (f *fakeClock) SetFullscreen(on bool) error      { return f.record("fullscreen %v", on) }
func (f *fakeClock) Events() <-chan player.Event      { return f.events }
func (f *fakeClock) IsRunning() bool                  { return true }
func (f *fakeClock) Close() error                     { return f.record("close") }

func list(times ...string) timecode.List {
	var l timecode.List
	for _, t := range times {
		l = append(l, &timecode.Entry{Time: t})
	}
	So(timecode.Normalize(l), ShouldBeNil)
	return l
}

// attach wires a fresh engine to a fake clock with a loaded duration.
func attach(duration float64, annotations timecode.List) (*Engine, *fakeClock, uint64) {
	e := New()
	clock := newFakeClock()
	gen := e.Attach(clock, annotations)
	if duration > 0 {
		e.Apply(gen, player.DurationChanged{Seconds: duration})
	}
	return e, clock, gen
}

func TestFraction(t *testing.T) {
	Convey("Scrub fraction", t, func() {
		Convey("Should be 0 while duration is unknown", func() {
			e, _, gen := attach(0, nil)
			e.Apply(gen, player.TimeChanged{Seconds: 12})
			So(e.State().Fraction(), ShouldEqual, 0)
		})

		Convey("Should stay within [0, 1] for any position", func() {
			e, _, gen := attach(100, nil)

			for _, pos := range []float64{-5, 0, 33, 100, 250} {
				e.Apply(gen, player.TimeChanged{Seconds: pos})
				f := e.State().Fraction()
				So(f, ShouldBeBetweenOrEqual, 0, 1)
			}
		})
	})
}

func TestPlayToggle(t *testing.T) {
	Convey("TogglePlay", t, func() {
		e, clock, gen := attach(100, nil)

		Convey("Should issue play when paused and not flip the flag itself", func() {
			So(e.TogglePlay(), ShouldBeNil)
			So(clock.commands, ShouldResemble, []string{"play"})
			So(e.State().Playing, ShouldBeFalse) // awaiting confirmation

			e.Apply(gen, player.PauseChanged{Paused: false})
			So(e.State().Playing, ShouldBeTrue)
		})

		Convey("Should issue pause from confirmed playing state", func() {
			e.Apply(gen, player.PauseChanged{Paused: false})
			So(e.TogglePlay(), ShouldBeNil)
			So(clock.commands, ShouldResemble, []string{"pause"})
		})
	})
}

func TestVolumeAndMute(t *testing.T) {
	Convey("Volume and mute", t, func() {
		e, clock, _ := attach(100, nil)

		Convey("Mute then unmute restores the exact stored volume", func() {
			So(e.SetVolume(0.4), ShouldBeNil)
			So(e.ToggleMute(), ShouldBeNil)
			So(e.State().Muted, ShouldBeTrue)
			So(e.State().EffectiveVolume(), ShouldEqual, 0)

			So(e.ToggleMute(), ShouldBeNil)
			So(e.State().Muted, ShouldBeFalse)
			So(e.State().Volume, ShouldEqual, 0.4)
		})

		Convey("Setting volume to zero mutes as a one-way coupling", func() {
			So(e.SetVolume(0), ShouldBeNil)
			So(e.State().Muted, ShouldBeTrue)

			// Raising the volume must NOT auto-unmute.
			So(e.SetVolume(0.6), ShouldBeNil)
			So(e.State().Muted, ShouldBeTrue)
			So(e.State().Volume, ShouldEqual, 0.6)
		})

		Convey("Volume is clamped to [0, 1]", func() {
			So(e.SetVolume(1.8), ShouldBeNil)
			So(e.State().Volume, ShouldEqual, 1)

			So(e.AdjustVolume(-3), ShouldBeNil)
			So(e.State().Volume, ShouldEqual, 0)
		})

		_ = clock
	})
}

func TestCycleRate(t *testing.T) {
	Convey("CycleRate", t, func() {
		Convey("Four cycles return to the original rate from any start", func() {
			for _, start := range Rates {
				e, _, gen := attach(100, nil)
				e.Apply(gen, player.RateChanged{Rate: start})

				for i := 0; i < 4; i++ {
					So(e.CycleRate(), ShouldBeNil)
				}
				So(e.State().Rate, ShouldEqual, start)
			}
		})

		Convey("Documented sequence from 1x", func() {
			e, _, _ := attach(100, nil)

			expected := []float64{1.5, 2, 0.5, 1}
			for _, want := range expected {
				So(e.CycleRate(), ShouldBeNil)
				So(e.State().Rate, ShouldEqual, want)
			}
		})

		Convey("An unknown rate cycles to the first entry", func() {
			e, _, gen := attach(100, nil)
			e.Apply(gen, player.RateChanged{Rate: 1.25})

			So(e.CycleRate(), ShouldBeNil)
			So(e.State().Rate, ShouldEqual, 0.5)
		})
	})
}

func TestScrubbing(t *testing.T) {
	Convey("Scrubbing", t, func() {
		e, clock, gen := attach(200, nil)
		e.Apply(gen, player.TimeChanged{Seconds: 50})

		Convey("Clock updates must not move the handle mid-drag", func() {
			e.BeginScrub()
			e.MoveScrub(0.8)

			e.Apply(gen, player.TimeChanged{Seconds: 51})
			So(e.State().Fraction(), ShouldEqual, 0.8)
		})

		Convey("Drag end issues exactly one seek to the dragged position", func() {
			e.BeginScrub()
			e.MoveScrub(0.25)
			e.MoveScrub(0.5)
			So(e.EndScrub(), ShouldBeNil)

			So(clock.commands, ShouldResemble, []string{"seek 100"})
			So(e.State().Scrubbing, ShouldBeFalse)
		})

		Convey("Moves outside a drag are ignored", func() {
			e.MoveScrub(0.9)
			So(e.State().Fraction(), ShouldEqual, 0.25)
		})

		Convey("Drag end with unknown duration seeks nowhere", func() {
			e2, clock2, _ := attach(0, nil)
			e2.BeginScrub()
			e2.MoveScrub(0.5)
			So(e2.EndScrub(), ShouldBeNil)
			So(clock2.commands, ShouldBeEmpty)
		})
	})
}

func TestSeekBroker(t *testing.T) {
	Convey("SubmitSeek", t, func() {
		e, clock, _ := attach(100, nil)

		Convey("Distinct tokens with identical times both seek", func() {
			So(e.SubmitSeek(SeekRequest{Time: 30, Token: 100}), ShouldBeNil)
			So(e.SubmitSeek(SeekRequest{Time: 30, Token: 101}), ShouldBeNil)

			So(clock.commands, ShouldResemble, []string{"seek 30", "seek 30"})
		})

		Convey("A repeated token is consumed at most once", func() {
			So(e.SubmitSeek(SeekRequest{Time: 30, Token: 7}), ShouldBeNil)
			So(e.SubmitSeek(SeekRequest{Time: 55, Token: 7}), ShouldBeNil)

			So(clock.commands, ShouldResemble, []string{"seek 30"})
		})

		Convey("Seeks are clamped to the media duration", func() {
			So(e.SubmitSeek(SeekRequest{Time: 500, Token: 1}), ShouldBeNil)
			So(clock.commands, ShouldResemble, []string{"seek 100"})
		})
	})
}

func TestFullscreen(t *testing.T) {
	Convey("Fullscreen", t, func() {
		e, clock, gen := attach(100, nil)

		Convey("Toggle requests the opposite state but waits for confirmation", func() {
			So(e.ToggleFullscreen(), ShouldBeNil)
			So(clock.commands, ShouldResemble, []string{"fullscreen true"})
			So(e.State().Fullscreen, ShouldBeFalse)

			e.Apply(gen, player.FullscreenChanged{Enabled: true})
			So(e.State().Fullscreen, ShouldBeTrue)
		})

		Convey("A system-initiated exit is authoritative", func() {
			e.Apply(gen, player.FullscreenChanged{Enabled: true})
			e.Apply(gen, player.FullscreenChanged{Enabled: false})
			So(e.State().Fullscreen, ShouldBeFalse)
		})
	})
}

func TestSourceChange(t *testing.T) {
	Convey("Source change", t, func() {
		e, _, oldGen := attach(100, list("0:05", "0:10"))
		e.Apply(oldGen, player.TimeChanged{Seconds: 12})
		e.Apply(oldGen, player.PauseChanged{Paused: false})
		So(e.CycleRate(), ShouldBeNil)
		So(e.Active().MustGet().Time, ShouldEqual, "0:10")

		Convey("Attach resets the whole transport state synchronously", func() {
			newClock := newFakeClock()
			e.Attach(newClock, nil)

			s := e.State()
			So(s.Playing, ShouldBeFalse)
			So(s.Fraction(), ShouldEqual, 0)
			So(s.Rate, ShouldEqual, 1)
			So(e.Active().IsAbsent(), ShouldBeTrue)
		})

		Convey("Events from the replaced source are discarded", func() {
			newClock := newFakeClock()
			newGen := e.Attach(newClock, nil)

			// Stragglers stamped with the old generation arrive late.
			e.Apply(oldGen, player.TimeChanged{Seconds: 60})
			e.Apply(oldGen, player.PauseChanged{Paused: false})
			e.Apply(oldGen, player.DurationChanged{Seconds: 100})

			s := e.State()
			So(s.CurrentTime, ShouldEqual, 0)
			So(s.Playing, ShouldBeFalse)
			So(s.Duration, ShouldEqual, 0)

			// The live source still works.
			e.Apply(newGen, player.DurationChanged{Seconds: 40})
			So(e.State().Duration, ShouldEqual, 40)
		})
	})
}

func TestActiveAnnotation(t *testing.T) {
	Convey("Active annotation", t, func() {
		e, _, gen := attach(60, list("0:05", "0:10", "0:20"))

		Convey("Documented scenario: position 12 selects 0:10", func() {
			e.Apply(gen, player.TimeChanged{Seconds: 12})
			So(e.Active().MustGet().Time, ShouldEqual, "0:10")
		})

		Convey("Documented scenario: position 3 selects none", func() {
			e.Apply(gen, player.TimeChanged{Seconds: 3})
			So(e.Active().IsAbsent(), ShouldBeTrue)
		})

		Convey("Selection never runs ahead of the clock", func() {
			for pos := 0.0; pos <= 60; pos += 1.3 {
				e.Apply(gen, player.TimeChanged{Seconds: pos})
				if entry, ok := e.Active().Get(); ok {
					So(entry.Seconds, ShouldBeLessThanOrEqualTo, pos)
				}
			}
		})
	})
}

func TestEndReached(t *testing.T) {
	Convey("EndReached", t, func() {
		e, _, gen := attach(90, nil)
		e.Apply(gen, player.PauseChanged{Paused: false})

		e.Apply(gen, player.EndReached{})
		So(e.State().Playing, ShouldBeFalse)
		So(e.State().CurrentTime, ShouldEqual, 90)
		So(e.State().Fraction(), ShouldEqual, 1)
	})
}
