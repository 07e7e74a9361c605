package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		Convey("Should accept http(s) URLs", func() {
			out, err := sanitizeMediaTarget("https://example.com/video.mp4")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "https://example.com/video.mp4")
		})

		Convey("Should accept local paths", func() {
			out, err := sanitizeMediaTarget("./clips/../clip.mp4")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "clip.mp4")
		})

		Convey("Should reject flag-looking targets", func() {
			_, err := sanitizeMediaTarget("--ao=null")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject control characters", func() {
			_, err := sanitizeMediaTarget("clip\n.mp4")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject unsupported schemes", func() {
			_, err := sanitizeMediaTarget("ftp://example.com/clip.mp4")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject empty targets", func() {
			_, err := sanitizeMediaTarget("  ")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSanitizeTitle(t *testing.T) {
	Convey("sanitizeTitle", t, func() {
		So(sanitizeTitle("a\nb\tc\x00"), ShouldEqual, "a b c")
		So(sanitizeTitle("  plain  "), ShouldEqual, "plain")
	})
}

func TestEventFromProperty(t *testing.T) {
	Convey("eventFromProperty", t, func() {
		Convey("time-pos becomes TimeChanged", func() {
			ev, ok := eventFromProperty("time-pos", 12.5)
			So(ok, ShouldBeTrue)
			So(ev, ShouldResemble, TimeChanged{Seconds: 12.5})
		})

		Convey("duration becomes DurationChanged", func() {
			ev, ok := eventFromProperty("duration", 120.0)
			So(ok, ShouldBeTrue)
			So(ev, ShouldResemble, DurationChanged{Seconds: 120})
		})

		Convey("pause becomes PauseChanged", func() {
			ev, ok := eventFromProperty("pause", true)
			So(ok, ShouldBeTrue)
			So(ev, ShouldResemble, PauseChanged{Paused: true})
		})

		Convey("fullscreen becomes FullscreenChanged", func() {
			ev, ok := eventFromProperty("fullscreen", false)
			So(ok, ShouldBeTrue)
			So(ev, ShouldResemble, FullscreenChanged{Enabled: false})
		})

		Convey("speed becomes RateChanged", func() {
			ev, ok := eventFromProperty("speed", 1.5)
			So(ok, ShouldBeTrue)
			So(ev, ShouldResemble, RateChanged{Rate: 1.5})
		})

		Convey("eof-reached=true becomes EndReached", func() {
			_, ok := eventFromProperty("eof-reached", true)
			So(ok, ShouldBeTrue)

			_, ok = eventFromProperty("eof-reached", false)
			So(ok, ShouldBeFalse)
		})

		Convey("nil data while nothing is loaded is dropped", func() {
			_, ok := eventFromProperty("time-pos", nil)
			So(ok, ShouldBeFalse)

			_, ok = eventFromProperty("duration", nil)
			So(ok, ShouldBeFalse)
		})

		Convey("unknown properties are dropped", func() {
			_, ok := eventFromProperty("chapter", 3.0)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestMpvArgs(t *testing.T) {
	Convey("mpvArgs", t, func() {
		args := mpvArgs("/tmp/v.sock", "Clip", "clip.mp4")
		So(args, ShouldContain, "--input-ipc-server=/tmp/v.sock")
		So(args, ShouldContain, "--idle=yes")
		So(args[len(args)-1], ShouldEqual, "clip.mp4")
	})
}
