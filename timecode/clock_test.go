package timecode

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseClock(t *testing.T) {
	Convey("ParseClock", t, func() {
		parse := func(s string) float64 {
			v, err := ParseClock(s)
			So(err, ShouldBeNil)
			return v
		}

		Convey("Should parse m:ss", func() {
			So(parse("1:23"), ShouldEqual, 83)
			So(parse("0:05"), ShouldEqual, 5)
		})

		Convey("Should parse h:mm:ss", func() {
			So(parse("1:02:03"), ShouldEqual, 3723)
		})

		Convey("Should parse bare seconds", func() {
			So(parse("42"), ShouldEqual, 42)
			So(parse("12.5"), ShouldEqual, 12.5)
		})

		Convey("Should reject malformed values", func() {
			_, err := ParseClock("")
			So(err, ShouldNotBeNil)

			_, err = ParseClock("1:2:3:4")
			So(err, ShouldNotBeNil)

			_, err = ParseClock("one:twenty")
			So(err, ShouldNotBeNil)

			_, err = ParseClock("-1:00")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestFormatClock(t *testing.T) {
	Convey("FormatClock", t, func() {
		So(FormatClock(83), ShouldEqual, "1:23")
		So(FormatClock(5), ShouldEqual, "0:05")
		So(FormatClock(3723), ShouldEqual, "1:02:03")

		Convey("Invalid durations should degrade to zero", func() {
			So(FormatClock(-3), ShouldEqual, "0:00")
		})
	})
}

func TestClockRoundTrip(t *testing.T) {
	Convey("Format then parse should round-trip whole seconds", t, func() {
		for _, seconds := range []float64{0, 5, 59, 60, 83, 3599, 3600, 3723} {
			parsed, err := ParseClock(FormatClock(seconds))
			So(err, ShouldBeNil)
			So(parsed, ShouldEqual, seconds)
		}
	})
}
