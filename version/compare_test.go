package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Should order semantic versions", func() {
			cmp := func(a, b string) int {
				c, err := Compare(a, b)
				So(err, ShouldBeNil)
				return c
			}

			So(cmp("1.0.0", "1.0.0"), ShouldEqual, 0)
			So(cmp("1.0.1", "1.0.0"), ShouldEqual, 1)
			So(cmp("1.0.0", "1.0.1"), ShouldEqual, -1)
			So(cmp("2.0.0", "1.9.9"), ShouldEqual, 1)
			So(cmp("0.2.0", "0.10.0"), ShouldEqual, -1)
		})

		Convey("Should tolerate a leading v prefix", func() {
			c, err := Compare("v1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 0)
		})

		Convey("Should reject malformed versions", func() {
			_, err := Compare("not-a-version", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
