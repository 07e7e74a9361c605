package timecode

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func entries(times ...string) List {
	var list List
	for _, t := range times {
		list = append(list, &Entry{Time: t})
	}
	So(Normalize(list), ShouldBeNil)
	return list
}

func TestIndexAt(t *testing.T) {
	Convey("Index At", t, func() {
		idx := NewIndex(entries("0:05", "0:10", "0:20"))

		Convey("Should select the most recent entry not after the position", func() {
			So(idx.At(12).MustGet().Time, ShouldEqual, "0:10")
			So(idx.At(10).MustGet().Time, ShouldEqual, "0:10")
			So(idx.At(300).MustGet().Time, ShouldEqual, "0:20")
		})

		Convey("Should return none before the first entry", func() {
			So(idx.At(3).IsAbsent(), ShouldBeTrue)
		})

		Convey("Should return none for an empty list", func() {
			So(NewIndex(nil).At(10).IsAbsent(), ShouldBeTrue)
		})

		Convey("Selected time never exceeds the position under monotonic playback", func() {
			for pos := 0.0; pos < 30; pos += 0.7 {
				if entry, ok := idx.At(pos).Get(); ok {
					So(entry.Seconds, ShouldBeLessThanOrEqualTo, pos)
				}
			}
		})

		Convey("Scrubbing backward should resolve the older entry", func() {
			So(idx.At(25).MustGet().Time, ShouldEqual, "0:20")
			So(idx.At(7).MustGet().Time, ShouldEqual, "0:05")
		})
	})
}

func TestIndexSet(t *testing.T) {
	Convey("Index Set", t, func() {
		first := entries("0:05", "0:10")
		idx := NewIndex(first)

		Convey("Replacing the list should rebuild the lookup", func() {
			idx.Set(entries("0:30"))
			So(idx.Len(), ShouldEqual, 1)
			So(idx.At(10).IsAbsent(), ShouldBeTrue)
			So(idx.At(31).MustGet().Time, ShouldEqual, "0:30")
		})

		Convey("Setting the identical list should keep it", func() {
			idx.Set(first)
			So(idx.Len(), ShouldEqual, 2)
		})
	})
}

func TestObjectRenderable(t *testing.T) {
	Convey("Object Renderable", t, func() {
		box := func(y0, x0, y1, x1 float64) *[4]float64 {
			return &[4]float64{y0, x0, y1, x1}
		}

		Convey("Well-formed boxes render", func() {
			o := Object{Name: "cat", Box: box(0.1, 0.1, 0.5, 0.5)}
			So(o.Renderable(), ShouldBeTrue)
		})

		Convey("Missing box does not render but the entry stays selectable", func() {
			o := Object{Name: "cat"}
			So(o.Renderable(), ShouldBeFalse)
		})

		renderable := func(o Object) bool {
			return o.Renderable()
		}

		Convey("Out-of-range coordinates do not render", func() {
			So(renderable(Object{Box: box(-0.1, 0, 0.5, 0.5)}), ShouldBeFalse)
			So(renderable(Object{Box: box(0, 0, 1.5, 0.5)}), ShouldBeFalse)
		})

		Convey("Degenerate boxes do not render", func() {
			So(renderable(Object{Box: box(0.5, 0.1, 0.5, 0.5)}), ShouldBeFalse)
			So(renderable(Object{Box: box(0.1, 0.5, 0.5, 0.5)}), ShouldBeFalse)
		})
	})
}
