package timecode

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidmark-cli/vidmark/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func write(path, content string) {
	So(filesystem.API().WriteFile(path, []byte(content), 0644), ShouldBeNil)
}

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		Convey("Should load a valid sidecar and derive seconds", func() {
			write("valid.json", `[
				{"time": "0:05", "text": "intro"},
				{"time": "0:10", "value": 12.5},
				{"time": "0:20", "objects": [{"name": "cat", "box_2d": [0.1, 0.1, 0.5, 0.5]}]}
			]`)

			list, err := Load("valid.json")
			So(err, ShouldBeNil)
			So(list, ShouldHaveLength, 3)
			So(list[0].Seconds, ShouldEqual, 5)
			So(list[2].Seconds, ShouldEqual, 20)
			So(*list[1].Value, ShouldEqual, 12.5)
		})

		Convey("Should reject an out-of-order list", func() {
			write("unordered.json", `[{"time": "0:10"}, {"time": "0:05"}]`)

			_, err := Load("unordered.json")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject a malformed time", func() {
			write("badtime.json", `[{"time": "five"}]`)

			_, err := Load("badtime.json")
			So(err, ShouldNotBeNil)
		})

		Convey("Malformed boxes load fine; they just never render", func() {
			write("badbox.json", `[{"time": "0:05", "objects": [{"name": "dog", "box_2d": [2, 0, 0.5, 0.5]}]}]`)

			list, err := Load("badbox.json")
			So(err, ShouldBeNil)
			So(list[0].Objects[0].Renderable(), ShouldBeFalse)
		})

		Convey("Missing file should error", func() {
			_, err := Load("nope.json")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSchema(t *testing.T) {
	Convey("Schema", t, func() {
		schema := Schema()
		So(schema, ShouldNotBeNil)
		So(schema.Properties, ShouldNotBeNil)
	})
}
