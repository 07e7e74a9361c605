package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidmark-cli/vidmark/key"
)

func TestGet(t *testing.T) {
	Convey("Icon Get", t, func() {
		Convey("Plain variant should render ASCII symbols", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Play), ShouldEqual, ">")
			So(Get(Pause), ShouldEqual, "||")
		})

		Convey("Unknown variant should fall back to plain", func() {
			viper.Set(key.IconsVariant, "made-up")
			So(Get(Marker), ShouldEqual, "@")
		})

		Convey("All registered icons should have a plain form", func() {
			viper.Set(key.IconsVariant, "plain")
			for i := Play; i <= Fail; i++ {
				So(Get(i), ShouldNotBeEmpty)
			}
		})
	})
}
