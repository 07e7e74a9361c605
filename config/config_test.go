package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidmark-cli/vidmark/filesystem"
	"github.com/vidmark-cli/vidmark/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Playback defaults should be sane", func() {
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.PlayerBinary), ShouldEqual, "mpv")
			So(viper.GetFloat64(key.PlayerVolume), ShouldBeBetweenOrEqual, 0, 1)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("player.default")
			So(result, ShouldEqual, "player_default")
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Field Env", t, func() {
		f := Default[key.PlayerBinary]
		So(f.Env(), ShouldEqual, "VIDMARK_PLAYER_DEFAULT")
	})
}
