// Package version tracks the application version and discovers newer releases.
package version

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/vidmark-cli/vidmark/color"
	"github.com/vidmark-cli/vidmark/constant"
	"github.com/vidmark-cli/vidmark/icon"
	"github.com/vidmark-cli/vidmark/key"
	"github.com/vidmark-cli/vidmark/style"
	"github.com/vidmark-cli/vidmark/util"
)

// Notify prints a terminal alert when a newer stable release exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err == nil {
		comp, err := Compare(version, constant.Version)
		if err == nil && comp <= 0 {
			return
		}
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/vidmark-cli/vidmark/releases/tag/v"+version),
	)
}
