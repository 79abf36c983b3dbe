package version

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/color"
	"github.com/stereoplay/stereoplay/constant"
	"github.com/stereoplay/stereoplay/icon"
	"github.com/stereoplay/stereoplay/key"
	"github.com/stereoplay/stereoplay/style"
	"github.com/stereoplay/stereoplay/util"
)

// Notify prints a notice when a newer release is available and the check is enabled.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(icon.Get(icon.Seek) + " Checking for a new version...")
	latest, err := Latest()
	erase()
	if err != nil {
		return
	}
	if newer, err := Compare(latest, constant.Version); err != nil || newer <= 0 {
		return
	}

	fmt.Printf(`
%s Version %s is available %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(you have %s)", constant.Version)),
		style.Faint(constant.Website+"/releases/tag/v"+latest),
	)
}
