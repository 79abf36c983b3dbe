package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stereoplay/stereoplay/icon"
	"github.com/stereoplay/stereoplay/util"
)

func clearable(l location) bool { return l.clearable }

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolP("all", "a", false, "Clear every location but the configuration")
}

var clearCmd = &cobra.Command{
	Use:       "clear <location>...",
	Short:     "Remove cached and remembered data",
	Example:   "  stereoplay clear recent requests",
	ValidArgs: locationNames(clearable),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			args = locationNames(clearable)
		}
		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		targets, err := lookupLocations(args, clearable)
		handleErr(err)

		for _, target := range targets {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Seek), target.description))
			err := util.Delete(target.path())
			erase()
			if err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.description))
		}
	},
}
