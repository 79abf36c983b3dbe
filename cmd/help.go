package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stereoplay/stereoplay/constant"
	"github.com/stereoplay/stereoplay/icon"
	"github.com/stereoplay/stereoplay/open"
)

func init() {
	rootCmd.AddCommand(helpWebCmd)
}

var helpWebCmd = &cobra.Command{
	Use:     "help-web",
	Short:   "Open the project website with the manual",
	Aliases: []string{"manual"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := open.Start(constant.Website); err != nil {
			fmt.Printf("%s could not start a browser, visit %s\n", icon.Get(icon.Warn), constant.Website)
			return
		}
		fmt.Printf("%s opened %s\n", icon.Get(icon.Link), constant.Website)
	},
}
