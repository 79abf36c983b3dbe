package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stereoplay/stereoplay/icon"
	"github.com/stereoplay/stereoplay/player"
	"github.com/stereoplay/stereoplay/request"
	"github.com/stereoplay/stereoplay/style"
	"github.com/stereoplay/stereoplay/where"
)

func init() {
	rootCmd.AddCommand(sendCmd)
}

var sendCmd = &cobra.Command{
	Use:   "send <file | url> [right file | url]",
	Short: "Ask a running player to open files",
	Long: "Ask a running player to open files.\n" +
		"The player picks the request up when requests.watch is enabled.",
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		// the player may run from another directory
		sources := lo.Map(args, func(s string, _ int) string {
			if player.IsRemote(s) {
				return s
			}
			return lo.Must(filepath.Abs(s))
		})

		r, err := request.New(sources...)
		handleErr(err)

		path, err := request.Send(where.Requests(), r)
		handleErr(err)

		fmt.Printf("%s sent %s\n", icon.Get(icon.Success), style.Faint(filepath.Base(path)))
	},
}
