package cmd

import (
	"encoding/json"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stereoplay/stereoplay/color"
	"github.com/stereoplay/stereoplay/stereo"
	"github.com/stereoplay/stereoplay/style"
)

func init() {
	rootCmd.AddCommand(layoutsCmd)
	layoutsCmd.Flags().BoolP("json", "j", false, "Print the names as JSON")
	layoutsCmd.SetOut(os.Stdout)
}

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List the input layouts and output modes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		layouts := lo.Map(stereo.Layouts(), func(l stereo.Layout, _ int) string { return l.String() })
		modes := lo.Map(stereo.Modes(), func(m stereo.Mode, _ int) string { return m.String() })

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(map[string][]string{
				"input":  layouts,
				"output": modes,
			}))
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		cmd.Println(header("Input") + " " + style.Faint("--input"))
		for _, l := range stereo.Layouts() {
			note := ""
			if l.CanSwap() {
				note = style.Faint(" (,swap)")
			}
			cmd.Println("  " + l.String() + note)
		}

		cmd.Println()
		cmd.Println(header("Output") + " " + style.Faint("--output"))
		for _, m := range stereo.Modes() {
			note := ""
			switch {
			case m.IsAnaglyph():
				note = style.Faint(" anaglyph")
			case m.IsMono():
				note = style.Faint(" 2D")
			}
			cmd.Println("  " + m.String() + note)
		}
	},
}
