package cmd

import (
	"os"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stereoplay/stereoplay/color"
	"github.com/stereoplay/stereoplay/config"
	"github.com/stereoplay/stereoplay/style"
	"github.com/stereoplay/stereoplay/where"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only list variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only list variables that are not set")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables stereoplay reads",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
		)

		names := lo.Map(config.EnvExposed, func(k string, _ int) string {
			f := config.Default[k]
			return f.Env()
		})
		names = append(names, where.EnvConfigPath)
		sort.Strings(names)

		for _, name := range names {
			value, present := os.LookupEnv(name)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			shown := style.Fg(color.Red)("unset")
			if present {
				shown = style.Fg(color.Green)(value)
			}
			cmd.Printf("%s=%s\n", style.New().Bold(true).Foreground(color.Purple).Render(name), shown)
		}
	},
}
