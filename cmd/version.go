package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/color"
	"github.com/stereoplay/stereoplay/constant"
	"github.com/stereoplay/stereoplay/key"
	"github.com/stereoplay/stereoplay/style"
	"github.com/stereoplay/stereoplay/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify()

		versionInfo := struct {
			Version  string
			OS       string
			Arch     string
			BuiltAt  string
			BuiltBy  string
			Revision string
			App      string
			Player   string
		}{
			Version:  constant.Version,
			App:      constant.App,
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			Revision: constant.Revision,
			Player:   viper.GetString(key.PlayerBinary),
		}

		t, err := template.New("version").Funcs(map[string]any{
			"faint":  style.Faint,
			"bold":   style.Bold,
			"accent": style.Fg(style.AccentColor),
			"red":    style.Fg(color.Red),
		}).Parse(`{{ red "▇" }}{{ accent "▇" }} {{ accent .App }}

  {{ faint "Version" }}   {{ bold .Version }}
  {{ faint "Revision" }}  {{ bold .Revision }}
  {{ faint "Built" }}     {{ bold .BuiltAt }} by {{ bold .BuiltBy }}
  {{ faint "Platform" }}  {{ bold .OS }}/{{ bold .Arch }}
  {{ faint "Player" }}    {{ bold .Player }}
`)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), versionInfo))
	},
}
