package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stereoplay/stereoplay/color"
	"github.com/stereoplay/stereoplay/style"
	"github.com/stereoplay/stereoplay/where"
)

// location is a file or directory stereoplay owns.
type location struct {
	name        string
	description string
	path        func() string
	// internal locations are left out of listings unless asked for by name.
	internal  bool
	clearable bool
}

var locations = []location{
	{"config", "configuration", where.Config, false, false},
	{"settings", "remembered preferences", where.Settings, false, true},
	{"recent", "recent files", where.Recent, false, true},
	{"requests", "pending open requests", where.Requests, false, true},
	{"logs", "log files", where.Logs, false, true},
	{"cache", "cache directory", where.Cache, true, true},
	{"temp", "temporary files", where.Temp, true, true},
}

func locationNames(filter func(location) bool) []string {
	return lo.FilterMap(locations, func(l location, _ int) (string, bool) {
		return l.name, filter(l)
	})
}

// lookupLocations resolves names into locations, in the order given.
func lookupLocations(names []string, allowed func(location) bool) ([]location, error) {
	found := make([]location, 0, len(names))
	for _, name := range lo.Uniq(names) {
		l, ok := lo.Find(locations, func(l location) bool { return l.name == name && allowed(l) })
		if !ok {
			return nil, fmt.Errorf("unknown location %q, expected one of %s", name, strings.Join(locationNames(allowed), ", "))
		}
		found = append(found, l)
	}
	return found, nil
}

func init() {
	rootCmd.AddCommand(whereCmd)
	whereCmd.Flags().BoolP("all", "a", false, "Include internal locations")
	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where [location]...",
	Short: "Print where stereoplay keeps its files",
	Example: "  stereoplay where\n" +
		"  stereoplay where settings\n" +
		"  cd \"$(stereoplay where logs)\"",
	ValidArgs: locationNames(func(location) bool { return true }),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			found, err := lookupLocations(args, func(location) bool { return true })
			handleErr(err)
			for _, l := range found {
				cmd.Println(l.path())
			}
			return
		}

		all := lo.Must(cmd.Flags().GetBool("all"))
		shown := lo.Filter(locations, func(l location, _ int) bool { return all || !l.internal })

		width := lo.Max(lo.Map(shown, func(l location, _ int) int { return len(l.name) }))
		name := style.New().Bold(true).Foreground(color.HiPurple).Width(width + 2).Render
		for _, l := range shown {
			cmd.Println(name(l.name) + l.path() + " " + style.Faint(l.description))
		}
	},
}
