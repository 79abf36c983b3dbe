package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stereoplay/stereoplay/color"
	"github.com/stereoplay/stereoplay/history"
	"github.com/stereoplay/stereoplay/icon"
	"github.com/stereoplay/stereoplay/player"
	"github.com/stereoplay/stereoplay/style"
	"github.com/stereoplay/stereoplay/util"
)

var errNoRecent = errors.New("no matching recent files")

// recentEntries returns the entries matching query, or all of them.
func recentEntries(query string) ([]*history.Entry, error) {
	if query == "" {
		return history.List()
	}
	return history.Find(query)
}

// pickEntry asks which entry is meant when more than one matches.
func pickEntry(entries []*history.Entry) (*history.Entry, error) {
	switch len(entries) {
	case 0:
		return nil, errNoRecent
	case 1:
		return entries[0], nil
	}

	options := lo.Map(entries, func(e *history.Entry, _ int) string { return e.String() })
	var index int
	if err := survey.AskOne(&survey.Select{
		Message: "Which one?",
		Options: options,
	}, &index); err != nil {
		return nil, err
	}
	return entries[index], nil
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().BoolP("json", "j", false, "Print the entries as JSON")
	recentCmd.SetOut(os.Stdout)
}

var recentCmd = &cobra.Command{
	Use:   "recent [query]",
	Short: "List recently opened files",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := recentEntries(strings.Join(args, " "))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("Nothing opened yet"))
			return
		}

		for _, e := range entries {
			mark := icon.Get(icon.Recent)
			if player.IsRemote(e.Sources[0]) {
				mark = icon.Get(icon.Link)
			}
			cmd.Printf("%s %s\n", mark, style.Fg(color.Purple)(e.String()))
			for _, s := range e.Sources {
				cmd.Printf("  %s\n", style.Faint(s))
			}
		}
	},
}

func init() {
	recentCmd.AddCommand(recentOpenCmd)
}

var recentOpenCmd = &cobra.Command{
	Use:   "open [query]",
	Short: "Open a recent file, the latest one by default",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := recentEntries(strings.Join(args, " "))
		handleErr(err)
		if len(args) == 0 && len(entries) > 0 {
			entries = entries[:1]
		}

		entry, err := pickEntry(entries)
		handleErr(err)

		init, err := initData(rootCmd, entry.Sources)
		handleErr(err)
		handleErr(runInteractive(init, false))
	},
}

func init() {
	recentCmd.AddCommand(recentRemoveCmd)
}

var recentRemoveCmd = &cobra.Command{
	Use:     "remove <query>",
	Short:   "Forget a recent file",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := history.Find(args[0])
		handleErr(err)

		entry, err := pickEntry(entries)
		handleErr(err)

		handleErr(history.Remove(entry))
		fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Purple)(entry.Title))
	},
}

func init() {
	recentCmd.AddCommand(recentClearCmd)
}

var recentClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget every recent file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := history.List()
		handleErr(err)

		for _, e := range entries {
			handleErr(history.Remove(e))
		}
		fmt.Printf("%s forgot %s\n", icon.Get(icon.Success), util.Quantify(len(entries), "file", "files"))
	},
}
