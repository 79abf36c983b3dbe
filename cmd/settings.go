package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"sort"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stereoplay/stereoplay/color"
	"github.com/stereoplay/stereoplay/icon"
	"github.com/stereoplay/stereoplay/log"
	"github.com/stereoplay/stereoplay/settings"
	"github.com/stereoplay/stereoplay/style"
	"github.com/stereoplay/stereoplay/util"
)

// withStore runs fn on the configured settings store.
func withStore(fn func(settings.Store) error) error {
	store, err := settings.Open()
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warnf("close settings: %s", err)
		}
	}()
	return fn(store)
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Inspect the remembered per-file and session preferences",
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsShowCmd.Flags().BoolP("json", "j", false, "Print the preferences as JSON")
	settingsShowCmd.SetOut(os.Stdout)
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every remembered preference",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(withStore(func(store settings.Store) error {
			if lo.Must(cmd.Flags().GetBool("json")) {
				export, err := settings.Dump(store)
				if err != nil {
					return err
				}
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(export)
			}

			all, err := store.All()
			if err != nil {
				return err
			}
			if len(all) == 0 {
				cmd.Println(style.Faint("Nothing remembered yet"))
				return nil
			}

			keys := lo.Keys(all)
			sort.Strings(keys)
			for _, k := range keys {
				cmd.Printf("%s = %s\n", style.Fg(color.Purple)(k), style.Fg(color.Yellow)(all[k]))
			}
			return nil
		}))
	},
}

func init() {
	settingsCmd.AddCommand(settingsForgetCmd)
}

var settingsForgetCmd = &cobra.Command{
	Use:   "forget <file>...",
	Short: "Forget the input layout, audio stream, parallax and ghostbusting of files",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(withStore(func(store settings.Store) error {
			prefs := settings.NewPreferences(store)
			for _, source := range args {
				if err := prefs.Forget(source); err != nil {
					return fmt.Errorf("forget %s: %w", source, err)
				}
			}
			return nil
		}))
		fmt.Printf("%s forgot %s\n", icon.Get(icon.Success), util.Quantify(len(args), "file", "files"))
	},
}

func init() {
	settingsCmd.AddCommand(settingsSchemaCmd)
}

var settingsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of settings show --json",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return "settings." + t.Name()
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&settings.Export{})))
	},
}
