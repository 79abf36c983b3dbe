package cmd

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/stereoplay/stereoplay/color"
	"github.com/stereoplay/stereoplay/icon"
	"github.com/stereoplay/stereoplay/settings"
	"github.com/stereoplay/stereoplay/style"
)

func init() {
	rootCmd.AddCommand(preferencesCmd)
	preferencesCmd.AddCommand(preferencesCrosstalkCmd)
	preferencesCrosstalkCmd.Flags().String("levels", "", "Crosstalk levels as r,g,b in [0,1], asked for when not given")
}

var preferencesCmd = &cobra.Command{
	Use:   "preferences",
	Short: "Change session wide preferences",
}

var preferencesCrosstalkCmd = &cobra.Command{
	Use:   "crosstalk",
	Short: "Set the crosstalk levels of the display used for ghostbusting",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(withStore(func(store settings.Store) error {
			prefs := settings.NewPreferences(store)

			var levels [3]float64
			if s, _ := cmd.Flags().GetString("levels"); s != "" {
				var err error
				if levels, err = parseCrosstalk(s); err != nil {
					return err
				}
				for _, l := range levels {
					if l < 0 || l > 1 {
						return fmt.Errorf("crosstalk levels must be in [0,1], got %g", l)
					}
				}
			} else {
				var err error
				if levels, err = askCrosstalk(prefs); err != nil {
					return err
				}
			}

			for i, k := range []string{settings.CrosstalkR, settings.CrosstalkG, settings.CrosstalkB} {
				prefs.SetFloat(k, levels[i])
			}
			fmt.Printf("%s crosstalk set to %s\n",
				icon.Get(icon.Success),
				style.Fg(color.Yellow)(fmt.Sprintf("%g,%g,%g", levels[0], levels[1], levels[2])),
			)
			return nil
		}))
	},
}

// askCrosstalk prompts for the three levels, offering the remembered ones.
func askCrosstalk(prefs settings.Preferences) ([3]float64, error) {
	var levels [3]float64

	validate := func(ans any) error {
		s, _ := ans.(string)
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 0 || v > 1 {
			return fmt.Errorf("enter a number from 0 to 1")
		}
		return nil
	}

	for i, c := range []struct{ name, key string }{
		{"Red", settings.CrosstalkR},
		{"Green", settings.CrosstalkG},
		{"Blue", settings.CrosstalkB},
	} {
		var answer string
		err := survey.AskOne(&survey.Input{
			Message: c.name + " crosstalk",
			Default: strconv.FormatFloat(prefs.Float(c.key, 0), 'g', -1, 64),
		}, &answer, survey.WithValidator(validate))
		if err != nil {
			return levels, err
		}
		levels[i], _ = strconv.ParseFloat(answer, 64)
	}
	return levels, nil
}
