package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/color"
	"github.com/stereoplay/stereoplay/config"
	"github.com/stereoplay/stereoplay/constant"
	"github.com/stereoplay/stereoplay/filesystem"
	"github.com/stereoplay/stereoplay/icon"
	"github.com/stereoplay/stereoplay/style"
	"github.com/stereoplay/stereoplay/where"
)

func errUnknownKey(key string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(key, a) < levenshtein.Distance(key, b)
	})
	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(key),
		style.Fg(color.Yellow)(closest),
	)
}

// field returns the registered field of key, exiting on unknown keys.
func field(key string) config.Field {
	f, ok := config.Default[key]
	if !ok {
		handleErr(errUnknownKey(key))
	}
	return f
}

func configFile() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

// saveConfig writes viper's state, creating the file if needed.
func saveConfig() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

// parseValue converts the command line words into the type of the
// registered default.
func parseValue(f config.Field, words []string) (any, error) {
	switch f.Value.(type) {
	case string:
		return strings.Join(words, " "), nil
	case int:
		return strconv.Atoi(words[0])
	case float64:
		return strconv.ParseFloat(words[0], 64)
	case bool:
		return strconv.ParseBool(words[0])
	case []string:
		return words, nil
	}
	return nil, fmt.Errorf("%s cannot be set from the command line", f.Key)
}

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only show these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print the fields as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			keys   = lo.Must(cmd.Flags().GetStringSlice("key"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fields = lo.Values(config.Default)
		)

		if len(keys) > 0 {
			fields = lo.Map(keys, func(k string, _ int) config.Field { return field(k) })
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if asJson {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(lo.Map(fields, func(f config.Field, _ int) *config.Field {
				return &f
			})))
			return
		}

		for i := range fields {
			cmd.Print(fields[i].Pretty())
			if i < len(fields)-1 {
				cmd.Println()
				cmd.Println()
			}
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:               "set <key> <value>...",
	Short:             "Set a configuration value",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		f := field(args[0])

		v, err := parseValue(f, args[1:])
		if err != nil {
			handleErr(fmt.Errorf("invalid value for %s: %w", f.Key, err))
		}

		viper.Set(f.Key, v)
		handleErr(saveConfig())
		success("set %s to %s", style.Fg(color.Purple)(f.Key), style.Fg(color.Yellow)(fmt.Sprint(v)))
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
}

var configGetCmd = &cobra.Command{
	Use:               "get <key>",
	Short:             "Print a configuration value",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(viper.Get(field(args[0]).Key))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(configFile()); err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfig())
		success("wrote config to %s", configFile())
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(configFile()))
		success("deleted config")
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]",
	Short:             "Reset a key to its default",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		if all == (len(args) == 1) {
			handleErr(errors.New("give either a key or --all"))
		}

		if all {
			for k, f := range config.Default {
				viper.Set(k, f.Value)
			}
		} else {
			f := field(args[0])
			viper.Set(f.Key, f.Value)
		}

		handleErr(saveConfig())
		if all {
			success("reset all config values")
		} else {
			f := field(args[0])
			success("reset %s to %s", style.Fg(color.Purple)(f.Key), style.Fg(color.Yellow)(fmt.Sprint(f.Value)))
		}
	},
}
