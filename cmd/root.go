// Package cmd implements the command-line interface of stereoplay.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/constant"
	"github.com/stereoplay/stereoplay/icon"
	"github.com/stereoplay/stereoplay/key"
	"github.com/stereoplay/stereoplay/log"
	"github.com/stereoplay/stereoplay/player"
	"github.com/stereoplay/stereoplay/style"
	"github.com/stereoplay/stereoplay/tui"
	"github.com/stereoplay/stereoplay/util"
	"github.com/stereoplay/stereoplay/version"
	"github.com/stereoplay/stereoplay/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("recent", "r", false, "Start on the recently opened files")
	addSessionFlags(rootCmd)

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icon variant: emoji, nerd, plain, kaomoji or squares")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("no-recent", false, "Do not remember opened files")
	lo.Must0(rootCmd.PersistentFlags().MarkHidden("no-recent"))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.App + " [file | url] [right file | url]",
	Short: "Stereoscopic 3D video player",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(style.AccentColor).Render("    - Stereoscopic 3D video player for the terminal"),
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}
		if lo.Must(cmd.Flags().GetBool("no-recent")) {
			viper.Set(key.RecentEnable, false)
		}

		init, err := initData(cmd, args)
		handleErr(err)
		handleErr(runInteractive(init, lo.Must(cmd.Flags().GetBool("recent"))))
	},
}

// runInteractive runs the terminal front end on a new session until the
// user quits.
func runInteractive(init player.InitData, recent bool) error {
	CheckDependencies()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reporter := tui.NewReporter()
	s, err := startSession(ctx, init, reporter)
	if err != nil {
		return err
	}

	err = tui.Run(&tui.Options{
		Window: s.window,
		Errors: reporter,
		Recent: recent,
	})

	cancel()
	if closeErr := s.Wait(); closeErr != nil {
		log.Warnf("close settings: %s", closeErr)
	}
	return err
}

// Execute runs the command named on the command line.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiRed + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
