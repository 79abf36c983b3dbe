package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stereoplay/stereoplay/icon"
	"github.com/stereoplay/stereoplay/log"
	"github.com/stereoplay/stereoplay/style"
	"github.com/stereoplay/stereoplay/util"
	"github.com/stereoplay/stereoplay/window"
)

var errWindowStopped = errors.New("player stopped")

func init() {
	rootCmd.AddCommand(playCmd)
	addSessionFlags(playCmd)
	playCmd.Flags().BoolP("quiet", "q", false, "Do not print the playback position")
}

var playCmd = &cobra.Command{
	Use:   "play [file | url] [right file | url]",
	Short: "Play without the terminal interface until playback ends",
	Args:  cobra.MaximumNArgs(2),
	Example: "  " + "stereoplay play --input sbs --output red-cyan-dubois movie.mkv\n" +
		"  stereoplay play --device x11=:0.0 --device-rate 30",
	Run: func(cmd *cobra.Command, args []string) {
		init, err := initData(cmd, args)
		handleErr(err)
		if !init.HasInput() {
			handleErr(errors.New("nothing to play, give a source or --device"))
		}
		CheckDependencies()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		// written and read on the window goroutine only
		var reported error
		reporter := window.ReporterFunc(func(err error) {
			log.Error(err)
			reported = err
		})
		s, err := startSession(ctx, init, reporter)
		handleErr(err)

		err = playUntilDone(ctx, s.window, func() error { return reported }, lo.Must(cmd.Flags().GetBool("quiet")))
		cancel()
		if closeErr := s.Wait(); closeErr != nil {
			log.Warnf("close settings: %s", closeErr)
		}
		handleErr(err)
	},
}

// playUntilDone starts playback of the opened session and returns once it
// ends or ctx is done. reported returns the last error the window reported
// and is called on the window goroutine.
func playUntilDone(ctx context.Context, w *window.Window, reported func() error, quiet bool) error {
	var err error
	if !w.Do(func() {
		if err = reported(); err != nil {
			return
		}
		err = w.Controls.Play()
	}) {
		return errWindowStopped
	}
	if err != nil {
		return err
	}

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	erase := func() {}
	defer func() { erase() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		var (
			playing  bool
			position float64
			duration float64
			title    string
		)
		if !w.Do(func() {
			playing = w.Playing()
			position = w.Position()
			duration = w.Media().Duration
			title = w.Media().Title
		}) {
			return errWindowStopped
		}
		if !playing {
			erase()
			fmt.Printf("%s finished %s\n", icon.Get(icon.Success), title)
			return nil
		}
		if quiet {
			continue
		}

		line := fmt.Sprintf("%s %s / %s  %s",
			icon.Get(icon.Play),
			util.Timestamp(position*duration),
			util.Timestamp(duration),
			style.Faint(title),
		)
		if width, _, err := util.TerminalSize(); err == nil && width > 0 {
			line = style.Truncate(width - 1)(line)
		}
		erase()
		erase = util.PrintErasable(line)
	}
}
