package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/stereoplay/stereoplay/network"
	"github.com/stereoplay/stereoplay/player"
)

func init() {
	rootCmd.AddCommand(openURLCmd)
	addSessionFlags(openURLCmd)
	openURLCmd.Flags().Bool("no-probe", false, "Do not check that the URL answers before opening it")
}

var openURLCmd = &cobra.Command{
	Use:   "open-url [url] [right url]",
	Short: "Open one or two URLs, asking for them when not given",
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		urls := args
		if len(urls) == 0 {
			var input string
			handleErr(survey.AskOne(&survey.Input{
				Message: "URL",
				Help:    "Separate the left and right view URLs with a space",
			}, &input, survey.WithValidator(survey.Required)))
			urls = strings.Fields(input)
		}

		for _, u := range urls {
			if !player.IsRemote(u) {
				handleErr(fmt.Errorf("%q is not a URL", u))
			}
			if lo.Must(cmd.Flags().GetBool("no-probe")) {
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			err := network.Probe(ctx, u)
			cancel()
			handleErr(err)
		}

		init, err := initData(cmd, urls)
		handleErr(err)
		handleErr(runInteractive(init, false))
	},
}

func init() {
	rootCmd.AddCommand(openDeviceCmd)
	addSessionFlags(openDeviceCmd)
}

var openDeviceCmd = &cobra.Command{
	Use:   "open-device",
	Short: "Capture from a camera, a firewire device or the X11 screen",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		init, err := initData(cmd, nil)
		handleErr(err)

		if init.Device.IsAbsent() {
			req, err := askDevice()
			handleErr(err)
			init.Device = mo.Some(req)
		}
		handleErr(runInteractive(init, false))
	},
}

// askDevice prompts for everything --device and its companions describe.
func askDevice() (player.DeviceRequest, error) {
	answers := struct {
		Kind  string
		Node  string
		Size  string
		Rate  string
		MJPEG bool
	}{}

	questions := []*survey.Question{
		{
			Name: "kind",
			Prompt: &survey.Select{
				Message: "Device type",
				Options: []string{"default", "firewire", "x11"},
				Default: "default",
			},
		},
		{
			Name:   "node",
			Prompt: &survey.Input{Message: "Device", Help: "Device node or X11 display, empty for the default"},
		},
		{
			Name:   "size",
			Prompt: &survey.Input{Message: "Frame size (WxH)", Help: "Empty lets the device choose"},
			Validate: func(ans any) error {
				if s, _ := ans.(string); s != "" {
					_, _, err := player.ParseFrameSize(s)
					return err
				}
				return nil
			},
		},
		{
			Name:   "rate",
			Prompt: &survey.Input{Message: "Frame rate (N/D)", Help: "Empty lets the device choose"},
			Validate: func(ans any) error {
				if s, _ := ans.(string); s != "" {
					_, _, err := player.ParseFrameRate(s)
					return err
				}
				return nil
			},
		},
		{
			Name:   "mjpeg",
			Prompt: &survey.Confirm{Message: "Request MJPEG frames?", Default: false},
		},
	}

	if err := survey.Ask(questions, &answers); err != nil {
		return player.DeviceRequest{}, err
	}

	device := answers.Kind
	if answers.Node != "" {
		device += "=" + answers.Node
	}
	return deviceRequest(device, answers.Size, answers.Rate, answers.MJPEG)
}
