// Package open hands files and URLs to the desktop's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/stereoplay/stereoplay/constant"
)

// Start opens target with the default handler without waiting for it.
func Start(target string) error {
	cmd, err := command(target)
	if err != nil {
		return err
	}
	return cmd.Start()
}

func command(target string) (*exec.Cmd, error) {
	name, args, ok := handler(runtime.GOOS)
	if !ok {
		return nil, fmt.Errorf("opening files is not supported on %s", runtime.GOOS)
	}
	return exec.Command(name, append(args, target)...), nil
}

// handler returns the opener program of an OS and its leading arguments.
func handler(goos string) (string, []string, bool) {
	switch goos {
	case constant.Windows:
		return filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe"), []string{"url.dll,FileProtocolHandler"}, true
	case constant.Darwin:
		return "open", nil, true
	case constant.Linux:
		return "xdg-open", nil, true
	case constant.Android:
		return "termux-open", nil, true
	default:
		return "", nil, false
	}
}
