package player

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/stereoplay/stereoplay/filesystem"
	"github.com/stereoplay/stereoplay/key"
	"github.com/stereoplay/stereoplay/network"
)

const probeTimeout = 10 * time.Second

var remoteSchemes = []string{"http", "https", "rtsp", "rtmp", "mms", "udp", "ftp"}

// IsRemote reports whether source is a network locator.
func IsRemote(source string) bool {
	u, err := url.Parse(source)
	if err != nil || !strings.Contains(source, "://") {
		return false
	}
	return lo.Contains(remoteSchemes, strings.ToLower(u.Scheme))
}

// sanitizeSource validates that a source is safe to pass to mpv and returns
// its canonical form. Local files must exist.
func sanitizeSource(source string) (string, error) {
	s := strings.TrimSpace(source)
	if s == "" {
		return "", fmt.Errorf("empty source")
	}

	if strings.ContainsAny(s, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in source")
	}

	// a leading dash would be taken for an mpv option
	if strings.HasPrefix(s, "-") {
		return "", fmt.Errorf("source must not start with '-' (looks like a flag)")
	}

	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch scheme := strings.ToLower(u.Scheme); {
		case scheme == "file":
			s = u.Path
		case IsRemote(s):
			return s, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	path := filepath.Clean(s)
	exists, err := filesystem.API().Exists(path)
	if err != nil {
		return "", fmt.Errorf("check %s: %w", path, err)
	}
	if !exists {
		return "", fmt.Errorf("%s: no such file", path)
	}
	return path, nil
}

// validateSources sanitizes every source and, when enabled, checks that
// remote ones are reachable.
func validateSources(sources []string) ([]string, error) {
	valid := make([]string, 0, len(sources))
	for _, source := range sources {
		s, err := sanitizeSource(source)
		if err != nil {
			return nil, err
		}

		if IsRemote(s) && viper.GetBool(key.PlayerProbeRemote) && strings.HasPrefix(s, "http") {
			ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
			err = network.Probe(ctx, s)
			cancel()
			if err != nil {
				return nil, err
			}
		}
		valid = append(valid, s)
	}
	return valid, nil
}

// sanitizeTitle cleans up a title for mpv.
func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
