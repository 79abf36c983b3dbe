// Package version checks whether a newer release has been published.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/stereoplay/stereoplay/constant"
	"github.com/stereoplay/stereoplay/filesystem"
	"github.com/stereoplay/stereoplay/network"
	"github.com/stereoplay/stereoplay/util"
	"github.com/stereoplay/stereoplay/where"
)

const checkTimeout = 5 * time.Second

// ReleasesAPI answers with the latest published release.
var ReleasesAPI = "https://api.github.com/repos/stereoplay/stereoplay/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version, cached for two days.
func Latest() (string, error) {
	cached, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}
	if !expired && cached != "" {
		return cached, nil
	}

	latest, err := fetch()
	if err != nil {
		return "", err
	}
	_ = versionCacher.Set(latest)
	return latest, nil
}

func fetch() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesAPI, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release check: %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}
	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}
	return strings.TrimPrefix(release.TagName, "v"), nil
}
