package request

import (
	"os"
	"path/filepath"
	"time"

	"github.com/stereoplay/stereoplay/filesystem"
	"github.com/stereoplay/stereoplay/log"
)

// TTL is how long a request waits for a player before it is discarded.
const TTL = 24 * time.Hour

// CollectGarbage removes requests and partial writes in dir older than ttl,
// so a player started much later does not open them.
func CollectGarbage(dir string, ttl time.Duration) {
	fs := filesystem.API()
	infos, err := fs.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("collect requests: %s", err)
		}
		return
	}

	for _, info := range infos {
		if info.IsDir() || time.Since(info.ModTime()) <= ttl {
			continue
		}
		if err := fs.Remove(filepath.Join(dir, info.Name())); err != nil {
			log.Warnf("remove stale request %s: %s", info.Name(), err)
			continue
		}
		log.Debugf("removed stale request %s", info.Name())
	}
}
