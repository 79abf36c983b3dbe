package request

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/stereoplay/stereoplay/filesystem"
	"github.com/stereoplay/stereoplay/log"
)

// Watch hands every request dropped into dir to handle until ctx is done.
// Requests already waiting are handled first. handle runs on the watching
// goroutine.
func Watch(ctx context.Context, dir string, handle func(Request)) error {
	if !filesystem.IsOs() {
		return fmt.Errorf("requests can only be watched on the OS filesystem")
	}
	if err := filesystem.API().MkdirAll(dir, 0700); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create request watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	pending, err := Pending(dir)
	if err != nil {
		return err
	}
	for _, path := range pending {
		take(path, handle)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// requests appear by rename from their partial name
			if event.Op&(fsnotify.Create|fsnotify.Rename|fsnotify.Write) != 0 && isRequest(event.Name) {
				take(event.Name, handle)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("request watcher: %s", err)
		}
	}
}

func take(path string, handle func(Request)) {
	exists, err := filesystem.API().Exists(path)
	if err != nil || !exists {
		return
	}

	r, err := Take(path)
	if err != nil {
		log.Warnf("request %s: %s", path, err)
		return
	}
	log.Infof("request %s: open %v", r.ID, r.Sources)
	handle(r)
}
