package graphfile

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/logging"
)

// DebounceDelay is how long Watch waits for a burst of events to settle.
var DebounceDelay = 200 * time.Millisecond

// Watch calls fn with the parsed file once at start and again after every
// change to path, until ctx is cancelled. The parent directory is watched so
// editors that replace the file on save are seen.
func Watch(ctx context.Context, path string, fn func(*File, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ferrors.NewPathError(err.Error())
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return ferrors.NewIOError("failed to create file watcher", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return ferrors.NewIOError("failed to watch "+filepath.Dir(abs), err)
	}

	fn(Load(path))

	debounce := time.NewTimer(DebounceDelay)
	debounce.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logging.Debug("graph file changed", "path", abs, "op", event.Op.String())
			debounce.Reset(DebounceDelay)

		case <-debounce.C:
			fn(Load(path))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn("file watcher error", "path", abs, "error", err)

		case <-ctx.Done():
			return nil
		}
	}
}
