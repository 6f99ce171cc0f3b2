package watch

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cognicore/phrasecloud/internal/logger"
	"github.com/cognicore/phrasecloud/pkg/phrasecloud/transcript"
)

// Handler re-runs the corpus analysis after the watched tree changed.
type Handler func(ctx context.Context) error

// Watcher monitors the input root and triggers the handler when eligible
// transcript files appear, change, or disappear. Events are debounced so a
// burst of writes produces one re-run.
type Watcher struct {
	root     string
	log      logger.Logger
	handler  Handler
	debounce time.Duration
}

// New creates a Watcher over root.
func New(root string, log logger.Logger, handler Handler) *Watcher {
	return &Watcher{
		root:     root,
		log:      log,
		handler:  handler,
		debounce: 500 * time.Millisecond,
	}
}

// Run blocks, dispatching the handler on corpus changes, until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	// fsnotify watches are not recursive; register every directory
	if err := addTree(fsw, w.root); err != nil {
		return err
	}

	w.log.Info(ctx, "Watching %s for transcript changes", w.root)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			w.log.Info(ctx, "Watcher stopped")
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				// a new subdirectory needs its own watch
				if err := addTree(fsw, event.Name); err == nil {
					w.log.Debug(ctx, "Watching new path: %s", event.Name)
				}
			}
			if !transcript.Eligible(event.Name) {
				continue
			}
			w.log.Debug(ctx, "Corpus change: %s %s", event.Op, event.Name)
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(w.debounce)
			pending = true

		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Warn(ctx, "Watcher error: %v", err)

		case <-timer.C:
			pending = false
			if err := w.handler(ctx); err != nil {
				w.log.Error(ctx, "Re-run failed: %v", err)
			}
		}
	}
}

// addTree registers path and, when it is a directory, every directory
// beneath it. Non-directories and vanished paths are ignored.
func addTree(fsw *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		return fsw.Add(p)
	})
}
