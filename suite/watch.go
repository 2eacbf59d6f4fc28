package suite

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settleDelay lets an editor finish writing before a suite is reloaded.
const settleDelay = 100 * time.Millisecond

// Watch calls onChange with the path of a watched suite file every time it
// is written, until ctx ends. Parent directories are watched rather than
// the files themselves so that editors replacing a file on save are seen.
// Errors from onChange are logged and do not stop the watch.
func Watch(ctx context.Context, logger *zap.Logger, paths []string, onChange func(ctx context.Context, path string) error) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
		dirs[dir] = true
	}
	logger.Info("watching suites", zap.Strings("paths", paths))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !watched[name] {
				continue
			}

			time.Sleep(settleDelay)
			logger.Debug("suite changed", zap.String("path", name))
			if err := onChange(ctx, name); err != nil {
				logger.Error("failed to re-run suite", zap.String("path", name), zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", zap.Error(err))
		}
	}
}
