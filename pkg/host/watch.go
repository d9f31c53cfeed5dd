package host

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/vst3go/plugintemplate/pkg/framework/debug"
)

// Watch calls fn each time path is written or created until ctx is done.
// The parent directory is watched so editors that replace the file are
// still seen. Errors from fn are logged and watching continues. A nil
// logger uses the package default.
func Watch(ctx context.Context, logger *debug.Logger, path string, fn func() error) error {
	if logger == nil {
		logger = debug.Default()
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "resolve %v", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrapf(err, "create watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, "watch %v", filepath.Dir(target))
	}
	logger.Info("watching %v", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isChange(event, target) {
				continue
			}
			logger.Debug("%v changed (%v)", event.Name, event.Op)
			if err := fn(); err != nil {
				logger.Error("%v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrapf(err, "watch %v", target)
		}
	}
}

func isChange(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
