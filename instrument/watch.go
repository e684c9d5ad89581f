package instrument

import (
	"context"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Watch reloads the catalog at path into r whenever the file changes, until
// ctx is done. The parent directory is watched so editors that replace the
// file on save are still seen. Bursts of events cause a single reload.
func Watch(ctx context.Context, path string, r *Registry, delay time.Duration, logger *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not create catalog watcher")
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "could not watch %s", filepath.Dir(abs))
	}

	reload := func() {
		c, err := LoadFile(abs)
		if err != nil {
			logger.Warn("catalog reload failed", zap.String("path", abs), zap.Error(err))
			return
		}
		if err := r.Apply(c); err != nil {
			logger.Warn("catalog rejected", zap.String("path", abs), zap.Error(err))
			return
		}
		logger.Info("catalog reloaded",
			zap.String("path", abs),
			zap.Int("instruments", len(c.Instruments)),
			zap.Int("grids", len(c.Grids)))
	}
	debounced := debounce.New(delay)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				logger.Debug("catalog changed", zap.String("op", ev.Op.String()))
				debounced(reload)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("catalog watcher error", zap.Error(err))
		}
	}
}
