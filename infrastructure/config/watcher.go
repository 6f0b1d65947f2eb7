package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/SoSDylan/xVeinMiner/domain/tool"
	"github.com/SoSDylan/xVeinMiner/infrastructure/logging"
)

// Watcher reloads the category registry when the configuration file changes
// on disk. A reload builds the file's complete category set first and only
// then replaces the registry contents, so a file that fails to load or a
// category that fails to construct leaves the previous categories in place.
type Watcher struct {
	path     string
	loader   *Loader
	registry tool.Registry
	fsw      *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given configuration file. The parent
// directory is watched rather than the file itself so editors that replace
// the file on save are still observed.
func NewWatcher(path string, loader *Loader, registry tool.Registry) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:     path,
		loader:   loader,
		registry: registry,
		fsw:      fsw,
	}, nil
}

// Watch blocks, reloading the registry on every change to the configuration
// file, until the context is cancelled or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.Reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logging.Warn().
				Add(logging.ErrorField(err)).
				Msg("config watcher error")
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Reload replaces the registry contents with the file's current categories.
// The new set is built in full before the registry is touched; any load or
// construction failure keeps the previous categories.
func (w *Watcher) Reload() {
	cfg, err := w.loader.LoadFile(w.path)
	if err != nil {
		logging.Warn().
			Add(logging.ConfigPath(w.path)).
			Add(logging.ErrorField(err)).
			Msg("config reload failed, keeping previous categories")
		return
	}
	categories, err := BuildCategories(cfg)
	if err != nil {
		logging.Warn().
			Add(logging.ConfigPath(w.path)).
			Add(logging.ErrorField(err)).
			Msg("config reload failed, keeping previous categories")
		return
	}

	hand := w.registry.Hand()
	w.registry.Clear()
	if err := w.registry.Register(hand); err != nil {
		logging.Error().
			Add(logging.ErrorField(err)).
			Msg("failed to re-register hand category")
		return
	}
	if err := registerAll(w.registry, categories); err != nil {
		logging.Error().
			Add(logging.ConfigPath(w.path)).
			Add(logging.ErrorField(err)).
			Msg("config reload failed while registering categories")
		return
	}

	logging.Info().
		Add(logging.ConfigPath(w.path)).
		Add(logging.CategoryCount(w.registry.Count())).
		Msg("configuration reloaded")
}
