/*
Package filewatch turns file-system writes under a workspace into save events.

fsnotify is not recursive, so every directory below the root is watched
individually and directories created later are added as they appear. Rapid
successive writes to one file (editors often write, truncate and rename) are
debounced into a single save event. Writes a save handler makes to the file
it was called for, such as a formatter rewriting it in place, do not count
as new saves.
*/
package filewatch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/AntonioJCosta/runonsave/internal/logging"
)

// DefaultDebounce is the quiet period after the last write before a save is reported.
const DefaultDebounce = 100 * time.Millisecond

// configKey is the debounce key for configuration changes; it cannot clash with a path.
const configKey = "\x00config"

// ErrInvalidIgnorePattern indicates an ignore entry that is not a valid glob.
var ErrInvalidIgnorePattern = errors.New("invalid ignore pattern")

// Options configures a Watcher.
type Options struct {
	// ConfigPath is reported through OnConfigChange instead of OnSave.
	ConfigPath string
	// Ignore holds doublestar globs matched against slash-separated paths relative to the root.
	Ignore   []string
	Debounce time.Duration
	// OnSave and OnConfigChange are called from the Run goroutine, one at a time.
	OnSave         func(path string)
	OnConfigChange func()
}

// Watcher delivers save events for files under a workspace root.
type Watcher struct {
	root       string
	configPath string
	debounce   time.Duration
	onSave     func(string)
	onConfig   func()
	logger     zerolog.Logger

	ignoreMu sync.RWMutex
	ignore   []string

	timersMu sync.Mutex
	timers   map[string]*time.Timer

	// handled is only touched from the Run goroutine.
	handled map[string]handledFile

	events chan string
	ready  chan struct{}
}

// handledFile is the state of a file right after OnSave returned for it.
type handledFile struct {
	until   time.Time
	modTime time.Time
	size    int64
}

// New creates a Watcher for root. OnSave is required.
func New(root string, opts Options) (*Watcher, error) {
	if opts.OnSave == nil {
		return nil, fmt.Errorf("OnSave callback cannot be nil")
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace root %s: %w", root, err)
	}
	if err := validateIgnore(opts.Ignore); err != nil {
		return nil, err
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	configPath := opts.ConfigPath
	if configPath != "" {
		if configPath, err = filepath.Abs(configPath); err != nil {
			return nil, fmt.Errorf("failed to resolve config path %s: %w", opts.ConfigPath, err)
		}
	}

	return &Watcher{
		root:       absRoot,
		configPath: configPath,
		debounce:   debounce,
		onSave:     opts.OnSave,
		onConfig:   opts.OnConfigChange,
		logger:     logging.GetLogger("filewatch"),
		ignore:     append([]string(nil), opts.Ignore...),
		timers:     make(map[string]*time.Timer),
		handled:    make(map[string]handledFile),
		events:     make(chan string),
		ready:      make(chan struct{}),
	}, nil
}

func validateIgnore(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("%w: %q", ErrInvalidIgnorePattern, p)
		}
	}
	return nil
}

// SetIgnore replaces the ignore globs, for example after a configuration reload.
// Directories that were skipped before stay unwatched until they are recreated.
func (w *Watcher) SetIgnore(patterns []string) error {
	if err := validateIgnore(patterns); err != nil {
		return err
	}
	w.ignoreMu.Lock()
	w.ignore = append([]string(nil), patterns...)
	w.ignoreMu.Unlock()
	return nil
}

// Ignored reports whether path (absolute, or relative to the root) matches an ignore glob.
func (w *Watcher) Ignored(path string) bool {
	rel := path
	if filepath.IsAbs(path) {
		r, err := filepath.Rel(w.root, path)
		if err != nil {
			return false
		}
		rel = r
	}
	rel = filepath.ToSlash(rel)

	w.ignoreMu.RLock()
	defer w.ignoreMu.RUnlock()
	for _, pattern := range w.ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// Ready is closed once Run has registered its initial watches.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled. Callbacks are invoked on this goroutine.
// A Watcher runs once.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	if err := w.addTree(fsw, w.root); err != nil {
		return err
	}
	if w.configPath != "" {
		configDir := filepath.Dir(w.configPath)
		if !w.isUnderRoot(configDir) {
			if err := fsw.Add(configDir); err != nil {
				w.logger.Warn().Err(err).Str("dir", configDir).Msg("Cannot watch configuration directory")
			}
		}
	}
	w.logger.Info().Str("root", w.root).Msg("Watching for saves")
	close(w.ready)

	defer w.stopTimers()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(fsw, event)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("File watcher error")

		case key := <-w.events:
			w.dispatch(key)
		}
	}
}

func (w *Watcher) isUnderRoot(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !startsWithParent(rel))
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:2] == ".." && os.IsPathSeparator(rel[2])
}

// addTree watches dir and every non-ignored directory below it.
func (w *Watcher) addTree(fsw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return fmt.Errorf("failed to walk %s: %w", dir, err)
			}
			w.logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable path")
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.root && w.Ignored(path) {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		w.logger.Trace().Str("dir", path).Msg("Watching directory")
		return nil
	})
}

func (w *Watcher) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event) {
	path := filepath.Clean(event.Name)

	if w.configPath != "" && path == w.configPath {
		if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
			w.schedule(configKey)
		}
		return
	}
	if !w.isUnderRoot(path) || w.Ignored(path) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		// Removed again before we got here.
		return
	}
	if info.IsDir() {
		if event.Op&fsnotify.Create != 0 {
			if err := w.addTree(fsw, path); err != nil {
				w.logger.Warn().Err(err).Str("dir", path).Msg("Cannot watch new directory")
			}
		}
		return
	}
	if !info.Mode().IsRegular() {
		return
	}
	if w.writtenByHandler(path, info) {
		w.logger.Trace().Str("file", path).Msg("Ignoring write made while handling the last save")
		return
	}
	w.schedule(path)
}

// writtenByHandler reports whether an event for path comes from the OnSave
// call that just returned for it: it arrives within one debounce period of
// that call, or the file is still exactly as the call left it.
func (w *Watcher) writtenByHandler(path string, info os.FileInfo) bool {
	h, ok := w.handled[path]
	if !ok {
		return false
	}
	if time.Now().Before(h.until) ||
		(info.ModTime().Equal(h.modTime) && info.Size() == h.size) {
		return true
	}
	delete(w.handled, path)
	return false
}

// schedule (re)starts the debounce timer for key.
func (w *Watcher) schedule(key string) {
	w.timersMu.Lock()
	defer w.timersMu.Unlock()

	if t, ok := w.timers[key]; ok {
		t.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(w.debounce, func() {
		w.timersMu.Lock()
		if w.timers[key] != timer {
			w.timersMu.Unlock()
			return
		}
		delete(w.timers, key)
		w.timersMu.Unlock()

		w.events <- key
	})
	w.timers[key] = timer
}

// stopTimers cancels pending timers and drains sends from timers that already fired.
func (w *Watcher) stopTimers() {
	w.timersMu.Lock()
	for key, t := range w.timers {
		t.Stop()
		delete(w.timers, key)
	}
	w.timersMu.Unlock()

	for {
		select {
		case <-w.events:
		case <-time.After(w.debounce):
			return
		}
	}
}

func (w *Watcher) dispatch(key string) {
	if key == configKey {
		w.logger.Info().Str("config", w.configPath).Msg("Configuration changed")
		if w.onConfig != nil {
			w.onConfig()
		}
		return
	}
	w.logger.Debug().Str("file", key).Msg("File saved")
	w.onSave(key)

	h := handledFile{until: time.Now().Add(w.debounce)}
	if info, err := os.Stat(key); err == nil {
		h.modTime = info.ModTime()
		h.size = info.Size()
	}
	w.handled[key] = h
}
