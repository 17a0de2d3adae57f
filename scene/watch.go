package scene

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 250 * time.Millisecond

// Watcher reports when a scene spec or one of the cue scripts it
// references changes, so the host can reload the scene live. Only files
// the spec actually depends on produce events; unrelated edits in the
// same directories are ignored.
type Watcher struct {
	fs      *fsnotify.Watcher
	files   map[string]struct{}
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchSpec watches the spec file at specPath plus every cue script the
// spec references. Rebuild the watcher after a reload so the watched
// set tracks the new spec's cue list.
func WatchSpec(specPath string, spec *Spec) (*Watcher, error) {
	files, dirs, err := watchSet(specPath, spec)
	if err != nil {
		return nil, err
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", specPath, err)
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("scene: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		fs:      fs,
		files:   files,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// watchSet resolves the set of files a spec depends on and the
// directories fsnotify needs to cover them. Directories are watched
// rather than the files themselves because editors typically replace a
// file by rename, which silently drops a watch held on the file.
func watchSet(specPath string, spec *Spec) (map[string]struct{}, []string, error) {
	abs, err := filepath.Abs(specPath)
	if err != nil {
		return nil, nil, fmt.Errorf("scene: watch %s: %w", specPath, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	files := map[string]struct{}{abs: {}}
	if spec != nil {
		dir := filepath.Dir(abs)
		for _, ts := range spec.Timelines {
			if ts.Cue == "" {
				continue
			}
			files[filepath.Clean(filepath.Join(dir, ts.Cue))] = struct{}{}
		}
	}

	seen := make(map[string]struct{})
	var dirs []string
	for f := range files {
		dir := filepath.Dir(f)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return files, dirs, nil
}

// Close stops the watcher. The Events and Errors channels are closed by
// the watch goroutine once it has drained out, never while it may still
// be sending.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
	})
	return err
}

// run filters raw filesystem events down to the watched file set and
// forwards them, debounced per file. It owns the outgoing channels and
// closes them on exit.
func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Events)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			name := filepath.Clean(event.Name)
			if _, watched := w.files[name]; !watched {
				continue
			}
			now := time.Now()
			if t, ok := last[name]; ok && now.Sub(t) < reloadDebounce {
				continue
			}
			last[name] = now
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}
