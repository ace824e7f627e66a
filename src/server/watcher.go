package server

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

type Watcher struct {
	watcher      *fsnotify.Watcher
	filename     string
	timer        *time.Timer
	debounceTime time.Duration

	onUpdate chan<- error
	Update   <-chan error
}

const DEFAULT_DEBOUNCE_TIME = 100 * time.Millisecond

// WatchFile reports writes to filename on Update, at most once per
// debounceTime. Errors from the underlying watcher are sent as they come.
//
// The parent directory is watched rather than the file itself so that
// editors which save by renaming a temporary file keep being followed.
func WatchFile(filename string, debounceTime time.Duration) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	filename = filepath.Clean(filename)

	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		watcher.Close()
		return nil, err
	}

	updateCh := make(chan error, 1)

	out := &Watcher{
		watcher:      watcher,
		filename:     filename,
		timer:        nil,
		debounceTime: debounceTime,
		onUpdate:     updateCh,
		Update:       updateCh,
	}

	go out.process(watcher)

	return out, nil
}

func (w *Watcher) notify(err error) {
	select {
	case w.onUpdate <- err:
	default:
	}
}

func (w *Watcher) debounceUpdate() {
	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounceTime, func() {
		w.notify(nil)
	})
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) process(watcher *fsnotify.Watcher) {
	for {
		select {
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.notify(err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.filename {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				w.debounceUpdate()
			}
		}
	}
}
