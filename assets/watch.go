package assets

import (
	"path/filepath"

	"simple-scene/log"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/exp/slices"
)

var logger = log.New("assets")

// Watcher reports changed files of a shader directory. Events are collected
// on a goroutine and picked up with Drain on the render thread.
type Watcher struct {
	fsw     *fsnotify.Watcher
	changed chan string
	done    chan struct{}
}

func Watch(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		changed: make(chan string, 64),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			select {
			case w.changed <- filepath.Base(ev.Name):
			default:
				// a reload is already pending
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warningf("shader watcher: %v", err)
		}
	}
}

// Drain returns the names of the files changed since the last call, sorted
// and without duplicates. It never blocks.
func (w *Watcher) Drain() []string {
	var names []string
	for {
		select {
		case name := <-w.changed:
			names = append(names, name)
		default:
			slices.Sort(names)
			return slices.Compact(names)
		}
	}
}

func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
