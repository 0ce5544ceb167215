package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// TuningWatcher reloads a tuning file whenever it is written and hands the
// parsed result to the game loop through Updates.
type TuningWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *Tuning
	done    chan struct{}
}

// WatchTuning starts watching path. The directory is watched rather than the
// file so editors that replace the file on save are still picked up.
func WatchTuning(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create tuning watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("resolve tuning path: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	tw := &TuningWatcher{
		path:    abs,
		watcher: w,
		updates: make(chan *Tuning, 1),
		done:    make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (tw *TuningWatcher) run() {
	defer close(tw.done)
	for {
		select {
		case ev, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != tw.path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			t, err := LoadTuning(tw.path)
			if err != nil {
				log.Printf("Warning: keeping previous tuning: %v", err)
				continue
			}
			tw.publish(t)
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: tuning watcher: %v", err)
		}
	}
}

// publish replaces any pending update so the loop only sees the latest file.
func (tw *TuningWatcher) publish(t *Tuning) {
	select {
	case <-tw.updates:
	default:
	}
	tw.updates <- t
}

// Updates delivers parsed tuning files.
func (tw *TuningWatcher) Updates() <-chan *Tuning {
	return tw.updates
}

// Close stops the watcher goroutine.
func (tw *TuningWatcher) Close() error {
	err := tw.watcher.Close()
	<-tw.done
	return err
}
