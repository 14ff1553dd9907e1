// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a viewer's file-backed source whenever the underlying
// file changes on disk. Create one with [NewWatcher] and stop it with
// [Watcher.Close].
type Watcher struct {
	viewer  *Viewer
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher starts watching the given file and reloads the viewer when
// it is written or recreated. The viewer's source should already point
// at the file.
func NewWatcher(v *Viewer, filename string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filename); err != nil {
		fw.Close()
		return nil, fmt.Errorf("sceneview.NewWatcher: watching %q: %w", filename, err)
	}
	w := &Watcher{viewer: v, watcher: fw, done: make(chan struct{})}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				logDebug("sceneview: source file changed, reloading", "file", ev.Name)
				w.viewer.Reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logDebug("sceneview: file watch error", "err", err)
		case <-w.done:
			return
		}
	}
}

// Close stops watching and releases the underlying watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
