package web

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// macroWatcher calls onChange with the path of a macro file after it is
// written, created or replaced. Directories are watched so that editors
// which save through a rename are seen too.
type macroWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange func(path string)
	done     chan struct{}
}

func newMacroWatcher(paths []string, onChange func(path string)) (*macroWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	m := &macroWatcher{
		watcher:  watcher,
		files:    map[string]bool{},
		onChange: onChange,
		done:     make(chan struct{}),
	}
	dirs := map[string]bool{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return nil, err
		}
		m.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
		dirs[dir] = true
	}
	go m.loop()
	return m, nil
}

func (m *macroWatcher) loop() {
	defer close(m.done)
	for {
		select {
		case ev, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			name := filepath.Clean(ev.Name)
			if !m.files[name] {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				m.onChange(name)
			}
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			log.Warnf("Watching macros: %v", err)
		}
	}
}

// Close stops the watcher and waits for the event loop to exit.
func (m *macroWatcher) Close() error {
	err := m.watcher.Close()
	<-m.done
	return err
}
