package entries

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/lixenwraith/spinwheel/events"
)

// debounceInterval collapses editor write bursts into a single reload
const debounceInterval = 150 * time.Millisecond

// Watcher reloads the entries file when it changes on disk and publishes
// the result as an EntriesReloaded event. The main loop decides when to
// apply it; an active spin session is unaffected either way.
type Watcher struct {
	path  string
	queue *events.Queue
	log   *zap.Logger

	fw       *fsnotify.Watcher
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher for the given entries file
func NewWatcher(path string, queue *events.Queue, log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	// Watch the directory: editors typically replace the file by rename,
	// which silently drops a watch registered on the file itself
	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	return &Watcher{
		path:     path,
		queue:    queue,
		log:      log,
		fw:       fw,
		stopChan: make(chan struct{}),
	}, nil
}

// Start launches the watch loop
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.loop()
}

// Stop closes the underlying watcher and waits for the loop to exit. Safe
// to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
		w.fw.Close()
		w.wg.Wait()
	})
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case <-w.stopChan:
			debounce.Stop()
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending && !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(debounceInterval)
			pending = true

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("entries watch error", zap.Error(err))

		case <-debounce.C:
			pending = false
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	f, err := LoadFile(w.path)
	if err != nil {
		w.log.Warn("entries reload failed", zap.Error(err))
		return
	}
	w.queue.Push(events.Event{
		Type: events.EventEntriesReloaded,
		Payload: &events.EntriesReloadedPayload{
			Path:    w.path,
			Title:   f.Title,
			Entries: f.Entries,
		},
		Timestamp: time.Now(),
	})
	w.log.Info("entries reloaded",
		zap.String("path", w.path),
		zap.Int("count", len(f.Entries)))
}
