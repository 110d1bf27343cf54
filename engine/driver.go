package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Driver emits frame signals at a fixed interval with an explicit start/stop
// lifecycle, replacing an implicit always-running loop so teardown can
// guarantee no leaked tickers.
//
// Frames are delivered on a capacity-1 channel with drop semantics: if the
// consumer is still busy with the previous frame the tick is skipped rather
// than queued, so a slow frame never produces a burst of catch-up frames.
type Driver struct {
	interval time.Duration
	frames   chan time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewDriver creates a stopped driver with the given frame interval
func NewDriver(interval time.Duration) *Driver {
	return &Driver{
		interval: interval,
		frames:   make(chan time.Time, 1),
		stopChan: make(chan struct{}),
	}
}

// Frames returns the frame signal channel consumed by the main loop
func (d *Driver) Frames() <-chan time.Time {
	return d.frames
}

// Start launches the ticker goroutine. Subsequent calls are no-ops.
func (d *Driver) Start() {
	if d.running.CompareAndSwap(false, true) {
		d.wg.Add(1)
		go d.loop()
	}
}

// Stop halts the ticker and waits for the goroutine to exit. Safe to call
// more than once.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		if d.running.CompareAndSwap(true, false) {
			close(d.stopChan)
			d.wg.Wait()
		}
	})
}

// Running reports whether the driver loop is active
func (d *Driver) Running() bool {
	return d.running.Load()
}

func (d *Driver) loop() {
	defer d.wg.Done()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopChan:
			return
		case now := <-ticker.C:
			select {
			case d.frames <- now:
			default:
				// Consumer still busy, drop the frame
			}
		}
	}
}
