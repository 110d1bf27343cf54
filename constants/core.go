package constants

import "time"

// Engine Timing
const (
	// FrameInterval is the animation frame interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Spin Defaults
const (
	// DefaultSpinDuration is the spin length used when config does not override it
	DefaultSpinDuration = 8 * time.Second

	// MinSpinDuration and MaxSpinDuration bound the user-adjustable spin length
	MinSpinDuration = 1 * time.Second
	MaxSpinDuration = 60 * time.Second

	// SpinDurationStep is the increment applied by the +/- duration keys
	SpinDurationStep = 1 * time.Second

	// DefaultIdleStep is the ambient rotation in degrees applied per frame
	// while no spin is active
	DefaultIdleStep = 0.1
)

// History
const (
	// HistoryCapacity caps the in-memory winner history ring
	HistoryCapacity = 50
)
