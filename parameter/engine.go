package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the default frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxDeltaTime caps a single tick's dt so a stalled frame does not teleport units
	MaxDeltaTime = 250 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023

	// ScanWorkers bounds the goroutines used by data-parallel detection passes
	ScanWorkers = 4

	// ScanChunkMin is the smallest slice of entities handed to one worker
	// Below this the scan runs on the calling goroutine
	ScanChunkMin = 64
)
