package engine

// System is an interface that all systems must implement
type System interface {
	Update()
	Priority() int // Lower values run first
}

// SystemBase provides common dependencies for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World *World
}

// NewSystemBase initializes base dependencies from world
func NewSystemBase(w *World) SystemBase {
	return SystemBase{World: w}
}

// DeltaTime returns the current tick's dt
func (b SystemBase) DeltaTime() float64 {
	return b.World.Time.Delta.Seconds()
}
