package core

// Entity is an opaque, stable handle for a simulated entity
// Handles are allocated by engine.World and never reused within a world
type Entity uint64

// NoEntity is the null handle
const NoEntity Entity = 0
