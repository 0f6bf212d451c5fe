// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// List metrics
	IncListCacheHit()
	IncListCacheMiss()
	ObserveListDuration(duration time.Duration)

	// Workout management metrics
	IncWorkoutCreated()
	IncWorkoutDeleted()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
