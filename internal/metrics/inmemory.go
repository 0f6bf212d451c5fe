package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	ListCacheHits       uint64
	ListCacheMisses     uint64
	ListDurationCount   uint64
	ListDurationTotalNs int64
	WorkoutsCreated     uint64
	WorkoutsDeleted     uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	listCacheHits       uint64
	listCacheMisses     uint64
	listDurationCount   uint64
	listDurationTotalNs int64
	workoutsCreated     uint64
	workoutsDeleted     uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		ListCacheHits:       atomic.LoadUint64(&m.listCacheHits),
		ListCacheMisses:     atomic.LoadUint64(&m.listCacheMisses),
		ListDurationCount:   atomic.LoadUint64(&m.listDurationCount),
		ListDurationTotalNs: atomic.LoadInt64(&m.listDurationTotalNs),
		WorkoutsCreated:     atomic.LoadUint64(&m.workoutsCreated),
		WorkoutsDeleted:     atomic.LoadUint64(&m.workoutsDeleted),
	}
}

// IncListCacheHit increments cache hit counter.
func (m *InMemoryRecorder) IncListCacheHit() {
	atomic.AddUint64(&m.listCacheHits, 1)
}

// IncListCacheMiss increments cache miss counter.
func (m *InMemoryRecorder) IncListCacheMiss() {
	atomic.AddUint64(&m.listCacheMisses, 1)
}

// ObserveListDuration records list duration.
func (m *InMemoryRecorder) ObserveListDuration(duration time.Duration) {
	atomic.AddUint64(&m.listDurationCount, 1)
	atomic.AddInt64(&m.listDurationTotalNs, duration.Nanoseconds())
}

// IncWorkoutCreated increments workout created counter.
func (m *InMemoryRecorder) IncWorkoutCreated() {
	atomic.AddUint64(&m.workoutsCreated, 1)
}

// IncWorkoutDeleted increments workout deleted counter.
func (m *InMemoryRecorder) IncWorkoutDeleted() {
	atomic.AddUint64(&m.workoutsDeleted, 1)
}
