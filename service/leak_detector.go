package service

import (
	"runtime"
	"sync"

	"mypool/domain"
	"mypool/helpers"
	"mypool/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// leakDetector implements interfaces.LeakDetector on top of runtime.AddCleanup. Each
// leased entry gets a cleanup registered against the caller-visible *domain.PoolEntry,
// with the entry's detached LeakRef as the cleanup argument; the cleanup can therefore
// only run once the caller has dropped every strong reference to the entry without
// releasing it. Explicit Untrack (from Release) stops the cleanup first, so the detector
// only ever fires for genuinely abandoned leases. The tracked map doubles as the
// pending-cleanup set reported by Snapshot. Fields: logger; under mu: closed, tracked
// (entry id → marker).
type leakDetector struct {
	logger log.Logger

	mu      sync.Mutex
	closed  bool
	tracked map[string]trackedEntry
}

// trackedEntry is one leak marker: the entry's detached identity plus the runtime cleanup
// handle used to stop it on explicit release.
type trackedEntry struct {
	ref     domain.LeakRef
	cleanup runtime.Cleanup
}

// NewLeakDetector creates a leak detector. Panics on nil logger.
//
// Parameter logger — abandonments are logged at warn level before reclamation runs.
//
// Returns: interfaces.LeakDetector (*leakDetector).
//
// Called from cmd/main when building the pool.
func NewLeakDetector(logger log.Logger) interfaces.LeakDetector {
	return &leakDetector{
		logger:  log.With(helpers.NilPanic(logger, "service.leak_detector.go: logger is required"), "component", "leak_detector"),
		tracked: make(map[string]trackedEntry),
	}
}

// Track registers a weak-liveness marker for entry. When the runtime observes the entry
// unreachable (caller dropped it without Release), the marker removes itself from the
// pending set and invokes onLeak with the entry's LeakRef on the runtime's cleanup
// goroutine. No-op when the detector is closed.
//
// Parameters: entry — the caller-visible lease handle; onLeak — reclamation callback
// (poolManager.reclaim); must not block for long, it delays other cleanups.
//
// Called from service.poolManager when a lease is granted.
func (d *leakDetector) Track(entry *domain.PoolEntry, onLeak func(domain.LeakRef)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	ref := domain.LeakRef{ID: entry.ID, Route: entry.Route, Conn: entry.Conn}
	// The cleanup closure must not capture entry itself, or the entry never becomes
	// unreachable; ref carries everything reclamation needs.
	cleanup := runtime.AddCleanup(entry, func(r domain.LeakRef) {
		if !d.forget(r.ID) {
			return
		}
		_ = level.Warn(d.logger).Log("msg", "leased entry abandoned without release, reclaiming", "entry_id", r.ID, "route", r.Route.String())
		onLeak(r)
	}, ref)
	d.tracked[entry.ID] = trackedEntry{ref: ref, cleanup: cleanup}
}

// Untrack stops the marker for id and removes it from the pending set. No-op for ids that
// are unknown, already reclaimed or never tracked.
//
// Called from service.poolManager.Release before any other release work.
func (d *leakDetector) Untrack(id string) {
	d.mu.Lock()
	te, ok := d.tracked[id]
	if ok {
		delete(d.tracked, id)
	}
	d.mu.Unlock()
	if ok {
		te.cleanup.Stop()
	}
}

// forget removes id from the pending set and reports whether it was still tracked. This is
// the arbitration between an explicit release and the runtime cleanup racing each other:
// whichever forgets the id first owns the entry's fate.
//
// Called from the runtime cleanup closure registered in Track.
func (d *leakDetector) forget(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return false
	}
	if _, ok := d.tracked[id]; !ok {
		return false
	}
	delete(d.tracked, id)
	return true
}

// Snapshot returns the LeakRefs of all currently tracked (leased, unreleased) entries,
// in unspecified order.
//
// Called from service.poolManager.Shutdown to close in-flight connections.
func (d *leakDetector) Snapshot() []domain.LeakRef {
	d.mu.Lock()
	defer d.mu.Unlock()
	refs := make([]domain.LeakRef, 0, len(d.tracked))
	for _, te := range d.tracked {
		refs = append(refs, te.ref)
	}
	return refs
}

// Close stops every marker, clears the pending set and makes further Track calls no-ops.
// Idempotent.
//
// Called from service.poolManager.Shutdown.
func (d *leakDetector) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	tracked := d.tracked
	d.tracked = make(map[string]trackedEntry)
	d.mu.Unlock()
	for _, te := range tracked {
		te.cleanup.Stop()
	}
}
