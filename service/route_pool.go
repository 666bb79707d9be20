package service

import (
	"time"

	"mypool/domain"
)

// routePool is the per-route bookkeeping owned by poolManager: idle entries available for
// reuse, the count of entries currently leased for the route and the route-level capacity
// limit. leased never exceeds max; leased+len(idle) may (surplus idle entries are closed
// on demand by the sweeps). All fields are read and mutated only under the manager's lock.
type routePool struct {
	route  domain.Route
	idle   []*domain.PoolEntry // idle[len-1] is the most recently released
	leased int
	max    int
}

// newRoutePool creates empty bookkeeping for route with the given per-route limit.
//
// Called from poolManager.routePoolLocked on first lease for a route.
func newRoutePool(route domain.Route, max int) *routePool {
	return &routePool{route: route, max: max}
}

// acquireIdle pops and returns the most recently released idle entry, or nil when the idle
// set is empty. O(1); no side effect beyond removal.
//
// Called from poolManager under its lock (grant and wake paths).
func (rp *routePool) acquireIdle() *domain.PoolEntry {
	n := len(rp.idle)
	if n == 0 {
		return nil
	}
	entry := rp.idle[n-1]
	rp.idle[n-1] = nil
	rp.idle = rp.idle[:n-1]
	return entry
}

// release marks entry idle (allocated=false, IdleSince=now), pushes it as the most recent
// idle entry and decrements the leased count.
//
// Parameters: entry — the entry being handed back; now — release timestamp for the idle
// staleness predicate.
//
// Called from poolManager.Release under its lock for reusable entries.
func (rp *routePool) release(entry *domain.PoolEntry, now time.Time) {
	entry.Allocated = false
	entry.IdleSince = now
	rp.idle = append(rp.idle, entry)
	rp.leased--
}

// discard decrements the leased count without returning anything to idle. Closing the
// underlying connection (and logging close errors) is the manager's job; a discarded
// entry never reappears in any idle set.
//
// Called from poolManager under its lock on non-reusable release, reclamation and
// connect failure rollback.
func (rp *routePool) discard() {
	rp.leased--
}

// evictIdle removes idle entries matching the staleness predicate and returns them so the
// manager can close their connections outside the critical section. Ordering of the
// surviving entries is preserved.
//
// Parameter stale — predicate over an idle entry (age or idle-duration threshold).
//
// Returns: the removed entries (possibly empty).
//
// Called from poolManager.CloseIdleConnections and CloseExpiredConnections under its lock.
func (rp *routePool) evictIdle(stale func(*domain.PoolEntry) bool) []*domain.PoolEntry {
	var evicted []*domain.PoolEntry
	kept := rp.idle[:0]
	for _, entry := range rp.idle {
		if stale(entry) {
			evicted = append(evicted, entry)
			continue
		}
		kept = append(kept, entry)
	}
	for i := len(kept); i < len(rp.idle); i++ {
		rp.idle[i] = nil
	}
	rp.idle = kept
	return evicted
}

// empty reports whether the route pool holds no state (nothing leased, nothing idle) and
// can be pruned from the manager's map.
func (rp *routePool) empty() bool {
	return rp.leased == 0 && len(rp.idle) == 0
}
