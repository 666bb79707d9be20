package interfaces

import (
	"context"
	"time"

	"mypool/domain"
)

// ConnectionPool leases reusable connections per route, enforcing per-route and global
// capacity limits with a FIFO waiter queue.
//
// Lease returns an idle entry for the route (most-recently-released first), creates one
// when capacity permits, or blocks the caller until a release/reclamation frees a slot.
// Release hands an entry back: reusable entries go to the route's idle set, others are
// closed and discarded; either way the longest-waiting compatible waiter is served first.
// CloseIdleConnections and CloseExpiredConnections sweep stale idle entries; Stats and
// RouteStats expose counters for monitoring. Shutdown fails all queued waiters and makes
// further Lease calls fail with service.ErrPoolClosed.
//
// Called by request-execution layers around the pool and by cmd/main (sweep loop, stats
// handlers, shutdown on SIGTERM).
//
//go:generate moq -stub -out mock/connection_pool.go -pkg mock . ConnectionPool
type ConnectionPool interface {
	// Lease grants exclusive use of a pool entry for route until Release.
	// Parameters: ctx — cancellation and optional deadline for the wait and the dial; route — the (scheme, target, proxy chain) key.
	// Returns: (entry, nil) on success; (nil, err) with service.ErrPoolClosed, ErrLeaseTimeout, ErrLeaseCancelled, ErrConnectFailure (wrapped dial error) or *domain.RouteError.
	// Called by request-execution layers; may block until capacity frees.
	Lease(ctx context.Context, route domain.Route) (*domain.PoolEntry, error)

	// Release hands entry back to the pool. reusable=true returns it to the route's idle set (most-recently-released first); reusable=false closes and discards it. Never blocks; wakes the next compatible waiter.
	// Parameters: entry — the leased entry (nil is ignored); reusable — whether the connection is safe to hand to another caller.
	// Called by the lease holder exactly once per lease; the leak detector is the backstop when it never is.
	Release(entry *domain.PoolEntry, reusable bool)

	// CloseIdleConnections closes idle entries that have not been used for at least idleTimeout (0 applies the configured default). Safe to call concurrently with Lease.
	// Called from the cmd/main sweep loop.
	CloseIdleConnections(idleTimeout time.Duration)

	// CloseExpiredConnections closes idle entries older than the configured max lifetime.
	// Called from the cmd/main sweep loop.
	CloseExpiredConnections()

	// Stats returns a snapshot of the global counters (leased, idle, waiters, max total).
	// Called from the cmd stats handlers.
	Stats() domain.PoolStats

	// RouteStats returns per-route counter snapshots for all routes the pool has seen.
	// Called from the cmd stats handlers.
	RouteStats() []domain.RouteStats

	// Shutdown closes all idle and tracked in-flight connections, fails queued waiters with service.ErrPoolClosed and rejects further Lease calls. Idempotent.
	// Returns: nil (connection close errors are logged, not returned).
	// Called from cmd/main on SIGINT/SIGTERM (defer).
	Shutdown() error
}
