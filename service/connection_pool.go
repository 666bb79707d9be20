package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"mypool/domain"
	"mypool/helpers"
	"mypool/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
)

// Default capacity limits applied by NewPoolManager when the config leaves them unset.
const (
	defaultMaxPerRoute = 2
	defaultMaxTotal    = 20
)

// PoolConfig is the capacity configuration supplied at manager construction; immutable
// thereafter (reconfiguration requires constructing a new manager).
//
// MaxTotal caps leased entries across all routes (default 20). DefaultMaxPerRoute caps
// leased entries per route unless overridden in MaxPerRoute (default 2). LeaseTimeout
// bounds how long Lease blocks waiting for capacity (0 — wait until ctx is done).
// IdleTimeout is the default staleness threshold for CloseIdleConnections(0); MaxLifetime
// is the age threshold for CloseExpiredConnections (0 disables expiry).
type PoolConfig struct {
	MaxTotal           int
	DefaultMaxPerRoute int
	MaxPerRoute        map[domain.Route]int
	LeaseTimeout       time.Duration
	IdleTimeout        time.Duration
	MaxLifetime        time.Duration
}

// grant is what a queued waiter receives: a ready entry (idle reuse), a reserved capacity
// slot (the waiter dials a new connection itself, slot already counted), or the shutdown
// error. Exactly one of the fields is meaningful.
type grant struct {
	entry    *domain.PoolEntry
	reserved bool
	err      error
}

// waiter is one pending lease request queued because capacity was exhausted. FIFO by
// position in poolManager.waiters; ready is buffered so the granting side never blocks.
type waiter struct {
	route domain.Route
	ready chan grant
}

// poolManager implements interfaces.ConnectionPool. It owns all route pools, enforces the
// per-route and global capacity limits and queues lease requests that cannot be satisfied
// immediately. One mutex serializes every read and mutation of the route pools, the
// counters and the waiter queue; the operator's slow network dial happens outside the
// critical section with the capacity slot reserved up front. Leased entries are registered
// with the leak detector so abandoned leases are reclaimed. Fields: operator, detector,
// clock, logger, cfg; under mu: routePools (route → routePool), totalLeased, waiters
// (FIFO), closed.
type poolManager struct {
	operator interfaces.ConnectionOperator
	detector interfaces.LeakDetector
	clock    interfaces.TimeProvider
	logger   log.Logger
	cfg      PoolConfig

	mu          sync.Mutex
	routePools  map[domain.Route]*routePool
	totalLeased int
	waiters     []*waiter
	closed      bool
}

// NewPoolManager creates a connection pool manager with the given capacity config.
// Unset limits get the defaults (MaxTotal 20, DefaultMaxPerRoute 2). Panics on nil
// operator, detector, clock or logger.
//
// Parameters: cfg — capacity configuration (copied; MaxPerRoute map must not be mutated
// afterwards); operator — opens new connections (e.g. adapters.NewNetOperator); detector —
// leak backstop (service.NewLeakDetector); clock — time source for entry timestamps;
// logger — close failures and reclamations are logged.
//
// Returns: interfaces.ConnectionPool (*poolManager).
//
// Called from cmd/main when building the pool.
func NewPoolManager(
	cfg PoolConfig,
	operator interfaces.ConnectionOperator,
	detector interfaces.LeakDetector,
	clock interfaces.TimeProvider,
	logger log.Logger,
) interfaces.ConnectionPool {
	if cfg.MaxTotal <= 0 {
		cfg.MaxTotal = defaultMaxTotal
	}
	if cfg.DefaultMaxPerRoute <= 0 {
		cfg.DefaultMaxPerRoute = defaultMaxPerRoute
	}
	return &poolManager{
		operator:   helpers.NilPanic(operator, "service.connection_pool.go: operator is required"),
		detector:   helpers.NilPanic(detector, "service.connection_pool.go: detector is required"),
		clock:      helpers.NilPanic(clock, "service.connection_pool.go: clock is required"),
		logger:     log.With(helpers.NilPanic(logger, "service.connection_pool.go: logger is required"), "component", "connection_pool"),
		cfg:        cfg,
		routePools: make(map[domain.Route]*routePool),
	}
}

// Lease grants exclusive use of a pool entry for route. Under the lock it reuses the most
// recently released idle entry when the route is under its limits, reserves a capacity
// slot and dials a new connection (outside the lock) when none is idle, or enqueues a FIFO
// waiter. A queued request ends when it is granted, when the configured LeaseTimeout or
// the ctx deadline elapses (ErrLeaseTimeout) or when ctx is cancelled (ErrLeaseCancelled);
// removal of a timed-out or cancelled waiter has no effect on the counters.
//
// Parameters: ctx — cancellation and deadline for the wait and the dial; route — pool key,
// validated first (*domain.RouteError on malformed routes).
//
// Returns: (entry, nil) on success; (nil, ErrPoolClosed | ErrLeaseTimeout |
// ErrLeaseCancelled | wrapped ErrConnectFailure | *domain.RouteError) otherwise.
//
// Called by request-execution layers; the entry must be handed back with Release exactly
// once (the leak detector reclaims it otherwise).
func (p *poolManager) Lease(ctx context.Context, route domain.Route) (*domain.PoolEntry, error) {
	if err := domain.ValidateRoute(route); err != nil {
		return nil, err
	}
	var timeout <-chan time.Time
	if p.cfg.LeaseTimeout > 0 {
		timer := time.NewTimer(p.cfg.LeaseTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	rp := p.routePools[route]
	leased := 0
	if rp != nil {
		leased = rp.leased
	}
	if leased < p.maxForRoute(route) && p.totalLeased < p.cfg.MaxTotal {
		if rp != nil {
			if entry := p.grantIdleLocked(rp); entry != nil {
				p.mu.Unlock()
				return entry, nil
			}
		}
		rp = p.routePoolLocked(route)
		rp.leased++
		p.totalLeased++
		p.mu.Unlock()
		return p.connect(ctx, route)
	}
	w := &waiter{route: route, ready: make(chan grant, 1)}
	p.waiters = append(p.waiters, w)
	p.mu.Unlock()

	select {
	case g := <-w.ready:
		if g.err != nil {
			return nil, g.err
		}
		if g.entry != nil {
			return g.entry, nil
		}
		// Capacity slot already reserved for this waiter.
		return p.connect(ctx, route)
	case <-ctx.Done():
		if entry := p.abandonWaiter(w); entry != nil {
			return entry, nil
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrLeaseTimeout
		}
		return nil, ErrLeaseCancelled
	case <-timeout:
		if entry := p.abandonWaiter(w); entry != nil {
			return entry, nil
		}
		return nil, ErrLeaseTimeout
	}
}

// connect dials a new connection for route via the operator with a capacity slot already
// reserved, then commits the new entry under the lock. On dial failure the slot is given
// back and the next waiter is woken; if the pool shut down while dialing, the fresh
// connection is closed again.
//
// Parameters: ctx — deadline/cancellation for the dial; route — route whose slot is held.
//
// Returns: (entry, nil) on success; (nil, ErrConnectFailure-wrapped error | ErrPoolClosed).
//
// Called from Lease (immediate grant and reserved-waiter paths) outside the critical
// section.
func (p *poolManager) connect(ctx context.Context, route domain.Route) (*domain.PoolEntry, error) {
	conn, err := p.operator.Open(ctx, route)
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		if err == nil {
			p.closeConn(conn, route)
		}
		return nil, ErrPoolClosed
	}
	rp := p.routePoolLocked(route)
	if err != nil {
		rp.discard()
		p.totalLeased--
		p.pruneLocked(rp)
		p.wakeLocked()
		p.mu.Unlock()
		return nil, fmt.Errorf("%w: open %s: %w", ErrConnectFailure, route, err)
	}
	entry := &domain.PoolEntry{
		ID:        uuid.NewString(),
		Route:     route,
		Conn:      conn,
		CreatedAt: p.clock.Now(),
		Allocated: true,
	}
	p.detector.Track(entry, p.reclaim)
	p.mu.Unlock()
	return entry, nil
}

// Release hands entry back to the pool: reusable open entries become the most recent idle
// entry of their route pool, everything else is closed and discarded. Either way the
// counters are decremented, the leak marker is removed and the longest-waiting compatible
// waiter (if any) is served. Never blocks; a second Release of the same entry is ignored.
//
// Parameters: entry — the leased entry (nil is ignored); reusable — whether the
// connection's protocol state allows handing it to another caller.
//
// Called by the lease holder exactly once per lease.
func (p *poolManager) Release(entry *domain.PoolEntry, reusable bool) {
	if entry == nil {
		return
	}
	p.detector.Untrack(entry.ID)
	p.mu.Lock()
	if p.closed {
		entry.Allocated = false
		p.mu.Unlock()
		p.closeConn(entry.Conn, entry.Route)
		return
	}
	rp := p.routePools[entry.Route]
	if rp == nil || !entry.Allocated {
		// Double release or an entry the pool no longer accounts for.
		p.mu.Unlock()
		return
	}
	if reusable && entry.Conn != nil && entry.Conn.IsOpen() {
		rp.release(entry, p.clock.Now())
		p.totalLeased--
		p.wakeLocked()
		p.mu.Unlock()
		return
	}
	entry.Allocated = false
	rp.discard()
	p.totalLeased--
	p.pruneLocked(rp)
	p.wakeLocked()
	p.mu.Unlock()
	p.closeConn(entry.Conn, entry.Route)
}

// reclaim is the leak detector callback: a leased entry was dropped by its caller without
// Release. The connection's protocol state is indeterminate, so it is closed, the route's
// slot is freed and the next waiter is woken exactly as Release(entry, false) would.
// Silent recovery — there is no caller to report to (the abandonment itself is logged by
// the detector).
//
// Parameter ref — detached identity of the abandoned entry (id, route, connection).
//
// Called from the leak detector's reclamation goroutine; never from a lease caller.
func (p *poolManager) reclaim(ref domain.LeakRef) {
	p.closeConn(ref.Conn, ref.Route)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	rp := p.routePools[ref.Route]
	if rp == nil {
		return
	}
	rp.discard()
	p.totalLeased--
	p.pruneLocked(rp)
	p.wakeLocked()
}

// CloseIdleConnections closes idle entries whose last use is at least idleTimeout ago
// (0 applies the configured IdleTimeout; if that is also 0 every idle entry is closed).
// Runs under the manager's lock so it cannot race with a Lease picking the same entry;
// the connections are closed after removal, outside the lock. Capacity counters are not
// affected, so no waiter is woken.
//
// Parameter idleTimeout — minimum idle duration for eviction.
//
// Called from the cmd/main sweep loop and by operators that want to drop warm connections.
func (p *poolManager) CloseIdleConnections(idleTimeout time.Duration) {
	if idleTimeout <= 0 {
		idleTimeout = p.cfg.IdleTimeout
	}
	threshold := p.clock.Now().Add(-idleTimeout)
	p.sweepIdle(func(entry *domain.PoolEntry) bool {
		return !entry.IdleSince.After(threshold)
	})
}

// CloseExpiredConnections closes idle entries older than the configured MaxLifetime
// (connection time-to-live). No-op when MaxLifetime is 0.
//
// Called from the cmd/main sweep loop.
func (p *poolManager) CloseExpiredConnections() {
	if p.cfg.MaxLifetime <= 0 {
		return
	}
	threshold := p.clock.Now().Add(-p.cfg.MaxLifetime)
	p.sweepIdle(func(entry *domain.PoolEntry) bool {
		return entry.CreatedAt.Before(threshold)
	})
}

// sweepIdle removes idle entries matching the staleness predicate from every route pool
// under the lock, prunes emptied pools and closes the evicted connections afterwards.
//
// Called from CloseIdleConnections and CloseExpiredConnections.
func (p *poolManager) sweepIdle(stale func(*domain.PoolEntry) bool) {
	var evicted []*domain.PoolEntry
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	for _, rp := range p.routePools {
		evicted = append(evicted, rp.evictIdle(stale)...)
		p.pruneLocked(rp)
	}
	p.mu.Unlock()
	for _, entry := range evicted {
		p.closeConn(entry.Conn, entry.Route)
	}
}

// Stats returns a snapshot of the global counters.
//
// Returns: domain.PoolStats{Leased, Idle, Waiters, MaxTotal}.
//
// Called from the cmd stats handlers; monitoring only.
func (p *poolManager) Stats() domain.PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	idle := 0
	for _, rp := range p.routePools {
		idle += len(rp.idle)
	}
	return domain.PoolStats{
		Leased:   p.totalLeased,
		Idle:     idle,
		Waiters:  len(p.waiters),
		MaxTotal: p.cfg.MaxTotal,
	}
}

// RouteStats returns per-route counter snapshots for every route pool the manager
// currently tracks (order unspecified).
//
// Called from the cmd stats handlers; monitoring only.
func (p *poolManager) RouteStats() []domain.RouteStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	stats := make([]domain.RouteStats, 0, len(p.routePools))
	for route, rp := range p.routePools {
		waiting := 0
		for _, w := range p.waiters {
			if w.route == route {
				waiting++
			}
		}
		stats = append(stats, domain.RouteStats{
			Route:       route,
			Leased:      rp.leased,
			Idle:        len(rp.idle),
			Waiters:     waiting,
			MaxPerRoute: rp.max,
		})
	}
	return stats
}

// Shutdown marks the manager closed, fails every queued waiter with ErrPoolClosed, closes
// all idle connections and all tracked in-flight connections (via the detector snapshot)
// and stops the detector. Further Lease calls fail with ErrPoolClosed. Idempotent.
//
// Returns: nil (close errors are logged, never propagated).
//
// Called from cmd/main on SIGINT/SIGTERM (defer).
func (p *poolManager) Shutdown() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	waiters := p.waiters
	p.waiters = nil
	var idle []*domain.PoolEntry
	for _, rp := range p.routePools {
		idle = append(idle, rp.idle...)
	}
	p.routePools = make(map[domain.Route]*routePool)
	p.totalLeased = 0
	p.mu.Unlock()

	for _, w := range waiters {
		w.ready <- grant{err: ErrPoolClosed}
	}
	for _, entry := range idle {
		p.closeConn(entry.Conn, entry.Route)
	}
	for _, ref := range p.detector.Snapshot() {
		p.closeConn(ref.Conn, ref.Route)
	}
	p.detector.Close()
	return nil
}

// maxForRoute returns the configured per-route limit: the MaxPerRoute override when
// present, the default otherwise.
func (p *poolManager) maxForRoute(route domain.Route) int {
	if max := p.cfg.MaxPerRoute[route]; max > 0 {
		return max
	}
	return p.cfg.DefaultMaxPerRoute
}

// routePoolLocked returns the route pool for route, creating it with the configured
// per-route limit on first use. Caller must hold p.mu.
func (p *poolManager) routePoolLocked(route domain.Route) *routePool {
	rp := p.routePools[route]
	if rp == nil {
		rp = newRoutePool(route, p.maxForRoute(route))
		p.routePools[route] = rp
	}
	return rp
}

// grantIdleLocked pops idle entries for rp until it finds one whose connection is still
// open, marks it allocated, bumps the counters and registers the leak marker. Idle entries
// found already closed are dropped on the way. Caller must hold p.mu and must have checked
// the capacity limits.
//
// Returns: the granted entry, or nil when no usable idle entry exists.
//
// Called from Lease and wakeLocked.
func (p *poolManager) grantIdleLocked(rp *routePool) *domain.PoolEntry {
	for {
		entry := rp.acquireIdle()
		if entry == nil {
			return nil
		}
		if entry.Conn != nil && entry.Conn.IsOpen() {
			entry.Allocated = true
			entry.IdleSince = time.Time{}
			rp.leased++
			p.totalLeased++
			p.detector.Track(entry, p.reclaim)
			return entry
		}
		_ = level.Debug(p.logger).Log("msg", "dropping closed idle entry", "route", entry.Route.String(), "entry_id", entry.ID)
	}
}

// wakeLocked serves the longest-waiting satisfiable lease request: the first waiter in
// FIFO order whose route pool is under both limits gets either the most recent idle entry
// of its route or a reserved capacity slot (it dials itself, outside the lock). At most
// one waiter is woken per event; later releases wake the rest. Caller must hold p.mu.
//
// Called from Release, reclaim, connect failure rollback and abandonWaiter.
func (p *poolManager) wakeLocked() {
	for i, w := range p.waiters {
		rp := p.routePools[w.route]
		leased := 0
		if rp != nil {
			leased = rp.leased
		}
		if leased >= p.maxForRoute(w.route) || p.totalLeased >= p.cfg.MaxTotal {
			continue
		}
		p.waiters = append(p.waiters[:i], p.waiters[i+1:]...)
		if rp != nil {
			if entry := p.grantIdleLocked(rp); entry != nil {
				w.ready <- grant{entry: entry}
				return
			}
		}
		rp = p.routePoolLocked(w.route)
		rp.leased++
		p.totalLeased++
		w.ready <- grant{reserved: true}
		return
	}
}

// abandonWaiter removes w from the queue after a timeout or cancellation. If a grant raced
// ahead, the grant wins: a granted entry is returned to the caller (the lease succeeds at
// the deadline boundary), a reserved slot is given back and the next waiter is woken.
//
// Parameter w — the waiter the Lease call enqueued.
//
// Returns: the granted entry when the race was lost to a grant with an entry; nil
// otherwise (the caller surfaces ErrLeaseTimeout or ErrLeaseCancelled).
//
// Called only from Lease.
func (p *poolManager) abandonWaiter(w *waiter) *domain.PoolEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, queued := range p.waiters {
		if queued == w {
			p.waiters = append(p.waiters[:i], p.waiters[i+1:]...)
			return nil
		}
	}
	// Not queued anymore: a grant or the shutdown broadcast was already delivered.
	g := <-w.ready
	if g.err != nil || g.entry != nil {
		return g.entry
	}
	if p.closed {
		return nil
	}
	rp := p.routePools[w.route]
	if rp != nil {
		rp.discard()
		p.totalLeased--
		p.pruneLocked(rp)
	}
	p.wakeLocked()
	return nil
}

// pruneLocked drops rp from the route pool map when it holds no entries, so abandoned
// routes do not accumulate. Caller must hold p.mu.
func (p *poolManager) pruneLocked(rp *routePool) {
	if rp.empty() {
		delete(p.routePools, rp.route)
	}
}

// closeConn closes a connection best-effort: close errors are logged, never propagated —
// closing a transport is cleanup, not a caller-visible operation. nil connections are
// ignored.
//
// Parameters: conn — connection to close; route — for the log line.
//
// Called from Release, reclaim, connect, sweepIdle and Shutdown.
func (p *poolManager) closeConn(conn domain.Connection, route domain.Route) {
	if conn == nil {
		return
	}
	if err := conn.Close(); err != nil {
		_ = level.Warn(p.logger).Log("msg", "closing pooled connection failed", "route", route.String(), "err", err)
	}
}
