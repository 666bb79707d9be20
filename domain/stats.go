package domain

// PoolStats is a point-in-time snapshot of the manager's global counters, exposed for
// monitoring only (not required for correctness).
type PoolStats struct {
	Leased   int
	Idle     int
	Waiters  int
	MaxTotal int
}

// RouteStats is a point-in-time snapshot of one route pool's counters.
type RouteStats struct {
	Route       Route
	Leased      int
	Idle        int
	Waiters     int
	MaxPerRoute int
}
