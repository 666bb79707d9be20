package domain

import "time"

// Connection is an opened, operable transport endpoint bound to one route. Created by an
// interfaces.ConnectionOperator; the pool only manages its lifecycle, never its protocol
// state. Close must be idempotent.
type Connection interface {
	// Close shuts the transport down. Safe to call more than once; later calls return nil.
	Close() error
	// IsOpen reports whether the transport is still usable (false after Close).
	IsOpen() bool
}

// PoolEntry wraps one pooled Connection together with its planned route and lease state.
// Exactly one owner holds a live entry at a time: a route pool's idle set or the caller of
// a lease. Allocated and IdleSince are mutated only by the pool manager under its lock;
// callers treat an entry as read-only.
type PoolEntry struct {
	ID        string
	Route     Route
	Conn      Connection
	CreatedAt time.Time
	IdleSince time.Time
	Allocated bool
}

// LeakRef is the detached identity of a leased PoolEntry kept by the leak detector. It
// deliberately holds no pointer to the entry itself, so an abandoned entry can become
// unreachable and trigger reclamation while the detector still knows which connection and
// route counters to clean up.
type LeakRef struct {
	ID    string
	Route Route
	Conn  Connection
}
