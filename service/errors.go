package service

import "errors"

// ErrPoolClosed is returned by Lease once Shutdown has begun and is delivered to every
// waiter that was queued when the pool shut down.
var ErrPoolClosed = errors.New("connection pool is closed")

// ErrLeaseTimeout is returned by Lease when the configured lease timeout or the caller's
// context deadline elapses while the request is queued. The waiter is removed without
// consuming a capacity slot.
var ErrLeaseTimeout = errors.New("timeout waiting for connection")

// ErrLeaseCancelled is returned by Lease when the caller's context is cancelled while the
// request is queued. The waiter is removed without consuming a capacity slot.
var ErrLeaseCancelled = errors.New("lease request cancelled")

// ErrConnectFailure wraps the operator error when a new connection cannot be established.
// The reserved capacity slot is released before the error is surfaced; the pool never
// retries on its own.
var ErrConnectFailure = errors.New("connect failure")
