package service

import (
	"time"

	"mypool/helpers"
	"mypool/interfaces"
)

// timeProvider implements interfaces.TimeProvider. It returns the current time via the
// injected now func. Used by poolManager for entry timestamps and staleness predicates,
// and by tests for deterministic time. Built in cmd/main with time.Now().UTC.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider that returns time via the given now func. Panics
// on nil now.
//
// Parameter now — no-arg function returning current time (in prod — time.Now().UTC, in
// tests — fixed time).
//
// Returns: interfaces.TimeProvider (*timeProvider).
//
// Called from cmd/main when building the pool.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

// Now returns current time from the injected function (UTC in prod or fixed in tests).
//
// Returns: time.Time.
//
// Called from service.poolManager on grant, release and sweeps.
func (t *timeProvider) Now() time.Time {
	return t.now()
}
