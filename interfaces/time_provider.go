package interfaces

import "time"

// TimeProvider supplies the current time for entry timestamps and staleness checks.
// Injected so tests can use a fixed clock instead of time.Now().
//
// Used by service.poolManager to stamp CreatedAt/IdleSince and to evaluate the idle and
// max-lifetime predicates in the sweeps. Constructed in cmd/main with time.Now().UTC.
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	// Now returns current time (UTC in prod; in tests — fixed time for deterministic staleness checks).
	// Parameters: none.
	// Returns: time.Time — "now" for comparison with CreatedAt and IdleSince.
	// Called from service.poolManager on grant, release and the sweep operations.
	Now() time.Time
}
