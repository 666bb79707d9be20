package interfaces

import (
	"context"

	"mypool/domain"
)

// ConnectionOperator opens transport connections for routes. The pool calls it only when
// creating new entries; it is unaware of pooling. Implementations dial the route's first
// hop (proxy or target) and hand back an operable domain.Connection.
//
// Called by service.poolManager.Lease outside the manager's critical section (the dial is
// the slow operation; only the capacity reservation and the commit of the new entry happen
// under the lock).
//
//go:generate moq -stub -out mock/connection_operator.go -pkg mock . ConnectionOperator
type ConnectionOperator interface {
	// Open establishes a new connection bound to route.
	// Parameters: ctx — deadline/cancellation for the dial; route — planned route (scheme, target, proxy chain).
	// Returns: (conn, nil) on success; (nil, error) when the transport cannot be established — the pool wraps it in service.ErrConnectFailure and releases the reserved capacity slot.
	// Called from service.poolManager.Lease when no idle entry matches and capacity permits a new one.
	Open(ctx context.Context, route domain.Route) (domain.Connection, error)
}
