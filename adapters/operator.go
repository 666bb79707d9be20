// Package adapters contains the infrastructure implementations behind the mypool
// interfaces: the net.Dialer-backed connection operator.
package adapters

import (
	"context"
	"crypto/tls"
	"net"
	"sync/atomic"

	"mypool/domain"
	"mypool/helpers"
	"mypool/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/time/rate"
)

// NewNetOperator creates an interfaces.ConnectionOperator that dials a route's first hop
// (first proxy, or the target for direct routes) with the given net.Dialer. Direct https
// routes are wrapped in TLS with the target host as server name; proxied routes get the
// plain transport — proxy handshakes and tunnelling belong to the protocol layer, not the
// pool. limiter, when non-nil, caps the dial rate (connection-storm protection); each Open
// waits for a token first. Panics on nil dialer or logger.
//
// Parameters: dialer — transport dialer (timeouts and keep-alive configured by the
// caller); limiter — optional dial-rate limiter (nil disables throttling); logger — dials
// are logged at debug level.
//
// Returns: interfaces.ConnectionOperator (*netOperator).
//
// Called from cmd/main when building the pool.
func NewNetOperator(dialer *net.Dialer, limiter *rate.Limiter, logger log.Logger) interfaces.ConnectionOperator {
	return &netOperator{
		dialer:  helpers.NilPanic(dialer, "adapters.operator.go: dialer is required"),
		limiter: limiter,
		logger:  log.With(helpers.NilPanic(logger, "adapters.operator.go: logger is required"), "component", "net_operator"),
	}
}

// netOperator implements interfaces.ConnectionOperator over net.Dialer. It is unaware of
// pooling; the pool calls Open only when creating new entries.
type netOperator struct {
	dialer  *net.Dialer
	limiter *rate.Limiter
	logger  log.Logger
}

// Open establishes a transport connection bound to route: waits for a rate token (when
// throttled), dials route.FirstHop() and, for direct https routes, performs the TLS
// handshake against the target host.
//
// Parameters: ctx — deadline/cancellation for the token wait, the dial and the handshake;
// route — planned route.
//
// Returns: (domain.Connection, nil) on success; (nil, error) when the token wait, dial or
// handshake fails — the pool surfaces it wrapped in service.ErrConnectFailure.
//
// Called from service.poolManager.Lease outside the manager's critical section.
func (o *netOperator) Open(ctx context.Context, route domain.Route) (domain.Connection, error) {
	if o.limiter != nil {
		if err := o.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	hop := route.FirstHop()
	raw, err := o.dialer.DialContext(ctx, "tcp", hop.Addr())
	if err != nil {
		return nil, err
	}
	if route.Secure() && route.Proxies == "" {
		tlsConn := tls.Client(raw, &tls.Config{ServerName: route.Target.Host})
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			_ = raw.Close()
			return nil, err
		}
		raw = tlsConn
	}
	_ = level.Debug(o.logger).Log("msg", "opened connection", "route", route.String(), "hop", hop.Addr())
	return &netConn{conn: raw}, nil
}

// netConn wraps a net.Conn as a domain.Connection with an idempotent Close.
type netConn struct {
	conn   net.Conn
	closed atomic.Bool
}

// Close shuts the transport down once; later calls return nil.
func (c *netConn) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	return c.conn.Close()
}

// IsOpen reports whether Close has not been called yet.
func (c *netConn) IsOpen() bool {
	return !c.closed.Load()
}

// Transport exposes the underlying net.Conn for the protocol layer driving the
// connection. The pool never touches it.
func (c *netConn) Transport() net.Conn {
	return c.conn
}
