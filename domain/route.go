package domain

import (
	"net"
	"strconv"
	"strings"
)

// Scheme is the application protocol of a route's target.
type Scheme string

const (
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
)

// Endpoint is one network address on a route: the target host or a proxy hop.
type Endpoint struct {
	Host string
	Port int
}

// Addr returns the endpoint in "host:port" form for dialing.
func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// IsZero reports whether the endpoint is unset (no host and no port).
func (e Endpoint) IsZero() bool {
	return e.Host == "" && e.Port == 0
}

// ProxyChain is the ordered proxy hops of a route in canonical "host:port,host:port" form.
// The string form keeps Route comparable so it can be used directly as a map key.
// Build chains with NewProxyChain; empty chain means a direct connection.
type ProxyChain string

// NewProxyChain builds the canonical chain string from the given hops in connect order.
// Zero-value hops are skipped.
//
// Returns: ProxyChain ("" when no hops).
//
// Called from cmd.LoadConfig when converting YAML route overrides and from tests.
func NewProxyChain(hops ...Endpoint) ProxyChain {
	parts := make([]string, 0, len(hops))
	for _, h := range hops {
		if h.IsZero() {
			continue
		}
		parts = append(parts, h.Addr())
	}
	return ProxyChain(strings.Join(parts, ","))
}

// Hops parses the chain back into endpoints in connect order. Segments that do not parse
// as "host:port" are skipped; chains built with NewProxyChain always parse fully.
func (c ProxyChain) Hops() []Endpoint {
	if c == "" {
		return nil
	}
	parts := strings.Split(string(c), ",")
	hops := make([]Endpoint, 0, len(parts))
	for _, part := range parts {
		host, portStr, err := net.SplitHostPort(part)
		if err != nil {
			continue
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			continue
		}
		hops = append(hops, Endpoint{Host: host, Port: port})
	}
	return hops
}

// Route identifies where a pooled connection goes: scheme, target endpoint and optional
// proxy chain. Immutable value with structural equality; used as the key partitioning
// pool state, so all fields are comparable.
type Route struct {
	Scheme  Scheme
	Target  Endpoint
	Proxies ProxyChain
}

// Secure reports whether the route's target uses TLS.
func (r Route) Secure() bool {
	return r.Scheme == SchemeHTTPS
}

// FirstHop returns the endpoint a new connection must dial: the first proxy hop when the
// route goes through proxies, otherwise the target itself.
func (r Route) FirstHop() Endpoint {
	if hops := r.Proxies.Hops(); len(hops) > 0 {
		return hops[0]
	}
	return r.Target
}

// String returns a human-readable form like "https://example.com:443 via 10.0.0.1:3128"
// for logs and error messages.
func (r Route) String() string {
	s := string(r.Scheme) + "://" + r.Target.Addr()
	if r.Proxies != "" {
		s += " via " + string(r.Proxies)
	}
	return s
}

// ValidateRoute validates a route before it is used as a pool key: scheme must be
// http|https, target host non-empty, target port 1-65535, and every proxy chain segment
// must parse as host:port.
//
// Parameter r — route to check (usually built from YAML config or by the caller).
//
// Returns: nil when valid; *RouteError with a human-readable Reason on first error found.
//
// Called from cmd.LoadConfig for per-route overrides and from service.poolManager.Lease.
func ValidateRoute(r Route) error {
	switch r.Scheme {
	case SchemeHTTP, SchemeHTTPS:
	default:
		return &RouteError{Route: r, Reason: "scheme must be http|https"}
	}
	if strings.TrimSpace(r.Target.Host) == "" {
		return &RouteError{Route: r, Reason: "target host must be non-empty"}
	}
	if r.Target.Port <= 0 || r.Target.Port > 65535 {
		return &RouteError{Route: r, Reason: "target port must be 1-65535"}
	}
	if r.Proxies != "" {
		segments := strings.Split(string(r.Proxies), ",")
		if len(r.Proxies.Hops()) != len(segments) {
			return &RouteError{Route: r, Reason: "proxy chain segments must be host:port"}
		}
	}
	return nil
}

// RouteError is returned by ValidateRoute when a route is malformed.
type RouteError struct {
	Route  Route
	Reason string
}

// Error implements error; returns a string like `route "http://:0": target host must be non-empty`.
func (e *RouteError) Error() string {
	return "route " + strconv.Quote(e.Route.String()) + ": " + e.Reason
}
