package interfaces

// RequestContext is the opaque per-request attribute map (route, credentials provider,
// cookie store, auth state, user token, request configuration) threaded through the
// request-processing layers alongside, but independent of, pool leases. The pool neither
// reads nor writes it; the interface exists so surrounding interceptors share one surface.
//
// Basic implementation: helpers.NewRequestContext. Well-known keys: domain.Attr* constants.
//
//go:generate moq -stub -out mock/request_context.go -pkg mock . RequestContext
type RequestContext interface {
	// Attribute returns the value stored under key, or nil when absent.
	Attribute(key string) any
	// SetAttribute stores val under key, replacing any previous value.
	SetAttribute(key string, val any)
	// RemoveAttribute deletes key and returns the removed value, or nil when absent.
	RemoveAttribute(key string) any
}
