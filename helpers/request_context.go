package helpers

import (
	"sync"

	"mypool/interfaces"
)

// requestContext implements interfaces.RequestContext as a mutex-guarded map. It is the
// basic attribute store handed to the request-processing layers around a lease; the pool
// itself never touches it.
type requestContext struct {
	mu    sync.RWMutex
	attrs map[string]any
}

// NewRequestContext creates an empty attribute store.
//
// Returns: interfaces.RequestContext (*requestContext).
//
// Called by users of the pool per request; the pool only threads the value through.
func NewRequestContext() interfaces.RequestContext {
	return &requestContext{attrs: make(map[string]any)}
}

// Attribute returns the value stored under key, or nil when absent.
func (c *requestContext) Attribute(key string) any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.attrs[key]
}

// SetAttribute stores val under key, replacing any previous value.
func (c *requestContext) SetAttribute(key string, val any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attrs[key] = val
}

// RemoveAttribute deletes key and returns the value that was stored, or nil when absent.
func (c *requestContext) RemoveAttribute(key string) any {
	c.mu.Lock()
	defer c.mu.Unlock()
	val := c.attrs[key]
	delete(c.attrs, key)
	return val
}

// AttributeAs returns the value stored under key in ctx when it is a T, and whether it was
// present with that type. Typed convenience accessor for the well-known keys in domain
// (cookie store, credentials provider, auth state and so on).
//
// Parameters: ctx — attribute store; key — attribute name (e.g. domain.AttrCookieStore).
//
// Returns: (value, true) when present and of type T; (zero T, false) otherwise.
//
// Called by request interceptors around the pool; the pool does not use it.
func AttributeAs[T any](ctx interfaces.RequestContext, key string) (T, bool) {
	var zero T
	if ctx == nil {
		return zero, false
	}
	v, ok := ctx.Attribute(key).(T)
	if !ok {
		return zero, false
	}
	return v, true
}
