package helpers

import (
	"testing"

	"mypool/domain"

	"github.com/stretchr/testify/assert"
)

func TestRequestContext(t *testing.T) {
	t.Run("set_then_get", func(t *testing.T) {
		ctx := NewRequestContext()
		ctx.SetAttribute(domain.AttrUserToken, "token-1")
		assert.Equal(t, "token-1", ctx.Attribute(domain.AttrUserToken))
	})

	t.Run("get_absent_returns_nil", func(t *testing.T) {
		ctx := NewRequestContext()
		assert.Nil(t, ctx.Attribute(domain.AttrCookieStore))
	})

	t.Run("set_replaces_previous_value", func(t *testing.T) {
		ctx := NewRequestContext()
		ctx.SetAttribute("k", 1)
		ctx.SetAttribute("k", 2)
		assert.Equal(t, 2, ctx.Attribute("k"))
	})

	t.Run("remove_returns_stored_value", func(t *testing.T) {
		ctx := NewRequestContext()
		ctx.SetAttribute("k", "v")
		assert.Equal(t, "v", ctx.RemoveAttribute("k"))
		assert.Nil(t, ctx.Attribute("k"))
	})

	t.Run("remove_absent_returns_nil", func(t *testing.T) {
		ctx := NewRequestContext()
		assert.Nil(t, ctx.RemoveAttribute("k"))
	})
}

func TestAttributeAs(t *testing.T) {
	t.Run("matching_type", func(t *testing.T) {
		ctx := NewRequestContext()
		route := domain.Route{Scheme: domain.SchemeHTTP, Target: domain.Endpoint{Host: "h", Port: 80}}
		ctx.SetAttribute(domain.AttrRoute, route)
		got, ok := AttributeAs[domain.Route](ctx, domain.AttrRoute)
		assert.True(t, ok)
		assert.Equal(t, route, got)
	})

	t.Run("wrong_type", func(t *testing.T) {
		ctx := NewRequestContext()
		ctx.SetAttribute("k", "a string")
		got, ok := AttributeAs[int](ctx, "k")
		assert.False(t, ok)
		assert.Zero(t, got)
	})

	t.Run("absent_key", func(t *testing.T) {
		ctx := NewRequestContext()
		_, ok := AttributeAs[string](ctx, "missing")
		assert.False(t, ok)
	})

	t.Run("nil_context", func(t *testing.T) {
		_, ok := AttributeAs[string](nil, "k")
		assert.False(t, ok)
	})
}
