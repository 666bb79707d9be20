package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoint(t *testing.T) {
	t.Run("addr_joins_host_and_port", func(t *testing.T) {
		assert.Equal(t, "example.com:443", Endpoint{Host: "example.com", Port: 443}.Addr())
		assert.Equal(t, "[::1]:8080", Endpoint{Host: "::1", Port: 8080}.Addr())
	})

	t.Run("is_zero", func(t *testing.T) {
		assert.True(t, Endpoint{}.IsZero())
		assert.False(t, Endpoint{Host: "h"}.IsZero())
		assert.False(t, Endpoint{Port: 80}.IsZero())
	})
}

func TestProxyChain(t *testing.T) {
	t.Run("round_trips_hops_in_connect_order", func(t *testing.T) {
		hops := []Endpoint{
			{Host: "10.0.0.1", Port: 3128},
			{Host: "10.0.0.2", Port: 8080},
		}
		chain := NewProxyChain(hops...)
		assert.Equal(t, ProxyChain("10.0.0.1:3128,10.0.0.2:8080"), chain)
		assert.Equal(t, hops, chain.Hops())
	})

	t.Run("skips_zero_hops", func(t *testing.T) {
		chain := NewProxyChain(Endpoint{}, Endpoint{Host: "p", Port: 1})
		assert.Equal(t, ProxyChain("p:1"), chain)
	})

	t.Run("empty_chain_has_no_hops", func(t *testing.T) {
		assert.Nil(t, ProxyChain("").Hops())
	})
}

func TestRoute(t *testing.T) {
	direct := Route{Scheme: SchemeHTTPS, Target: Endpoint{Host: "example.com", Port: 443}}
	proxied := Route{
		Scheme:  SchemeHTTP,
		Target:  Endpoint{Host: "example.com", Port: 80},
		Proxies: NewProxyChain(Endpoint{Host: "10.0.0.1", Port: 3128}),
	}

	t.Run("secure", func(t *testing.T) {
		assert.True(t, direct.Secure())
		assert.False(t, proxied.Secure())
	})

	t.Run("first_hop_is_target_when_direct", func(t *testing.T) {
		assert.Equal(t, direct.Target, direct.FirstHop())
	})

	t.Run("first_hop_is_first_proxy_when_proxied", func(t *testing.T) {
		assert.Equal(t, Endpoint{Host: "10.0.0.1", Port: 3128}, proxied.FirstHop())
	})

	t.Run("string_forms", func(t *testing.T) {
		assert.Equal(t, "https://example.com:443", direct.String())
		assert.Equal(t, "http://example.com:80 via 10.0.0.1:3128", proxied.String())
	})

	t.Run("usable_as_map_key", func(t *testing.T) {
		same := Route{
			Scheme:  SchemeHTTP,
			Target:  Endpoint{Host: "example.com", Port: 80},
			Proxies: NewProxyChain(Endpoint{Host: "10.0.0.1", Port: 3128}),
		}
		m := map[Route]int{proxied: 1}
		assert.Equal(t, 1, m[same])
	})
}

func TestValidateRoute(t *testing.T) {
	valid := Route{Scheme: SchemeHTTP, Target: Endpoint{Host: "example.com", Port: 80}}

	t.Run("valid_direct_route", func(t *testing.T) {
		assert.NoError(t, ValidateRoute(valid))
	})

	t.Run("valid_proxied_route", func(t *testing.T) {
		r := valid
		r.Proxies = NewProxyChain(Endpoint{Host: "p", Port: 3128})
		assert.NoError(t, ValidateRoute(r))
	})

	cases := []struct {
		name   string
		mutate func(*Route)
		reason string
	}{
		{"unknown_scheme", func(r *Route) { r.Scheme = "ftp" }, "scheme must be http|https"},
		{"empty_host", func(r *Route) { r.Target.Host = " " }, "target host must be non-empty"},
		{"zero_port", func(r *Route) { r.Target.Port = 0 }, "target port must be 1-65535"},
		{"port_out_of_range", func(r *Route) { r.Target.Port = 70000 }, "target port must be 1-65535"},
		{"malformed_proxy_segment", func(r *Route) { r.Proxies = "not-an-addr" }, "proxy chain segments must be host:port"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)
			err := ValidateRoute(r)
			require.Error(t, err)
			var routeErr *RouteError
			require.ErrorAs(t, err, &routeErr)
			assert.Equal(t, tc.reason, routeErr.Reason)
			assert.Contains(t, err.Error(), tc.reason)
		})
	}
}
