package adapters

import (
	"context"
	"net"
	"testing"
	"time"

	"mypool/domain"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestNewNetOperator_Panics(t *testing.T) {
	t.Run("dialer_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "adapters.operator.go: dialer is required", func() {
			NewNetOperator(nil, nil, log.NewNopLogger())
		})
	})
	t.Run("logger_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "adapters.operator.go: logger is required", func() {
			NewNetOperator(&net.Dialer{}, nil, nil)
		})
	})
	t.Run("nil_limiter_is_allowed", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NewNetOperator(&net.Dialer{}, nil, log.NewNopLogger())
		})
	})
}

// listen starts a TCP listener that accepts connections until the test ends and returns
// the route pointing at it.
func listen(t *testing.T) domain.Route {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		for {
			conn, acceptErr := ln.Accept()
			if acceptErr != nil {
				return
			}
			go func() {
				defer conn.Close()
				buf := make([]byte, 1)
				for {
					if _, readErr := conn.Read(buf); readErr != nil {
						return
					}
				}
			}()
		}
	}()
	addr := ln.Addr().(*net.TCPAddr)
	return domain.Route{
		Scheme: domain.SchemeHTTP,
		Target: domain.Endpoint{Host: "127.0.0.1", Port: addr.Port},
	}
}

func TestNetOperator_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("dials_target_for_direct_route", func(t *testing.T) {
		route := listen(t)
		op := NewNetOperator(&net.Dialer{Timeout: time.Second}, nil, log.NewNopLogger())
		conn, err := op.Open(ctx, route)
		require.NoError(t, err)
		defer conn.Close()
		assert.True(t, conn.IsOpen())
	})

	t.Run("dial_failure_returns_error", func(t *testing.T) {
		// Grab a free port and close the listener so nothing accepts there.
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		port := ln.Addr().(*net.TCPAddr).Port
		require.NoError(t, ln.Close())

		op := NewNetOperator(&net.Dialer{Timeout: time.Second}, nil, log.NewNopLogger())
		_, err = op.Open(ctx, domain.Route{
			Scheme: domain.SchemeHTTP,
			Target: domain.Endpoint{Host: "127.0.0.1", Port: port},
		})
		require.Error(t, err)
	})

	t.Run("ctx_deadline_aborts_rate_limited_open", func(t *testing.T) {
		route := listen(t)
		limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
		require.True(t, limiter.Allow(), "drain the only token so Open has to wait")
		op := NewNetOperator(&net.Dialer{Timeout: time.Second}, limiter, log.NewNopLogger())
		waitCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		_, err := op.Open(waitCtx, route)
		require.Error(t, err)
	})

	t.Run("dials_first_proxy_hop_for_proxied_route", func(t *testing.T) {
		proxyRoute := listen(t)
		route := domain.Route{
			Scheme:  domain.SchemeHTTP,
			Target:  domain.Endpoint{Host: "unreachable.invalid", Port: 80},
			Proxies: domain.NewProxyChain(proxyRoute.Target),
		}
		op := NewNetOperator(&net.Dialer{Timeout: time.Second}, nil, log.NewNopLogger())
		conn, err := op.Open(ctx, route)
		require.NoError(t, err, "the target is never dialed directly when a proxy chain is set")
		defer conn.Close()
	})
}

func TestNetConn_Close(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		route := listen(t)
		op := NewNetOperator(&net.Dialer{Timeout: time.Second}, nil, log.NewNopLogger())
		conn, err := op.Open(context.Background(), route)
		require.NoError(t, err)

		require.NoError(t, conn.Close())
		assert.False(t, conn.IsOpen())
		require.NoError(t, conn.Close(), "second close is a no-op")
	})
}
