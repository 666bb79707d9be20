package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"mypool/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
pool:
  max_total: 50
  default_max_per_route: 5
  lease_timeout_ms: 2000
  idle_timeout_ms: 30000
  max_lifetime_ms: 600000
routes:
  - scheme: https
    host: api.example.com
    port: 443
    max: 10
  - scheme: http
    host: internal.example.com
    port: 8080
    proxies:
      - host: 10.0.0.1
        port: 3128
    max: 4
dial:
  timeout_ms: 1500
  rate_per_sec: 20
  burst: 5
sweep:
  interval_ms: 5000
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid_config", func(t *testing.T) {
		t.Setenv(envHTTPPort, "8080")
		t.Setenv(envConfigPath, writeConfig(t, validYAML))

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.HTTPPort)
		assert.Equal(t, 50, cfg.Pool.MaxTotal)
		assert.Equal(t, 5, cfg.Pool.DefaultMaxPerRoute)
		assert.Equal(t, 2*time.Second, cfg.Pool.LeaseTimeout)
		assert.Equal(t, 30*time.Second, cfg.Pool.IdleTimeout)
		assert.Equal(t, 10*time.Minute, cfg.Pool.MaxLifetime)
		assert.Equal(t, 1500*time.Millisecond, cfg.DialTimeout)
		assert.Equal(t, 20.0, cfg.DialRate)
		assert.Equal(t, 5, cfg.DialBurst)
		assert.Equal(t, 5*time.Second, cfg.SweepInterval)

		direct := domain.Route{Scheme: domain.SchemeHTTPS, Target: domain.Endpoint{Host: "api.example.com", Port: 443}}
		proxied := domain.Route{
			Scheme:  domain.SchemeHTTP,
			Target:  domain.Endpoint{Host: "internal.example.com", Port: 8080},
			Proxies: domain.NewProxyChain(domain.Endpoint{Host: "10.0.0.1", Port: 3128}),
		}
		require.Len(t, cfg.Pool.MaxPerRoute, 2)
		assert.Equal(t, 10, cfg.Pool.MaxPerRoute[direct])
		assert.Equal(t, 4, cfg.Pool.MaxPerRoute[proxied])
	})

	t.Run("relative_config_path_is_resolved", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(validYAML), 0o600))
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		t.Setenv(envHTTPPort, "8080")
		t.Setenv(envConfigPath, "config.yaml")
		_, err = LoadConfig()
		require.NoError(t, err)
	})

	t.Run("missing_port", func(t *testing.T) {
		t.Setenv(envHTTPPort, "")
		t.Setenv(envConfigPath, writeConfig(t, validYAML))
		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), envHTTPPort)
	})

	t.Run("port_out_of_range", func(t *testing.T) {
		t.Setenv(envHTTPPort, "70000")
		t.Setenv(envConfigPath, writeConfig(t, validYAML))
		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1-65535")
	})

	t.Run("missing_config_path", func(t *testing.T) {
		t.Setenv(envHTTPPort, "8080")
		t.Setenv(envConfigPath, "")
		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), envConfigPath)
	})

	t.Run("unreadable_config_file", func(t *testing.T) {
		t.Setenv(envHTTPPort, "8080")
		t.Setenv(envConfigPath, filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("malformed_yaml", func(t *testing.T) {
		t.Setenv(envHTTPPort, "8080")
		t.Setenv(envConfigPath, writeConfig(t, "pool: ["))
		_, err := LoadConfig()
		require.Error(t, err)
	})

	invalid := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "negative_max_total",
			yaml:    "pool:\n  max_total: -1\ndial:\n  timeout_ms: 1000\nsweep:\n  interval_ms: 1000\n",
			wantErr: "pool.max_total",
		},
		{
			name:    "negative_lease_timeout",
			yaml:    "pool:\n  lease_timeout_ms: -5\ndial:\n  timeout_ms: 1000\nsweep:\n  interval_ms: 1000\n",
			wantErr: "pool timeouts",
		},
		{
			name:    "route_without_max",
			yaml:    "routes:\n  - scheme: http\n    host: h\n    port: 80\ndial:\n  timeout_ms: 1000\nsweep:\n  interval_ms: 1000\n",
			wantErr: "routes[0]: max must be positive",
		},
		{
			name:    "route_invalid_scheme",
			yaml:    "routes:\n  - scheme: ftp\n    host: h\n    port: 80\n    max: 1\ndial:\n  timeout_ms: 1000\nsweep:\n  interval_ms: 1000\n",
			wantErr: "routes[0]",
		},
		{
			name:    "duplicate_route",
			yaml:    "routes:\n  - scheme: http\n    host: h\n    port: 80\n    max: 1\n  - scheme: http\n    host: h\n    port: 80\n    max: 2\ndial:\n  timeout_ms: 1000\nsweep:\n  interval_ms: 1000\n",
			wantErr: "duplicate route",
		},
		{
			name:    "missing_dial_timeout",
			yaml:    "sweep:\n  interval_ms: 1000\n",
			wantErr: "dial.timeout_ms",
		},
		{
			name:    "rate_without_burst",
			yaml:    "dial:\n  timeout_ms: 1000\n  rate_per_sec: 5\nsweep:\n  interval_ms: 1000\n",
			wantErr: "dial.burst",
		},
		{
			name:    "missing_sweep_interval",
			yaml:    "dial:\n  timeout_ms: 1000\n",
			wantErr: "sweep.interval_ms",
		},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(envHTTPPort, "8080")
			t.Setenv(envConfigPath, writeConfig(t, tc.yaml))
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
