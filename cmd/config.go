package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mypool/domain"
	"mypool/service"

	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort   = "SERVICE_PORT_HTTP"
	envConfigPath = "CONFIG_PATH"
)

// Config holds the full pool daemon configuration loaded by LoadConfig from environment
// variables and the YAML file. HTTPPort is the stats listener port (from
// SERVICE_PORT_HTTP); Pool is the capacity configuration handed to service.NewPoolManager;
// DialTimeout bounds each connect; DialRate/DialBurst configure the optional dial
// throttle (0 rate disables it); SweepInterval drives the idle/expiry sweep loop.
type Config struct {
	HTTPPort      int
	Pool          service.PoolConfig
	DialTimeout   time.Duration
	DialRate      float64
	DialBurst     int
	SweepInterval time.Duration
}

// yamlConfig is the root struct for YAML unmarshalling; contains pool, routes, dial and sweep.
type yamlConfig struct {
	Pool   yamlPool    `yaml:"pool"`
	Routes []yamlRoute `yaml:"routes"`
	Dial   yamlDial    `yaml:"dial"`
	Sweep  yamlSweep   `yaml:"sweep"`
}

// yamlPool holds the capacity limits and timeouts (all *_ms in milliseconds; zero picks
// the service defaults, or disables the knob where documented on service.PoolConfig).
type yamlPool struct {
	MaxTotal           int `yaml:"max_total"`
	DefaultMaxPerRoute int `yaml:"default_max_per_route"`
	LeaseTimeoutMs     int `yaml:"lease_timeout_ms"`
	IdleTimeoutMs      int `yaml:"idle_timeout_ms"`
	MaxLifetimeMs      int `yaml:"max_lifetime_ms"`
}

// yamlRoute is one per-route capacity override: scheme, host, port, optional proxies, max.
type yamlRoute struct {
	Scheme  string         `yaml:"scheme"`
	Host    string         `yaml:"host"`
	Port    int            `yaml:"port"`
	Proxies []yamlEndpoint `yaml:"proxies"`
	Max     int            `yaml:"max"`
}

// yamlEndpoint is one proxy hop (host, port).
type yamlEndpoint struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// yamlDial holds the connect timeout and the optional dial-rate limit.
type yamlDial struct {
	TimeoutMs  int     `yaml:"timeout_ms"`
	RatePerSec float64 `yaml:"rate_per_sec"`
	Burst      int     `yaml:"burst"`
}

// yamlSweep holds the idle/expiry sweep interval.
type yamlSweep struct {
	IntervalMs int `yaml:"interval_ms"`
}

// loadYAMLConfig reads the YAML file at path and unmarshals it into yamlConfig.
//
// Parameter path — absolute path to the file (LoadConfig converts CONFIG_PATH to absolute
// via filepath.Abs).
//
// Returns: (*yamlConfig, nil) on successful read and yaml.Unmarshal; (nil, error) on
// os.ReadFile or yaml.Unmarshal error.
//
// Called only from LoadConfig.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// routeFromYAML converts one YAML route override to a validated domain.Route.
//
// Returns: (route, nil) on success; (zero, error) when domain.ValidateRoute rejects it.
//
// Called only from LoadConfig.
func routeFromYAML(yr yamlRoute) (domain.Route, error) {
	hops := make([]domain.Endpoint, 0, len(yr.Proxies))
	for _, p := range yr.Proxies {
		hops = append(hops, domain.Endpoint{Host: p.Host, Port: p.Port})
	}
	route := domain.Route{
		Scheme:  domain.Scheme(yr.Scheme),
		Target:  domain.Endpoint{Host: yr.Host, Port: yr.Port},
		Proxies: domain.NewProxyChain(hops...),
	}
	if err := domain.ValidateRoute(route); err != nil {
		return domain.Route{}, err
	}
	return route, nil
}

// LoadConfig builds the daemon config from environment variables and YAML at CONFIG_PATH.
// Reads SERVICE_PORT_HTTP (required, 1-65535) and CONFIG_PATH (required, converted to
// absolute). Validates: pool limits and timeouts non-negative; every route override valid
// (domain.ValidateRoute) with positive max and no duplicates; dial.timeout_ms positive;
// dial.rate_per_sec non-negative with positive burst when throttling is on;
// sweep.interval_ms positive.
//
// Parameters: none (source — os.Getenv and the file at CONFIG_PATH).
//
// Returns: (*Config, nil) on success; (nil, error) on the first invalid value.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	httpPortStr := os.Getenv(envHTTPPort)
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil || httpPortStr == "" {
		return nil, fmt.Errorf("%s must be a valid port (1-65535)", envHTTPPort)
	}
	if httpPort <= 0 || httpPort > 65535 {
		return nil, fmt.Errorf("%s must be 1-65535, got %d", envHTTPPort, httpPort)
	}
	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath == "" {
		return nil, fmt.Errorf("%s is required", envConfigPath)
	}
	if !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}
	if raw.Pool.MaxTotal < 0 || raw.Pool.DefaultMaxPerRoute < 0 {
		return nil, fmt.Errorf("pool.max_total and pool.default_max_per_route must be non-negative")
	}
	if raw.Pool.LeaseTimeoutMs < 0 || raw.Pool.IdleTimeoutMs < 0 || raw.Pool.MaxLifetimeMs < 0 {
		return nil, fmt.Errorf("pool timeouts must be non-negative")
	}
	maxPerRoute := make(map[domain.Route]int, len(raw.Routes))
	for i, yr := range raw.Routes {
		route, routeErr := routeFromYAML(yr)
		if routeErr != nil {
			return nil, fmt.Errorf("routes[%d]: %w", i, routeErr)
		}
		if yr.Max <= 0 {
			return nil, fmt.Errorf("routes[%d]: max must be positive", i)
		}
		if _, dup := maxPerRoute[route]; dup {
			return nil, fmt.Errorf("routes[%d]: duplicate route %s", i, route)
		}
		maxPerRoute[route] = yr.Max
	}
	if raw.Dial.TimeoutMs <= 0 {
		return nil, fmt.Errorf("dial.timeout_ms must be positive")
	}
	if raw.Dial.RatePerSec < 0 {
		return nil, fmt.Errorf("dial.rate_per_sec must be non-negative")
	}
	if raw.Dial.RatePerSec > 0 && raw.Dial.Burst <= 0 {
		return nil, fmt.Errorf("dial.burst must be positive when dial.rate_per_sec is set")
	}
	if raw.Sweep.IntervalMs <= 0 {
		return nil, fmt.Errorf("sweep.interval_ms must be positive")
	}
	return &Config{
		HTTPPort: httpPort,
		Pool: service.PoolConfig{
			MaxTotal:           raw.Pool.MaxTotal,
			DefaultMaxPerRoute: raw.Pool.DefaultMaxPerRoute,
			MaxPerRoute:        maxPerRoute,
			LeaseTimeout:       time.Duration(raw.Pool.LeaseTimeoutMs) * time.Millisecond,
			IdleTimeout:        time.Duration(raw.Pool.IdleTimeoutMs) * time.Millisecond,
			MaxLifetime:        time.Duration(raw.Pool.MaxLifetimeMs) * time.Millisecond,
		},
		DialTimeout:   time.Duration(raw.Dial.TimeoutMs) * time.Millisecond,
		DialRate:      raw.Dial.RatePerSec,
		DialBurst:     raw.Dial.Burst,
		SweepInterval: time.Duration(raw.Sweep.IntervalMs) * time.Millisecond,
	}, nil
}
