// Package main is the entry point for the mypool connection-pool daemon. It loads
// configuration (env + YAML), builds the dial operator (adapters.NewNetOperator with an
// optional rate limit), the leak detector and the pool manager (service.NewPoolManager),
// runs a sweep loop driving CloseExpiredConnections/CloseIdleConnections on the configured
// interval, and serves the monitoring endpoints over HTTP (echo). On SIGINT/SIGTERM it
// shuts the HTTP server down gracefully, stops the sweeper and closes the pool.
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"mypool/adapters"
	"mypool/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// main builds and runs the pool daemon: LoadConfig, operator (net.Dialer + optional
// rate.Limiter), NewLeakDetector, NewTimeProvider, NewPoolManager, the sweep loop and the
// echo stats server. Exits via os.Exit(1) on config/startup error.
//
// Called when the binary is started.
func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)

	cfg, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "failed to load configuration", "err", err)
		os.Exit(1)
	}

	var limiter *rate.Limiter
	if cfg.DialRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.DialRate), cfg.DialBurst)
	}
	operator := adapters.NewNetOperator(&net.Dialer{Timeout: cfg.DialTimeout}, limiter, logger)
	detector := service.NewLeakDetector(logger)
	clock := service.NewTimeProvider(func() time.Time { return time.Now().UTC() })
	pool := service.NewPoolManager(cfg.Pool, operator, detector, clock, logger)
	defer pool.Shutdown()

	sweepDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				pool.CloseExpiredConnections()
				pool.CloseIdleConnections(0)
			case <-sweepDone:
				return
			}
		}
	}()

	e := echo.New()
	e.HideBanner = true
	registerStatsHandlers(e, pool)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := ":" + strconv.Itoa(cfg.HTTPPort)
		level.Info(logger).Log("msg", "starting mypool daemon", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "http server error", "err", err)
		}
	}()

	<-quit
	level.Info(logger).Log("msg", "shutting down")
	close(sweepDone)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "error during server shutdown", "err", err)
	}
	level.Info(logger).Log("msg", "stopped")
}
