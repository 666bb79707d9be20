package main

import (
	"net/http"

	"mypool/domain"
	"mypool/interfaces"

	"github.com/labstack/echo/v4"
)

// statsResponse is the JSON shape of GET /v1/stats.
type statsResponse struct {
	Leased   int `json:"leased"`
	Idle     int `json:"idle"`
	Waiters  int `json:"waiters"`
	MaxTotal int `json:"max_total"`
}

// routeStatsResponse is the JSON shape of GET /v1/stats/routes: { "routes": [...] }.
type routeStatsResponse struct {
	Routes []routeStatsItem `json:"routes"`
}

// routeStatsItem is one route's counters in the routes array.
type routeStatsItem struct {
	Route       string `json:"route"`
	Leased      int    `json:"leased"`
	Idle        int    `json:"idle"`
	Waiters     int    `json:"waiters"`
	MaxPerRoute int    `json:"max_per_route"`
}

// registerStatsHandlers wires the monitoring endpoints onto e: GET /v1/stats (global
// counters) and GET /v1/stats/routes (per-route counters). Read-only snapshots; not
// required for pool correctness.
//
// Parameters: e — echo instance from main; pool — the pool manager to snapshot.
//
// Called only from main at startup.
func registerStatsHandlers(e *echo.Echo, pool interfaces.ConnectionPool) {
	e.GET("/v1/stats", func(ectx echo.Context) error {
		s := pool.Stats()
		return ectx.JSON(http.StatusOK, statsResponse{
			Leased:   s.Leased,
			Idle:     s.Idle,
			Waiters:  s.Waiters,
			MaxTotal: s.MaxTotal,
		})
	})
	e.GET("/v1/stats/routes", func(ectx echo.Context) error {
		return ectx.JSON(http.StatusOK, toRouteStatsResponse(pool.RouteStats()))
	})
}

// toRouteStatsResponse maps domain snapshots to the JSON response (routes rendered with
// domain.Route.String()).
//
// Called only from the /v1/stats/routes handler.
func toRouteStatsResponse(stats []domain.RouteStats) routeStatsResponse {
	items := make([]routeStatsItem, 0, len(stats))
	for _, s := range stats {
		items = append(items, routeStatsItem{
			Route:       s.Route.String(),
			Leased:      s.Leased,
			Idle:        s.Idle,
			Waiters:     s.Waiters,
			MaxPerRoute: s.MaxPerRoute,
		})
	}
	return routeStatsResponse{Routes: items}
}
