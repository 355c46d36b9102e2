package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles GET /health, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness handles GET /health.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Pinger is a dependency the readiness probe can check.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthDependenciesHandler handles GET /health/ready, the readiness probe.
// Checks PostgreSQL and, when configured, Redis before declaring the service ready.
type HealthDependenciesHandler struct {
	db      Pinger
	redis   Pinger
	timeout time.Duration
}

// NewHealthDependenciesHandler builds the readiness probe. redis may be nil
// when token revocation is disabled.
func NewHealthDependenciesHandler(db, redis Pinger) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{db: db, redis: redis, timeout: 3 * time.Second}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness handles GET /health/ready.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Failure      503  {object}  readinessResponse
// @Router       /health/ready [get]
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	check := func(name string, p Pinger) {
		if p == nil {
			deps[name] = dependencyStatus{Status: "disabled"}
			return
		}
		if err := p.PingContext(ctx); err != nil {
			deps[name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
			return
		}
		deps[name] = dependencyStatus{Status: "ok"}
	}

	check("postgres", h.db)
	check("redis", h.redis)

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
