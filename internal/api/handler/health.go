package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the liveness probe at GET /health.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessChecker reports whether a dependency can serve traffic.
type ReadinessChecker interface {
	Ready() bool
}

// ReadinessHandler handles GET /health/ready.
type ReadinessHandler struct {
	deps map[string]ReadinessChecker
}

func NewReadinessHandler(deps map[string]ReadinessChecker) *ReadinessHandler {
	return &ReadinessHandler{deps: deps}
}

type dependencyStatus struct {
	Status string `json:"status"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	deps := make(map[string]dependencyStatus, len(h.deps))
	healthy := true

	for name, dep := range h.deps {
		if dep.Ready() {
			deps[name] = dependencyStatus{Status: "ok"}
			continue
		}
		deps[name] = dependencyStatus{Status: "unhealthy"}
		healthy = false
	}

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
