package controllers

import (
	"context"
	"net/http"
	"time"
)

// HealthCheck probes one dependency
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthController reports service and dependency health
type HealthController struct {
	checks []HealthCheck
}

// NewHealthController creates a new health controller
func NewHealthController(checks ...HealthCheck) *HealthController {
	return &HealthController{checks: checks}
}

// Index handles GET /health
func (c *HealthController) Index(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(c.checks))
	for _, check := range c.checks {
		if err := check.Check(ctx); err != nil {
			results[check.Name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[check.Name] = "ok"
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "unhealthy"
	}

	writeJSON(w, status, map[string]interface{}{
		"status":  overall,
		"service": "config-store",
		"checks":  results,
	})
}
