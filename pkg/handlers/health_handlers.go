package handlers

import (
	"net/http"
	"time"

	"moi/pkg/response"

	"github.com/gin-gonic/gin"
)

// HealthResponse is the body of /health
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Uptime    string                 `json:"uptime"`
	Checks    map[string]HealthCheck `json:"checks"`
}

// HealthCheck is one component check
type HealthCheck struct {
	Status  string                 `json:"status"`
	Error   string                 `json:"error,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

const (
	statusHealthy     = "healthy"
	statusUnhealthy   = "unhealthy"
	statusUnavailable = "unavailable"
)

// sessionReporter is implemented by providers that set up a session lazily
type sessionReporter interface {
	Initialized() bool
}

// HealthCheck performs a health check
// @Summary Perform health check
// @Description Reports configuration and provider credential status
// @Tags Health Check
// @Produce json
// @Success 200 {object} HealthResponse "Health check passed"
// @Failure 503 {object} HealthResponse "Service unhealthy"
// @Router /health [get]
func (h *HandlerService) HealthCheck(c *gin.Context) {
	health := HealthResponse{
		Status:    statusHealthy,
		Timestamp: getCurrentTimestamp(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Checks: map[string]HealthCheck{
			"config":   h.checkConfigHealth(),
			"provider": h.checkProviderHealth(),
		},
	}

	for _, check := range health.Checks {
		if check.Status != statusHealthy {
			health.Status = statusUnhealthy
			response.WriteJSONResponse(c, http.StatusServiceUnavailable, health)
			return
		}
	}

	response.WriteJSONResponse(c, http.StatusOK, health)
}

// checkConfigHealth checks configuration health status
func (h *HandlerService) checkConfigHealth() HealthCheck {
	if h.config == nil {
		return HealthCheck{Status: statusUnhealthy, Error: "configuration not loaded"}
	}
	details := map[string]interface{}{}
	if h.config.App != nil {
		details["environment"] = h.config.App.Environment
	}
	return HealthCheck{Status: statusHealthy, Details: details}
}

// checkProviderHealth checks that provider credentials are present
func (h *HandlerService) checkProviderHealth() HealthCheck {
	if h.provider == nil {
		return HealthCheck{Status: statusUnhealthy, Error: "provider not initialized"}
	}

	details := map[string]interface{}{}
	if r, ok := h.provider.(sessionReporter); ok {
		details["session_initialized"] = r.Initialized()
	}

	if h.config != nil {
		placesCfg := h.config.GetPlacesConfig()
		details["configured"] = placesCfg.HasCredentials()
		details["production"] = h.config.IsProduction()
		if !placesCfg.HasCredentials() {
			return HealthCheck{Status: statusUnavailable, Error: "provider credentials not configured", Details: details}
		}
	}

	return HealthCheck{Status: statusHealthy, Details: details}
}
