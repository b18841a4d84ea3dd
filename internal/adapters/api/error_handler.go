package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/ports"
	errorspkg "weatherdash.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// handleError maps application error kinds onto HTTP status codes
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *errorspkg.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case errorspkg.ValidationError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case errorspkg.NotFoundError:
			statusCode = http.StatusNotFound
			message = appErr.Message
		case errorspkg.ExternalAPIError:
			statusCode = http.StatusServiceUnavailable
			message = "External service unavailable"
		}
	}

	if statusCode >= http.StatusInternalServerError {
		slog.Error("Request failed", "path", c.FullPath(), "request_id", c.GetString("request_id"), "error", err)
	}

	c.JSON(statusCode, ErrorResponse{Error: message, RequestID: c.GetString("request_id")})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	metrics, err := s.metricsCollector.GetMetrics(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// getHealth handles GET /health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status, code := "healthy", http.StatusOK
	if !allHealthy(results) {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":     status,
		"components": results,
	})
}

func allHealthy(results map[string]ports.HealthStatus) bool {
	for _, result := range results {
		if result.Status != "healthy" {
			return false
		}
	}
	return true
}
