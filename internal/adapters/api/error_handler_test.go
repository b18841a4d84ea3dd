package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/pkg/errors"
)

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		statusCode int
		message    string
	}{
		{
			name:       "Validation",
			err:        errors.NewValidationError("city cannot be empty"),
			statusCode: http.StatusBadRequest,
			message:    "city cannot be empty",
		},
		{
			name:       "WrappedNotFound",
			err:        fmt.Errorf("get forecast for city Atlantis: %w", errors.NewNotFoundError("city not found")),
			statusCode: http.StatusNotFound,
			message:    "city not found",
		},
		{
			name:       "ExternalAPI",
			err:        errors.NewExternalAPIError("failed to call OpenWeatherMap", nil),
			statusCode: http.StatusServiceUnavailable,
			message:    "External service unavailable",
		},
		{
			name:       "Cache",
			err:        errors.NewCacheError("redis get operation failed", nil),
			statusCode: http.StatusInternalServerError,
			message:    "Internal server error",
		},
		{
			name:       "Configuration",
			err:        errors.NewConfigurationError("bad config", nil),
			statusCode: http.StatusInternalServerError,
			message:    "Internal server error",
		},
		{
			name:       "PlainError",
			err:        fmt.Errorf("boom"),
			statusCode: http.StatusInternalServerError,
			message:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := &HTTPServerAdapter{}
			router := gin.New()
			router.Use(requestID())
			router.GET("/test", func(c *gin.Context) { server.handleError(c, tt.err) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.statusCode, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.message, resp.Error)
			assert.Equal(t, w.Header().Get(requestIDHeader), resp.RequestID)
		})
	}
}
