package api

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/search"
	"weatherdash.app/pkg/errors"
)

type suggestionsQuery struct {
	Query string `form:"q" binding:"required,cityquery"`
}

type forecastQuery struct {
	City string `form:"city" binding:"omitempty,cityquery"`
}

// SuggestionsResponse is the stateless lookup result. Upstream order and duplicates are kept.
type SuggestionsResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// getSuggestions handles GET /api/suggestions?q=
func (s *HTTPServerAdapter) getSuggestions(c *gin.Context) {
	var query suggestionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("q must be a city name"))
		return
	}

	normalized := search.NormalizeName(query.Query)
	if utf8.RuneCountInString(normalized) < s.config.MinQueryLength {
		s.handleError(c, errors.NewValidationError(search.MessageInvalidCity))
		return
	}

	names, err := s.suggestions.FindCities(c.Request.Context(), normalized)
	if err != nil && !errors.IsNotFoundError(err) {
		s.handleError(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}

	c.JSON(http.StatusOK, SuggestionsResponse{Query: normalized, Suggestions: names})
}

// getForecast handles GET /api/forecast?city= and renders the dashboard view for a city
// without touching the page state
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	var query forecastQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("city contains unsupported characters"))
		return
	}

	result, err := s.forecasts.GetForecast(c.Request.Context(), forecast.ForecastRequest{City: query.City})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard.BuildView(result, s.forecasts.Daily(result)))
}

// getDashboard handles GET /api/dashboard
func (s *HTTPServerAdapter) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.dashboard.Snapshot())
}
