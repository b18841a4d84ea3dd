package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/core/search"
	"weatherdash.app/internal/mocks"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type testServer struct {
	router      *gin.Engine
	search      *search.Search
	forecasts   *mocks.ForecastProvider
	cache       *mocks.ForecastCache
	suggestions *mocks.CitySuggestionProvider
	fetcher     *mocks.ForecastFetcher
	metrics     *mocks.WeatherMetrics
	page        *fakeDashboard
	health      *fakeHealth
}

type fakeDashboard struct {
	snapshot dashboard.Snapshot
}

func (f *fakeDashboard) Snapshot() dashboard.Snapshot { return f.snapshot }

type fakeHealth struct {
	results map[string]ports.HealthStatus
}

func (f *fakeHealth) CheckAll(ctx context.Context) map[string]ports.HealthStatus { return f.results }

type fakeMetrics struct{}

func (fakeMetrics) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	return map[string]interface{}{"weather": map[string]interface{}{"stale_discards": map[string]int64{"suggestions": 1}}}, nil
}

func allowLogging(logger *mocks.Logger) {
	for n := 0; n <= 6; n++ {
		args := make([]interface{}, n)
		for i := range args {
			args[i] = mock.Anything
		}
		logger.EXPECT().Debug(mock.Anything, args...).Maybe()
		logger.EXPECT().Info(mock.Anything, args...).Maybe()
		logger.EXPECT().Warn(mock.Anything, args...).Maybe()
		logger.EXPECT().Error(mock.Anything, args...).Maybe()
	}
}

func setupTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		forecasts:   mocks.NewForecastProvider(t),
		cache:       mocks.NewForecastCache(t),
		suggestions: mocks.NewCitySuggestionProvider(t),
		fetcher:     mocks.NewForecastFetcher(t),
		metrics:     mocks.NewWeatherMetrics(t),
		page:        &fakeDashboard{snapshot: dashboard.Snapshot{Status: dashboard.StatusIdle, City: "Toronto"}},
		health: &fakeHealth{results: map[string]ports.HealthStatus{
			"cache": {Component: "cache", Status: "healthy"},
		}},
	}

	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{DefaultCity: "Toronto", RequestTimeout: time.Second}).Maybe()
	config.EXPECT().GetSearchConfig().Return(ports.SearchConfig{MinQueryLength: 3}).Maybe()
	config.EXPECT().GetForecastConfig().Return(ports.ForecastConfig{CutoffHour: 6, BucketPolicy: "strict", QueryTTL: time.Minute}).Maybe()

	logger := mocks.NewLogger(t)
	allowLogging(logger)

	useCase, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		Provider: ts.forecasts,
		Cache:    ts.cache,
		Config:   config,
		Logger:   logger,
		Metrics:  ts.metrics,
	})
	require.NoError(t, err)

	ts.search, err = search.NewSearch(search.Dependencies{
		Provider: ts.suggestions,
		Fetcher:  ts.fetcher,
		Config:   config,
		Logger:   logger,
		Metrics:  ts.metrics,
	})
	require.NoError(t, err)
	t.Cleanup(ts.search.Close)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:           ServerConfig{Port: 8080, MinQueryLength: 3},
		Forecasts:        useCase,
		Suggestions:      ts.suggestions,
		Search:           ts.search,
		Dashboard:        ts.page,
		MetricsCollector: fakeMetrics{},
		HealthChecker:    ts.health,
	})
	require.NoError(t, err)
	ts.router = server.GetRouter()

	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func torontoForecast() *ports.ForecastData {
	return &ports.ForecastData{
		City: ports.CityData{Name: "Toronto", Country: "CA", Timezone: -14400},
		Samples: []ports.ForecastSampleData{
			{
				Timestamp:    time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC).Unix(),
				DateTimeText: "2024-05-01 12:00:00",
				Temperature:  295.65,
				FeelsLike:    294.15,
				TempMin:      293.15,
				TempMax:      296.15,
				Pressure:     1012,
				Humidity:     55,
				Condition:    ports.ConditionData{Main: "Clouds", Description: "few clouds", Icon: "02n"},
			},
		},
	}
}

func TestGetSuggestions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.suggestions.EXPECT().FindCities(mock.Anything, "New Yo").Return([]string{"New York", "New York Mills"}, nil)

		w := ts.do(t, http.MethodGet, "/api/suggestions?q=%20New%20%20Yo", "")

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[SuggestionsResponse](t, w)
		assert.Equal(t, "New Yo", resp.Query)
		assert.Equal(t, []string{"New York", "New York Mills"}, resp.Suggestions)
		assert.NotEmpty(t, w.Header().Get(requestIDHeader))
	})

	t.Run("NotFoundIsEmptyList", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.suggestions.EXPECT().FindCities(mock.Anything, "Qqq").Return(nil, errors.NewNotFoundError("city not found"))

		w := ts.do(t, http.MethodGet, "/api/suggestions?q=Qqq", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"query":"Qqq","suggestions":[]}`, w.Body.String())
	})

	t.Run("UpstreamFailure", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.suggestions.EXPECT().FindCities(mock.Anything, "Lon").Return(nil, errors.NewExternalAPIError("failed to call OpenWeatherMap", context.DeadlineExceeded))

		w := ts.do(t, http.MethodGet, "/api/suggestions?q=Lon", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "External service unavailable", decode[ErrorResponse](t, w).Error)
	})

	for _, q := range []string{"", "Lo", "12345", "%20%20%20"} {
		t.Run("Rejects_"+q, func(t *testing.T) {
			ts := setupTestServer(t)

			w := ts.do(t, http.MethodGet, "/api/suggestions?q="+q, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetForecast(t *testing.T) {
	t.Run("DefaultCity", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.cache.EXPECT().Get(mock.Anything, "toronto").Return(nil, errors.NewNotFoundError("cache miss"))
		ts.forecasts.EXPECT().GetForecast(mock.Anything, "Toronto").Return(torontoForecast(), nil)
		ts.cache.EXPECT().Set(mock.Anything, "toronto", mock.Anything, time.Minute).Return(nil)
		ts.metrics.EXPECT().RecordForecastFetch("success", mock.Anything).Return()

		w := ts.do(t, http.MethodGet, "/api/forecast", "")

		require.Equal(t, http.StatusOK, w.Code)
		view := decode[dashboard.ViewModel](t, w)
		assert.Equal(t, "Toronto", view.City)
		assert.Equal(t, 22, view.Current.Temperature)
		assert.Equal(t, "Few Clouds", view.Current.Description)
		assert.Equal(t, "02d", view.Current.Icon)
		assert.Len(t, view.Daily, 1)
	})

	t.Run("NotFound", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.cache.EXPECT().Get(mock.Anything, "atlantis").Return(nil, errors.NewNotFoundError("cache miss"))
		ts.forecasts.EXPECT().GetForecast(mock.Anything, "Atlantis").Return(nil, errors.NewNotFoundError("city not found"))
		ts.metrics.EXPECT().RecordForecastFetch("not_found", mock.Anything).Return()

		w := ts.do(t, http.MethodGet, "/api/forecast?city=Atlantis", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "city not found", decode[ErrorResponse](t, w).Error)
	})

	t.Run("InvalidCity", func(t *testing.T) {
		ts := setupTestServer(t)

		w := ts.do(t, http.MethodGet, "/api/forecast?city=%3Cscript%3E", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSearchFlow(t *testing.T) {
	ts := setupTestServer(t)
	ts.suggestions.EXPECT().FindCities(mock.Anything, "Tor").Return([]string{"Toronto", "Torino"}, nil)
	ts.metrics.EXPECT().RecordLookup("success", mock.Anything).Return()
	ts.fetcher.EXPECT().Fetch(mock.Anything, "Toronto").Return().Once()

	w := ts.do(t, http.MethodPost, "/api/search/input", `{"value":"Tor"}`)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "Tor", decode[SearchResponse](t, w).Input)

	ts.search.Wait()

	w = ts.do(t, http.MethodGet, "/api/search", "")
	require.Equal(t, http.StatusOK, w.Code)
	state := decode[SearchResponse](t, w)
	assert.False(t, state.Pending)
	assert.True(t, state.Visible)
	assert.Equal(t, []string{"Toronto", "Torino"}, state.Suggestions)
	assert.Equal(t, SearchViewBody{Render: true, Entries: []string{"Toronto", "Torino"}}, state.View)

	w = ts.do(t, http.MethodPost, "/api/search/select", `{"value":"Toronto"}`)
	require.Equal(t, http.StatusOK, w.Code)
	selected := decode[SearchResponse](t, w)
	assert.Equal(t, "Toronto", selected.City)
	assert.False(t, selected.Visible)
	assert.False(t, selected.View.Render)

	w = ts.do(t, http.MethodPost, "/api/search/submit", "")
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestSearchSubmitWithoutSuggestions(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/search/input", `{"value":"Qu"}`)
	require.Equal(t, http.StatusAccepted, w.Code)

	w = ts.do(t, http.MethodPost, "/api/search/submit", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, search.MessageInvalidCity, decode[ErrorResponse](t, w).Error)

	state := decode[SearchResponse](t, ts.do(t, http.MethodGet, "/api/search", ""))
	assert.Equal(t, search.MessageInvalidCity, state.ErrorMessage)
	assert.Equal(t, SearchViewBody{Render: true, Entries: []string{search.MessageInvalidCity}, IsError: true}, state.View)
}

func TestSearchInput_BadBody(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/search/input", `{"value":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDashboard(t *testing.T) {
	ts := setupTestServer(t)
	ts.page.snapshot = dashboard.Snapshot{
		Status: dashboard.StatusError,
		City:   "Atlantis",
		Banner: "An error has occurred: no forecast found for Atlantis",
	}

	w := ts.do(t, http.MethodGet, "/api/dashboard", "")

	require.Equal(t, http.StatusOK, w.Code)
	snapshot := decode[dashboard.Snapshot](t, w)
	assert.Equal(t, dashboard.StatusError, snapshot.Status)
	assert.Equal(t, "An error has occurred: no forecast found for Atlantis", snapshot.Banner)
	assert.Nil(t, snapshot.View)
}

func TestHealthAndMetrics(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode[map[string]interface{}](t, w)["status"])

	ts.health.results["cache"] = ports.HealthStatus{Component: "cache", Status: "unhealthy", Error: "connection refused"}
	w = ts.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = ts.do(t, http.MethodGet, "/api/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "stale_discards")

	w = ts.do(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	ts := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestNewHTTPServerAdapter_Validation(t *testing.T) {
	server, err := NewHTTPServerAdapter(ServerOptions{})

	assert.Nil(t, server)
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, err.Error(), "forecast use case is required")
}
