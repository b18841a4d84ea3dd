package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"weatherdash.app/internal/adapters/api"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/dashboard"
)

const owmForecastBody = `{
	"cod": "200",
	"list": [
		{
			"dt": 1714564800,
			"dt_txt": "2024-05-01 12:00:00",
			"main": {"temp": 295.65, "feels_like": 294.15, "temp_min": 293.15, "temp_max": 296.15, "pressure": 1012, "humidity": 55},
			"weather": [{"main": "Clouds", "description": "few clouds", "icon": "02n"}],
			"wind": {"speed": 5},
			"visibility": 10000
		},
		{
			"dt": 1714651200,
			"dt_txt": "2024-05-02 12:00:00",
			"main": {"temp": 290.15, "feels_like": 289.15, "temp_min": 289.15, "temp_max": 291.15, "pressure": 1009, "humidity": 80},
			"weather": [{"main": "Rain", "description": "light rain", "icon": "10d"}],
			"wind": {"speed": 3},
			"visibility": 8000
		}
	],
	"city": {"name": "Toronto", "country": "CA", "timezone": -14400, "sunrise": 1714557060, "sunset": 1714608360}
}`

type ApplicationTestSuite struct {
	suite.Suite
	application *Application
	router      *gin.Engine
	owm         *httptest.Server
	redis       *miniredis.Miniredis
	findCalls   atomic.Int32
	logPath     string
}

func TestApplicationTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationTestSuite))
}

func (s *ApplicationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	s.owm = httptest.NewServer(http.HandlerFunc(s.serveOpenWeatherMap))
	s.redis = miniredis.RunT(s.T())
	s.logPath = filepath.Join(s.T().TempDir(), "logs", "providers.log")

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Weather: config.WeatherConfig{
			OpenWeatherMapKey:     "test-api-key",
			OpenWeatherMapBaseURL: s.owm.URL,
			DefaultCity:           "Toronto",
			RequestTimeoutSeconds: 2,
			EnableLogging:         true,
			LogFilePath:           s.logPath,
		},
		Search: config.SearchConfig{
			MinQueryLength:  3,
			RateLimitRPS:    100,
			RateLimitBurst:  10,
			EnableCache:     true,
			CacheTTLMinutes: 5,
		},
		Forecast: config.ForecastConfig{
			Count:                  24,
			CutoffHour:             6,
			BucketPolicy:           config.BucketPolicyStrict,
			QueryTTLSeconds:        60,
			RefreshIntervalMinutes: 10,
		},
		Cache: config.CacheConfig{
			Type:         config.CacheTypeRedis,
			MemorySizeMB: 1,
			Redis: config.RedisConfig{
				Addr:         s.redis.Addr(),
				DialTimeout:  1,
				ReadTimeout:  1,
				WriteTimeout: 1,
			},
		},
		LogLevel: "error",
	}
	s.Require().NoError(cfg.Validate())

	var err error
	s.application, err = NewApplicationWithConfig(cfg, nil)
	s.Require().NoError(err)
	s.router = s.application.GetRouter()
}

func (s *ApplicationTestSuite) TearDownSuite() {
	if s.application != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.NoError(s.application.Shutdown(ctx))
	}
	s.owm.Close()
}

func (s *ApplicationTestSuite) serveOpenWeatherMap(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	w.Header().Set("Content-Type", "application/json")

	switch r.URL.Path {
	case "/find":
		s.findCalls.Add(1)
		switch strings.ToLower(q) {
		case "tor":
			_, _ = w.Write([]byte(`{"list":[{"name":"Toronto"},{"name":"Torino"}]}`))
		case "par":
			_, _ = w.Write([]byte(`{"list":[{"name":"Paris"},{"name":"Paris"}]}`))
		default:
			_, _ = w.Write([]byte(`{"list":[]}`))
		}
	case "/forecast":
		if q != "Toronto" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		}
		_, _ = w.Write([]byte(owmForecastBody))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (s *ApplicationTestSuite) request(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ApplicationTestSuite) TestSearchSubmitLoadsDashboard() {
	w := s.request(http.MethodPost, "/api/search/input", `{"value":"Tor"}`)
	s.Require().Equal(http.StatusAccepted, w.Code)
	s.application.GetSearch().Wait()

	var state api.SearchResponse
	w = s.request(http.MethodGet, "/api/search", "")
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &state))
	s.Equal([]string{"Toronto", "Torino"}, state.Suggestions)
	s.True(state.View.Render)

	w = s.request(http.MethodPost, "/api/search/select", `{"value":"Toronto"}`)
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.request(http.MethodPost, "/api/search/submit", "")
	s.Require().Equal(http.StatusAccepted, w.Code)
	s.application.GetDashboard().Wait()

	var snapshot dashboard.Snapshot
	w = s.request(http.MethodGet, "/api/dashboard", "")
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &snapshot))
	s.Equal(dashboard.StatusReady, snapshot.Status)
	s.Equal("Toronto", snapshot.City)
	s.Require().NotNil(snapshot.View)
	s.Equal("Few Clouds", snapshot.View.Current.Description)
	s.Len(snapshot.View.Daily, 2)
}

func (s *ApplicationTestSuite) TestSuggestionsAreCachedInRedis() {
	before := s.findCalls.Load()

	for i := 0; i < 2; i++ {
		w := s.request(http.MethodGet, "/api/suggestions?q=Par", "")
		s.Require().Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"query":"Par","suggestions":["Paris","Paris"]}`, w.Body.String())
	}

	s.Equal(before+1, s.findCalls.Load())
	s.True(s.redis.Exists("suggestions:par"))
}

func (s *ApplicationTestSuite) TestUnknownCityShowsBanner() {
	page := s.application.GetDashboard()

	page.Fetch(context.Background(), "Atlantis")
	page.Wait()

	snapshot := page.Snapshot()
	s.Equal(dashboard.StatusError, snapshot.Status)
	s.Nil(snapshot.View)
	s.Equal("An error has occurred: no forecast found for Atlantis", snapshot.Banner)
}

func (s *ApplicationTestSuite) TestForecastEndpoint() {
	w := s.request(http.MethodGet, "/api/forecast?city=Toronto", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var view dashboard.ViewModel
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &view))
	s.Equal("Toronto", view.City)
	s.Equal("1012 hPa", view.Details.Pressure)
}

func (s *ApplicationTestSuite) TestHealthAndMetrics() {
	w := s.request(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), s.redis.Addr())

	w = s.request(http.MethodGet, "/api/metrics", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "forecast_state")
	s.Contains(w.Body.String(), "suggestion_lookups")
}

func (s *ApplicationTestSuite) TestSchedulerRefreshesDashboard() {
	page := s.application.GetDashboard()
	page.Fetch(context.Background(), "Toronto")
	page.Wait()
	before := page.Snapshot().Generation

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.application.startScheduler(ctx, 10*time.Millisecond)
	}()

	s.Eventually(func() bool {
		return page.Snapshot().Generation > before
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	page.Wait()
	s.Equal("Toronto", page.Snapshot().City)
}

func (s *ApplicationTestSuite) TestProviderTrafficIsLoggedToFile() {
	w := s.request(http.MethodGet, "/api/suggestions?q=Qqq", "")
	s.Require().Equal(http.StatusOK, w.Code)

	content, err := os.ReadFile(s.logPath)
	s.Require().NoError(err)
	s.Contains(string(content), "City lookup completed")
}
