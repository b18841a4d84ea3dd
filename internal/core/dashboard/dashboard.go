package dashboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

const (
	bannerPrefix   = "An error has occurred: "
	staleComponent = "dashboard"
)

// ForecastService is the part of the forecast use case the page needs
type ForecastService interface {
	GetForecast(ctx context.Context, request forecast.ForecastRequest) (*forecast.Forecast, error)
	Daily(f *forecast.Forecast) []forecast.DayBucket
}

// Snapshot is a copy of the page state
type Snapshot struct {
	Status     Status     `json:"status"`
	City       string     `json:"city"`
	View       *ViewModel `json:"view,omitempty"`
	Banner     string     `json:"banner,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Generation uint64     `json:"generation"`
}

// Dashboard is the single page component. It implements ports.ForecastFetcher so a
// successful search submit lands here. Only the latest fetch may change what is shown.
type Dashboard struct {
	forecasts ForecastService
	logger    ports.Logger
	metrics   ports.WeatherMetrics

	defaultCity  string
	fetchTimeout time.Duration

	mu         sync.Mutex
	status     Status
	city       string
	view       *ViewModel
	banner     string
	updatedAt  time.Time
	generation uint64
	cancel     context.CancelFunc
	inFlight   sync.WaitGroup
}

type Dependencies struct {
	Forecasts ForecastService
	Config    ports.ConfigProvider
	Logger    ports.Logger
	Metrics   ports.WeatherMetrics
}

func NewDashboard(deps Dependencies) (*Dashboard, error) {
	if deps.Forecasts == nil {
		return nil, errors.NewValidationError("forecast service is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	weatherConfig := deps.Config.GetWeatherConfig()
	fetchTimeout := weatherConfig.RequestTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = 5 * time.Second
	}

	return &Dashboard{
		forecasts:    deps.Forecasts,
		logger:       deps.Logger,
		metrics:      deps.Metrics,
		defaultCity:  weatherConfig.DefaultCity,
		fetchTimeout: fetchTimeout,
		status:       StatusIdle,
		city:         weatherConfig.DefaultCity,
	}, nil
}

// Fetch starts loading the forecast for city in the background. An empty city
// means the configured default.
func (d *Dashboard) Fetch(ctx context.Context, city string) {
	city = strings.TrimSpace(city)
	if city == "" {
		city = d.defaultCity
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	if d.cancel != nil {
		d.cancel()
	}
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.fetchTimeout)
	d.cancel = cancel
	d.city = city
	d.status = StatusLoading
	d.inFlight.Add(1)

	d.logger.Debug("Fetching dashboard forecast",
		ports.F("city", city),
		ports.F("generation", d.generation))

	go d.fetch(fetchCtx, cancel, d.generation, city)
}

// Refresh re-fetches the active city
func (d *Dashboard) Refresh(ctx context.Context) {
	d.mu.Lock()
	city := d.city
	d.mu.Unlock()

	d.Fetch(ctx, city)
}

// Snapshot returns the current page state
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	return Snapshot{
		Status:     d.status,
		City:       d.city,
		View:       d.view,
		Banner:     d.banner,
		UpdatedAt:  d.updatedAt,
		Generation: d.generation,
	}
}

// Wait blocks until every started fetch has returned
func (d *Dashboard) Wait() {
	d.inFlight.Wait()
}

// Close aborts the in-flight fetch and waits for it
func (d *Dashboard) Close() {
	d.mu.Lock()
	d.generation++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.inFlight.Wait()
}

func (d *Dashboard) fetch(ctx context.Context, cancel context.CancelFunc, generation uint64, city string) {
	defer d.inFlight.Done()
	defer cancel()

	result, err := d.forecasts.GetForecast(ctx, forecast.ForecastRequest{City: city})
	var view *ViewModel
	if err == nil {
		view = BuildView(result, d.forecasts.Daily(result))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if generation != d.generation {
		d.metrics.RecordStaleDiscard(staleComponent)
		d.logger.Debug("Discarding stale dashboard forecast",
			ports.F("city", city),
			ports.F("generation", generation),
			ports.F("current_generation", d.generation))
		return
	}

	d.cancel = nil
	d.updatedAt = time.Now()

	if err != nil {
		d.status = StatusError
		d.view = nil
		d.banner = bannerPrefix + bannerMessage(err, city)
		d.logger.Warn("Dashboard forecast failed",
			ports.F("city", city),
			ports.F("error", err))
		return
	}

	d.status = StatusReady
	d.view = view
	d.banner = ""
	d.logger.Info("Dashboard forecast updated",
		ports.F("city", city),
		ports.F("days", len(view.Daily)))
}

func bannerMessage(err error, city string) string {
	switch errors.TypeOf(err) {
	case errors.NotFoundError:
		return "no forecast found for " + city
	case errors.ValidationError:
		return "invalid city name " + city
	default:
		return "the weather service is unavailable, please try again"
	}
}
