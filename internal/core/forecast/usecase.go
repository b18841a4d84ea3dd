package forecast

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type UseCase struct {
	provider ports.ForecastProvider
	cache    ports.ForecastCache
	config   ports.ConfigProvider
	logger   ports.Logger
	metrics  ports.WeatherMetrics
}

type UseCaseDependencies struct {
	Provider ports.ForecastProvider
	Cache    ports.ForecastCache
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.WeatherMetrics
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("forecast provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
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

	return &UseCase{
		provider: deps.Provider,
		cache:    deps.Cache,
		config:   deps.Config,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}, nil
}

// DefaultCity is the city shown before anything is searched
func (uc *UseCase) DefaultCity() string {
	return uc.config.GetWeatherConfig().DefaultCity
}

// GetForecast returns the forecast for a city, served from query state while it is fresh.
// An empty city falls back to the configured default.
func (uc *UseCase) GetForecast(ctx context.Context, request ForecastRequest) (*Forecast, error) {
	request.NormalizeCity(uc.DefaultCity())
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid forecast request: " + err.Error())
	}

	city := request.City
	uc.logger.Debug("Getting forecast for city", ports.F("city", city))

	start := time.Now()
	forecast, outcome, err := uc.getForecastWithCache(ctx, city)
	uc.metrics.RecordForecastFetch(outcome, time.Since(start))
	if err != nil {
		uc.logger.Error("Failed to get forecast",
			ports.F("city", city),
			ports.F("error", err))
		return nil, fmt.Errorf("get forecast for city %s: %w", city, err)
	}

	uc.logger.Debug("Forecast retrieved successfully",
		ports.F("city", city),
		ports.F("samples", len(forecast.Samples)),
		ports.F("outcome", outcome))
	return forecast, nil
}

// Daily reduces a forecast to one bucket per calendar date using the configured
// cutoff hour and policy. The hour is read in the city's own offset.
func (uc *UseCase) Daily(forecast *Forecast) []DayBucket {
	if forecast == nil {
		return []DayBucket{}
	}
	cfg := uc.config.GetForecastConfig()
	bucketizer := NewBucketizer(cfg.CutoffHour, forecast.City.Location(), BucketPolicy(cfg.BucketPolicy))
	return bucketizer.Bucketize(forecast.Samples)
}

func (uc *UseCase) getForecastWithCache(ctx context.Context, city string) (*Forecast, string, error) {
	cacheKey := strings.ToLower(city)
	cached, err := uc.cache.Get(ctx, cacheKey)
	if err == nil && cached != nil {
		uc.logger.Debug("Forecast found in query state", ports.F("city", city))
		return convertFromPortsForecast(cached), "cache_hit", nil
	}

	forecast, err := uc.getForecastFromProvider(ctx, city)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, "not_found", err
		}
		return nil, "error", err
	}

	ttl := uc.config.GetForecastConfig().QueryTTL
	if cacheErr := uc.cache.Set(ctx, cacheKey, convertToPortsForecast(forecast), ttl); cacheErr != nil {
		uc.logger.Warn("Failed to store forecast query state",
			ports.F("city", city),
			ports.F("error", cacheErr))
	}

	return forecast, "success", nil
}

func (uc *UseCase) getForecastFromProvider(ctx context.Context, city string) (*Forecast, error) {
	data, err := uc.provider.GetForecast(ctx, city)
	if err != nil {
		// Preserve NotFoundError from providers
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errors.NewExternalAPIError("forecast provider failed", err)
	}
	if data == nil || len(data.Samples) == 0 {
		return nil, errors.NewNotFoundError("no forecast data for city " + city)
	}

	forecast := convertFromPortsForecast(data)
	if err := forecast.IsValid(); err != nil {
		return nil, errors.NewExternalAPIError("invalid forecast data from provider", err)
	}
	return forecast, nil
}

func convertFromPortsForecast(data *ports.ForecastData) *Forecast {
	samples := make([]Sample, 0, len(data.Samples))
	for _, s := range data.Samples {
		samples = append(samples, Sample{
			Timestamp:           s.Timestamp,
			DateTimeText:        s.DateTimeText,
			Temperature:         s.Temperature,
			FeelsLike:           s.FeelsLike,
			TempMin:             s.TempMin,
			TempMax:             s.TempMax,
			Pressure:            s.Pressure,
			Humidity:            s.Humidity,
			Visibility:          s.Visibility,
			WindSpeed:           s.WindSpeed,
			WindDeg:             s.WindDeg,
			WindGust:            s.WindGust,
			Clouds:              s.Clouds,
			PrecipitationChance: s.PrecipitationChance,
			PartOfDay:           s.PartOfDay,
			Condition: Condition{
				Main:        s.Condition.Main,
				Description: s.Condition.Description,
				Icon:        s.Condition.Icon,
			},
		})
	}

	return &Forecast{
		City: City{
			Name:     data.City.Name,
			Country:  data.City.Country,
			Timezone: data.City.Timezone,
			Sunrise:  data.City.Sunrise,
			Sunset:   data.City.Sunset,
		},
		Samples:   samples,
		FetchedAt: data.FetchedAt,
	}
}

func convertToPortsForecast(forecast *Forecast) *ports.ForecastData {
	samples := make([]ports.ForecastSampleData, 0, len(forecast.Samples))
	for _, s := range forecast.Samples {
		samples = append(samples, ports.ForecastSampleData{
			Timestamp:           s.Timestamp,
			DateTimeText:        s.DateTimeText,
			Temperature:         s.Temperature,
			FeelsLike:           s.FeelsLike,
			TempMin:             s.TempMin,
			TempMax:             s.TempMax,
			Pressure:            s.Pressure,
			Humidity:            s.Humidity,
			Visibility:          s.Visibility,
			WindSpeed:           s.WindSpeed,
			WindDeg:             s.WindDeg,
			WindGust:            s.WindGust,
			Clouds:              s.Clouds,
			PrecipitationChance: s.PrecipitationChance,
			PartOfDay:           s.PartOfDay,
			Condition: ports.ConditionData{
				Main:        s.Condition.Main,
				Description: s.Condition.Description,
				Icon:        s.Condition.Icon,
			},
		})
	}

	return &ports.ForecastData{
		City: ports.CityData{
			Name:     forecast.City.Name,
			Country:  forecast.City.Country,
			Timezone: forecast.City.Timezone,
			Sunrise:  forecast.City.Sunrise,
			Sunset:   forecast.City.Sunset,
		},
		Samples:   samples,
		FetchedAt: forecast.FetchedAt,
	}
}
