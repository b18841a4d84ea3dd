package ports

import (
	"context"
	"time"
)

// ConditionData is the first entry of a sample's weather array
type ConditionData struct {
	Main        string
	Description string
	Icon        string
}

// ForecastSampleData is one 3-hour forecast entry. Temperatures are Kelvin.
type ForecastSampleData struct {
	Timestamp           int64
	DateTimeText        string
	Temperature         float64
	FeelsLike           float64
	TempMin             float64
	TempMax             float64
	Pressure            float64
	Humidity            float64
	Visibility          float64
	WindSpeed           float64
	WindDeg             float64
	WindGust            float64
	Clouds              float64
	PrecipitationChance float64
	PartOfDay           string
	Condition           ConditionData
}

// CityData carries the city block of a forecast payload
type CityData struct {
	Name     string
	Country  string
	Timezone int
	Sunrise  int64
	Sunset   int64
}

// ForecastData is a whole forecast payload
type ForecastData struct {
	City      CityData
	Samples   []ForecastSampleData
	FetchedAt time.Time
}

// ForecastProvider fetches multi-day forecasts by city name
type ForecastProvider interface {
	GetForecast(ctx context.Context, city string) (*ForecastData, error)
	GetProviderName() string
}

// CitySuggestionProvider resolves a partial city name into display names
type CitySuggestionProvider interface {
	FindCities(ctx context.Context, query string) ([]string, error)
	GetProviderName() string
}

// ForecastFetcher is what a successful search submit hands the resolved city to
type ForecastFetcher interface {
	Fetch(ctx context.Context, city string)
}

// WeatherMetrics records lookup and fetch outcomes
type WeatherMetrics interface {
	RecordLookup(outcome string, duration time.Duration)
	RecordStaleDiscard(component string)
	RecordForecastFetch(outcome string, duration time.Duration)
}
