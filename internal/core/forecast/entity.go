package forecast

import (
	"fmt"
	"strings"
	"time"

	"weatherdash.app/pkg/validation"
)

// Condition is the weather code block of a sample
type Condition struct {
	Main        string
	Description string
	Icon        string
}

// Sample is one 3-hour forecast entry as received from upstream.
// Temperatures are Kelvin, pressure hPa, visibility meters, wind m/s.
type Sample struct {
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
	Condition           Condition
}

// Time returns the sample instant in UTC
func (s Sample) Time() time.Time {
	return time.Unix(s.Timestamp, 0).UTC()
}

// CalendarDate is the ISO date of the UTC timestamp
func (s Sample) CalendarDate() string {
	return s.Time().Format("2006-01-02")
}

// City is the city block of a forecast payload, passed through for display
type City struct {
	Name     string
	Country  string
	Timezone int
	Sunrise  int64
	Sunset   int64
}

// Location is the city's fixed UTC offset, or UTC when upstream did not send one
func (c City) Location() *time.Location {
	if c.Timezone == 0 {
		return time.UTC
	}
	return time.FixedZone(c.Name, c.Timezone)
}

// Forecast is one fetched payload. It is replaced wholesale on every fetch.
type Forecast struct {
	City      City
	Samples   []Sample
	FetchedAt time.Time
}

// Current is the sample shown as current conditions
func (f *Forecast) Current() (Sample, bool) {
	if f == nil || len(f.Samples) == 0 {
		return Sample{}, false
	}
	return f.Samples[0], true
}

// IsValid validates forecast data coming from a provider
func (f *Forecast) IsValid() error {
	if len(f.Samples) == 0 {
		return fmt.Errorf("forecast has no samples")
	}
	for i, s := range f.Samples {
		if s.Timestamp <= 0 {
			return fmt.Errorf("sample %d has no timestamp", i)
		}
		if s.Temperature < 0 {
			return fmt.Errorf("sample %d temperature cannot be below absolute zero", i)
		}
		if s.Humidity < 0 || s.Humidity > 100 {
			return fmt.Errorf("sample %d humidity must be between 0 and 100", i)
		}
	}
	return nil
}

// ForecastRequest represents a request for a city forecast
type ForecastRequest struct {
	City string
}

// NormalizeCity trims the city and falls back to the default when nothing is left
func (r *ForecastRequest) NormalizeCity(defaultCity string) {
	r.City = strings.TrimSpace(r.City)
	if r.City == "" {
		r.City = strings.TrimSpace(defaultCity)
	}
}

// IsValid validates forecast request
func (r *ForecastRequest) IsValid() error {
	if strings.TrimSpace(r.City) == "" {
		return fmt.Errorf("city cannot be empty")
	}
	if !validation.IsValidCityQuery(r.City) {
		return fmt.Errorf("city contains unsupported characters")
	}
	return nil
}

// DayBucket is one calendar date of the daily forecast.
// Representative is nil when no sample qualifies for that date.
type DayBucket struct {
	CalendarDate   string
	Representative *Sample
}

// HasRepresentative reports whether the day can be rendered
func (b DayBucket) HasRepresentative() bool {
	return b.Representative != nil
}
