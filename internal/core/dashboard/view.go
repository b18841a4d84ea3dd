package dashboard

import (
	"fmt"
	"time"

	"weatherdash.app/internal/core/forecast"
	"weatherdash.app/pkg/display"
)

// ViewModel is everything the dashboard page renders for one forecast
type ViewModel struct {
	City    string        `json:"city"`
	Country string        `json:"country"`
	Today   Today         `json:"today"`
	Current Current       `json:"current"`
	Hourly  []HourlyEntry `json:"hourly"`
	Details Details       `json:"details"`
	Daily   []DailyCard   `json:"daily"`
}

type Today struct {
	DayName string `json:"day_name"`
	Date    string `json:"date"`
}

// Current holds the first sample in degrees Celsius
type Current struct {
	Temperature int    `json:"temperature"`
	FeelsLike   int    `json:"feels_like"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type HourlyEntry struct {
	Time        string `json:"time"`
	Icon        string `json:"icon"`
	Temperature int    `json:"temperature"`
}

type Details struct {
	Visibility string `json:"visibility"`
	Pressure   string `json:"pressure"`
	Humidity   string `json:"humidity"`
	WindSpeed  string `json:"wind_speed"`
	Sunrise    string `json:"sunrise,omitempty"`
	Sunset     string `json:"sunset,omitempty"`
}

type DailyCard struct {
	Date        string  `json:"date"`
	Day         string  `json:"day"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Temperature int     `json:"temperature"`
	Min         int     `json:"min"`
	Max         int     `json:"max"`
	Details     Details `json:"details"`
}

// BuildView turns a forecast and its day buckets into the page view model.
// Days without a representative sample are skipped.
func BuildView(f *forecast.Forecast, buckets []forecast.DayBucket) *ViewModel {
	if f == nil {
		return nil
	}

	location := f.City.Location()
	view := &ViewModel{
		City:    f.City.Name,
		Country: f.City.Country,
		Hourly:  make([]HourlyEntry, 0, len(f.Samples)),
		Daily:   make([]DailyCard, 0, len(buckets)),
	}

	if current, ok := f.Current(); ok {
		local := current.Time().In(location)
		view.Today = Today{
			DayName: display.DayName(local),
			Date:    display.ISODate(local),
		}
		view.Current = Current{
			Temperature: display.KelvinToCelsius(current.Temperature),
			FeelsLike:   display.KelvinToCelsius(current.FeelsLike),
			Min:         display.KelvinToCelsius(current.TempMin),
			Max:         display.KelvinToCelsius(current.TempMax),
			Description: display.Title(current.Condition.Description),
			Icon:        display.DayOrNightIcon(current.Condition.Icon, current.DateTimeText),
		}
		view.Details = sampleDetails(current)
		view.Details.Sunrise = solarLabel(f.City.Sunrise, location)
		view.Details.Sunset = solarLabel(f.City.Sunset, location)
	}

	for _, s := range f.Samples {
		view.Hourly = append(view.Hourly, HourlyEntry{
			Time:        display.HourLabel(s.Time().In(location)),
			Icon:        display.DayOrNightIcon(s.Condition.Icon, s.DateTimeText),
			Temperature: display.KelvinToCelsius(s.Temperature),
		})
	}

	for _, bucket := range buckets {
		if !bucket.HasRepresentative() {
			continue
		}
		s := bucket.Representative
		local := s.Time().In(location)
		view.Daily = append(view.Daily, DailyCard{
			Date:        display.ShortDate(local),
			Day:         display.DayName(local),
			Description: display.Title(s.Condition.Description),
			Icon:        display.DayOrNightIcon(s.Condition.Icon, s.DateTimeText),
			Temperature: display.KelvinToCelsius(s.Temperature),
			Min:         display.KelvinToCelsius(s.TempMin),
			Max:         display.KelvinToCelsius(s.TempMax),
			Details:     sampleDetails(*s),
		})
	}

	return view
}

func sampleDetails(s forecast.Sample) Details {
	return Details{
		Visibility: display.MetersToKilometers(s.Visibility),
		Pressure:   fmt.Sprintf("%.0f hPa", s.Pressure),
		Humidity:   fmt.Sprintf("%.0f%%", s.Humidity),
		WindSpeed:  display.WindSpeed(s.WindSpeed),
	}
}

func solarLabel(unix int64, location *time.Location) string {
	if unix == 0 {
		return ""
	}
	return display.ClockLabel(time.Unix(unix, 0).In(location))
}
