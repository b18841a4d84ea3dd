// Package display holds the pure formatting helpers the dashboard view is built from:
// unit conversion, icon selection and date formatting.
package display

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateTimeLayout is the layout of the forecast dt_txt field
const DateTimeLayout = "2006-01-02 15:04:05"

const absoluteZeroCelsius = 273.15

// KelvinToCelsius converts and floors, matching what the cards show
func KelvinToCelsius(kelvin float64) int {
	return int(math.Floor(kelvin - absoluteZeroCelsius))
}

// WindSpeed converts m/s into the km/h label
func WindSpeed(metersPerSecond float64) string {
	return fmt.Sprintf("%.0f km/h", metersPerSecond*3.6)
}

// MetersToKilometers renders a visibility distance
func MetersToKilometers(meters float64) string {
	return fmt.Sprintf("%.0f km", meters/1000)
}

// Title capitalizes every word of a condition description.
// A Caser keeps state between calls, so each call gets its own.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// ParseDateTimeText parses dt_txt. The value carries no zone and is read as UTC.
func ParseDateTimeText(dtTxt string) (time.Time, error) {
	return time.Parse(DateTimeLayout, dtTxt)
}

// DayOrNightIcon picks the day or night variant of an icon code ("10d", "10n")
// from the hour in dtTxt: 06:00-17:59 is day.
func DayOrNightIcon(iconCode, dtTxt string) string {
	if iconCode == "" {
		return ""
	}
	base := strings.TrimRight(iconCode, "dn")

	t, err := ParseDateTimeText(dtTxt)
	if err != nil {
		return iconCode
	}
	if t.Hour() >= 6 && t.Hour() < 18 {
		return base + "d"
	}
	return base + "n"
}

func DayName(t time.Time) string {
	return t.Format("Monday")
}

func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

func ShortDate(t time.Time) string {
	return t.Format("02.01")
}

func HourLabel(t time.Time) string {
	return t.Format("3:04 PM")
}

func ClockLabel(t time.Time) string {
	return t.Format("15:04")
}
