package search

import (
	"strings"
	"time"
)

const (
	DefaultMinQueryLength = 3
	DefaultLookupTimeout  = 5 * time.Second

	MessageInvalidCity  = "Please enter a valid city name."
	MessageNoMatches    = "No matching cities found."
	MessageLookupFailed = "Unable to load city suggestions."
)

// CityQuery is the text the user typed or picked
type CityQuery struct {
	RawInput       string
	NormalizedName string
}

// NewCityQuery builds a query from raw input
func NewCityQuery(raw string) CityQuery {
	return CityQuery{
		RawInput:       raw,
		NormalizedName: NormalizeName(raw),
	}
}

// NormalizeName trims surrounding whitespace; inner spacing is kept as typed
func NormalizeName(raw string) string {
	return strings.TrimSpace(raw)
}

// SuggestionSet is the typeahead list. Visible is only true when Items is
// non-empty or ErrorMessage is set.
type SuggestionSet struct {
	Items        []string
	Visible      bool
	ErrorMessage string
}

func (s SuggestionSet) clone() SuggestionSet {
	var items []string
	if s.Items != nil {
		items = make([]string, len(s.Items))
		copy(items, s.Items)
	}
	return SuggestionSet{
		Items:        items,
		Visible:      s.Visible,
		ErrorMessage: s.ErrorMessage,
	}
}

// State is a point-in-time copy of the search
type State struct {
	Query       CityQuery
	Suggestions SuggestionSet
	Generation  uint64
	Pending     bool
}

// View is what the suggestion dropdown renders
type View struct {
	Render  bool
	Entries []string
	IsError bool
}

// ViewOf applies the dropdown display rule to a suggestion set
func ViewOf(s SuggestionSet) View {
	if !(s.Visible && len(s.Items) > 1) && s.ErrorMessage == "" {
		return View{Entries: []string{}}
	}
	if s.ErrorMessage != "" && len(s.Items) < 1 {
		return View{Render: true, Entries: []string{s.ErrorMessage}, IsError: true}
	}
	entries := make([]string, len(s.Items))
	copy(entries, s.Items)
	return View{Render: true, Entries: entries}
}
