package search

import (
	"context"
	"sync"
	"time"
	"unicode/utf8"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const staleComponent = "suggestions"

// Search owns the typeahead state for the single active city query.
// Every mutation bumps or checks a generation id so that only the lookup
// started by the latest input can change what the user sees.
type Search struct {
	provider ports.CitySuggestionProvider
	fetcher  ports.ForecastFetcher
	logger   ports.Logger
	metrics  ports.WeatherMetrics

	minQueryLength int
	lookupTimeout  time.Duration

	mu          sync.Mutex
	query       CityQuery
	suggestions SuggestionSet
	generation  uint64
	pending     bool
	cancel      context.CancelFunc
	inFlight    sync.WaitGroup
}

type Dependencies struct {
	Provider ports.CitySuggestionProvider
	Fetcher  ports.ForecastFetcher
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.WeatherMetrics
}

func NewSearch(deps Dependencies) (*Search, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("suggestion provider is required")
	}
	if deps.Fetcher == nil {
		return nil, errors.NewValidationError("forecast fetcher is required")
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

	minQueryLength := deps.Config.GetSearchConfig().MinQueryLength
	if minQueryLength < 1 {
		minQueryLength = DefaultMinQueryLength
	}
	lookupTimeout := deps.Config.GetWeatherConfig().RequestTimeout
	if lookupTimeout <= 0 {
		lookupTimeout = DefaultLookupTimeout
	}

	return &Search{
		provider:       deps.Provider,
		fetcher:        deps.Fetcher,
		logger:         deps.Logger,
		metrics:        deps.Metrics,
		minQueryLength: minQueryLength,
		lookupTimeout:  lookupTimeout,
	}, nil
}

// OnInputChange records the new input and, once it is long enough, starts a lookup
// in the background. The lookup outlives ctx cancellation but not a newer input.
func (s *Search) OnInputChange(ctx context.Context, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.cancelInFlight()
	s.query = NewCityQuery(value)

	if utf8.RuneCountInString(value) < s.minQueryLength {
		s.suggestions = SuggestionSet{}
		s.pending = false
		return
	}

	// names from an earlier input must not satisfy a submit for this one
	s.suggestions = SuggestionSet{}

	lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.lookupTimeout)
	s.cancel = cancel
	s.pending = true
	s.inFlight.Add(1)

	go s.lookup(lookupCtx, cancel, s.generation, s.query.NormalizedName)
}

// OnSuggestionSelect puts the picked name into the input and hides the list
// without starting a lookup. Items stay as the record that the name resolved;
// when a lookup was still pending there are none and a submit is rejected.
func (s *Search) OnSuggestionSelect(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.cancelInFlight()
	s.pending = false
	s.query = NewCityQuery(value)
	s.suggestions.Visible = false
	s.suggestions.ErrorMessage = ""
}

// OnSubmit hands the current city to the forecast fetcher, or rejects the
// submission when no suggestion was returned for the current input.
func (s *Search) OnSubmit(ctx context.Context) error {
	s.mu.Lock()
	if len(s.suggestions.Items) == 0 {
		s.suggestions.ErrorMessage = MessageInvalidCity
		s.suggestions.Visible = false
		input := s.query.RawInput
		s.mu.Unlock()

		s.logger.Debug("Rejected search submit without suggestions", ports.F("input", input))
		return errors.NewValidationError(MessageInvalidCity)
	}

	s.generation++
	s.cancelInFlight()
	s.pending = false
	s.suggestions.ErrorMessage = ""
	s.suggestions.Visible = false
	city := s.query.NormalizedName
	s.mu.Unlock()

	s.logger.Info("Submitting city search", ports.F("city", city))
	s.fetcher.Fetch(ctx, city)
	return nil
}

// State returns a copy of the current search state
func (s *Search) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Query:       s.query,
		Suggestions: s.suggestions.clone(),
		Generation:  s.generation,
		Pending:     s.pending,
	}
}

// View returns what the suggestion dropdown should render right now
func (s *Search) View() View {
	return ViewOf(s.State().Suggestions)
}

// Wait blocks until every started lookup has returned
func (s *Search) Wait() {
	s.inFlight.Wait()
}

// Close aborts the in-flight lookup and waits for it to finish
func (s *Search) Close() {
	s.mu.Lock()
	s.generation++
	s.cancelInFlight()
	s.pending = false
	s.mu.Unlock()

	s.inFlight.Wait()
}

func (s *Search) lookup(ctx context.Context, cancel context.CancelFunc, generation uint64, query string) {
	defer s.inFlight.Done()
	defer cancel()

	start := time.Now()
	names, err := s.provider.FindCities(ctx, query)
	duration := time.Since(start)

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		s.metrics.RecordStaleDiscard(staleComponent)
		s.logger.Debug("Discarding stale suggestion response",
			ports.F("query", query),
			ports.F("generation", generation),
			ports.F("current_generation", s.generation))
		return
	}

	s.cancel = nil
	s.pending = false

	switch {
	case err != nil && !errors.IsNotFoundError(err):
		s.suggestions = SuggestionSet{ErrorMessage: MessageLookupFailed, Visible: true}
		s.metrics.RecordLookup("error", duration)
		s.logger.Warn("City suggestion lookup failed",
			ports.F("query", query),
			ports.F("error", err),
			ports.F("duration_ms", duration.Milliseconds()))
	case len(names) == 0:
		s.suggestions = SuggestionSet{ErrorMessage: MessageNoMatches, Visible: true}
		s.metrics.RecordLookup("empty", duration)
		s.logger.Debug("City suggestion lookup returned no matches", ports.F("query", query))
	default:
		items := make([]string, len(names))
		copy(items, names)
		s.suggestions = SuggestionSet{Items: items, Visible: true}
		s.metrics.RecordLookup("success", duration)
		s.logger.Debug("City suggestions updated",
			ports.F("query", query),
			ports.F("count", len(items)))
	}
}

// cancelInFlight must be called with mu held
func (s *Search) cancelInFlight() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
