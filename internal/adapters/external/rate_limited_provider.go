package external

import (
	"context"

	"golang.org/x/time/rate"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// RateLimitedSuggestionProvider wraps a suggestion provider with a token bucket so that
// fast typing cannot exhaust the upstream quota
type RateLimitedSuggestionProvider struct {
	provider ports.CitySuggestionProvider
	limiter  *rate.Limiter
}

// NewRateLimitedSuggestionProvider allows rps lookups per second with the given burst
func NewRateLimitedSuggestionProvider(provider ports.CitySuggestionProvider, rps float64, burst int) *RateLimitedSuggestionProvider {
	return &RateLimitedSuggestionProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// FindCities waits for the limiter or the context, whichever comes first
func (r *RateLimitedSuggestionProvider) FindCities(ctx context.Context, query string) ([]string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewExternalAPIError("rate limit wait canceled", err)
	}
	return r.provider.FindCities(ctx, query)
}

func (r *RateLimitedSuggestionProvider) GetProviderName() string {
	return r.provider.GetProviderName() + " [rate limited]"
}

var _ ports.CitySuggestionProvider = (*RateLimitedSuggestionProvider)(nil)
