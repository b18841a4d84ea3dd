package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

func TestSuggestionCacheAdapter(t *testing.T) {
	redisCache, mockRedis := newTestRedisAdapter(t)
	cache := NewSuggestionCacheAdapter(redisCache)
	ctx := context.Background()

	_, err := cache.Get(ctx, "lon")
	assert.True(t, errors.IsNotFoundError(err))

	require.NoError(t, cache.Set(ctx, "lon", []string{"London", "London", "Londrina"}, time.Minute))
	assert.True(t, mockRedis.Exists("suggestions:lon"))

	names, err := cache.Get(ctx, "lon")
	require.NoError(t, err)
	assert.Equal(t, []string{"London", "London", "Londrina"}, names)

	assert.True(t, errors.IsValidationError(cache.Set(ctx, "lon", nil, time.Minute)))
}

func TestSuggestionCacheAdapter_CorruptEntry(t *testing.T) {
	memory := NewMemoryCacheProvider(1)
	require.NoError(t, memory.Set(context.Background(), "suggestions:par", []byte("not json"), time.Minute))

	names, err := NewSuggestionCacheAdapter(memory).Get(context.Background(), "par")

	assert.Nil(t, names)
	assert.True(t, errors.IsCacheError(err))
}

func TestForecastCacheAdapter(t *testing.T) {
	memory := NewMemoryCacheProvider(1)
	cache := NewForecastCacheAdapter(memory)
	ctx := context.Background()

	forecast := &ports.ForecastData{
		City: ports.CityData{Name: "Toronto", Country: "CA", Timezone: -14400, Sunrise: 1714557060},
		Samples: []ports.ForecastSampleData{
			{
				Timestamp:    1714554000,
				DateTimeText: "2024-05-01 09:00:00",
				Temperature:  285.5,
				Humidity:     71,
				Condition:    ports.ConditionData{Main: "Rain", Description: "light rain", Icon: "10d"},
			},
		},
		FetchedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
	}

	require.NoError(t, cache.Set(ctx, "toronto", forecast, time.Minute))

	exists, err := memory.Exists(ctx, "forecast:toronto")
	require.NoError(t, err)
	assert.True(t, exists)

	cached, err := cache.Get(ctx, "toronto")
	require.NoError(t, err)
	assert.Equal(t, forecast.City, cached.City)
	assert.Equal(t, forecast.Samples, cached.Samples)
	assert.True(t, forecast.FetchedAt.Equal(cached.FetchedAt))

	_, err = cache.Get(ctx, "kyiv")
	assert.True(t, errors.IsNotFoundError(err))

	assert.True(t, errors.IsValidationError(cache.Set(ctx, "kyiv", nil, time.Minute)))
}
