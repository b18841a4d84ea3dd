package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/pkg/errors"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Weather: WeatherConfig{
			OpenWeatherMapKey:     "test-key",
			OpenWeatherMapBaseURL: "https://api.openweathermap.org/data/2.5",
			DefaultCity:           "Toronto",
			RequestTimeoutSeconds: 5,
			EnableLogging:         false,
		},
		Search: SearchConfig{
			MinQueryLength:  3,
			RateLimitRPS:    5,
			RateLimitBurst:  3,
			EnableCache:     true,
			CacheTTLMinutes: 60,
		},
		Forecast: ForecastConfig{
			Count:                  24,
			CutoffHour:             6,
			BucketPolicy:           BucketPolicyStrict,
			QueryTTLSeconds:        60,
			RefreshIntervalMinutes: 10,
		},
		Cache: CacheConfig{
			Type:         CacheTypeMemory,
			MemorySizeMB: 16,
		},
		LogLevel: "info",
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("MissingAPIKey", func(t *testing.T) {
		t.Setenv("OPENWEATHERMAP_API_KEY", "")

		cfg, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "OPENWEATHERMAP_API_KEY")
	})

	t.Run("DefaultValues", func(t *testing.T) {
		t.Setenv("OPENWEATHERMAP_API_KEY", "test-api-key")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.Weather.OpenWeatherMapBaseURL)
		assert.Equal(t, "Toronto", cfg.Weather.DefaultCity)
		assert.Equal(t, 5, cfg.Weather.RequestTimeoutSeconds)
		assert.Equal(t, 3, cfg.Search.MinQueryLength)
		assert.Equal(t, 24, cfg.Forecast.Count)
		assert.Equal(t, 6, cfg.Forecast.CutoffHour)
		assert.Equal(t, BucketPolicyStrict, cfg.Forecast.BucketPolicy)
		assert.Equal(t, CacheTypeMemory, cfg.Cache.Type)
		assert.Equal(t, "localhost:6379", cfg.Cache.Redis.Addr)
	})

	t.Run("CustomValues", func(t *testing.T) {
		t.Setenv("OPENWEATHERMAP_API_KEY", "test-api-key")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("WEATHER_DEFAULT_CITY", "Kyiv")
		t.Setenv("SEARCH_MIN_QUERY_LENGTH", "2")
		t.Setenv("FORECAST_BUCKET_POLICY", "first")
		t.Setenv("FORECAST_CUTOFF_HOUR", "9")
		t.Setenv("CACHE_TYPE", "redis")
		t.Setenv("REDIS_ADDR", "redis:6380")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "Kyiv", cfg.Weather.DefaultCity)
		assert.Equal(t, 2, cfg.Search.MinQueryLength)
		assert.Equal(t, BucketPolicyFirstOfDay, cfg.Forecast.BucketPolicy)
		assert.Equal(t, 9, cfg.Forecast.CutoffHour)
		assert.Equal(t, CacheTypeRedis, cfg.Cache.Type)
		assert.Equal(t, "redis:6380", cfg.Cache.Redis.Addr)
	})

	t.Run("InvalidPolicy", func(t *testing.T) {
		t.Setenv("OPENWEATHERMAP_API_KEY", "test-api-key")
		t.Setenv("FORECAST_BUCKET_POLICY", "latest")

		cfg, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "FORECAST_BUCKET_POLICY")
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "Valid",
			mutate: func(*Config) {},
		},
		{
			name:   "PortOutOfRange",
			mutate: func(c *Config) { c.Server.Port = 70000 },
			errMsg: "SERVER_PORT",
		},
		{
			name:   "BadBaseURL",
			mutate: func(c *Config) { c.Weather.OpenWeatherMapBaseURL = "ftp://owm" },
			errMsg: "OPENWEATHERMAP_API_BASE_URL",
		},
		{
			name:   "BlankDefaultCity",
			mutate: func(c *Config) { c.Weather.DefaultCity = "  " },
			errMsg: "WEATHER_DEFAULT_CITY",
		},
		{
			name:   "ZeroTimeout",
			mutate: func(c *Config) { c.Weather.RequestTimeoutSeconds = 0 },
			errMsg: "WEATHER_REQUEST_TIMEOUT_SECONDS",
		},
		{
			name: "LoggingWithoutPath",
			mutate: func(c *Config) {
				c.Weather.EnableLogging = true
				c.Weather.LogFilePath = ""
			},
			errMsg: "WEATHER_LOG_FILE_PATH",
		},
		{
			name:   "ZeroMinQueryLength",
			mutate: func(c *Config) { c.Search.MinQueryLength = 0 },
			errMsg: "SEARCH_MIN_QUERY_LENGTH",
		},
		{
			name:   "NegativeRate",
			mutate: func(c *Config) { c.Search.RateLimitRPS = -1 },
			errMsg: "SEARCH_RATE_LIMIT_RPS",
		},
		{
			name:   "CacheTTLTooLong",
			mutate: func(c *Config) { c.Search.CacheTTLMinutes = 5000 },
			errMsg: "SEARCH_CACHE_TTL_MINUTES",
		},
		{
			name:   "ForecastCountTooLarge",
			mutate: func(c *Config) { c.Forecast.Count = 41 },
			errMsg: "FORECAST_COUNT",
		},
		{
			name:   "CutoffHourOutOfRange",
			mutate: func(c *Config) { c.Forecast.CutoffHour = 24 },
			errMsg: "FORECAST_CUTOFF_HOUR",
		},
		{
			name:   "UnknownCacheType",
			mutate: func(c *Config) { c.Cache.Type = CacheTypeUnknown },
			errMsg: "CACHE_TYPE",
		},
		{
			name: "RedisWithoutAddr",
			mutate: func(c *Config) {
				c.Cache.Type = CacheTypeRedis
				c.Cache.Redis = RedisConfig{DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}
			},
			errMsg: "REDIS_ADDR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestEnumConversions(t *testing.T) {
	assert.Equal(t, CacheTypeRedis, CacheTypeFromString("redis"))
	assert.Equal(t, CacheTypeUnknown, CacheTypeFromString("memcached"))
	assert.Equal(t, "memory", CacheTypeMemory.String())

	assert.Equal(t, BucketPolicyFirstOfDay, BucketPolicyFromString("first"))
	assert.Equal(t, BucketPolicyUnknown, BucketPolicyFromString(""))
	assert.Equal(t, "strict", BucketPolicyStrict.String())

	text, err := BucketPolicyFirstOfDay.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "first", string(text))
}
