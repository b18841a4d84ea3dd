package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/pkg/errors"
)

const (
	maxRedisDB              = 15
	maxPortNumber           = 65535
	maxForecastCount        = 40
	maxRequestTimeout       = 60
	maxCutoffHour           = 23
	maxQueryTTLSeconds      = 3600
	maxSuggestionTTLMinutes = 1440
	minMemoryCacheMB        = 1
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Weather  WeatherConfig  `split_words:"true"`
	Search   SearchConfig   `split_words:"true"`
	Forecast ForecastConfig `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	LogLevel string         `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	OpenWeatherMapKey     string `envconfig:"OPENWEATHERMAP_API_KEY"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	DefaultCity           string `envconfig:"WEATHER_DEFAULT_CITY" default:"Toronto"`
	RequestTimeoutSeconds int    `envconfig:"WEATHER_REQUEST_TIMEOUT_SECONDS" default:"5"`
	EnableLogging         bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_providers.log"`
}

type SearchConfig struct {
	MinQueryLength  int     `envconfig:"SEARCH_MIN_QUERY_LENGTH" default:"3"`
	RateLimitRPS    float64 `envconfig:"SEARCH_RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst  int     `envconfig:"SEARCH_RATE_LIMIT_BURST" default:"3"`
	EnableCache     bool    `envconfig:"SEARCH_ENABLE_CACHE" default:"true"`
	CacheTTLMinutes int     `envconfig:"SEARCH_CACHE_TTL_MINUTES" default:"60"`
}

// BucketPolicy decides what a day without a morning sample gets
type BucketPolicy int

const (
	BucketPolicyUnknown BucketPolicy = iota
	BucketPolicyStrict
	BucketPolicyFirstOfDay
)

// String returns the string representation of the bucket policy
func (p BucketPolicy) String() string {
	switch p {
	case BucketPolicyStrict:
		return "strict"
	case BucketPolicyFirstOfDay:
		return "first"
	default:
		return "unknown"
	}
}

// IsValid checks if the bucket policy is valid
func (p BucketPolicy) IsValid() bool {
	return p == BucketPolicyStrict || p == BucketPolicyFirstOfDay
}

// BucketPolicyFromString converts string to BucketPolicy enum
func BucketPolicyFromString(s string) BucketPolicy {
	switch s {
	case "strict":
		return BucketPolicyStrict
	case "first":
		return BucketPolicyFirstOfDay
	default:
		return BucketPolicyUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (p *BucketPolicy) UnmarshalText(text []byte) error {
	*p = BucketPolicyFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (p BucketPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type ForecastConfig struct {
	Count                  int          `envconfig:"FORECAST_COUNT" default:"24"`
	CutoffHour             int          `envconfig:"FORECAST_CUTOFF_HOUR" default:"6"`
	BucketPolicy           BucketPolicy `envconfig:"FORECAST_BUCKET_POLICY" default:"strict"`
	QueryTTLSeconds        int          `envconfig:"FORECAST_QUERY_TTL_SECONDS" default:"60"`
	RefreshIntervalMinutes int          `envconfig:"FORECAST_REFRESH_INTERVAL_MINUTES" default:"10"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type         CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	MemorySizeMB int         `envconfig:"CACHE_MEMORY_SIZE_MB" default:"16"`
	Redis        RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Forecast.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.OpenWeatherMapKey == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY must be configured", nil)
	}
	if !strings.HasPrefix(w.OpenWeatherMapBaseURL, "http://") && !strings.HasPrefix(w.OpenWeatherMapBaseURL, "https://") {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if strings.TrimSpace(w.DefaultCity) == "" {
		return errors.NewConfigurationError("WEATHER_DEFAULT_CITY cannot be empty", nil)
	}
	if w.RequestTimeoutSeconds < 1 || w.RequestTimeoutSeconds > maxRequestTimeout {
		return errors.NewConfigurationError("WEATHER_REQUEST_TIMEOUT_SECONDS must be between 1 and 60", nil)
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when logging is enabled", nil)
	}
	return nil
}

func (s *SearchConfig) Validate() error {
	if s.MinQueryLength < 1 {
		return errors.NewConfigurationError("SEARCH_MIN_QUERY_LENGTH must be at least 1", nil)
	}
	if s.RateLimitRPS <= 0 {
		return errors.NewConfigurationError("SEARCH_RATE_LIMIT_RPS must be positive", nil)
	}
	if s.RateLimitBurst < 1 {
		return errors.NewConfigurationError("SEARCH_RATE_LIMIT_BURST must be at least 1", nil)
	}
	if s.EnableCache && (s.CacheTTLMinutes < 1 || s.CacheTTLMinutes > maxSuggestionTTLMinutes) {
		return errors.NewConfigurationError("SEARCH_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	return nil
}

func (f *ForecastConfig) Validate() error {
	if f.Count < 1 || f.Count > maxForecastCount {
		return errors.NewConfigurationError(fmt.Sprintf("FORECAST_COUNT must be between 1 and %d", maxForecastCount), nil)
	}
	if f.CutoffHour < 0 || f.CutoffHour > maxCutoffHour {
		return errors.NewConfigurationError("FORECAST_CUTOFF_HOUR must be between 0 and 23", nil)
	}
	if !f.BucketPolicy.IsValid() {
		return errors.NewConfigurationError("FORECAST_BUCKET_POLICY must be one of: strict, first", nil)
	}
	if f.QueryTTLSeconds < 1 || f.QueryTTLSeconds > maxQueryTTLSeconds {
		return errors.NewConfigurationError("FORECAST_QUERY_TTL_SECONDS must be between 1 and 3600", nil)
	}
	if f.RefreshIntervalMinutes < 1 {
		return errors.NewConfigurationError("FORECAST_REFRESH_INTERVAL_MINUTES must be at least 1 minute", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if c.MemorySizeMB < minMemoryCacheMB {
		return errors.NewConfigurationError("CACHE_MEMORY_SIZE_MB must be at least 1", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}
