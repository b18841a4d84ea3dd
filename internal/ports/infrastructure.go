package ports

import "time"

// WeatherConfig represents upstream weather settings
type WeatherConfig struct {
	DefaultCity    string
	RequestTimeout time.Duration
}

// SearchConfig represents typeahead settings
type SearchConfig struct {
	MinQueryLength int
	EnableCache    bool
	CacheTTL       time.Duration
}

// ForecastConfig represents forecast and bucketing settings
type ForecastConfig struct {
	Count           int
	CutoffHour      int
	BucketPolicy    string
	QueryTTL        time.Duration
	RefreshInterval time.Duration
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type      string
	RedisAddr string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetSearchConfig() SearchConfig
	GetForecastConfig() ForecastConfig
	GetServerConfig() ServerConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
