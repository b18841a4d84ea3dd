package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Weather
	ForecastProvider   ForecastProvider
	SuggestionProvider CitySuggestionProvider
	ForecastCache      ForecastCache
	SuggestionCache    SuggestionCache

	// Cache
	CacheProvider CacheProvider
	CacheMetrics  CacheMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        WeatherMetrics
}
