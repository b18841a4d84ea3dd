package external

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultForecastCount         = 24
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapProviderAdapter serves both the forecast and the city suggestion
// ports from the OpenWeatherMap 2.5 API
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	count   int
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Count   int
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

type owmForecastResponse struct {
	List []owmForecastItem `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
		Sunrise  int64  `json:"sunrise"`
		Sunset   int64  `json:"sunset"`
	} `json:"city"`
}

type owmForecastItem struct {
	Dt    int64  `json:"dt"`
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
		Gust  float64 `json:"gust"`
	} `json:"wind"`
	Visibility float64 `json:"visibility"`
	Pop        float64 `json:"pop"`
	Sys        struct {
		Pod string `json:"pod"`
	} `json:"sys"`
}

type owmFindResponse struct {
	List []struct {
		Name string `json:"name"`
	} `json:"list"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) *OpenWeatherMapProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}
	count := params.Count
	if count <= 0 {
		count = defaultForecastCount
	}
	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		count:   count,
		client:  client,
		logger:  params.Logger,
	}
}

// GetForecast retrieves the 3-hour forecast list for a city
func (p *OpenWeatherMapProviderAdapter) GetForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	if city == "" {
		return nil, errors.NewValidationError("city cannot be empty")
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", p.apiKey)
	query.Set("cnt", strconv.Itoa(p.count))

	var apiResp owmForecastResponse
	if err := p.getJSON(ctx, "/forecast", query, &apiResp); err != nil {
		return nil, err
	}

	samples := make([]ports.ForecastSampleData, 0, len(apiResp.List))
	for _, item := range apiResp.List {
		sample := ports.ForecastSampleData{
			Timestamp:           item.Dt,
			DateTimeText:        item.DtTxt,
			Temperature:         item.Main.Temp,
			FeelsLike:           item.Main.FeelsLike,
			TempMin:             item.Main.TempMin,
			TempMax:             item.Main.TempMax,
			Pressure:            item.Main.Pressure,
			Humidity:            item.Main.Humidity,
			Visibility:          item.Visibility,
			WindSpeed:           item.Wind.Speed,
			WindDeg:             item.Wind.Deg,
			WindGust:            item.Wind.Gust,
			Clouds:              item.Clouds.All,
			PrecipitationChance: item.Pop,
			PartOfDay:           item.Sys.Pod,
		}
		if len(item.Weather) > 0 {
			sample.Condition = ports.ConditionData{
				Main:        item.Weather[0].Main,
				Description: item.Weather[0].Description,
				Icon:        item.Weather[0].Icon,
			}
		}
		samples = append(samples, sample)
	}

	name := apiResp.City.Name
	if name == "" {
		name = city
	}

	return &ports.ForecastData{
		City: ports.CityData{
			Name:     name,
			Country:  apiResp.City.Country,
			Timezone: apiResp.City.Timezone,
			Sunrise:  apiResp.City.Sunrise,
			Sunset:   apiResp.City.Sunset,
		},
		Samples:   samples,
		FetchedAt: time.Now(),
	}, nil
}

// FindCities returns the display names of cities matching a partial name.
// Upstream order and duplicates are kept.
func (p *OpenWeatherMapProviderAdapter) FindCities(ctx context.Context, partial string) ([]string, error) {
	if partial == "" {
		return nil, errors.NewValidationError("query cannot be empty")
	}

	query := url.Values{}
	query.Set("q", partial)
	query.Set("appid", p.apiKey)

	var apiResp owmFindResponse
	if err := p.getJSON(ctx, "/find", query, &apiResp); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(apiResp.List))
	for _, item := range apiResp.List {
		if item.Name != "" {
			names = append(names, item.Name)
		}
	}
	return names, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

func (p *OpenWeatherMapProviderAdapter) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return errors.NewExternalAPIError("failed to build OpenWeatherMap request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return errors.NewNotFoundError("city not found")
	}
	if resp.StatusCode != http.StatusOK {
		return errors.NewExternalAPIError(fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError("failed to decode OpenWeatherMap response", err)
	}
	return nil
}
