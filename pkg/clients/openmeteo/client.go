package openmeteo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"poultryfarm/backend/internal/config"
)

// Client fetches current weather conditions for the farm site.
type Client interface {
	CurrentConditions(ctx context.Context) (*Conditions, error)
}

// Conditions is the current temperature snapshot.
type Conditions struct {
	Temperature float64
	WeatherCode int
	Unit        string
}

// APIClient is a resty-backed Open-Meteo client.
type APIClient struct {
	httpClient *resty.Client
	latitude   string
	longitude  string
}

// NewClient builds an Open-Meteo client for the configured coordinates.
func NewClient(cfg config.WeatherConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(cfg.BaseURL).
		SetTimeout(10 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		latitude:   cfg.Latitude,
		longitude:  cfg.Longitude,
	}
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
	CurrentUnits struct {
		Temperature string `json:"temperature_2m"`
	} `json:"current_units"`
}

// CurrentConditions fetches the live temperature and weather code.
func (c *APIClient) CurrentConditions(ctx context.Context) (*Conditions, error) {
	result := new(forecastResponse)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":  c.latitude,
			"longitude": c.longitude,
			"current":   "temperature_2m,weather_code",
		}).
		SetResult(result).
		Get("/v1/forecast")
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("open-meteo error: status=%d", resp.StatusCode())
	}

	unit := result.CurrentUnits.Temperature
	if unit == "" {
		unit = "°C"
	}

	return &Conditions{
		Temperature: result.Current.Temperature,
		WeatherCode: result.Current.WeatherCode,
		Unit:        unit,
	}, nil
}
