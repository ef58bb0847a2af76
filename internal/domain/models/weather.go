package models

import "time"

// WeatherReading is the latest temperature snapshot for the farm site.
type WeatherReading struct {
	Temperature float64   `json:"temperature"`
	WeatherCode int       `json:"weatherCode"`
	Unit        string    `json:"unit"`
	FetchedAt   time.Time `json:"fetchedAt"`
}
