package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Identity  IdentityConfig
	Weather   WeatherConfig
	Sheets    SheetsConfig
	Reporting ReportingConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for the MongoDB tree store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// IdentityConfig points at the external identity service that owns
// accounts and session tokens.
type IdentityConfig struct {
	BaseURL string
	APIKey  string
}

// WeatherConfig holds the Open-Meteo endpoint and farm coordinates.
// Defaults point at the Bacolod site.
type WeatherConfig struct {
	BaseURL     string
	Latitude    string
	Longitude   string
	RefreshCron string
}

// SheetsConfig contains configuration for the ledger export spreadsheet.
// Leaving both fields empty disables the export.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// ReportingConfig holds scheduler-related settings.
type ReportingConfig struct {
	CronSchedule string
	Timezone     string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "poultryfarm"),
		},
		Identity: IdentityConfig{
			BaseURL: os.Getenv("IDENTITY_BASE_URL"),
			APIKey:  os.Getenv("IDENTITY_API_KEY"),
		},
		Weather: WeatherConfig{
			BaseURL:     getenvWithDefault("WEATHER_BASE_URL", "https://api.open-meteo.com"),
			Latitude:    getenvWithDefault("FARM_LATITUDE", "10.68"),
			Longitude:   getenvWithDefault("FARM_LONGITUDE", "122.95"),
			RefreshCron: getenvWithDefault("WEATHER_REFRESH_CRON", "*/30 * * * *"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_LEDGER_ID"),
		},
		Reporting: ReportingConfig{
			CronSchedule: getenvWithDefault("LEDGER_EXPORT_CRON", "0 20 * * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "Asia/Manila"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	switch {
	case c.Identity.BaseURL == "":
		return errors.New("IDENTITY_BASE_URL must be provided")
	case c.Identity.APIKey == "":
		return errors.New("IDENTITY_API_KEY must be provided")
	}

	if c.Weather.BaseURL == "" {
		return errors.New("WEATHER_BASE_URL must not be empty")
	}
	if c.Weather.Latitude == "" || c.Weather.Longitude == "" {
		return errors.New("farm coordinates must not be empty")
	}

	// A half-configured sheets export is a deployment mistake worth
	// failing on; fully empty simply disables it.
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("sheets export requires both GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_LEDGER_ID")
	}

	if c.Reporting.CronSchedule == "" {
		return errors.New("LEDGER_EXPORT_CRON must be provided")
	}
	if c.Reporting.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}

	return nil
}

// SheetsEnabled reports whether the ledger export is configured.
func (c *Config) SheetsEnabled() bool {
	return c.Sheets.CredentialsPath != "" && c.Sheets.SpreadsheetID != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
