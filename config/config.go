package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"salon-insights/utils"
)

// Supported values of DATA_SOURCE.
const (
	SourceSheets   = "sheets"
	SourceXLSX     = "xlsx"
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	Timezone string `mapstructure:"TIMEZONE"`

	DataSource   string        `mapstructure:"DATA_SOURCE"`
	FetchTimeout time.Duration `mapstructure:"FETCH_TIMEOUT"`

	// Google Sheets.
	SheetsSpreadsheetID   string `mapstructure:"SHEETS_SPREADSHEET_ID"`
	SheetsCredentialsFile string `mapstructure:"SHEETS_CREDENTIALS_FILE"`
	SheetsCredentialsJSON string `mapstructure:"SHEETS_CREDENTIALS_JSON"`

	// File exports.
	XLSXPath string `mapstructure:"XLSX_PATH"`
	CSVDir   string `mapstructure:"CSV_DIR"`

	// Postgres mirror of the sheet.
	DatabaseURL string `mapstructure:"DB_URL"`

	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	MaxRequestsPerMin  int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// End-of-day digest.
	DigestEnabled    bool   `mapstructure:"DIGEST_ENABLED"`
	DigestSchedule   string `mapstructure:"DIGEST_SCHEDULE"`
	DigestRecipients string `mapstructure:"DIGEST_RECIPIENTS"`
	TwilioAccountSID string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioFrom       string `mapstructure:"TWILIO_FROM"`
}

var defaults = map[string]any{
	"APP_PORT":                "8080",
	"ENV":                     "development",
	"LOG_LEVEL":               "info",
	"TIMEZONE":                "Local",
	"DATA_SOURCE":             SourceSheets,
	"FETCH_TIMEOUT":           "15s",
	"SHEETS_SPREADSHEET_ID":   "",
	"SHEETS_CREDENTIALS_FILE": "",
	"SHEETS_CREDENTIALS_JSON": "",
	"XLSX_PATH":               "",
	"CSV_DIR":                 "",
	"DB_URL":                  "",
	"CORS_ALLOWED_ORIGINS":    "http://localhost:3000",
	"MAX_REQUESTS_PER_MIN":    120,
	"DIGEST_ENABLED":          false,
	"DIGEST_SCHEDULE":         "0 21 * * *",
	"DIGEST_RECIPIENTS":       "",
	"TWILIO_ACCOUNT_SID":      "",
	"TWILIO_AUTH_TOKEN":       "",
	"TWILIO_FROM":             "",
}

// Load layers defaults, an optional config.yaml (from . or ./config) and the
// environment. Environment variables win.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the process cannot run with.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}

	switch c.DataSource {
	case SourceSheets:
		if c.SheetsSpreadsheetID == "" {
			return fmt.Errorf("SHEETS_SPREADSHEET_ID is required for data source %q", c.DataSource)
		}
		if c.SheetsCredentialsFile == "" && c.SheetsCredentialsJSON == "" {
			return fmt.Errorf("SHEETS_CREDENTIALS_FILE or SHEETS_CREDENTIALS_JSON is required for data source %q", c.DataSource)
		}
	case SourceXLSX:
		if c.XLSXPath == "" {
			return fmt.Errorf("XLSX_PATH is required for data source %q", c.DataSource)
		}
	case SourceCSV:
		if c.CSVDir == "" {
			return fmt.Errorf("CSV_DIR is required for data source %q", c.DataSource)
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DB_URL is required for data source %q", c.DataSource)
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q", c.DataSource)
	}

	if c.DigestEnabled {
		if c.DigestSchedule == "" {
			return fmt.Errorf("DIGEST_SCHEDULE is required when DIGEST_ENABLED is set")
		}
		for _, phone := range c.Recipients() {
			if !utils.ValidatePhone(phone) {
				return fmt.Errorf("invalid DIGEST_RECIPIENTS entry %q", phone)
			}
		}
	}
	return nil
}

// Location resolves TIMEZONE; sheet timestamps carry no zone of their own.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func (c *Config) AllowedOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

func (c *Config) Recipients() []string {
	return splitList(c.DigestRecipients)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
