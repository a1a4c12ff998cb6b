// Package sheets reads STT records from a Google Sheets worksheet.
package sheets

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/stt-search/internal/common"
)

// DefaultWorksheet is the tab holding the STT table.
const DefaultWorksheet = "Sheet2"

// Config holds the configuration for the Google Sheets reader.
type Config struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	APIKey             string
	TokenFile          string
	SpreadsheetID      string
	Worksheet          string
	Timeout            time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Worksheet: DefaultWorksheet,
		Timeout:   30 * time.Second,
	}
}

// LoadFromEnv loads the configuration from environment variables.
func (c *Config) LoadFromEnv() error {
	// OAuth2 credentials
	c.ClientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	c.ClientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	c.RefreshToken = os.Getenv("GOOGLE_SHEETS_REFRESH_TOKEN")

	// Service account path (alternative to OAuth2)
	c.ServiceAccountPath = os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH")

	// API key for publicly shared sheets
	c.APIKey = os.Getenv("GOOGLE_SHEETS_API_KEY")

	c.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")
	if v := os.Getenv("GOOGLE_SHEETS_WORKSHEET"); v != "" {
		c.Worksheet = v
	}

	if c.AuthMethod() == AuthNone {
		return fmt.Errorf("%w: provide a service account path, OAuth2 credentials or an API key", common.ErrMissingConfig)
	}

	return nil
}

// AuthMethod identifies how the reader authenticates.
type AuthMethod string

// Supported authentication methods.
const (
	AuthNone           AuthMethod = ""
	AuthServiceAccount AuthMethod = "service_account"
	AuthOAuth2         AuthMethod = "oauth2"
	AuthAPIKey         AuthMethod = "api_key"
)

// AuthMethod returns the single configured authentication method, or
// AuthNone when none or several are configured.
func (c *Config) AuthMethod() AuthMethod {
	methods := c.authMethods()
	if len(methods) != 1 {
		return AuthNone
	}
	return methods[0]
}

func (c *Config) authMethods() []AuthMethod {
	var methods []AuthMethod
	if c.ServiceAccountPath != "" {
		methods = append(methods, AuthServiceAccount)
	}
	if c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != "" {
		methods = append(methods, AuthOAuth2)
	}
	if c.APIKey != "" {
		methods = append(methods, AuthAPIKey)
	}
	return methods
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	methods := c.authMethods()
	if len(methods) == 0 {
		return fmt.Errorf("%w: no authentication method configured", common.ErrMissingConfig)
	}
	if len(methods) > 1 {
		return fmt.Errorf("%w: multiple authentication methods configured; use exactly one of service account, OAuth2 or API key", common.ErrInvalidConfig)
	}

	if strings.TrimSpace(c.SpreadsheetID) == "" {
		return fmt.Errorf("%w: spreadsheet id is required", common.ErrMissingConfig)
	}
	if strings.TrimSpace(c.Worksheet) == "" {
		return fmt.Errorf("%w: worksheet name is required", common.ErrMissingConfig)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative", common.ErrInvalidConfig)
	}

	return nil
}
