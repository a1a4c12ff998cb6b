package config

import (
	"errors"

	"github.com/Veraticus/stt-search/internal/common"
	"github.com/Veraticus/stt-search/internal/sheets"
	"github.com/spf13/viper"
)

// LoadSheetsConfig loads Google Sheets configuration from Viper and environment variables.
// It follows this precedence:
// 1. Viper configuration (from config file or STT_ env vars)
// 2. Direct environment variables (GOOGLE_SHEETS_*)
// 3. Default values
//
// A refresh token saved by "stt auth sheets" is picked up from the token
// file when none is configured directly.
func LoadSheetsConfig() (*sheets.Config, error) {
	config := sheets.DefaultConfig()

	// Missing credentials here may still be supplied through viper.
	if err := config.LoadFromEnv(); err != nil && !errors.Is(err, common.ErrMissingConfig) {
		return nil, err
	}

	override(&config.ServiceAccountPath, viper.GetString("sheets.service_account_path"))
	override(&config.ClientID, viper.GetString("sheets.client_id"))
	override(&config.ClientSecret, viper.GetString("sheets.client_secret"))
	override(&config.RefreshToken, viper.GetString("sheets.refresh_token"))
	override(&config.APIKey, viper.GetString("sheets.api_key"))
	override(&config.SpreadsheetID, viper.GetString("sheets.spreadsheet_id"))
	override(&config.Worksheet, viper.GetString("sheets.worksheet"))
	if d := viper.GetDuration("sheets.timeout"); d != 0 {
		config.Timeout = d
	}

	config.ServiceAccountPath = ExpandPath(config.ServiceAccountPath)
	config.TokenFile = ExpandPath(viper.GetString("sheets.token_file"))

	if config.RefreshToken == "" && config.ClientID != "" {
		config.RefreshToken = sheets.RefreshTokenFromFile(config.TokenFile)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// override replaces *dst with value unless value is empty.
func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
