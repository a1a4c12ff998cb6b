package sheets

import (
	"context"
	"fmt"
	"os"

	"github.com/Veraticus/stt-search/internal/common"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ReadonlyScope is the only scope the reader needs.
const ReadonlyScope = sheets.SpreadsheetsReadonlyScope

// NewService creates the Google Sheets API service for the configured
// credentials. It is meant to be built once at startup and shared.
func NewService(ctx context.Context, config Config, opts ...option.ClientOption) (*sheets.Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	authOpt, err := credentialsOption(ctx, config)
	if err != nil {
		return nil, err
	}

	srv, err := sheets.NewService(ctx, append([]option.ClientOption{authOpt}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}

// credentialsOption turns the configured auth method into a client option.
func credentialsOption(ctx context.Context, config Config) (option.ClientOption, error) {
	switch config.AuthMethod() {
	case AuthServiceAccount:
		jsonKey, err := os.ReadFile(config.ServiceAccountPath) // #nosec G304
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, ReadonlyScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		return option.WithHTTPClient(oauth2.NewClient(ctx, jwtConfig.TokenSource(ctx))), nil

	case AuthOAuth2:
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{ReadonlyScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		return option.WithHTTPClient(oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, token))), nil

	case AuthAPIKey:
		return option.WithAPIKey(config.APIKey), nil

	default:
		return nil, fmt.Errorf("%w: no authentication method configured", common.ErrMissingConfig)
	}
}
