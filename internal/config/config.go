// Package config resolves the tool's fixed-convention file locations and
// assembles the OAuth client configuration. The tool is flagless: the year
// range and color tag are compile-time constants, and only the credential
// and token paths can be moved, via environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
)

// Fixed file-name conventions, matching what the Google Cloud Console
// download flow produces.
const (
	DefaultCredentialsFile = "credentials.json"
	DefaultTokenFile       = "token.json"
	DefaultCalendarID      = "primary"
)

// ErrMissingCredentials marks the fatal startup condition of a missing
// OAuth client configuration file.
var ErrMissingCredentials = errors.New("credentials file not found")

// Config holds the resolved file locations and target calendar.
type Config struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load resolves the fixed-convention locations, honoring environment
// overrides (GOOGLE_CREDENTIALS_PATH, TOKEN_PATH, CALENDAR_ID). A .env file
// in the working directory is folded into the environment first. A missing
// credentials file is a fatal configuration error.
func Load() (*Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	cfg := &Config{
		CredentialsPath: DefaultCredentialsFile,
		TokenPath:       DefaultTokenFile,
		CalendarID:      DefaultCalendarID,
	}

	if v := os.Getenv("GOOGLE_CREDENTIALS_PATH"); v != "" {
		cfg.CredentialsPath = v
	}
	if v := os.Getenv("TOKEN_PATH"); v != "" {
		cfg.TokenPath = v
	}
	if v := os.Getenv("CALENDAR_ID"); v != "" {
		cfg.CalendarID = v
	}

	if _, err := os.Stat(cfg.CredentialsPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (download the OAuth client JSON from Google Cloud Console)", ErrMissingCredentials, cfg.CredentialsPath)
		}
		return nil, fmt.Errorf("failed to stat credentials file: %w", err)
	}

	return cfg, nil
}

// GoogleCredentials represents the structure of the Google OAuth
// credentials JSON file.
type GoogleCredentials struct {
	Installed struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	} `json:"installed"`
	Web struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	} `json:"web"`
}

// LoadGoogleCredentials loads the OAuth client ID and secret from a Google
// Cloud Console credentials JSON file.
func LoadGoogleCredentials(path string) (clientID, clientSecret string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read credentials file: %w", err)
	}

	var creds GoogleCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", "", fmt.Errorf("failed to parse credentials file: %w", err)
	}

	// Try "installed" first (desktop apps), then "web".
	if creds.Installed.ClientID != "" {
		return creds.Installed.ClientID, creds.Installed.ClientSecret, nil
	}
	if creds.Web.ClientID != "" {
		return creds.Web.ClientID, creds.Web.ClientSecret, nil
	}

	return "", "", fmt.Errorf("no client_id found in credentials file (expected 'installed' or 'web' section)")
}

// OAuthConfig assembles the oauth2 client configuration with the calendar
// scope. The redirect URL is replaced by the consent flow once it knows
// which local port it bound.
func (c *Config) OAuthConfig() (*oauth2.Config, error) {
	clientID, clientSecret, err := LoadGoogleCredentials(c.CredentialsPath)
	if err != nil {
		return nil, err
	}

	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  "http://127.0.0.1:8080",
		Scopes:       []string{"https://www.googleapis.com/auth/calendar"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/auth",
			TokenURL: "https://oauth2.googleapis.com/token",
		},
	}, nil
}
