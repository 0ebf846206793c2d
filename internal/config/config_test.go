package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCredentialsFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "credentials.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write credentials file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeCredentialsFile(t, dir, `{"installed":{"client_id":"id","client_secret":"secret"}}`)
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWD); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	})
	t.Setenv("GOOGLE_CREDENTIALS_PATH", "")
	t.Setenv("TOKEN_PATH", "")
	t.Setenv("CALENDAR_ID", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned an error: %v", err)
	}

	if cfg.CredentialsPath != DefaultCredentialsFile {
		t.Errorf("CredentialsPath = %q, want %q", cfg.CredentialsPath, DefaultCredentialsFile)
	}
	if cfg.TokenPath != DefaultTokenFile {
		t.Errorf("TokenPath = %q, want %q", cfg.TokenPath, DefaultTokenFile)
	}
	if cfg.CalendarID != DefaultCalendarID {
		t.Errorf("CalendarID = %q, want %q", cfg.CalendarID, DefaultCalendarID)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	credsPath := writeCredentialsFile(t, dir, `{"installed":{"client_id":"id","client_secret":"secret"}}`)

	t.Setenv("GOOGLE_CREDENTIALS_PATH", credsPath)
	t.Setenv("TOKEN_PATH", filepath.Join(dir, "other-token.json"))
	t.Setenv("CALENDAR_ID", "family@group.calendar.google.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned an error: %v", err)
	}

	if cfg.CredentialsPath != credsPath {
		t.Errorf("CredentialsPath = %q, want %q", cfg.CredentialsPath, credsPath)
	}
	if cfg.TokenPath != filepath.Join(dir, "other-token.json") {
		t.Errorf("TokenPath = %q", cfg.TokenPath)
	}
	if cfg.CalendarID != "family@group.calendar.google.com" {
		t.Errorf("CalendarID = %q", cfg.CalendarID)
	}
}

func TestLoad_MissingCredentialsFile(t *testing.T) {
	t.Setenv("GOOGLE_CREDENTIALS_PATH", filepath.Join(t.TempDir(), "nope.json"))

	_, err := Load()
	if !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestLoadGoogleCredentials_Installed(t *testing.T) {
	path := writeCredentialsFile(t, t.TempDir(),
		`{"installed":{"client_id":"installed-id","client_secret":"installed-secret"}}`)

	clientID, clientSecret, err := LoadGoogleCredentials(path)
	if err != nil {
		t.Fatalf("LoadGoogleCredentials() returned an error: %v", err)
	}
	if clientID != "installed-id" || clientSecret != "installed-secret" {
		t.Errorf("got (%q, %q), want installed section values", clientID, clientSecret)
	}
}

func TestLoadGoogleCredentials_Web(t *testing.T) {
	path := writeCredentialsFile(t, t.TempDir(),
		`{"web":{"client_id":"web-id","client_secret":"web-secret"}}`)

	clientID, clientSecret, err := LoadGoogleCredentials(path)
	if err != nil {
		t.Fatalf("LoadGoogleCredentials() returned an error: %v", err)
	}
	if clientID != "web-id" || clientSecret != "web-secret" {
		t.Errorf("got (%q, %q), want web section values", clientID, clientSecret)
	}
}

func TestLoadGoogleCredentials_Invalid(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadGoogleCredentials(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}

	path := writeCredentialsFile(t, dir, `{}`)
	if _, _, err := LoadGoogleCredentials(path); err == nil {
		t.Error("expected an error when neither section carries a client_id")
	}
}

func TestOAuthConfig(t *testing.T) {
	path := writeCredentialsFile(t, t.TempDir(),
		`{"installed":{"client_id":"id","client_secret":"secret"}}`)
	cfg := &Config{CredentialsPath: path}

	oauthCfg, err := cfg.OAuthConfig()
	if err != nil {
		t.Fatalf("OAuthConfig() returned an error: %v", err)
	}

	if oauthCfg.ClientID != "id" || oauthCfg.ClientSecret != "secret" {
		t.Errorf("got client (%q, %q)", oauthCfg.ClientID, oauthCfg.ClientSecret)
	}
	if len(oauthCfg.Scopes) != 1 || oauthCfg.Scopes[0] != "https://www.googleapis.com/auth/calendar" {
		t.Errorf("Scopes = %v, want the calendar scope", oauthCfg.Scopes)
	}
}
