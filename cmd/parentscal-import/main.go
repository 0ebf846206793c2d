// Command parentscal-import reads an iCalendar file given as the single
// positional argument and inserts its events into the configured Google
// calendar. It is the counterpart of parentscal-export for calendars
// produced elsewhere.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"parentscal/internal/auth"
	calclient "parentscal/internal/calendar"
	"parentscal/internal/config"
	"parentscal/internal/ics"
	"parentscal/internal/sync"

	"github.com/lmittmann/tint"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.ics>\n", os.Args[0])
		os.Exit(1)
	}
	path := os.Args[1]

	f, err := os.Open(path)
	if err != nil {
		slog.Error("failed to open calendar file", "path", path, "error", err)
		os.Exit(1)
	}
	events, err := ics.Read(f)
	f.Close()
	if err != nil {
		slog.Error("failed to read calendar file", "path", path, "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	oauthConfig, err := cfg.OAuthConfig()
	if err != nil {
		slog.Error("failed to load OAuth credentials", "error", err)
		os.Exit(1)
	}

	tokenStore := auth.NewFileTokenStore(cfg.TokenPath)
	httpClient, err := auth.GetAuthenticatedClient(ctx, oauthConfig, tokenStore)
	if err != nil {
		slog.Error("authentication failed", "error", err)
		os.Exit(1)
	}

	client, err := calclient.NewGoogleClient(ctx, httpClient)
	if err != nil {
		slog.Error("failed to create calendar client", "error", err)
		os.Exit(1)
	}

	summary, err := sync.Import(ctx, client, cfg.CalendarID, events)
	if err != nil {
		slog.Error("import aborted", "error", err,
			"imported", summary.Created, "failed", summary.Failed)
		os.Exit(1)
	}

	slog.Info("import complete", "path", path,
		"imported", summary.Created, "failed", summary.Failed)
}
