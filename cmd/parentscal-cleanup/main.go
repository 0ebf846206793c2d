// Command parentscal-cleanup removes Mother's Day and Father's Day events
// that earlier, pre-tagging runs created without the expected yellow color.
// It only touches events whose title and date both match a generated
// holiday; correctly tagged events and unrelated user events are kept.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"parentscal/internal/auth"
	calclient "parentscal/internal/calendar"
	"parentscal/internal/config"
	"parentscal/internal/holiday"
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

	syncer := sync.NewSyncer(client, cfg.CalendarID, holiday.Rules, holiday.StartYear, holiday.EndYear, holiday.ColorID)

	summary, err := syncer.Cleanup(ctx)
	if err != nil {
		slog.Error("cleanup aborted", "error", err,
			"deleted", summary.Deleted, "kept", summary.Skipped, "failed", summary.Failed)
		os.Exit(1)
	}

	slog.Info("cleanup complete",
		"deleted", summary.Deleted, "kept", summary.Skipped, "failed", summary.Failed)
}
