// Command parentscal-sync ensures Mother's Day and Father's Day exist as
// yellow all-day events on the remote calendar for every year of the fixed
// range. Running it again is a no-op for years already synced.
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

	summary, err := syncer.Sync(ctx)
	if err != nil {
		slog.Error("sync aborted", "error", err,
			"created", summary.Created, "skipped", summary.Skipped, "failed", summary.Failed)
		os.Exit(1)
	}

	// Per-item failures don't fail the run; it is safe to rerun.
	slog.Info("sync complete",
		"years", holiday.EndYear-holiday.StartYear+1,
		"created", summary.Created, "skipped", summary.Skipped, "failed", summary.Failed)
}
