package sync

import (
	"context"
	"log/slog"

	gcal "google.golang.org/api/calendar/v3"

	"parentscal/internal/calendar"
)

// Import inserts already-decoded events into the calendar. It follows the
// same per-item failure model as Sync: recoverable failures are logged and
// counted while the loop continues, authentication failures abort the run.
// Unlike Sync it performs no existence check; the events come from a file
// the user chose to import, duplicates and all.
func Import(ctx context.Context, client calendar.Client, calendarID string, events []*gcal.Event) (*Summary, error) {
	sum := &Summary{}

	for _, event := range events {
		if err := client.InsertEvent(ctx, calendarID, event); err != nil {
			if calendar.IsFatal(err) {
				return sum, err
			}
			slog.Warn("insert failed, skipping", "title", event.Summary, "error", err)
			sum.Failed++
			continue
		}

		slog.Info("imported event", "title", event.Summary)
		sum.Created++
	}

	return sum, nil
}
