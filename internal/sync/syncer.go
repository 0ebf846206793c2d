// Package sync implements the two operations the tool performs against the
// remote calendar: ensuring the managed holiday events exist (Sync) and
// removing mis-tagged leftovers from earlier runs (Cleanup).
package sync

import (
	"context"
	"fmt"
	"log/slog"

	"parentscal/internal/calendar"
	"parentscal/internal/holiday"
)

const dateFormat = "2006-01-02"

// Summary counts the per-item outcomes of a run. It is what the user sees
// at the end and what makes a partially-failed run safe to repeat.
type Summary struct {
	Created int
	Skipped int
	Deleted int
	Failed  int
}

// Syncer runs the sync and cleanup operations over a fixed year range.
// Range, rules and color tag are explicit parameters rather than ambient
// state so tests can run over a narrow range without touching the network.
type Syncer struct {
	client     calendar.Client
	calendarID string
	rules      []holiday.Rule
	startYear  int
	endYear    int
	colorID    string
}

// NewSyncer creates a Syncer for the given calendar and year range.
func NewSyncer(client calendar.Client, calendarID string, rules []holiday.Rule, startYear, endYear int, colorID string) *Syncer {
	return &Syncer{
		client:     client,
		calendarID: calendarID,
		rules:      rules,
		startYear:  startYear,
		endYear:    endYear,
		colorID:    colorID,
	}
}

// Sync ensures exactly one all-day, color-tagged event exists for each
// (year, rule) pair in the range. Existing matches are skipped, which makes
// the operation idempotent. Recoverable per-item failures are logged and
// counted while the loop continues; authentication failures abort the run.
func (s *Syncer) Sync(ctx context.Context) (*Summary, error) {
	sum := &Summary{}

	for year := s.startYear; year <= s.endYear; year++ {
		for _, rule := range s.rules {
			day, err := rule.Date(year)
			if err != nil {
				// Only possible if a rule asks for an occurrence the month
				// doesn't have; the fixed rules never do.
				return sum, fmt.Errorf("computing %s for %d: %w", rule.Name, year, err)
			}
			date := day.Format(dateFormat)

			existing, err := s.client.ListEventsOnDay(ctx, s.calendarID, rule.Name, day)
			if err != nil {
				if calendar.IsFatal(err) {
					return sum, err
				}
				slog.Warn("existence check failed, skipping", "year", year, "title", rule.Name, "date", date, "error", err)
				sum.Failed++
				continue
			}

			if len(existing) > 0 {
				slog.Debug("event already present", "year", year, "title", rule.Name, "date", date)
				sum.Skipped++
				continue
			}

			event := calendar.NewAllDayEvent(rule.Name, day, s.colorID)
			if err := s.client.InsertEvent(ctx, s.calendarID, event); err != nil {
				if calendar.IsFatal(err) {
					return sum, err
				}
				slog.Warn("insert failed, skipping", "year", year, "title", rule.Name, "date", date, "error", err)
				sum.Failed++
				continue
			}

			slog.Info("created event", "year", year, "title", rule.Name, "date", date)
			sum.Created++
		}
	}

	return sum, nil
}
