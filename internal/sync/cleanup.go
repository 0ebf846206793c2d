package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"parentscal/internal/calendar"
)

// eventKey identifies a managed event by title and all-day start date.
type eventKey struct {
	title string
	date  string
}

// Cleanup deletes previously-created holiday events whose color tag is
// absent or differs from the expected constant. An event is only touched
// when its title matches a managed rule AND its all-day start date is one
// the date generator produces within the range; same-titled user events on
// other dates are left alone. Per-event delete failures are logged and
// skipped.
func (s *Syncer) Cleanup(ctx context.Context) (*Summary, error) {
	managed, err := s.managedDates()
	if err != nil {
		return &Summary{}, err
	}

	rangeStart := time.Date(s.startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(s.endYear+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	events, err := s.client.ListEventsInRange(ctx, s.calendarID, rangeStart, rangeEnd)
	if err != nil {
		// Nothing to iterate without the listing, fatal or not.
		return &Summary{}, err
	}

	sum := &Summary{}
	for _, event := range events {
		date, ok := calendar.AllDayStart(event)
		if !ok {
			continue
		}
		if !managed[eventKey{title: event.Summary, date: date}] {
			continue
		}

		if event.ColorId == s.colorID {
			slog.Debug("keeping correctly tagged event", "title", event.Summary, "date", date)
			sum.Skipped++
			continue
		}

		if err := s.client.DeleteEvent(ctx, s.calendarID, event.Id); err != nil {
			if calendar.IsFatal(err) {
				return sum, err
			}
			if errors.Is(err, calendar.ErrNotFound) {
				slog.Warn("event already gone", "title", event.Summary, "date", date, "error", err)
			} else {
				slog.Warn("delete failed, skipping", "title", event.Summary, "date", date, "error", err)
			}
			sum.Failed++
			continue
		}

		slog.Info("deleted mis-tagged event", "title", event.Summary, "date", date, "color", event.ColorId)
		sum.Deleted++
	}

	return sum, nil
}

// managedDates returns the set of (title, date) pairs the generator
// produces across the range.
func (s *Syncer) managedDates() (map[eventKey]bool, error) {
	managed := make(map[eventKey]bool, (s.endYear-s.startYear+1)*len(s.rules))
	for year := s.startYear; year <= s.endYear; year++ {
		for _, rule := range s.rules {
			day, err := rule.Date(year)
			if err != nil {
				return nil, fmt.Errorf("computing %s for %d: %w", rule.Name, year, err)
			}
			managed[eventKey{title: rule.Name, date: day.Format(dateFormat)}] = true
		}
	}
	return managed, nil
}
