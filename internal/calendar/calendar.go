// Package calendar wraps the remote calendar service behind a small
// interface so the sync and cleanup operations can be tested without
// network access.
package calendar

import (
	"context"
	"time"

	gcal "google.golang.org/api/calendar/v3"
)

const dateFormat = "2006-01-02"

// Client is the calendar-service surface the sync and cleanup operations need.
type Client interface {
	// ListEventsOnDay returns events titled exactly `title` that fall on the
	// given calendar day.
	ListEventsOnDay(ctx context.Context, calendarID, title string, day time.Time) ([]*gcal.Event, error)
	// ListEventsInRange returns all events in [timeMin, timeMax), expanding
	// recurring events to single instances.
	ListEventsInRange(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]*gcal.Event, error)
	InsertEvent(ctx context.Context, calendarID string, event *gcal.Event) error
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// NewAllDayEvent builds an all-day event for a single calendar date.
// The service wants an exclusive end date, so End is the following day.
func NewAllDayEvent(title string, day time.Time, colorID string) *gcal.Event {
	return &gcal.Event{
		Summary: title,
		Start:   &gcal.EventDateTime{Date: day.Format(dateFormat)},
		End:     &gcal.EventDateTime{Date: day.AddDate(0, 0, 1).Format(dateFormat)},
		ColorId: colorID,
	}
}

// AllDayStart returns an event's all-day start date. ok is false for timed
// events or events without a start.
func AllDayStart(event *gcal.Event) (date string, ok bool) {
	if event == nil || event.Start == nil || event.Start.Date == "" {
		return "", false
	}
	return event.Start.Date, true
}
