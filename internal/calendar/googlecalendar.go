package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleClient is a wrapper around the Google Calendar API service.
type GoogleClient struct {
	service *gcal.Service
}

var _ Client = (*GoogleClient)(nil)

// NewGoogleClient creates a Google Calendar API client using the provided
// authenticated HTTP client.
func NewGoogleClient(ctx context.Context, httpClient *http.Client) (*GoogleClient, error) {
	service, err := gcal.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &GoogleClient{service: service}, nil
}

// ListEventsOnDay returns events titled exactly `title` on the given
// calendar day. The title is also passed as the free-text query so the
// service narrows the result server-side; the exact-match filter happens
// here because Q matches substrings.
func (c *GoogleClient) ListEventsOnDay(ctx context.Context, calendarID, title string, day time.Time) ([]*gcal.Event, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	events, err := c.listPages(ctx, func(pageToken string) (*gcal.Events, error) {
		return c.service.Events.List(calendarID).
			Context(ctx).
			Q(title).
			TimeMin(dayStart.Format(time.RFC3339)).
			TimeMax(dayEnd.Format(time.RFC3339)).
			SingleEvents(true).
			PageToken(pageToken).
			Do()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list events for %s: %w", dayStart.Format(dateFormat), classify(err))
	}

	var matched []*gcal.Event
	for _, event := range events {
		if event.Summary == title {
			matched = append(matched, event)
		}
	}
	return matched, nil
}

// ListEventsInRange returns all events in [timeMin, timeMax), expanding
// recurring events to single instances and following pagination.
func (c *GoogleClient) ListEventsInRange(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]*gcal.Event, error) {
	events, err := c.listPages(ctx, func(pageToken string) (*gcal.Events, error) {
		return c.service.Events.List(calendarID).
			Context(ctx).
			TimeMin(timeMin.Format(time.RFC3339)).
			TimeMax(timeMax.Format(time.RFC3339)).
			SingleEvents(true).
			OrderBy("startTime").
			PageToken(pageToken).
			Do()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", classify(err))
	}
	return events, nil
}

// listPages drains a paginated Events.List call.
func (c *GoogleClient) listPages(ctx context.Context, fetch func(pageToken string) (*gcal.Events, error)) ([]*gcal.Event, error) {
	var all []*gcal.Event
	pageToken := ""
	for {
		page, err := fetch(pageToken)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if page.NextPageToken == "" {
			return all, nil
		}
		pageToken = page.NextPageToken
	}
}

// InsertEvent inserts a new event into a calendar.
// Sets sendUpdates="none" to prevent notifications.
func (c *GoogleClient) InsertEvent(ctx context.Context, calendarID string, event *gcal.Event) error {
	_, err := c.service.Events.Insert(calendarID, event).
		Context(ctx).
		SendUpdates("none").
		Do()
	if err != nil {
		return fmt.Errorf("failed to insert event %q: %w", event.Summary, classify(err))
	}

	return nil
}

// DeleteEvent deletes an event from a calendar.
func (c *GoogleClient) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	err := c.service.Events.Delete(calendarID, eventID).
		Context(ctx).
		SendUpdates("none").
		Do()
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, classify(err))
	}

	return nil
}
