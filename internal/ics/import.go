package ics

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	gcal "google.golang.org/api/calendar/v3"
)

// Read decodes an iCalendar stream into Google Calendar events ready for
// insertion. Events without a start are rejected rather than skipped so a
// malformed file fails loudly before anything is sent to the service.
func Read(r io.Reader) ([]*gcal.Event, error) {
	cal, err := ical.NewDecoder(r).Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to parse iCalendar data: %w", err)
	}

	var events []*gcal.Event
	for _, child := range cal.Children {
		if child.Name != ical.CompEvent {
			continue
		}
		event, err := veventToGoogleEvent(child)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("no events found in calendar")
	}
	return events, nil
}

// veventToGoogleEvent converts a single VEVENT component. A DTSTART with
// VALUE=DATE makes an all-day event; a missing DTEND defaults to one day
// for all-day events and one hour for timed ones.
func veventToGoogleEvent(vevent *ical.Component) (*gcal.Event, error) {
	event := &gcal.Event{}

	if summary := vevent.Props.Get(ical.PropSummary); summary != nil {
		event.Summary = summary.Value
	}
	if desc := vevent.Props.Get(ical.PropDescription); desc != nil {
		event.Description = desc.Value
	}
	if loc := vevent.Props.Get(ical.PropLocation); loc != nil {
		event.Location = loc.Value
	}

	dtstart := vevent.Props.Get(ical.PropDateTimeStart)
	if dtstart == nil {
		return nil, fmt.Errorf("event %q has no start", event.Summary)
	}
	start, err := dtstart.DateTime(time.UTC)
	if err != nil {
		return nil, fmt.Errorf("event %q has an invalid start: %w", event.Summary, err)
	}
	allDay := dtstart.Params.Get("VALUE") == "DATE"

	var end time.Time
	if dtend := vevent.Props.Get(ical.PropDateTimeEnd); dtend != nil {
		if end, err = dtend.DateTime(time.UTC); err != nil {
			return nil, fmt.Errorf("event %q has an invalid end: %w", event.Summary, err)
		}
	} else if allDay {
		end = start.AddDate(0, 0, 1)
	} else {
		end = start.Add(time.Hour)
	}

	if allDay {
		event.Start = &gcal.EventDateTime{Date: start.Format("2006-01-02")}
		event.End = &gcal.EventDateTime{Date: end.Format("2006-01-02")}
	} else {
		event.Start = &gcal.EventDateTime{DateTime: start.Format(time.RFC3339)}
		event.End = &gcal.EventDateTime{DateTime: end.Format(time.RFC3339)}
	}

	return event, nil
}
