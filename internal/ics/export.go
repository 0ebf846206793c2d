// Package ics renders the managed holiday set as an iCalendar file, for
// importing into calendar applications without touching the remote service.
package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	"parentscal/internal/holiday"

	"github.com/emersion/go-ical"
)

// Write encodes every holiday in [startYear, endYear] as an all-day VEVENT.
func Write(w io.Writer, rules []holiday.Rule, startYear, endYear int) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//parentscal//EN")

	now := time.Now().UTC()
	for year := startYear; year <= endYear; year++ {
		for _, rule := range rules {
			day, err := rule.Date(year)
			if err != nil {
				return fmt.Errorf("computing %s for %d: %w", rule.Name, year, err)
			}

			vevent := ical.NewComponent(ical.CompEvent)
			vevent.Props.SetText(ical.PropUID, eventUID(rule, year))
			vevent.Props.SetText(ical.PropSummary, rule.Name)

			dtstart := ical.NewProp(ical.PropDateTimeStart)
			dtstart.SetDate(day)
			vevent.Props.Set(dtstart)

			// DTEND is exclusive, so a one-day event ends the next day.
			dtend := ical.NewProp(ical.PropDateTimeEnd)
			dtend.SetDate(day.AddDate(0, 0, 1))
			vevent.Props.Set(dtend)

			vevent.Props.SetDateTime(ical.PropDateTimeStamp, now)

			cal.Children = append(cal.Children, vevent)
		}
	}

	return ical.NewEncoder(w).Encode(cal)
}

// eventUID builds a stable UID so re-importing the file updates events
// instead of duplicating them.
func eventUID(rule holiday.Rule, year int) string {
	slug := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(rule.Name, "'", ""), " ", "-"))
	return fmt.Sprintf("%04d-%s@parentscal", year, slug)
}
