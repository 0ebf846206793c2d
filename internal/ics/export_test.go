package ics

import (
	"bytes"
	"strings"
	"testing"

	"parentscal/internal/holiday"

	"github.com/emersion/go-ical"
)

func TestWrite_EncodesAllDayEvents(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, holiday.Rules, 2025, 2026); err != nil {
		t.Fatalf("Write() returned an error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"SUMMARY:Mother's Day",
		"SUMMARY:Father's Day",
		"DTSTART;VALUE=DATE:20250511",
		"DTEND;VALUE=DATE:20250512",
		"DTSTART;VALUE=DATE:20250615",
		"DTSTART;VALUE=DATE:20260510",
		"DTSTART;VALUE=DATE:20260621",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q", want)
		}
	}

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 4 {
		t.Errorf("got %d VEVENTs, want 4", got)
	}
}

func TestWrite_RoundTripsThroughDecoder(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, holiday.Rules, holiday.StartYear, holiday.EndYear); err != nil {
		t.Fatalf("Write() returned an error: %v", err)
	}

	decoded, err := ical.NewDecoder(&buf).Decode()
	if err != nil {
		t.Fatalf("failed to decode generated calendar: %v", err)
	}

	years := holiday.EndYear - holiday.StartYear + 1
	uids := make(map[string]bool)
	count := 0
	for _, child := range decoded.Children {
		if child.Name != ical.CompEvent {
			continue
		}
		count++
		if uid := child.Props.Get(ical.PropUID); uid != nil {
			uids[uid.Value] = true
		}
	}

	if want := years * len(holiday.Rules); count != want {
		t.Errorf("got %d events, want %d", count, want)
	}
	if len(uids) != count {
		t.Errorf("UIDs are not unique: %d UIDs for %d events", len(uids), count)
	}
}
