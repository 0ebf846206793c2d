package calendar

import (
	"context"
	"errors"
	"testing"

	gcal "google.golang.org/api/calendar/v3"
)

func TestListPages_DrainsAllPages(t *testing.T) {
	pages := map[string]*gcal.Events{
		"": {
			Items:         []*gcal.Event{{Id: "a"}, {Id: "b"}},
			NextPageToken: "page-2",
		},
		"page-2": {
			Items:         []*gcal.Event{{Id: "c"}},
			NextPageToken: "page-3",
		},
		"page-3": {
			Items: []*gcal.Event{{Id: "d"}},
		},
	}

	var tokens []string
	client := &GoogleClient{}
	events, err := client.listPages(context.Background(), func(pageToken string) (*gcal.Events, error) {
		tokens = append(tokens, pageToken)
		page, ok := pages[pageToken]
		if !ok {
			t.Fatalf("fetch called with unknown page token %q", pageToken)
		}
		return page, nil
	})
	if err != nil {
		t.Fatalf("listPages() returned an error: %v", err)
	}

	wantIDs := []string{"a", "b", "c", "d"}
	if len(events) != len(wantIDs) {
		t.Fatalf("got %d events, want %d", len(events), len(wantIDs))
	}
	for i, id := range wantIDs {
		if events[i].Id != id {
			t.Errorf("events[%d].Id = %q, want %q", i, events[i].Id, id)
		}
	}

	wantTokens := []string{"", "page-2", "page-3"}
	if len(tokens) != len(wantTokens) {
		t.Fatalf("fetch called %d times, want %d", len(tokens), len(wantTokens))
	}
	for i, token := range wantTokens {
		if tokens[i] != token {
			t.Errorf("fetch call %d used token %q, want %q", i, tokens[i], token)
		}
	}
}

func TestListPages_PropagatesMidPaginationError(t *testing.T) {
	fetchErr := errors.New("backend error")

	calls := 0
	client := &GoogleClient{}
	events, err := client.listPages(context.Background(), func(pageToken string) (*gcal.Events, error) {
		calls++
		if pageToken == "" {
			return &gcal.Events{
				Items:         []*gcal.Event{{Id: "a"}},
				NextPageToken: "page-2",
			}, nil
		}
		return nil, fetchErr
	})

	if !errors.Is(err, fetchErr) {
		t.Fatalf("expected the second page's error, got: %v", err)
	}
	if events != nil {
		t.Errorf("no events should be returned on failure, got %d", len(events))
	}
	if calls != 2 {
		t.Errorf("fetch called %d times, want 2", calls)
	}
}
