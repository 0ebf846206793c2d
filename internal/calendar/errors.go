package calendar

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

// Failure classes for remote calls. Authentication failures are fatal to a
// run; the rest are per-item outcomes the caller logs and skips.
var (
	ErrAuth             = errors.New("authentication failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrRateLimited      = errors.New("rate limited")
	ErrNotFound         = errors.New("not found")
	ErrRemote           = errors.New("remote service error")
)

// classify maps an error from the calendar service onto the failure
// taxonomy so callers can decide between aborting and skipping with
// errors.Is instead of inspecting HTTP status codes.
func classify(err error) error {
	if err == nil {
		return nil
	}

	// Token refresh failures surface as oauth2 errors, not API errors.
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return fmt.Errorf("%w: %w", ErrAuth, err)
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", ErrRemote, err)
	}

	switch apiErr.Code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrAuth, err)
	case http.StatusForbidden:
		for _, item := range apiErr.Errors {
			if item.Reason == "rateLimitExceeded" || item.Reason == "userRateLimitExceeded" {
				return fmt.Errorf("%w: %w", ErrRateLimited, err)
			}
		}
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	case http.StatusNotFound, http.StatusGone:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrRemote, err)
	}
}

// IsFatal reports whether err must abort the whole run rather than be
// skipped at the item level. Only authentication failures qualify: without
// a valid session no further event operation can succeed.
func IsFatal(err error) bool {
	return errors.Is(err, ErrAuth)
}
