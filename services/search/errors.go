package search

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEmptyQuery is returned by the upstream client for a blank query.
	ErrEmptyQuery = errors.New("search query is required")

	// ErrQueryTooLong rejects queries over the length cap.
	ErrQueryTooLong = errors.New("search query too long")

	// ErrQueryForbiddenChars rejects queries with markup/shell characters.
	ErrQueryForbiddenChars = errors.New("invalid characters in search")

	// ErrNoResults means the upstream answered but found nothing.
	ErrNoResults = errors.New("no products found")

	// ErrSearchTimeout means the upstream call exceeded its deadline. Kept
	// distinct so callers can show a "took too long" message.
	ErrSearchTimeout = errors.New("search took too long")

	// ErrSuperseded means a newer query arrived inside the debounce window;
	// this call was never dispatched.
	ErrSuperseded = errors.New("search superseded by a newer query")
)

// ThrottledError rejects a repeat of the same query inside the per-query
// throttle interval.
type ThrottledError struct {
	RetryAt time.Time
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("search recently performed, try again after %s", e.RetryAt.Format(time.Kitchen))
}

// RateLimitedError rejects a call once the rolling window is full. RetryAt is
// when the oldest call in the window expires, so callers can show a countdown.
type RateLimitedError struct {
	RetryAt time.Time
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("request limit reached, try again after %s", e.RetryAt.Format(time.Kitchen))
}
