package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/lyra-school/lyra-client/internal/store"
)

var (
	// ErrConflict is returned when CouchDB rejects a write because the
	// document revision changed in between.
	ErrConflict = errors.New("document update conflict")

	// ErrUnauthorized is returned when the configured credentials are rejected.
	ErrUnauthorized = errors.New("couchdb credentials rejected")
)

// mapHTTPError converts a non-2xx response into an error wrapping
// [store.ErrRemote]. Throttling and server-side failures wrap
// [store.ErrRemoteTransient].
func mapHTTPError(op string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: %s: %w: %s", store.ErrRemote, op, ErrUnauthorized, body)
	case code == http.StatusConflict:
		return fmt.Errorf("%w: %s: %w: %s", store.ErrRemote, op, ErrConflict, body)
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s: http %d: %s", store.ErrRemoteTransient, op, code, body)
	default:
		return fmt.Errorf("%w: %s: http %d: %s", store.ErrRemote, op, code, body)
	}
}

// transportError wraps a failure to get any response at all.
func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", store.ErrRemoteTransient, op, err)
}
