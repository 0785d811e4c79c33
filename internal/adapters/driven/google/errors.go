package google

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gsearch/internal/core/domain"
)

// Common Google API errors.
var (
	// ErrUnauthorized indicates an invalid API key.
	ErrUnauthorized = errors.New("google: unauthorised (invalid API key)")

	// ErrForbidden indicates the key is not allowed to use the API.
	ErrForbidden = errors.New("google: forbidden (API not enabled or key restricted)")

	// ErrRateLimited indicates the API rate limit or daily quota was exceeded.
	ErrRateLimited = errors.New("google: rate limit exceeded")

	// ErrNoItems indicates a response body without an items field.
	ErrNoItems = errors.New("google: response has no items")
)

// IsUnauthorized returns true if the error indicates invalid credentials.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusUnauthorized
	}
	return false
}

// IsForbidden returns true if the error indicates insufficient permissions.
func IsForbidden(err error) bool {
	if errors.Is(err, ErrForbidden) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusForbidden
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting or quota exhaustion.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests
	}
	return false
}

// WrapError converts a failed call into a domain.ErrSearchRequest.
// The original error stays in the chain so the API's own error payload
// is part of the message; known status codes also match the sentinels above.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return fmt.Errorf("%w: %w", domain.ErrSearchRequest, err)
	}

	switch gerr.Code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %w", domain.ErrSearchRequest, ErrUnauthorized, err)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %w: %w", domain.ErrSearchRequest, ErrForbidden, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: %w", domain.ErrSearchRequest, ErrRateLimited, err)
	default:
		return fmt.Errorf("%w: %w", domain.ErrSearchRequest, err)
	}
}
