package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingField is returned when a required request field is absent.
var ErrMissingField = errors.New("missing required field")

// ErrUpstreamAuth is returned when the upstream rejects the API key.
var ErrUpstreamAuth = errors.New("upstream authentication failed")

// ErrUpstreamBadRequest is returned when the upstream rejects the payload.
var ErrUpstreamBadRequest = errors.New("upstream rejected request")

// ErrUpstreamUnavailable covers network failures, upstream 5xx and
// unreadable responses.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// FieldError names the required request field that was absent.
type FieldError struct {
	Field string
}

// MissingField returns a FieldError for the given field name.
func MissingField(field string) *FieldError {
	return &FieldError{Field: field}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Is makes errors.Is(err, ErrMissingField) match any FieldError.
func (e *FieldError) Is(target error) bool {
	return target == ErrMissingField
}

// UpstreamBadRequestError carries the raw upstream error body so handlers
// can echo it back under the details key.
type UpstreamBadRequestError struct {
	Details json.RawMessage
}

func (e *UpstreamBadRequestError) Error() string {
	return ErrUpstreamBadRequest.Error()
}

// Is makes errors.Is(err, ErrUpstreamBadRequest) match any UpstreamBadRequestError.
func (e *UpstreamBadRequestError) Is(target error) bool {
	return target == ErrUpstreamBadRequest
}
