package errors

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError indicates the upstream rejected the request with 429.
type RateLimitError struct {
	Service    string
	RetryAfter time.Duration
}

func NewRateLimitError(service string, retryAfter time.Duration) *RateLimitError {
	return &RateLimitError{Service: service, RetryAfter: retryAfter}
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s api rate limit exceeded", e.Service)
}

// IsRateLimitError checks if the error is a RateLimitError.
func IsRateLimitError(err error) bool {
	var e *RateLimitError
	return errors.As(err, &e)
}

func AsRateLimitError(err error) (*RateLimitError, bool) {
	var e *RateLimitError
	ok := errors.As(err, &e)
	return e, ok
}

// UpstreamError indicates the upstream answered with a non-success status.
type UpstreamError struct {
	Service    string
	StatusCode int
	Status     string
	msg        string
}

func NewUpstreamError(service string, statusCode int, status string) *UpstreamError {
	return &UpstreamError{Service: service, StatusCode: statusCode, Status: status}
}

// NewUpstreamErrorWithMessage overrides the default message built from the status.
func NewUpstreamErrorWithMessage(service string, statusCode int, msg string) *UpstreamError {
	return &UpstreamError{Service: service, StatusCode: statusCode, msg: msg}
}

func (e *UpstreamError) Error() string {
	if e.msg != "" {
		return fmt.Sprintf("%s api error: %s", e.Service, e.msg)
	}
	return fmt.Sprintf("%s api error: %d %s", e.Service, e.StatusCode, e.Status)
}

func IsUpstreamError(err error) bool {
	var e *UpstreamError
	return errors.As(err, &e)
}

// UpstreamStatusCode returns the status code carried by an UpstreamError, or 0.
func UpstreamStatusCode(err error) int {
	var e *UpstreamError
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// UpstreamUnreachableError indicates the request never got an HTTP response.
type UpstreamUnreachableError struct {
	Service string
	err     error
}

func NewUpstreamUnreachableError(service string, err error) *UpstreamUnreachableError {
	return &UpstreamUnreachableError{Service: service, err: err}
}

func (e *UpstreamUnreachableError) Error() string {
	return fmt.Sprintf("%s api unreachable: %v", e.Service, e.err)
}

func (e *UpstreamUnreachableError) Unwrap() error {
	return e.err
}

func IsUpstreamUnreachableError(err error) bool {
	var e *UpstreamUnreachableError
	return errors.As(err, &e)
}

// ConfigurationError indicates a required setting is missing.
type ConfigurationError struct {
	msg string
}

func NewConfigurationError(msg string) *ConfigurationError {
	return &ConfigurationError{msg: msg}
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// ResourceNotFoundError indicates a resource was not found.
type ResourceNotFoundError struct {
	Kind string
	ID   string
}

func NewResourceNotFoundError(kind string, id ...string) *ResourceNotFoundError {
	e := &ResourceNotFoundError{Kind: kind}
	if len(id) > 0 {
		e.ID = id[0]
	}
	return e
}

func NewAnimeNotFoundError(id int) *ResourceNotFoundError {
	return NewResourceNotFoundError("anime", fmt.Sprintf("%d", id))
}

func NewVideoNotFoundError(id string) *ResourceNotFoundError {
	return NewResourceNotFoundError("video", id)
}

func (e *ResourceNotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Kind)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// ValidationError indicates the caller sent invalid input.
type ValidationError struct {
	msg string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.msg
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}
