package errs

import (
	"errors"
	"fmt"
)

// Kinds reported to callers in the stable error body. Every failure that
// leaves a handler carries exactly one of these.
const (
	KindValidation          = "validation_error"
	KindUpstreamUnreachable = "upstream_unreachable"
	KindUpstreamError       = "upstream_error"
	KindUpstreamRateLimited = "upstream_rate_limited"
	KindMalformedResponse   = "upstream_malformed_response"
)

var (
	UpstreamUnreachable = errors.New("upstream unreachable")
	MalformedResponse   = errors.New("upstream returned an unreadable response")
)

// ValidationError reports bad or missing caller input for a named field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// UpstreamError is a failure the upstream service itself reported inside its
// response envelope. Code is the upstream status, mirrored to the caller.
type UpstreamError struct {
	Code    int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.Code, e.Message)
}

// IsRateLimit reports whether the upstream rejected the call for exceeding
// its bandwidth or request quota. Never retried here; the caller decides.
func (e *UpstreamError) IsRateLimit() bool {
	return e.Code == 509
}

// Kind maps an error to its caller-visible kind string.
func Kind(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		if ue.IsRateLimit() {
			return KindUpstreamRateLimited
		}
		return KindUpstreamError
	}
	if errors.Is(err, MalformedResponse) {
		return KindMalformedResponse
	}
	if errors.Is(err, UpstreamUnreachable) {
		return KindUpstreamUnreachable
	}
	return KindUpstreamError
}

// HTTPStatus chooses the response status for an error: validation failures
// are the caller's fault, upstream-reported failures mirror the upstream
// status, everything transport-shaped is a bad gateway.
func HTTPStatus(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return 400
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		if ue.Code >= 400 && ue.Code < 600 {
			return ue.Code
		}
		return 502
	}
	return 502
}

func UnwrapOrSelf(err error) error {
	unwrapped := errors.Unwrap(err)
	if unwrapped == nil {
		return err
	}
	return unwrapped
}
