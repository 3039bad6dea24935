package renamed

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptyFile        = errors.New("file data cannot be empty")
	ErrMissingFilename  = errors.New("filename is required for byte and reader inputs")
	ErrNilReader        = errors.New("reader cannot be nil")
	ErrNilWriter        = errors.New("writer cannot be nil")
	ErrEmptyDownloadURL = errors.New("download url cannot be empty")
	ErrEmptyStatusURL   = errors.New("status url cannot be empty")
	ErrNilResult        = errors.New("split result cannot be nil")
)

// ErrorKind discriminates the failure classes reported by the API client.
type ErrorKind string

const (
	KindAuthentication      ErrorKind = "authentication_error"
	KindInsufficientCredits ErrorKind = "insufficient_credits"
	KindValidation          ErrorKind = "validation_error"
	KindRateLimit           ErrorKind = "rate_limit_error"
	KindNetwork             ErrorKind = "network_error"
	KindTimeout             ErrorKind = "timeout_error"
	KindJob                 ErrorKind = "job_error"
	KindAPI                 ErrorKind = "api_error"
)

// Error is the single error type for API, transport and job failures.
// Kind selects the failure class; the remaining fields are populated only
// where they apply (StatusCode for HTTP-level failures, RetryAfter for rate
// limits, JobID for job failures, Details for validation payloads).
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Details    any
	RetryAfter int
	JobID      string
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

func newNetworkError(message string) *Error {
	if message == "" {
		message = "Network request failed"
	}
	return &Error{Kind: KindNetwork, Message: message}
}

func newTimeoutError(message string) *Error {
	if message == "" {
		message = "Request timed out"
	}
	return &Error{Kind: KindTimeout, Message: message}
}

func newJobError(message, jobID string) *Error {
	return &Error{Kind: KindJob, Message: message, JobID: jobID}
}

// errorFromStatus maps an HTTP error response to a typed error. The body is
// decoded best-effort: a non-JSON body is carried as-is in Details and the
// message falls back to the status text.
func errorFromStatus(statusCode int, statusText string, body []byte) *Error {
	var payload any
	if len(body) > 0 {
		var parsed map[string]any
		if err := json.Unmarshal(body, &parsed); err == nil {
			payload = parsed
		} else {
			payload = string(body)
		}
	}

	message := statusText
	fields, _ := payload.(map[string]any)
	if msg, ok := fields["error"].(string); ok && msg != "" {
		message = msg
	}

	switch statusCode {
	case 401:
		if message == "" {
			message = "Invalid or missing API key"
		}
		return &Error{Kind: KindAuthentication, Message: message, StatusCode: statusCode}
	case 402:
		if message == "" {
			message = "Insufficient credits"
		}
		return &Error{Kind: KindInsufficientCredits, Message: message, StatusCode: statusCode}
	case 400, 422:
		return &Error{Kind: KindValidation, Message: message, StatusCode: statusCode, Details: payload}
	case 429:
		if message == "" {
			message = "Rate limit exceeded"
		}
		retryAfter := 0
		if ra, ok := fields["retryAfter"].(float64); ok {
			retryAfter = int(ra)
		}
		return &Error{Kind: KindRateLimit, Message: message, StatusCode: statusCode, RetryAfter: retryAfter}
	default:
		return &Error{Kind: KindAPI, Message: message, StatusCode: statusCode, Details: payload}
	}
}

// isRetryable reports whether an attempt failure merits another attempt.
// Only transport-level network failures and 5xx API errors qualify; client
// errors must be remediated by the caller and retrying an upload on them
// would silently duplicate side effects.
func isRetryable(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Kind {
	case KindNetwork:
		return true
	case KindAPI:
		return apiErr.StatusCode >= 500
	default:
		return false
	}
}
