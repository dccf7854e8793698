package utils

import "errors"

var (
	ErrMissingQuery      = errors.New("missing query")
	ErrUpstreamCall      = errors.New("upstream call failure")
	ErrUpstreamFormat    = errors.New("upstream format error")
	ErrFieldValidation   = errors.New("field validation error")
	ErrSessionNotFound   = errors.New("session not found")
	ErrSearchInProgress  = errors.New("search already in progress")
	ErrInvalidSession    = errors.New("invalid session token")
	ErrResultNotFound    = errors.New("search result not found")
	ErrUnsupportedClient = errors.New("unsupported llm provider")
)

// LocationError is a failure of the location generator. Error returns the
// human-readable detail; errors.Is matches the kind.
type LocationError struct {
	Kind   error
	Detail string
}

func (e *LocationError) Error() string { return e.Detail }

func (e *LocationError) Unwrap() error { return e.Kind }

func NewLocationError(kind error, detail string) *LocationError {
	return &LocationError{Kind: kind, Detail: detail}
}

// ErrorCode is the machine-readable code for a generator failure.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingQuery):
		return "missing_query"
	case errors.Is(err, ErrUpstreamCall):
		return "upstream_call_failure"
	case errors.Is(err, ErrUpstreamFormat):
		return "upstream_format_error"
	case errors.Is(err, ErrFieldValidation):
		return "field_validation_error"
	default:
		return "internal_error"
	}
}
