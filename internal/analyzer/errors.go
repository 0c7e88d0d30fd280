package analyzer

import (
	"errors"
	"fmt"
)

// ErrAnalysisUnavailable is the single outcome for every provider-boundary
// failure: missing credentials, call failure, timeout, or unparsable output.
// No partial session is produced when it is returned.
var ErrAnalysisUnavailable = errors.New("analysis unavailable")

// ErrAnalysisInFlight rejects a second analysis request for a session that
// already has one pending.
var ErrAnalysisInFlight = errors.New("analysis already in flight for session")

// ValidationError reports malformed or out-of-vocabulary input rejected
// before any provider call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
