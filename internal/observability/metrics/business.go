package metrics

import (
	"strconv"
	"time"

	"blog-backend/internal/shared/apperror"
)

// Write outcomes
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// RecordHTTPRequest records one handled request
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordWrite records the outcome of a write on record ("author", "post").
// A validation error also increments ValidationFailuresTotal for its field.
func RecordWrite(record, op string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
		if ve, ok := apperror.AsValidation(err); ok {
			outcome = OutcomeInvalid
			ValidationFailuresTotal.WithLabelValues(record, ve.Field).Inc()
		}
	}
	RecordWritesTotal.WithLabelValues(record, op, outcome).Inc()
}
