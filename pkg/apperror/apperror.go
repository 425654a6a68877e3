package apperror

import (
	"errors"
	"time"
)

// Error attaches the offending detail and the time the failure was observed
// to one of the usecase sentinel errors. Handlers keep matching with
// errors.Is against the sentinel; the detail and timestamp are for the
// response body and the logs, not for control flow.
type Error struct {
	Err        error
	Detail     string
	OccurredAt time.Time
}

func New(sentinel error, detail string, occurredAt time.Time) *Error {
	return &Error{
		Err:        sentinel,
		Detail:     detail,
		OccurredAt: occurredAt,
	}
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Detail returns the detail text of err if it carries one, falling back to
// err.Error().
func Detail(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Detail
	}
	return err.Error()
}
