package service

import (
	"errors"

	"github.com/xolan/worklog/internal/storage"
	"github.com/xolan/worklog/internal/worktime"
)

// Kind classifies a service error for presentation (HTTP status, CLI hint).
type Kind string

const (
	KindMissingField        Kind = "missing_field"
	KindInvalidFormat       Kind = "invalid_format"
	KindInvalidValue        Kind = "invalid_value"
	KindNonPositiveDuration Kind = "non_positive_duration"
	KindDuplicateKey        Kind = "duplicate_key"
	KindNotFound            Kind = "not_found"
	KindStorageFailure      Kind = "storage_failure"
)

// Common errors for the service layer
var (
	ErrMissingField = errors.New("missing required fields")
	ErrInvalidDate  = errors.New("invalid date format: expected YYYY-MM-DD")
)

// KindOf classifies err. Any error that is not a recognised validation or
// lookup error is a storage failure. KindOf(nil) is "".
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingField):
		return KindMissingField
	case errors.Is(err, ErrInvalidDate), errors.Is(err, worktime.ErrInvalidFormat):
		return KindInvalidFormat
	case errors.Is(err, worktime.ErrInvalidValue):
		return KindInvalidValue
	case errors.Is(err, worktime.ErrNonPositiveDuration):
		return KindNonPositiveDuration
	case errors.Is(err, storage.ErrDuplicateKey):
		return KindDuplicateKey
	case errors.Is(err, storage.ErrNotFound):
		return KindNotFound
	default:
		return KindStorageFailure
	}
}

// IsValidation reports whether k is caused by bad input rather than state or storage.
func (k Kind) IsValidation() bool {
	switch k {
	case KindMissingField, KindInvalidFormat, KindInvalidValue, KindNonPositiveDuration:
		return true
	}
	return false
}

// Message returns the user-facing message for err. Storage failures carry
// the underlying error text.
func Message(err error) string {
	switch KindOf(err) {
	case "":
		return ""
	case KindMissingField:
		return "Missing required fields"
	case KindInvalidFormat:
		if errors.Is(err, ErrInvalidDate) {
			return "Invalid date format. Use YYYY-MM-DD"
		}
		return "Invalid time format. Use HH:MM"
	case KindInvalidValue:
		return "Invalid time values"
	case KindNonPositiveDuration:
		return "Out time must be after in time"
	case KindDuplicateKey:
		return "Entry already exists for this date"
	case KindNotFound:
		return "No entry exists for this date"
	default:
		return err.Error()
	}
}
