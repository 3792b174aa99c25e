package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle       = errors.New("title is required")
	ErrInvalidAmount    = errors.New("amount must be a finite non-negative number")
	ErrInvalidDateRange = errors.New("end date must not precede start date")
)
