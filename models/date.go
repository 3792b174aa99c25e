package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// dateLayout is the calendar-only form accepted in request bodies.
const dateLayout = time.DateOnly

// ErrInvalidDate is returned when a date value can be neither parsed as
// RFC 3339 nor as a plain YYYY-MM-DD calendar date.
var ErrInvalidDate = errors.New("invalid date")

// Date is a point in time used for entry start/end dates.
//
// It accepts either an RFC 3339 timestamp or a YYYY-MM-DD calendar date on
// input and always emits RFC 3339 in UTC.
type Date struct {
	time.Time
}

// NewDate returns a Date for t normalized to UTC.
func NewDate(t time.Time) *Date {
	return &Date{Time: t.UTC()}
}

// ParseDate parses s as RFC 3339 or YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Date{Time: t.UTC()}, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{Time: t.UTC()}, nil
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.UTC().Format(time.RFC3339))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements [sql.Scanner] for timestamp columns as returned by
// both pgx (time.Time) and go-sqlite3 (time.Time or text).
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v.UTC()
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidDate, src)
	}
}

func (d *Date) scanString(s string) error {
	parsed, err := ParseDate(s)
	if err != nil {
		// go-sqlite3 text timestamps
		t, sqliteErr := time.Parse("2006-01-02 15:04:05.999999999-07:00", s)
		if sqliteErr != nil {
			return err
		}
		parsed = Date{Time: t.UTC()}
	}
	*d = parsed
	return nil
}
