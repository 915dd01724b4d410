package kurs

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate  = errors.New("invalid date format")
	ErrInvalidRange = errors.New("invalid startdate or enddate")
)

// dateLayout is the only accepted calendar format for path and query
// parameters. Parsing is strict: partial or ambiguous inputs fail.
const dateLayout = "2006-01-02"

type DateValidator struct{}

func NewDateValidator() *DateValidator {
	return &DateValidator{}
}

// ParseDate validates a single YYYY-MM-DD string and returns it as
// midnight UTC.
func (v *DateValidator) ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t.UTC(), nil
}

// ParseRange validates the startdate/enddate pair. Both bounds are
// required; the range itself is interpreted inclusively by the store.
func (v *DateValidator) ParseRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := v.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	endDate, err := v.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return startDate, endDate, nil
}
