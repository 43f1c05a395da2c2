// Package pricing derives the length and cost of a stay from calendar dates.
package pricing

import (
	"errors"
	"math"
	"time"

	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/timezone"
)

var ErrInvalidRange = errors.New("check-out must be after check-in")

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	return timezone.ParseDate(value) //nolint:wrapcheck
}

// ComputeNights counts nights between two calendar dates, ignoring time of
// day and zone. A partial day counts as a full night.
func ComputeNights(checkIn, checkOut time.Time) int {
	diff := timezone.CalendarDate(checkOut).Sub(timezone.CalendarDate(checkIn))

	return int(math.Ceil(diff.Hours() / constant.HoursPerDay))
}

// ComputeTotal is price × nights rounded to cents.
func ComputeTotal(price float64, nights int) float64 {
	return shared.RoundCurrency(price * float64(nights))
}

// Stay parses both dates and returns the number of nights, which is at least
// one. A range that does not move forward yields ErrInvalidRange.
func Stay(checkIn, checkOut string) (int, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return 0, err
	}

	out, err := ParseDate(checkOut)
	if err != nil {
		return 0, err
	}

	if !out.After(in) {
		return 0, ErrInvalidRange
	}

	return ComputeNights(in, out), nil
}
