// Package monthkey provides the validated "YYYY-MM" value type every
// reporting query is scoped by.
package monthkey

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	// MinYear and MaxYear bound the accepted year range.
	MinYear = 1900
	MaxYear = 2100
)

var (
	ErrInvalidFormat = errors.New("invalid_month_format")
	ErrOutOfRange    = errors.New("invalid_month_range")
)

var keyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// MonthKey is an immutable (year, month) pair. The zero value is not a valid
// key; use Parse or Of to construct one.
type MonthKey struct {
	year  int
	month time.Month
}

// Parse validates a "YYYY-MM" token and decomposes it into a MonthKey.
func Parse(text string) (MonthKey, error) {
	if !keyPattern.MatchString(text) {
		return MonthKey{}, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	year, _ := strconv.Atoi(text[:4])
	month, _ := strconv.Atoi(text[5:])
	if year < MinYear || year > MaxYear || month < 1 || month > 12 {
		return MonthKey{}, fmt.Errorf("%w: %q", ErrOutOfRange, text)
	}
	return MonthKey{year: year, month: time.Month(month)}, nil
}

// Of derives the month key of an instant. The instant is normalized to UTC
// first so records close to midnight never shift months with the server
// timezone.
func Of(t time.Time) MonthKey {
	utc := t.UTC()
	return MonthKey{year: utc.Year(), month: utc.Month()}
}

func (k MonthKey) Year() int { return k.year }

func (k MonthKey) Month() time.Month { return k.month }

// IsZero reports whether k is the zero value.
func (k MonthKey) IsZero() bool { return k.year == 0 }

func (k MonthKey) Equal(other MonthKey) bool { return k == other }

// String returns the canonical "YYYY-MM" form.
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.year, int(k.month))
}

// Range returns the inclusive calendar bounds of the month in UTC: the first
// instant of day one through 23:59:59.999 of the last day. Month and year
// rollover come from AddDate, so leap years need no special casing.
func (k MonthKey) Range() (start, end time.Time) {
	start = time.Date(k.year, k.month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// Contains reports whether the instant falls inside the month after UTC
// normalization.
func (k MonthKey) Contains(t time.Time) bool {
	return Of(t) == k
}
