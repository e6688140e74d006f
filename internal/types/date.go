package types

import (
	"time"

	ierr "github.com/billfold/billfold/internal/errors"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component.
// All comparisons are date-granular and timezone independent;
// the underlying instant is pinned to UTC midnight.
type Date struct {
	t time.Time
}

// NewDate constructs a Date from year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates the given instant to its UTC calendar date
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return NewDate(y, m, d)
}

// Today returns the current calendar date in UTC
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a date in the 2006-01-02 wire format
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ierr.WithError(err).
			WithHintf("Invalid date %q, expected format %s", s, DateLayout).
			Mark(ierr.ErrValidation)
	}
	return DateOf(t), nil
}

// MustParseDate parses a date literal and panics on failure.
// Intended for seed data and tests only.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// AddDays returns the date n days later, handling month and year
// boundaries via time.AddDate.
func (d Date) AddDays(n int) Date {
	return DateOf(d.t.AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// Between reports whether d falls within [from, to] inclusive
func (d Date) Between(from, to Date) bool {
	return !d.Before(from) && !d.After(to)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the date as a time.Time at UTC midnight
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler using the 2006-01-02 format
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return ierr.NewError("invalid date value").
			WithHintf("Expected a JSON string in %s format", DateLayout).
			Mark(ierr.ErrValidation)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
