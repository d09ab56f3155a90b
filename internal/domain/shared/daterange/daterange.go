package daterange

import (
	"errors"
	"strings"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// Layout is the calendar-date format used by form controls and the tour collection.
const Layout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("daterange: invalid calendar date")
	ErrInvalidRange = errors.New("daterange: end must not be before start")
)

// Day is a calendar date with day granularity, stored at UTC midnight.
// The zero Day is "no date"; every parsed date is valid, including 0001-01-01.
type Day struct {
	t     time.Time
	valid bool
}

// Parse reads a YYYY-MM-DD value. Empty or malformed input yields ErrInvalidDate.
func Parse(value string) (Day, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Day{}, ErrInvalidDate
	}
	t, err := time.Parse(Layout, value)
	if err != nil {
		return Day{}, ErrInvalidDate
	}
	return Day{t: t.UTC(), valid: true}, nil
}

// FromTime truncates t to its calendar date in t's own location.
func FromTime(t time.Time) Day {
	y, m, d := t.Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), valid: true}
}

func (d Day) Time() time.Time { return d.t }
func (d Day) IsZero() bool    { return !d.valid }

func (d Day) Before(other Day) bool { return d.t.Before(other.t) }
func (d Day) After(other Day) bool  { return d.t.After(other.t) }
func (d Day) Equal(other Day) bool  { return d.valid == other.valid && d.t.Equal(other.t) }

// AddDays shifts the day by n calendar days.
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n), valid: d.valid}
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(Layout)
}

// Range is a closed interval [Start, End] of calendar days.
type Range struct {
	Start Day
	End   Day
}

func New(start, end Day) (Range, error) {
	r := Range{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// ParseRange parses both bounds and validates the result.
func ParseRange(start, end string) (Range, error) {
	s, err := Parse(start)
	if err != nil {
		return Range{}, err
	}
	e, err := Parse(end)
	if err != nil {
		return Range{}, err
	}
	return New(s, e)
}

func (r Range) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrInvalidDate
	}
	if r.End.Before(r.Start) {
		return ErrInvalidRange
	}
	return nil
}

// Overlaps uses closed-interval semantics: touching endpoints overlap.
func (r Range) Overlaps(other Range) bool {
	return !r.Start.After(other.End) && !r.End.Before(other.Start)
}

func (r Range) Contains(d Day) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the inclusive number of calendar days in the range.
func (r Range) Days() int {
	return int((r.End.t.Unix()-r.Start.t.Unix())/secondsPerDay) + 1
}
