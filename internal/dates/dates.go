package dates

import (
	"bytes"
	"strconv"
	"time"
)

// dayLayout is the calendar-day wire format used across all collections.
const dayLayout = "2006-01-02"

// Day is a timezone-naive calendar day. The zero value means "no date" and
// is excluded from every date-indexed view.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDay builds a Day from its components.
func NewDay(year int, month time.Month, day int) Day {
	return Day{Year: year, Month: month, Day: day}
}

// DayOf truncates an instant to its calendar day in the given location.
func DayOf(t time.Time, loc *time.Location) Day {
	if t.IsZero() {
		return Day{}
	}
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Day: d}
}

// Today returns the current calendar day in the given location.
func Today(loc *time.Location) Day {
	return DayOf(time.Now(), loc)
}

// ParseDay parses a yyyy-MM-dd string. Inputs with a time component are
// truncated to their date part.
func ParseDay(s string) (Day, error) {
	if len(s) > len(dayLayout) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return DayOf(t, time.UTC), nil
		}
		s = s[:len(dayLayout)]
	}
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, err
	}
	return DayOf(t, time.UTC), nil
}

// IsZero reports whether the day is absent.
func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) String() string {
	return d.toTime().Format(dayLayout)
}

// Before reports whether d is an earlier calendar day than other.
func (d Day) Before(other Day) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is a later calendar day than other.
func (d Day) After(other Day) bool {
	return other.Before(d)
}

// AddDays shifts the day by n calendar days.
func (d Day) AddDays(n int) Day {
	return DayOf(d.toTime().AddDate(0, 0, n), time.UTC)
}

// AddMonths shifts the day by n months, clamping to the last day of the
// target month: Jan 31 + 1 month is Feb 28 (or 29), not Mar 2.
func (d Day) AddMonths(n int) Day {
	first := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	last := first.AddDate(0, 1, -1).Day()
	day := d.Day
	if day > last {
		day = last
	}
	return Day{Year: first.Year(), Month: first.Month(), Day: day}
}

// Weekday returns the day of the week.
func (d Day) Weekday() time.Weekday {
	return d.toTime().Weekday()
}

func (d Day) toTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// MarshalText writes the yyyy-MM-dd form, so Day also works as a JSON
// object key (habit completion maps).
func (d Day) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte(""), nil
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts yyyy-MM-dd or RFC3339; anything else yields the
// zero Day without an error.
func (d *Day) UnmarshalText(data []byte) error {
	parsed, err := ParseDay(string(data))
	if err != nil {
		*d = Day{}
		return nil
	}
	*d = parsed
	return nil
}

// MarshalJSON writes null for an absent day.
func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte("\"" + d.String() + "\""), nil
}

// UnmarshalJSON normalizes the heterogeneous representations the store may
// hold for a date field: null, yyyy-MM-dd, RFC3339, or a numeric epoch in
// seconds or milliseconds. Unparseable input becomes the zero Day, never
// an error.
func (d *Day) UnmarshalJSON(data []byte) error {
	*d = Day{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		s := string(bytes.Trim(data, "\""))
		if s == "" {
			return nil
		}
		if parsed, err := ParseDay(s); err == nil {
			*d = parsed
		}
		return nil
	}
	if t, ok := parseEpoch(string(data)); ok {
		*d = DayOf(t, time.UTC)
	}
	return nil
}

// Stamp is an instant with tolerant decoding. The zero value means the
// timestamp is absent.
type Stamp struct {
	time.Time
}

// Now returns the current instant as a Stamp.
func Now() Stamp {
	return Stamp{Time: time.Now()}
}

// StampOf wraps an instant.
func StampOf(t time.Time) Stamp {
	return Stamp{Time: t}
}

// Day truncates the stamp to its calendar day in the given location.
func (s Stamp) Day(loc *time.Location) Day {
	return DayOf(s.Time, loc)
}

// MarshalJSON writes RFC3339, or null for an absent stamp.
func (s Stamp) MarshalJSON() ([]byte, error) {
	if s.IsZero() {
		return []byte("null"), nil
	}
	return []byte("\"" + s.UTC().Format(time.RFC3339Nano) + "\""), nil
}

// UnmarshalJSON accepts null, RFC3339, yyyy-MM-dd, or a numeric epoch in
// seconds or milliseconds. Unparseable input becomes the zero Stamp.
func (s *Stamp) UnmarshalJSON(data []byte) error {
	*s = Stamp{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		raw := string(bytes.Trim(data, "\""))
		if raw == "" {
			return nil
		}
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			s.Time = t
			return nil
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			s.Time = t
			return nil
		}
		if t, err := time.Parse(dayLayout, raw); err == nil {
			s.Time = t
		}
		return nil
	}
	if t, ok := parseEpoch(string(data)); ok {
		s.Time = t
	}
	return nil
}

// parseEpoch interprets a bare number as a Unix timestamp. Values past the
// year 3000 in seconds are taken as milliseconds.
func parseEpoch(raw string) (time.Time, bool) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return time.Time{}, false
	}
	n := int64(f)
	if n > 32503680000 { // 3000-01-01 in seconds
		return time.UnixMilli(n).UTC(), true
	}
	return time.Unix(n, 0).UTC(), true
}
