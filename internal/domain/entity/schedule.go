// Package entity contains the core business objects of the fulfillment domain.
package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the exclusive upper bound of a ClockTime inside a day; 24:00 is allowed as a closing time.
const MinutesPerDay = 24 * 60

// ClockTime is a local wall-clock time of day with minute precision, stored as minutes after midnight.
type ClockTime int

// NewClockTime builds a ClockTime from hours and minutes.
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

// ParseClockTime parses an "HH:MM" string.
func ParseClockTime(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("invalid time of day %q, expected HH:MM", s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}

	if hour < 0 || minute < 0 || minute > 59 || hour > 24 || (hour == 24 && minute != 0) {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}

	return NewClockTime(hour, minute), nil
}

// ClockTimeOf returns the time of day of t in t's location, truncated to the minute.
func ClockTimeOf(t time.Time) ClockTime {
	return NewClockTime(t.Hour(), t.Minute())
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

// Valid reports whether c lies within [00:00, 24:00].
func (c ClockTime) Valid() bool {
	return c >= 0 && c <= MinutesPerDay
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On returns the instant at time of day c on the calendar day of t, in t's location.
func (c ClockTime) On(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, t.Location())
}

func (c ClockTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ClockTime) UnmarshalText(text []byte) error {
	parsed, err := ParseClockTime(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// Weekday is a day of the week rendered as a lowercase English name.
type Weekday time.Weekday

var weekdayNames = [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// AllWeekdays lists the days of the week starting on Monday.
var AllWeekdays = []Weekday{
	Weekday(time.Monday), Weekday(time.Tuesday), Weekday(time.Wednesday), Weekday(time.Thursday),
	Weekday(time.Friday), Weekday(time.Saturday), Weekday(time.Sunday),
}

// WeekdayOf returns the weekday of t.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

// ParseWeekday parses a case-insensitive English weekday name.
func ParseWeekday(s string) (Weekday, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for i, name := range weekdayNames {
		if name == needle {
			return Weekday(i), nil
		}
	}

	return 0, fmt.Errorf("unknown weekday %q", s)
}

func (d Weekday) String() string {
	if d < 0 || int(d) >= len(weekdayNames) {
		return "weekday(" + strconv.Itoa(int(d)) + ")"
	}

	return weekdayNames[d]
}

func (d Weekday) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

// OpeningWindow is a single day's open and close time.
type OpeningWindow struct {
	Open  ClockTime `json:"open"`
	Close ClockTime `json:"close"`
}

// Contains reports whether at lies within [Open, Close].
func (w OpeningWindow) Contains(at ClockTime) bool {
	return at >= w.Open && at <= w.Close
}

// OperatingHours maps a weekday to its opening window. Days without an entry are closed.
type OperatingHours map[Weekday]OpeningWindow

// UniformOperatingHours returns the same window for every day of the week.
func UniformOperatingHours(open, close ClockTime) OperatingHours {
	hours := make(OperatingHours, len(AllWeekdays))
	for _, day := range AllWeekdays {
		hours[day] = OpeningWindow{Open: open, Close: close}
	}

	return hours
}

// On returns the opening window for day.
func (h OperatingHours) On(day Weekday) (OpeningWindow, bool) {
	w, ok := h[day]

	return w, ok
}

// IsOpenAt reports whether t falls inside the opening window of t's weekday.
func (h OperatingHours) IsOpenAt(t time.Time) bool {
	w, ok := h.On(WeekdayOf(t))
	if !ok {
		return false
	}

	return w.Contains(ClockTimeOf(t))
}

// Validate checks every window is well-formed.
func (h OperatingHours) Validate() error {
	for day, w := range h {
		if !w.Open.Valid() || !w.Close.Valid() {
			return fmt.Errorf("%s: hours out of range", day)
		}
		if w.Open >= w.Close {
			return fmt.Errorf("%s: open %s must be before close %s", day, w.Open, w.Close)
		}
	}

	return nil
}
