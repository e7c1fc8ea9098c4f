// Package slots describes the fixed half-hour grid of a venue day.
//
// A venue day runs from 09:00 to 01:00 the following morning. Times past
// midnight keep extended hours internally (24:30, 25:00) so they still belong
// to the date they were opened on and sort after the evening slots.
package slots

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	FirstHour  = 9
	LastHour   = 25
	StepMinute = 30

	DateLayout = "2006-01-02"
)

var (
	ErrInvalidClock = errors.New("invalid clock value")
	ErrNotInCatalog = errors.New("time is not a bookable slot")
	ErrInvalidDate  = errors.New("invalid date")
)

// Slot is a clock position inside the venue day.
type Slot struct {
	Hour   int
	Minute int
}

var catalog = build()

func build() []Slot {
	out := make([]Slot, 0, (LastHour-FirstHour)*2+1)
	for h := FirstHour; h <= LastHour; h++ {
		for m := 0; m < 60; m += StepMinute {
			if h == LastHour && m > 0 {
				break
			}
			out = append(out, Slot{Hour: h, Minute: m})
		}
	}
	return out
}

// Catalog returns the ordered bookable start times of one day.
func Catalog() []Slot {
	out := make([]Slot, len(catalog))
	copy(out, catalog)
	return out
}

// String returns the canonical stored form, e.g. "24:30".
func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

// Label returns the wall-clock form shown to users, e.g. "00:30".
func (s Slot) Label() string {
	h := s.Hour
	if h >= 24 {
		h -= 24
	}
	return fmt.Sprintf("%02d:%02d", h, s.Minute)
}

func (s Slot) Minutes() int {
	return s.Hour*60 + s.Minute
}

// Next returns the clock position one step later, carrying into the hour.
func (s Slot) Next() Slot {
	m := s.Minutes() + StepMinute
	return Slot{Hour: m / 60, Minute: m % 60}
}

func (s Slot) Before(o Slot) bool {
	return s.Minutes() < o.Minutes()
}

// Bookable reports whether s is one of the catalog start times.
func (s Slot) Bookable() bool {
	if s.Minute != 0 && s.Minute != StepMinute {
		return false
	}
	if s.Hour < FirstHour || s.Hour > LastHour {
		return false
	}
	return !(s.Hour == LastHour && s.Minute > 0)
}

// At returns the instant the slot starts on the given venue date.
func (s Slot) At(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return d.Add(time.Duration(s.Minutes()) * time.Minute)
}

// ParseClock parses "HH:MM" or "HH:MM:SS". Hours before the opening hour are
// read as past midnight, so "01:00" becomes 25:00. The result lies within
// 09:00..25:30, which covers every start and end time of the grid.
func ParseClock(v string) (Slot, error) {
	v = strings.TrimSpace(v)
	parts := strings.Split(v, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	for _, p := range parts {
		if !twoDigits(p) {
			return Slot{}, fmt.Errorf("%w: %q", ErrInvalidClock, v)
		}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m > 59 {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	if len(parts) == 3 && parts[2] != "00" {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	if h < FirstHour {
		h += 24
	}
	s := Slot{Hour: h, Minute: m}
	if s.Minutes() > (LastHour*60 + StepMinute) {
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	return s, nil
}

func twoDigits(p string) bool {
	return len(p) == 2 && p[0] >= '0' && p[0] <= '9' && p[1] >= '0' && p[1] <= '9'
}

// Parse parses a clock value and requires it to be a catalog start time.
func Parse(v string) (Slot, error) {
	s, err := ParseClock(v)
	if err != nil {
		return Slot{}, err
	}
	if !s.Bookable() {
		return Slot{}, fmt.Errorf("%w: %q", ErrNotInCatalog, v)
	}
	return s, nil
}

// ParseDate accepts "2006-01-02" and ISO timestamps whose date part is that.
func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if i := strings.IndexByte(v, 'T'); i > 0 {
		v = v[:i]
	}
	d, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, v)
	}
	return d, nil
}

// Key identifies a (date, slot) cell, e.g. "2024-01-07_10:00".
func Key(date time.Time, s Slot) string {
	return date.Format(DateLayout) + "_" + s.String()
}

// ParseKey is the inverse of Key.
func ParseKey(k string) (time.Time, Slot, error) {
	i := strings.IndexByte(k, '_')
	if i < 0 {
		return time.Time{}, Slot{}, fmt.Errorf("%w: %q", ErrInvalidClock, k)
	}
	d, err := ParseDate(k[:i])
	if err != nil {
		return time.Time{}, Slot{}, err
	}
	s, err := Parse(k[i+1:])
	if err != nil {
		return time.Time{}, Slot{}, err
	}
	return d, s, nil
}

// WeekStart returns the Sunday on or before d.
func WeekStart(d time.Time) time.Time {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// Week returns the seven dates starting at start.
func Week(start time.Time) []time.Time {
	out := make([]time.Time, 7)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}
