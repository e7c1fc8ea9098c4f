package client

import (
	"fmt"
	"sort"
	"time"

	"bandroom/internal/pkg/slots"
)

// Selection is the set of cells picked locally but not yet submitted.
type Selection struct {
	keys map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{keys: make(map[string]struct{})}
}

// Toggle adds the cell if absent, else removes it, and reports membership after.
func (s *Selection) Toggle(date time.Time, slot slots.Slot) bool {
	k := slots.Key(date, slot)
	if _, ok := s.keys[k]; ok {
		delete(s.keys, k)
		return false
	}
	s.keys[k] = struct{}{}
	return true
}

func (s *Selection) Has(date time.Time, slot slots.Slot) bool {
	_, ok := s.keys[slots.Key(date, slot)]
	return ok
}

func (s *Selection) Remove(date time.Time, slot slots.Slot) {
	delete(s.keys, slots.Key(date, slot))
}

// RemoveKey removes a cell by its slots.Key form.
func (s *Selection) RemoveKey(k string) {
	delete(s.keys, k)
}

func (s *Selection) Clear() {
	s.keys = make(map[string]struct{})
}

func (s *Selection) Len() int {
	return len(s.keys)
}

// Keys returns the pending cells in date then time order.
func (s *Selection) Keys() []string {
	out := make([]string, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	// keys are zero padded, so string order is chronological
	sort.Strings(out)
	return out
}

// WeekPicks holds the cell keys that fall in one Sunday-based week.
type WeekPicks struct {
	WeekStart time.Time
	Keys      []string
}

// GroupByWeek parses cell keys into canonical form, drops duplicates and
// groups them by week, earliest week first.
func GroupByWeek(keys []string) ([]WeekPicks, error) {
	byWeek := make(map[string]*Selection)
	starts := make(map[string]time.Time)
	for _, k := range keys {
		date, slot, err := slots.ParseKey(k)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		ws := slots.WeekStart(date)
		wk := ws.Format(slots.DateLayout)
		if byWeek[wk] == nil {
			byWeek[wk] = NewSelection()
			starts[wk] = ws
		}
		if !byWeek[wk].Has(date, slot) {
			byWeek[wk].Toggle(date, slot)
		}
	}

	order := make([]string, 0, len(byWeek))
	for wk := range byWeek {
		order = append(order, wk)
	}
	sort.Strings(order)

	out := make([]WeekPicks, 0, len(order))
	for _, wk := range order {
		out = append(out, WeekPicks{WeekStart: starts[wk], Keys: byWeek[wk].Keys()})
	}
	return out, nil
}
