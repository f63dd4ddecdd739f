// Package selection holds the view-local month selection that parameterizes
// the dashboard: a single cash-flow month and a non-empty comparison set.
// It is never persisted.
package selection

import (
	"fmt"
	"sort"
	"time"
)

// State tracks the selected cash-flow month (index 0-11) and the multi-month
// comparison set. The set can never become empty.
type State struct {
	month  int
	months map[int]struct{}
}

// New defaults to the current calendar month with a year-to-date comparison
// set (January through the current month inclusive).
func New(now time.Time) *State {
	s := &State{
		month:  int(now.Month()) - 1,
		months: make(map[int]struct{}),
	}
	for i := 0; i <= s.month; i++ {
		s.months[i] = struct{}{}
	}
	return s
}

// Month returns the selected cash-flow month index (0-11).
func (s *State) Month() int {
	return s.month
}

// CalendarMonth returns the selected cash-flow month as a time.Month.
func (s *State) CalendarMonth() time.Month {
	return time.Month(s.month + 1)
}

// SetMonth selects the cash-flow month by index (0-11).
func (s *State) SetMonth(idx int) error {
	if idx < 0 || idx > 11 {
		return fmt.Errorf("month index out of range: %d", idx)
	}
	s.month = idx
	return nil
}

// Months returns the comparison set as a sorted ascending copy.
func (s *State) Months() []int {
	out := make([]int, 0, len(s.months))
	for i := range s.months {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// CalendarMonths returns the comparison set as sorted time.Month values.
func (s *State) CalendarMonths() []time.Month {
	idxs := s.Months()
	out := make([]time.Month, len(idxs))
	for i, idx := range idxs {
		out[i] = time.Month(idx + 1)
	}
	return out
}

// Toggle adds the index to the comparison set, or removes it if present.
// Removing the last remaining element is a no-op: the set stays non-empty
// at all times.
func (s *State) Toggle(idx int) error {
	if idx < 0 || idx > 11 {
		return fmt.Errorf("month index out of range: %d", idx)
	}
	if _, ok := s.months[idx]; ok {
		if len(s.months) == 1 {
			return nil
		}
		delete(s.months, idx)
		return nil
	}
	s.months[idx] = struct{}{}
	return nil
}

// SelectAll sets the comparison set to the full year.
func (s *State) SelectAll() {
	for i := 0; i < 12; i++ {
		s.months[i] = struct{}{}
	}
}

// Clear resets the comparison set to just the selected cash-flow month,
// never to the empty set.
func (s *State) Clear() {
	s.months = map[int]struct{}{s.month: {}}
}
