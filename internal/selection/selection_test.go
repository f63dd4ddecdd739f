package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func june() time.Time {
	return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
}

func TestDefaultsToYearToDate(t *testing.T) {
	s := New(june())
	assert.Equal(t, 5, s.Month())
	assert.Equal(t, time.June, s.CalendarMonth())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, s.Months())
}

func TestSetMonthBounds(t *testing.T) {
	s := New(june())
	require.NoError(t, s.SetMonth(0))
	assert.Equal(t, 0, s.Month())
	assert.Error(t, s.SetMonth(-1))
	assert.Error(t, s.SetMonth(12))
}

func TestToggleUnionAndRemove(t *testing.T) {
	s := New(june())
	require.NoError(t, s.Toggle(11))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 11}, s.Months())

	require.NoError(t, s.Toggle(3))
	assert.Equal(t, []int{0, 1, 2, 4, 5, 11}, s.Months())
}

func TestToggleNeverEmptiesSet(t *testing.T) {
	s := New(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC))
	require.Equal(t, []int{0}, s.Months())

	// Toggling off the sole remaining month is a no-op.
	require.NoError(t, s.Toggle(0))
	assert.Equal(t, []int{0}, s.Months())
}

func TestSelectAllAndClear(t *testing.T) {
	s := New(june())
	s.SelectAll()
	assert.Len(t, s.Months(), 12)

	s.Clear()
	assert.Equal(t, []int{5}, s.Months())

	// Clear follows the cash-flow month, not the previous set.
	require.NoError(t, s.SetMonth(8))
	s.Clear()
	assert.Equal(t, []int{8}, s.Months())
}
