package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/campus-scheduler/internal/httperr"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestExpandSingleDay(t *testing.T) {
	out, err := Expand(7, at(2025, 3, 10, 9, 0), at(2025, 3, 10, 9, 30), "")
	require.NoError(t, err)
	require.Len(t, out, 1)

	s := out[0]
	assert.Equal(t, uint(7), s.TeacherID)
	assert.Equal(t, "2025-03-10", s.Date)
	assert.Equal(t, "Monday", s.Day)
	assert.Equal(t, 30, s.Duration)
	assert.Equal(t, string(StatusAvailable), s.Status)
	assert.Equal(t, at(2025, 3, 10, 9, 0), s.StartDateTime)
	assert.Equal(t, at(2025, 3, 10, 9, 30), s.EndDateTime)
}

func TestExpandMultiDayRange(t *testing.T) {
	// Three calendar days, same time-of-day window.
	out, err := Expand(1, at(2025, 3, 10, 9, 0), at(2025, 3, 12, 9, 30), "")
	require.NoError(t, err)
	require.Len(t, out, 3)

	wantDates := []string{"2025-03-10", "2025-03-11", "2025-03-12"}
	wantDays := []string{"Monday", "Tuesday", "Wednesday"}
	for i, s := range out {
		assert.Equal(t, wantDates[i], s.Date)
		assert.Equal(t, wantDays[i], s.Day)
		assert.Equal(t, 30, s.Duration, "duration must come from time-of-day, not day span")
		assert.Equal(t, 9, s.StartDateTime.Hour())
		assert.Equal(t, 30, s.EndDateTime.Minute())
	}
}

func TestExpandDurationIgnoresDaySpan(t *testing.T) {
	// 100-day range never inflates the per-slot duration.
	out, err := Expand(1, at(2025, 1, 1, 14, 0), at(2025, 4, 10, 15, 0), "")
	require.NoError(t, err)
	require.Len(t, out, 100)

	for _, s := range out {
		assert.Equal(t, 60, s.Duration)
	}
}

func TestExpandOrderedByDate(t *testing.T) {
	out, err := Expand(1, at(2025, 6, 1, 8, 0), at(2025, 6, 14, 10, 0), "")
	require.NoError(t, err)
	require.Len(t, out, 14)

	for i := 1; i < len(out); i++ {
		assert.True(t, out[i-1].Date < out[i].Date)
	}
}

func TestExpandInvalidRange(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"end equals start", at(2025, 3, 10, 9, 0), at(2025, 3, 10, 9, 0)},
		{"end before start", at(2025, 3, 10, 9, 30), at(2025, 3, 10, 9, 0)},
		// Later calendar day but earlier time-of-day still fails: the
		// day span never contributes to duration.
		{"later day, earlier time", at(2025, 3, 10, 9, 0), at(2025, 3, 12, 8, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Expand(1, tc.start, tc.end, "")
			assert.True(t, httperr.IsBusiness(err, "invalid_range"))
			assert.Nil(t, out)
		})
	}
}

func TestExpandRangeTooLarge(t *testing.T) {
	out, err := Expand(1, at(2025, 1, 1, 9, 0), at(2026, 1, 2, 10, 0), "")
	assert.True(t, httperr.IsBusiness(err, "range_too_large"))
	assert.Nil(t, out)
}

func TestExpandExactlyAtCap(t *testing.T) {
	out, err := Expand(1, at(2025, 1, 1, 9, 0), at(2025, 12, 31, 10, 0), "")
	require.NoError(t, err)
	assert.Len(t, out, 365)
}

func TestExpandReversedDates(t *testing.T) {
	// Defensive: callers should never submit this; nothing is produced.
	out, err := Expand(1, at(2025, 3, 12, 9, 0), at(2025, 3, 10, 9, 30), "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExpandInvalidStatus(t *testing.T) {
	_, err := Expand(1, at(2025, 3, 10, 9, 0), at(2025, 3, 10, 9, 30), "archived")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestExpandExplicitStatus(t *testing.T) {
	out, err := Expand(1, at(2025, 3, 10, 9, 0), at(2025, 3, 10, 9, 30), StatusCancelled)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, string(StatusCancelled), out[0].Status)
}
