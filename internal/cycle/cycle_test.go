// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-weekly/pkg/types"
)

func utc(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func at19(y int, m time.Month, d int) time.Time {
	return utc(y, m, d, BoundaryHour, 0)
}

func TestCurrentWindowWeekdays(t *testing.T) {
	// 2026-10-12 is a Monday.
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"monday spans the weekend", utc(2026, 10, 12, 10, 0), at19(2026, 10, 8), at19(2026, 10, 9)},
		{"tuesday", utc(2026, 10, 13, 10, 0), at19(2026, 10, 9), at19(2026, 10, 12)},
		{"wednesday", utc(2026, 10, 14, 10, 0), at19(2026, 10, 12), at19(2026, 10, 13)},
		{"thursday", utc(2026, 10, 15, 23, 59), at19(2026, 10, 13), at19(2026, 10, 14)},
		{"friday", utc(2026, 10, 16, 1, 0), at19(2026, 10, 14), at19(2026, 10, 15)},
		{"before 01:00 rolls back to previous day", utc(2026, 10, 13, 0, 30), at19(2026, 10, 8), at19(2026, 10, 9)},
		{"saturday before 01:00 is friday", utc(2026, 10, 17, 0, 59), at19(2026, 10, 14), at19(2026, 10, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := CurrentWindow(tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
			assert.True(t, w.Valid(), "start must precede end")
			for _, ts := range []time.Time{w.Start, w.End} {
				assert.Equal(t, time.UTC, ts.Location())
				assert.Equal(t, BoundaryHour, ts.Hour())
				assert.Zero(t, ts.Minute())
				assert.Zero(t, ts.Second())
				assert.Zero(t, ts.Nanosecond())
			}
		})
	}
}

func TestCurrentWindowWeekend(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
	}{
		{"saturday", utc(2026, 10, 17, 12, 0)},
		{"sunday", utc(2026, 10, 18, 18, 0)},
		{"monday before 01:00 is sunday", utc(2026, 10, 19, 0, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CurrentWindow(tt.now)
			assert.ErrorIs(t, err, ErrWeekend)
		})
	}
}

func TestCurrentWindowConvertsToUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// Tuesday 08:00 in Tokyo is Monday 23:00 UTC.
	now := time.Date(2026, 10, 13, 8, 0, 0, 0, tokyo)

	w, err := CurrentWindow(now)
	require.NoError(t, err)
	assert.Equal(t, at19(2026, 10, 8), w.Start)
	assert.Equal(t, at19(2026, 10, 9), w.End)
}

func TestLastNDays(t *testing.T) {
	now := utc(2026, 10, 16, 10, 0)

	w, err := LastNDays(7, now)
	require.NoError(t, err)
	assert.Equal(t, at19(2026, 10, 16), w.End)
	assert.Equal(t, at19(2026, 10, 9), w.Start)
	assert.Equal(t, 7*24*time.Hour, w.Duration())

	cycles := Cycles(w)
	require.Len(t, cycles, 7)
	for i, c := range cycles {
		assert.Equal(t, 24*time.Hour, c.Duration(), "cycle %d", i)
		if i > 0 {
			assert.Equal(t, cycles[i-1].End, c.Start, "cycles must be back to back")
		}
	}
}

func TestLastNDaysSingleDay(t *testing.T) {
	w, err := LastNDays(1, utc(2026, 10, 18, 23, 30))
	require.NoError(t, err)
	assert.Equal(t, at19(2026, 10, 17), w.Start)
	assert.Equal(t, at19(2026, 10, 18), w.End)
}

func TestLastNDaysCrossesMonth(t *testing.T) {
	w, err := LastNDays(3, utc(2026, 3, 1, 5, 0))
	require.NoError(t, err)
	assert.Equal(t, at19(2026, 2, 26), w.Start)
	assert.Equal(t, at19(2026, 3, 1), w.End)
}

func TestLastNDaysRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := LastNDays(n, utc(2026, 10, 16, 10, 0))
		assert.ErrorIs(t, err, ErrNoDays)
	}
}

func TestFormatRange(t *testing.T) {
	start, end := FormatRange(types.Window{Start: at19(2026, 10, 12), End: at19(2026, 10, 13)})
	assert.Equal(t, "2026-10-12 19:00:00", start)
	assert.Equal(t, "2026-10-13 19:00:00", end)
}

func TestCyclesPartialTail(t *testing.T) {
	w := types.Window{Start: at19(2026, 10, 12), End: utc(2026, 10, 14, 7, 0)}
	cycles := Cycles(w)
	require.Len(t, cycles, 2)
	assert.Equal(t, 12*time.Hour, cycles[1].Duration())
	assert.Empty(t, Cycles(types.Window{}))
}
