// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cycle maps wall-clock instants onto arXiv publication windows.
//
// arXiv closes each weekday's submissions at 19:00 UTC and announces them
// the following evening. A publication cycle is therefore the 24h span
// ending at 19:00 UTC, and the window for "today's" papers depends on the
// weekday because nothing is announced on Saturday or Sunday.
package cycle

import (
	"errors"
	"time"

	"github.com/pdiddy/arxiv-weekly/pkg/types"
)

// BoundaryHour is the UTC hour at which one publication cycle ends and the
// next begins.
const BoundaryHour = 19

// rolloverHour is the UTC hour before which "now" still belongs to the
// previous day's announcement.
const rolloverHour = 1

// RangeLayout is the display layout used by FormatRange.
const RangeLayout = "2006-01-02 15:04:05"

var (
	// ErrWeekend is returned when the cycle date falls on Saturday or
	// Sunday; arXiv does not announce papers on weekends.
	ErrWeekend = errors.New("arXiv does not publish on weekends")

	// ErrNoDays is returned by LastNDays when n is not positive.
	ErrNoDays = errors.New("lookback must cover at least one day")
)

// dayOffsets holds the start/end day offsets, relative to the cycle date,
// for each weekday. Monday reaches back over the weekend.
var dayOffsets = map[time.Weekday][2]int{
	time.Monday:    {-4, -3},
	time.Tuesday:   {-4, -1},
	time.Wednesday: {-2, -1},
	time.Thursday:  {-2, -1},
	time.Friday:    {-2, -1},
}

// CurrentWindow returns the publication window for the cycle that now
// belongs to. Before 01:00 UTC the previous calendar day is used as the
// cycle date.
func CurrentWindow(now time.Time) (types.Window, error) {
	date := now.UTC()
	if date.Hour() < rolloverHour {
		date = date.AddDate(0, 0, -1)
	}

	offsets, ok := dayOffsets[date.Weekday()]
	if !ok {
		return types.Window{}, ErrWeekend
	}

	return types.Window{
		Start: boundary(date, offsets[0]),
		End:   boundary(date, offsets[1]),
	}, nil
}

// LastNDays returns the union of the n daily cycles ending on now's date:
// from 19:00 UTC n days before now's date up to 19:00 UTC on now's date.
func LastNDays(n int, now time.Time) (types.Window, error) {
	if n <= 0 {
		return types.Window{}, ErrNoDays
	}

	now = now.UTC()
	var w types.Window
	for i := 0; i < n; i++ {
		start := boundary(now, -i-1)
		end := boundary(now, -i)
		if i == 0 || start.Before(w.Start) {
			w.Start = start
		}
		if i == 0 || end.After(w.End) {
			w.End = end
		}
	}
	return w, nil
}

// FormatRange renders both ends of w with RangeLayout.
func FormatRange(w types.Window) (string, string) {
	return w.Start.Format(RangeLayout), w.End.Format(RangeLayout)
}

// Cycles splits w into its consecutive 24h publication cycles. A trailing
// remainder shorter than a day is returned as its own, shorter cycle.
func Cycles(w types.Window) []types.Window {
	var out []types.Window
	for start := w.Start; start.Before(w.End); {
		end := start.AddDate(0, 0, 1)
		if end.After(w.End) {
			end = w.End
		}
		out = append(out, types.Window{Start: start, End: end})
		start = end
	}
	return out
}

// boundary returns 19:00:00 UTC on the date days away from t's UTC date.
func boundary(t time.Time, days int) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d+days, BoundaryHour, 0, 0, 0, time.UTC)
}
