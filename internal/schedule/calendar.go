// Package schedule holds the scheduling and payment-collection engine:
// calendar grids, slot projection, the leave ledger, collection rules and
// the driver day manifest. Everything here is pure computation over the
// caller's data; persistence and rendering live elsewhere.
package schedule

import (
	"fmt"
	"time"
)

// ViewUnit selects the calendar period being displayed or navigated.
type ViewUnit string

const (
	UnitMonth ViewUnit = "month"
	UnitWeek  ViewUnit = "week"
	UnitDay   ViewUnit = "day"
)

// DayCell is one calendar day in a rendered grid.
type DayCell struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"inMonth"`
}

// MonthGrid returns full Sunday-start weeks covering ref's month, padded
// with adjacent-month days so the length is always a multiple of 7.
func MonthGrid(ref time.Time) []DayCell {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	start := weekStart(first)
	end := weekStart(last).AddDate(0, 0, 6)

	cells := make([]DayCell, 0, 42)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		cells = append(cells, DayCell{
			Date:    d,
			InMonth: d.Month() == ref.Month() && d.Year() == ref.Year(),
		})
	}
	return cells
}

// WeekGrid returns the 7 days of the Sunday-start week containing ref.
func WeekGrid(ref time.Time) []DayCell {
	start := weekStart(ref)
	cells := make([]DayCell, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		cells = append(cells, DayCell{
			Date:    d,
			InMonth: d.Month() == ref.Month() && d.Year() == ref.Year(),
		})
	}
	return cells
}

// Advance shifts cur by one unit in dir (+1 or -1). Month steps clamp the
// day-of-month to the target month's length so Jan 31 lands on the last
// day of February instead of skipping into March.
func Advance(cur time.Time, unit ViewUnit, dir int) time.Time {
	switch unit {
	case UnitMonth:
		anchor := time.Date(cur.Year(), cur.Month(), 1, 0, 0, 0, 0, cur.Location()).AddDate(0, dir, 0)
		day := cur.Day()
		if mx := daysInMonth(anchor); day > mx {
			day = mx
		}
		return time.Date(anchor.Year(), anchor.Month(), day,
			cur.Hour(), cur.Minute(), cur.Second(), cur.Nanosecond(), cur.Location())
	case UnitWeek:
		return cur.AddDate(0, 0, 7*dir)
	default:
		return cur.AddDate(0, 0, dir)
	}
}

// HeaderLabel renders the caption for the current view: month+year for
// month view, a compact range for week view, full weekday+date for day
// view. Week ranges elide the shared month and year when they can.
func HeaderLabel(cur time.Time, unit ViewUnit) string {
	switch unit {
	case UnitMonth:
		return cur.Format("January 2006")
	case UnitWeek:
		ws := weekStart(cur)
		we := ws.AddDate(0, 0, 6)
		switch {
		case ws.Year() != we.Year():
			return fmt.Sprintf("%s - %s", ws.Format("Jan 2, 2006"), we.Format("Jan 2, 2006"))
		case ws.Month() != we.Month():
			return fmt.Sprintf("%s - %s, %d", ws.Format("Jan 2"), we.Format("Jan 2"), we.Year())
		default:
			return fmt.Sprintf("%s - %d, %d", ws.Format("Jan 2"), we.Day(), we.Year())
		}
	default:
		return cur.Format("Monday, Jan 2, 2006")
	}
}

// Today resets the reference date to the injected now, truncated to the
// calendar day. The engine never reads the ambient clock itself.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

func weekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func daysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}
