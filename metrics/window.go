package metrics

import (
	"time"

	"github.com/samber/lo"

	"salon-insights/utils"
)

// Window is a calendar period relative to the current date.
type Window int

const (
	Today Window = iota
	ThisWeek
	ThisMonth
	// PrevWeek and PrevMonth subtract one from the week or month number and
	// keep the current year (the ISO week year for weeks). In week 1 or January they match nothing; the
	// previous year's last week or December is not reached.
	PrevWeek
	PrevMonth
)

func (w Window) String() string {
	switch w {
	case Today:
		return "today"
	case ThisWeek:
		return "this_week"
	case ThisMonth:
		return "this_month"
	case PrevWeek:
		return "prev_week"
	case PrevMonth:
		return "prev_month"
	default:
		return "unknown"
	}
}

// contains reports whether r falls inside w as seen from now. Records
// without a timestamp are never inside any window.
func (w Window) contains(r Record, now time.Time) bool {
	if !r.Valid {
		return false
	}
	isoYear, week := now.ISOWeek()
	switch w {
	case Today:
		return utils.SameDay(r.Date, now)
	case ThisWeek:
		return r.Week == week && r.ISOYear == isoYear
	case ThisMonth:
		return r.monthNumber() == int(now.Month()) && r.Year == now.Year()
	case PrevWeek:
		return r.Week == week-1 && r.ISOYear == isoYear
	case PrevMonth:
		return r.monthNumber() == int(now.Month())-1 && r.Year == now.Year()
	}
	return false
}

func (e *Engine) inWindow(f *Frame, w Window) []Record {
	now := e.Now()
	return lo.Filter(f.all(), func(r Record, _ int) bool {
		return w.contains(r, now)
	})
}

// since keeps records dated on or after now minus days, compared by date.
func since(records []Record, now time.Time, days int) []Record {
	cutoff := utils.BeginningOfDay(now).AddDate(0, 0, -days)
	return lo.Filter(records, func(r Record, _ int) bool {
		return r.Valid && !r.Date.Before(cutoff)
	})
}
