package metrics

import (
	"sort"
	"time"

	"salon-insights/models"
	"salon-insights/utils"
)

// WeeklyPerformance is the distinct-customer count of one ISO week.
type WeeklyPerformance struct {
	Year           int    `json:"Year"`
	Month          string `json:"Month"`
	Week           int    `json:"Week"`
	CustomerVisits int    `json:"customer_visits"`

	monthNumber int
}

// PerformanceTable counts distinct customer names per (year, month, week)
// over the last three months, optionally narrowed to one month name. Rows
// come newest month first and weeks ascending within a month.
func (e *Engine) PerformanceTable(f *Frame, month string) ([]WeeklyPerformance, error) {
	ok, err := f.ready(models.ColName)
	if !ok {
		return []WeeklyPerformance{}, err
	}

	cutoff := utils.AddMonths(e.Now(), -3)
	var recent []Record
	for _, r := range filterMonth(f.Records, month) {
		if r.Valid && !r.Time.Before(cutoff) {
			recent = append(recent, r)
		}
	}

	type bucket struct {
		Year  int
		Month time.Month
		Week  int
	}
	index := make(map[bucket]int)
	var (
		rows  []WeeklyPerformance
		names []map[string]struct{}
	)
	for _, r := range recent {
		b := bucket{Year: r.Year, Month: r.Time.Month(), Week: r.Week}
		i, seen := index[b]
		if !seen {
			i = len(rows)
			index[b] = i
			rows = append(rows, WeeklyPerformance{Year: b.Year, Month: r.Month, Week: b.Week, monthNumber: int(b.Month)})
			names = append(names, make(map[string]struct{}))
		}
		if name := r.Get(models.ColName); name != "" {
			names[i][name] = struct{}{}
		}
	}
	for i := range rows {
		rows[i].CustomerVisits = len(names[i])
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.monthNumber != b.monthNumber {
			return a.monthNumber > b.monthNumber
		}
		return a.Week < b.Week
	})
	if rows == nil {
		rows = []WeeklyPerformance{}
	}
	return rows, nil
}
