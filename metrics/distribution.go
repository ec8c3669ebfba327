package metrics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"salon-insights/models"
)

// WeekdayOrder picks how weekday distributions are sorted.
type WeekdayOrder int

const (
	// OrderCalendar lists Monday through Sunday, for calendar charts.
	OrderCalendar WeekdayOrder = iota
	// OrderBusiest lists the busiest weekday first.
	OrderBusiest
)

// ParseWeekdayOrder reads "calendar" or "busiest"; anything else is calendar.
func ParseWeekdayOrder(s string) WeekdayOrder {
	if s == "busiest" {
		return OrderBusiest
	}
	return OrderCalendar
}

// HourCount is the number of visits starting in one hour of the day.
type HourCount struct {
	Hour       string `json:"hour"`
	VisitCount int    `json:"visit_count"`
}

// PeakHours counts visits per hour of day (00-23), busiest first. Ties are
// listed by hour.
func (e *Engine) PeakHours(f *Frame) ([]HourCount, error) {
	if f.Empty() {
		return []HourCount{}, nil
	}
	var counts [24]int
	for _, r := range f.timed() {
		counts[r.Time.Hour()]++
	}
	out := []HourCount{}
	for h, n := range counts {
		if n > 0 {
			out = append(out, HourCount{Hour: fmt.Sprintf("%02d", h), VisitCount: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].VisitCount > out[j].VisitCount })
	return out, nil
}

// WeekdayCount is the number of visits on one weekday.
type WeekdayCount struct {
	Weekday    string `json:"weekday"`
	VisitCount int    `json:"visit_count"`
}

// WeekdayVisits counts visits per weekday. Only weekdays with visits appear.
func (e *Engine) WeekdayVisits(f *Frame, order WeekdayOrder) ([]WeekdayCount, error) {
	if f.Empty() {
		return []WeekdayCount{}, nil
	}
	var counts [7]int
	for _, r := range f.timed() {
		counts[mondayIndex(r.Time.Weekday())]++
	}
	out := []WeekdayCount{}
	for i, n := range counts {
		if n > 0 {
			out = append(out, WeekdayCount{Weekday: weekdayAt(i).String(), VisitCount: n})
		}
	}
	if order == OrderBusiest {
		sort.SliceStable(out, func(i, j int) bool { return out[i].VisitCount > out[j].VisitCount })
	}
	return out, nil
}

// DaySales is product revenue and order count for one weekday.
type DaySales struct {
	DayOfWeek   string          `json:"day_of_week"`
	TotalSold   decimal.Decimal `json:"total_sold"`
	TotalOrders int             `json:"total_orders"`
}

// SalesByDay totals product sales per weekday, Monday through Sunday.
func (e *Engine) SalesByDay(f *Frame) ([]DaySales, error) {
	ok, err := f.ready(models.ColBillAmount)
	if !ok {
		return []DaySales{}, err
	}
	var buckets [7][]Record
	for _, r := range f.timed() {
		i := mondayIndex(r.Time.Weekday())
		buckets[i] = append(buckets[i], r)
	}
	out := []DaySales{}
	for i, records := range buckets {
		if len(records) == 0 {
			continue
		}
		out = append(out, DaySales{
			DayOfWeek:   weekdayAt(i).String(),
			TotalSold:   sumAmounts(records).Decimal,
			TotalOrders: len(records),
		})
	}
	return out, nil
}

// mondayIndex maps Monday..Sunday to 0..6.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func weekdayAt(i int) time.Weekday {
	return time.Weekday((i + 1) % 7)
}
