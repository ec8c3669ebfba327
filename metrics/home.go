package metrics

import (
	"github.com/shopspring/decimal"

	"salon-insights/models"
	"salon-insights/utils"
)

// TodaySales is the total billed today (total_sales_today).
func (e *Engine) TodaySales(f *Frame) (Metric, error) {
	return e.windowSales(f, Today, "total_sales_today")
}

// TodayCustomerCount counts distinct customer names seen today
// (customers_today).
func (e *Engine) TodayCustomerCount(f *Frame) (Metric, error) {
	const key = "customers_today"
	ok, err := f.ready(models.ColName)
	if !ok {
		return countMetric(key, 0), err
	}
	today := e.inWindow(f, Today)
	return countMetric(key, distinct(today, func(r Record) string { return r.Get(models.ColName) })), nil
}

// ClientMix splits today's records into first-time and returning customers.
type ClientMix struct {
	NewClients      int `json:"new_clients"`
	RepeatedClients int `json:"repeated_clients"`
}

// NewAndRepeatedClients classifies each record dated today. A record is
// repeated when its phone appears on any record dated before today, and new
// otherwise; a row without a phone cannot match history and counts as new.
// Counts are of records, not distinct customers, so the two always add up to
// the number of records dated today.
func (e *Engine) NewAndRepeatedClients(f *Frame) (ClientMix, error) {
	ok, err := f.ready(models.ColPhoneNumber)
	if !ok {
		return ClientMix{}, err
	}

	start := utils.BeginningOfDay(e.Now())
	seen := make(map[string]struct{})
	for _, r := range f.Records {
		if r.Valid && r.Date.Before(start) {
			if p := r.Phone(); p != "" {
				seen[p] = struct{}{}
			}
		}
	}

	var mix ClientMix
	for _, r := range e.inWindow(f, Today) {
		if _, returning := seen[r.Phone()]; returning {
			mix.RepeatedClients++
		} else {
			mix.NewClients++
		}
	}
	return mix, nil
}

func (e *Engine) WeeklySales(f *Frame) (Metric, error) {
	return e.windowSales(f, ThisWeek, "weekly_sales")
}

func (e *Engine) WeeklyServiceCount(f *Frame) (Metric, error) {
	return e.windowVisits(f, ThisWeek, "weekly_service_count")
}

func (e *Engine) MonthlySales(f *Frame) (Metric, error) {
	return e.windowSales(f, ThisMonth, "monthly_sales")
}

func (e *Engine) MonthlyServiceCount(f *Frame) (Metric, error) {
	return e.windowVisits(f, ThisMonth, "monthly_service_count")
}

func (e *Engine) PrevWeekSales(f *Frame) (Metric, error) {
	return e.windowSales(f, PrevWeek, "prev_week_sales")
}

func (e *Engine) PrevWeekServiceCount(f *Frame) (Metric, error) {
	return e.windowVisits(f, PrevWeek, "prev_week_service_count")
}

func (e *Engine) PrevMonthSales(f *Frame) (Metric, error) {
	return e.windowSales(f, PrevMonth, "prev_month_sales")
}

func (e *Engine) PrevMonthServiceCount(f *Frame) (Metric, error) {
	return e.windowVisits(f, PrevMonth, "prev_month_service_count")
}

// TotalServiceCount counts every billed row ever (total_services). Rows
// without an amount are not services.
func (e *Engine) TotalServiceCount(f *Frame) (Metric, error) {
	const key = "total_services"
	ok, err := f.ready(models.ColBillAmount)
	if !ok {
		return countMetric(key, 0), err
	}
	return countMetric(key, countAmounts(f.Records)), nil
}

func (e *Engine) windowSales(f *Frame, w Window, key string) (Metric, error) {
	ok, err := f.ready(models.ColBillAmount)
	if !ok {
		return Metric{Key: key, Value: decimal.Zero}, err
	}
	return sumMetric(key, e.inWindow(f, w)), nil
}

// windowVisits counts visits: distinct (phone, calendar day) pairs. Several
// bills for one customer on one day are a single visit, billed or not.
func (e *Engine) windowVisits(f *Frame, w Window, key string) (Metric, error) {
	ok, err := f.ready(models.ColPhoneNumber)
	if !ok {
		return countMetric(key, 0), err
	}
	return countMetric(key, distinct(e.inWindow(f, w), visitKey)), nil
}

func visitKey(r Record) string {
	p := r.Phone()
	if p == "" || !r.Valid {
		return ""
	}
	return p + "|" + r.Date.Format("2006-01-02")
}

// HomeOverview is the service half of the home tab.
type HomeOverview struct {
	TotalSalesToday       decimal.Decimal `json:"total_sales_today"`
	CustomersToday        int             `json:"customers_today"`
	NewClients            int             `json:"new_clients"`
	RepeatedClients       int             `json:"repeated_clients"`
	TotalServices         int             `json:"total_services"`
	WeeklySales           decimal.Decimal `json:"weekly_sales"`
	WeeklyServiceCount    int             `json:"weekly_service_count"`
	MonthlySales          decimal.Decimal `json:"monthly_sales"`
	MonthlyServiceCount   int             `json:"monthly_service_count"`
	PrevWeekSales         decimal.Decimal `json:"prev_week_sales"`
	PrevWeekServiceCount  int             `json:"prev_week_service_count"`
	PrevMonthSales        decimal.Decimal `json:"prev_month_sales"`
	PrevMonthServiceCount int             `json:"prev_month_service_count"`
}

// HomeOverview computes every service KPI card in one pass over the catalog.
func (e *Engine) HomeOverview(f *Frame) (HomeOverview, error) {
	var (
		out HomeOverview
		err error
	)
	metric := func(fn func(*Frame) (Metric, error)) Metric {
		if err != nil {
			return Metric{}
		}
		var m Metric
		m, err = fn(f)
		return m
	}

	out.TotalSalesToday = metric(e.TodaySales).Value
	out.CustomersToday = metric(e.TodayCustomerCount).Int()
	out.TotalServices = metric(e.TotalServiceCount).Int()
	out.WeeklySales = metric(e.WeeklySales).Value
	out.WeeklyServiceCount = metric(e.WeeklyServiceCount).Int()
	out.MonthlySales = metric(e.MonthlySales).Value
	out.MonthlyServiceCount = metric(e.MonthlyServiceCount).Int()
	out.PrevWeekSales = metric(e.PrevWeekSales).Value
	out.PrevWeekServiceCount = metric(e.PrevWeekServiceCount).Int()
	out.PrevMonthSales = metric(e.PrevMonthSales).Value
	out.PrevMonthServiceCount = metric(e.PrevMonthServiceCount).Int()
	if err != nil {
		return HomeOverview{}, err
	}

	mix, err := e.NewAndRepeatedClients(f)
	if err != nil {
		return HomeOverview{}, err
	}
	out.NewClients = mix.NewClients
	out.RepeatedClients = mix.RepeatedClients
	return out, nil
}
