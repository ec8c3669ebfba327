package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-insights/models"
)

func TestSameDayBillsForOneCustomer(t *testing.T) {
	e := engineAt(fridayEvening)
	f := clientFrame(t, e,
		visit("01/03/2024 10:00:00", "Asha", "9998887776", "500", "Riya"),
		visit("01/03/2024 14:00:00", "Asha", "9998887776", "700", "Riya"),
	)

	sales, err := e.TodaySales(f)
	require.NoError(t, err)
	assertDecimal(t, "1200", sales.Value)
	assert.Equal(t, 2, sales.Rows)

	customers, err := e.TodayCustomerCount(f)
	require.NoError(t, err)
	assert.Equal(t, 1, customers.Int())

	total, err := e.TotalServiceCount(f)
	require.NoError(t, err)
	assert.Equal(t, 2, total.Int())

	visits, err := e.WeeklyServiceCount(f)
	require.NoError(t, err)
	assert.Equal(t, 1, visits.Int(), "two bills on one day are one visit")
}

func TestCanonicalPhoneCollapsesVisits(t *testing.T) {
	e := engineAt(fridayEvening)
	f := clientFrame(t, e,
		visit("01/03/2024 10:00:00", "Asha", "+91 999-888-7776", "500", "Riya"),
		visit("01/03/2024 12:00:00", "Asha K", "9998887776", "300", "Riya"),
	)

	visits, err := e.MonthlyServiceCount(f)
	require.NoError(t, err)
	assert.Equal(t, 1, visits.Int())

	top, err := e.TopClientsSpendVisits(f)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "9998887776", top[0].PhoneNumber)
	assert.Equal(t, 2, top[0].Visits)
	assertDecimal(t, "800", top[0].TotalSpent.Decimal)
}

func TestEmptyFrameYieldsZeroResults(t *testing.T) {
	e := engineAt(fridayEvening)
	f, err := e.Normalize(models.EmptyTable(models.ClientData))
	require.NoError(t, err)

	scalars := []func(*Frame) (Metric, error){
		e.TodaySales, e.TodayCustomerCount, e.WeeklySales, e.WeeklyServiceCount,
		e.MonthlySales, e.MonthlyServiceCount, e.PrevWeekSales, e.PrevWeekServiceCount,
		e.PrevMonthSales, e.PrevMonthServiceCount, e.TotalServiceCount,
		e.TotalProductSales, e.TotalProductsSold, e.ProductsSoldToday,
		e.ProductsSoldLastWeek, e.ProductsSoldLastMonth,
	}
	for _, fn := range scalars {
		m, err := fn(f)
		require.NoError(t, err)
		assert.True(t, m.Value.IsZero())
		assert.Zero(t, m.Rows)
	}

	mix, err := e.NewAndRepeatedClients(f)
	require.NoError(t, err)
	assert.Equal(t, ClientMix{}, mix)

	overview, err := e.HomeOverview(f)
	require.NoError(t, err)
	assert.True(t, overview.TotalSalesToday.IsZero())

	cumulative, err := e.CumulativeSales(f)
	require.NoError(t, err)
	assert.True(t, cumulative.YearSales.IsZero())

	lists := []func() (int, error){
		func() (int, error) { r, err := e.IncentiveTable(f, false); return len(r), err },
		func() (int, error) { r, err := e.PerformanceTable(f, AllMonths); return len(r), err },
		func() (int, error) { r, err := e.PeakHours(f); return len(r), err },
		func() (int, error) { r, err := e.WeekdayVisits(f, OrderCalendar); return len(r), err },
		func() (int, error) { r, err := e.ServiceCount(f, AllMonths); return len(r), err },
		func() (int, error) { r, err := e.TopClientsSpendVisits(f); return len(r), err },
		func() (int, error) { r, err := e.LeastClientsSpendVisits(f); return len(r), err },
		func() (int, error) { r, err := e.TopClientsByVisits(f); return len(r), err },
		func() (int, error) { r, err := e.TopSpenders(f); return len(r), err },
		func() (int, error) { r, err := e.SpendVsVisits(f); return len(r), err },
		func() (int, error) { r, err := e.DaysSinceLastVisit(f); return len(r), err },
		func() (int, error) { r, err := e.EmployeeServiceRanking(f); return len(r), err },
		func() (int, error) { r, err := e.EmployeeRevenueRanking(f); return len(r), err },
		func() (int, error) { r, err := e.EmployeeSales(f); return len(r), err },
		func() (int, error) { r, err := e.EmployeeProductRevenue(f); return len(r), err },
		func() (int, error) { r, err := e.TopProducts(f); return len(r), err },
		func() (int, error) { r, err := e.SalesByDay(f); return len(r), err },
		func() (int, error) { r, err := e.IncentiveByEmployee(f); return len(r), err },
	}
	for i, fn := range lists {
		n, err := fn()
		require.NoError(t, err, "list %d", i)
		assert.Zero(t, n, "list %d", i)
	}
}

func TestUnparsableTimestampIsOutsideEveryWindow(t *testing.T) {
	e := engineAt(fridayEvening)
	f := clientFrame(t, e,
		visit("not-a-date", "Asha", "9998887776", "900", "Riya"),
		visit("01/03/2024 10:00:00", "Ben", "9000000001", "100", "Riya"),
	)

	for name, fn := range map[string]func(*Frame) (Metric, error){
		"today": e.TodaySales, "week": e.WeeklySales, "month": e.MonthlySales,
	} {
		m, err := fn(f)
		require.NoError(t, err)
		assertDecimal(t, "100", m.Value, name)
	}

	total, err := e.TotalServiceCount(f)
	require.NoError(t, err)
	assert.Equal(t, 2, total.Int(), "the row is still billed")
}

func TestWindows(t *testing.T) {
	e := engineAt(fridayEvening)
	f := clientFrame(t, e,
		visit("01/03/2024 10:00:00", "A", "1", "10", "R"),  // today, week 9
		visit("26/02/2024 10:00:00", "B", "2", "20", "R"),  // week 9, February
		visit("25/02/2024 10:00:00", "C", "3", "40", "R"),  // week 8, February
		visit("19/02/2024 10:00:00", "C", "3", "80", "R"),  // week 8, February
		visit("31/01/2024 10:00:00", "D", "4", "160", "R"), // week 5, January
		visit("01/03/2023 10:00:00", "E", "5", "320", "R"), // a year ago
	)

	cases := []struct {
		name string
		fn   func(*Frame) (Metric, error)
		want string
	}{
		{"today", e.TodaySales, "10"},
		{"this week", e.WeeklySales, "30"},
		{"this month", e.MonthlySales, "10"},
		{"previous week", e.PrevWeekSales, "120"},
		{"previous month", e.PrevMonthSales, "140"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := tc.fn(f)
			require.NoError(t, err)
			assertDecimal(t, tc.want, m.Value)
		})
	}

	prevWeekVisits, err := e.PrevWeekServiceCount(f)
	require.NoError(t, err)
	assert.Equal(t, 2, prevWeekVisits.Int())

	prevMonthVisits, err := e.PrevMonthServiceCount(f)
	require.NoError(t, err)
	assert.Equal(t, 3, prevMonthVisits.Int())
}

func TestPreviousPeriodsDoNotCrossYearBoundary(t *testing.T) {
	rows := []models.Row{
		visit("03/01/2024 10:00:00", "A", "1", "10", "R"), // 2024 ISO week 1
		visit("28/12/2023 10:00:00", "B", "2", "20", "R"), // 2023 ISO week 52
		visit("15/12/2023 10:00:00", "C", "3", "40", "R"), // December 2023
	}

	// Monday of ISO week 2: week 1 of the same year is the previous week.
	e := engineAt(time.Date(2024, time.January, 8, 12, 0, 0, 0, time.UTC))
	f := clientFrame(t, e, rows...)
	m, err := e.PrevWeekSales(f)
	require.NoError(t, err)
	assertDecimal(t, "10", m.Value)

	// In ISO week 1 the previous week is week 0, which never matches; the
	// last week of 2023 stays out.
	e = engineAt(time.Date(2024, time.January, 4, 12, 0, 0, 0, time.UTC))
	f = clientFrame(t, e, rows...)
	m, err = e.PrevWeekSales(f)
	require.NoError(t, err)
	assert.True(t, m.Value.IsZero())
	assert.Zero(t, m.Rows)

	// January's previous month is month 0: December 2023 is not counted.
	m, err = e.PrevMonthSales(f)
	require.NoError(t, err)
	assert.True(t, m.Value.IsZero())

	visits, err := e.PrevMonthServiceCount(f)
	require.NoError(t, err)
	assert.Zero(t, visits.Int())
}

func TestNewAndRepeatedClientsPartitionToday(t *testing.T) {
	e := engineAt(fridayEvening)
	f := clientFrame(t, e,
		visit("12/02/2024 10:00:00", "Asha", "+91 99988 87776", "500", "Riya"),
		visit("01/03/2024 10:00:00", "Asha", "9998887776", "500", "Riya"),
		visit("01/03/2024 11:00:00", "Asha", "9998887776", "200", "Riya"),
		visit("01/03/2024 12:00:00", "Ben", "9000000001", "100", "Riya"),
		visit("01/03/2024 13:00:00", "Walk-in", "", "100", "Riya"),
		visit("not-a-date", "Cleo", "9000000001", "100", "Riya"),
	)

	mix, err := e.NewAndRepeatedClients(f)
	require.NoError(t, err)
	assert.Equal(t, 2, mix.RepeatedClients)
	assert.Equal(t, 2, mix.NewClients)

	today := 0
	for _, r := range f.Records {
		if Today.contains(r, e.Now()) {
			today++
		}
	}
	assert.Equal(t, today, mix.NewClients+mix.RepeatedClients)
}

func TestVisitsCountRowsWithoutAmount(t *testing.T) {
	e := engineAt(fridayEvening)
	f := clientFrame(t, e,
		visit("01/03/2024 10:00:00", "Asha", "9998887776", "", "Riya"),
		visit("29/02/2024 10:00:00", "Ben", "9000000001", "250", "Riya"),
	)

	sales, err := e.WeeklySales(f)
	require.NoError(t, err)
	assertDecimal(t, "250", sales.Value)
	assert.Equal(t, 1, sales.Rows)

	visits, err := e.WeeklyServiceCount(f)
	require.NoError(t, err)
	assert.Equal(t, 2, visits.Int())

	total, err := e.TotalServiceCount(f)
	require.NoError(t, err)
	assert.Equal(t, 1, total.Int())
}

func TestMissingColumnFailsFast(t *testing.T) {
	e := engineAt(fridayEvening)
	f, err := e.Normalize(models.NewTable(models.ClientData,
		[]string{models.ColTimestamp, models.ColName},
		[]models.Row{{models.ColTimestamp: "01/03/2024 10:00:00", models.ColName: "Asha"}},
	))
	require.NoError(t, err)

	_, err = e.TodaySales(f)
	assert.True(t, errors.Is(err, ErrMissingColumn))
	assert.Contains(t, err.Error(), models.ColBillAmount)

	_, err = e.HomeOverview(f)
	assert.True(t, errors.Is(err, ErrMissingColumn))

	_, err = e.TopClientsSpendVisits(f)
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestHomeOverviewIsIdempotent(t *testing.T) {
	e := engineAt(fridayEvening)
	f := clientFrame(t, e,
		visit("01/03/2024 10:00:00", "Asha", "9998887776", "500.25", "Riya"),
		visit("27/02/2024 10:00:00", "Ben", "9000000001", "99.75", "Meera"),
		visit("20/02/2024 10:00:00", "Asha", "9998887776", "300", "Riya"),
	)

	first, err := e.HomeOverview(f)
	require.NoError(t, err)
	second, err := e.HomeOverview(f)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assertDecimal(t, "500.25", first.TotalSalesToday)
	assertDecimal(t, "600", first.WeeklySales)
	assertDecimal(t, "300", first.PrevWeekSales)
	assertDecimal(t, "399.75", first.PrevMonthSales)
	assert.Equal(t, 1, first.RepeatedClients)
	assert.Equal(t, 0, first.NewClients)
	assert.Equal(t, 3, first.TotalServices)
}

func TestThisWeekUsesISOWeekYear(t *testing.T) {
	// 2024-12-30 is in ISO week 1 of 2025, as is 2025-01-02; 2024-01-03 is
	// week 1 of 2024 and must stay out.
	e := engineAt(time.Date(2024, time.December, 30, 18, 0, 0, 0, time.UTC))
	f := clientFrame(t, e,
		visit("30/12/2024 10:00:00", "Asha", "9000000001", "100", "Riya"),
		visit("03/01/2024 10:00:00", "Ben", "9000000002", "5000", "Riya"),
		visit("23/12/2024 10:00:00", "Cleo", "9000000003", "40", "Riya"),
	)

	sales, err := e.WeeklySales(f)
	require.NoError(t, err)
	assertDecimal(t, "100", sales.Value)
	assert.Equal(t, 1, sales.Rows)

	visits, err := e.WeeklyServiceCount(f)
	require.NoError(t, err)
	assert.Equal(t, 1, visits.Int())

	// Week 0 of ISO year 2025 matches nothing; week 52 of 2024 is not reached.
	prev, err := e.PrevWeekSales(f)
	require.NoError(t, err)
	assert.True(t, prev.Value.IsZero())

	// Calendar windows still use the calendar year.
	month, err := e.MonthlySales(f)
	require.NoError(t, err)
	assertDecimal(t, "140", month.Value)
}
