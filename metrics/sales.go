package metrics

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"salon-insights/models"
)

// Cumulative holds the running totals shown at the top of the service tab.
type Cumulative struct {
	MonthSales decimal.Decimal `json:"month_sales"`
	YearSales  decimal.Decimal `json:"year_sales"`
}

// CumulativeSales totals the current calendar month and the year to date.
func (e *Engine) CumulativeSales(f *Frame) (Cumulative, error) {
	ok, err := f.ready(models.ColBillAmount)
	if !ok {
		return Cumulative{MonthSales: decimal.Zero, YearSales: decimal.Zero}, err
	}
	year := e.Now().Year()
	thisYear := lo.Filter(f.Records, func(r Record, _ int) bool {
		return r.Valid && r.Year == year
	})
	return Cumulative{
		MonthSales: sumAmounts(e.inWindow(f, ThisMonth)).Decimal,
		YearSales:  sumAmounts(thisYear).Decimal,
	}, nil
}
