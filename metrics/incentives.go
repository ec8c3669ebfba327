package metrics

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"salon-insights/models"
)

// Incentive is one employee's 1% share of what they billed.
type Incentive struct {
	Employee   string          `json:"employee"`
	TotalSales decimal.Decimal `json:"total_sales"`
	Incentive  decimal.Decimal `json:"incentive"`
}

// IncentiveTable computes service incentives per "Service done by", highest
// billing first. With currentYear set only this calendar year's bills count.
// Employees with no billed amount at all are left out.
func (e *Engine) IncentiveTable(f *Frame, currentYear bool) ([]Incentive, error) {
	ok, err := f.ready(models.ColServiceDoneBy, models.ColBillAmount)
	if !ok {
		return []Incentive{}, err
	}
	records := f.Records
	if currentYear {
		records = e.currentYear(records)
	}

	ranked := rankBySum(groupBy(records, byColumn(models.ColServiceDoneBy)), true)
	return lo.Map(ranked, func(g rankedGroup, _ int) Incentive {
		return Incentive{
			Employee:   g.key,
			TotalSales: g.sum,
			Incentive:  round2(g.sum.Mul(onePercent)),
		}
	}), nil
}

// ProductIncentive is one seller's yearly incentive on product sales.
type ProductIncentive struct {
	Employee        string          `json:"employee"`
	IncentiveAmount decimal.Decimal `json:"incentive_amount"`
}

// IncentiveByEmployee is 1% of this calendar year's product sales per
// "Sold by", largest first.
func (e *Engine) IncentiveByEmployee(f *Frame) ([]ProductIncentive, error) {
	ok, err := f.ready(models.ColSoldBy, models.ColBillAmount)
	if !ok {
		return []ProductIncentive{}, err
	}
	ranked := rankBySum(groupBy(e.currentYear(f.Records), byColumn(models.ColSoldBy)), true)
	return lo.Map(ranked, func(g rankedGroup, _ int) ProductIncentive {
		return ProductIncentive{
			Employee:        g.key,
			IncentiveAmount: round2(g.sum.Mul(onePercent)),
		}
	}), nil
}

func (e *Engine) currentYear(records []Record) []Record {
	year := e.Now().Year()
	return lo.Filter(records, func(r Record, _ int) bool {
		return r.Valid && r.Year == year
	})
}

// byColumn keys records by a trimmed raw column value.
func byColumn(column string) func(Record) (string, bool) {
	return func(r Record) (string, bool) {
		return r.Get(column), true
	}
}
