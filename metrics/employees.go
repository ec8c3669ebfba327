package metrics

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"salon-insights/models"
)

// EmployeeCount is how many services an employee performed.
type EmployeeCount struct {
	Employee     string `json:"employee"`
	ServiceCount int    `json:"service_count"`
}

// EmployeeRevenue is what an employee billed in total.
type EmployeeRevenue struct {
	Employee     string          `json:"employee"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// EmployeeProducts is how many products an employee sold.
type EmployeeProducts struct {
	Employee          string `json:"employee"`
	TotalProductsSold int    `json:"total_products_sold"`
}

// EmployeeServiceRanking ranks "Service done by" by rows, most first.
func (e *Engine) EmployeeServiceRanking(f *Frame) ([]EmployeeCount, error) {
	ok, err := f.ready(models.ColServiceDoneBy)
	if !ok {
		return []EmployeeCount{}, err
	}
	return lo.Map(rankByCount(groupBy(f.Records, byColumn(models.ColServiceDoneBy))), func(g group, _ int) EmployeeCount {
		return EmployeeCount{Employee: g.key, ServiceCount: len(g.records)}
	}), nil
}

// EmployeeRevenueRanking ranks "Service done by" by billed amount.
func (e *Engine) EmployeeRevenueRanking(f *Frame) ([]EmployeeRevenue, error) {
	return e.revenueRanking(f, models.ColServiceDoneBy)
}

// EmployeeSales ranks "Sold by" by number of products sold.
func (e *Engine) EmployeeSales(f *Frame) ([]EmployeeProducts, error) {
	ok, err := f.ready(models.ColSoldBy)
	if !ok {
		return []EmployeeProducts{}, err
	}
	return lo.Map(rankByCount(groupBy(f.Records, byColumn(models.ColSoldBy))), func(g group, _ int) EmployeeProducts {
		return EmployeeProducts{Employee: g.key, TotalProductsSold: len(g.records)}
	}), nil
}

// EmployeeProductRevenue ranks "Sold by" by product revenue.
func (e *Engine) EmployeeProductRevenue(f *Frame) ([]EmployeeRevenue, error) {
	return e.revenueRanking(f, models.ColSoldBy)
}

func (e *Engine) revenueRanking(f *Frame, column string) ([]EmployeeRevenue, error) {
	ok, err := f.ready(column, models.ColBillAmount)
	if !ok {
		return []EmployeeRevenue{}, err
	}
	return lo.Map(rankBySum(groupBy(f.Records, byColumn(column)), true), func(g rankedGroup, _ int) EmployeeRevenue {
		return EmployeeRevenue{Employee: g.key, TotalRevenue: g.sum}
	}), nil
}
