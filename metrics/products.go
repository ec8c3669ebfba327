package metrics

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"salon-insights/models"
)

// Rolling windows for the product KPI cards.
const (
	LastWeekDays  = 7
	LastMonthDays = 30
)

// RevenueSummary is the all-time product revenue and sale count.
type RevenueSummary struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalSales   int             `json:"total_sales"`
}

func (e *Engine) RevenueSummary(f *Frame) (RevenueSummary, error) {
	ok, err := f.ready(models.ColBillAmount)
	if !ok {
		return RevenueSummary{TotalRevenue: decimal.Zero}, err
	}
	return RevenueSummary{
		TotalRevenue: sumAmounts(f.Records).Decimal,
		TotalSales:   f.Len(),
	}, nil
}

// ProductCount is how often one product was sold.
type ProductCount struct {
	Product   string `json:"product"`
	SoldCount int    `json:"sold_count"`
}

// TopProducts ranks products by number of sales.
func (e *Engine) TopProducts(f *Frame) ([]ProductCount, error) {
	ok, err := f.ready(models.ColProductName)
	if !ok {
		return []ProductCount{}, err
	}
	return lo.Map(rankByCount(groupBy(f.Records, byColumn(models.ColProductName))), func(g group, _ int) ProductCount {
		return ProductCount{Product: g.key, SoldCount: len(g.records)}
	}), nil
}

func (e *Engine) TotalProductSales(f *Frame) (Metric, error) {
	const key = "total_product_revenue"
	ok, err := f.ready(models.ColBillAmount)
	if !ok {
		return Metric{Key: key, Value: decimal.Zero}, err
	}
	return sumMetric(key, f.Records), nil
}

// TotalProductsSold counts every sale row.
func (e *Engine) TotalProductsSold(f *Frame) (Metric, error) {
	return countMetric("total_products_sold", f.Len()), nil
}

func (e *Engine) ProductsSoldToday(f *Frame) (Metric, error) {
	return countMetric("products_sold_today", len(e.inWindow(f, Today))), nil
}

// ProductsSoldLastWeek counts sales dated on or after today minus 7 days,
// which spans 8 calendar days including today.
func (e *Engine) ProductsSoldLastWeek(f *Frame) (Metric, error) {
	return countMetric("products_sold_last_week", len(since(f.all(), e.Now(), LastWeekDays))), nil
}

// ProductsSoldLastMonth counts sales dated on or after today minus 30 days.
func (e *Engine) ProductsSoldLastMonth(f *Frame) (Metric, error) {
	return countMetric("products_sold_last_month", len(since(f.all(), e.Now(), LastMonthDays))), nil
}

// ProductOverview is the product half of the home tab.
type ProductOverview struct {
	TotalProductRevenue   decimal.Decimal `json:"total_product_revenue"`
	TotalProductsSold     int             `json:"total_products_sold"`
	ProductsSoldToday     int             `json:"products_sold_today"`
	ProductsSoldLastWeek  int             `json:"products_sold_last_week"`
	ProductsSoldLastMonth int             `json:"products_sold_last_month"`
}

func (e *Engine) ProductOverview(f *Frame) (ProductOverview, error) {
	revenue, err := e.TotalProductSales(f)
	if err != nil {
		return ProductOverview{}, err
	}
	sold, _ := e.TotalProductsSold(f)
	today, _ := e.ProductsSoldToday(f)
	week, _ := e.ProductsSoldLastWeek(f)
	month, _ := e.ProductsSoldLastMonth(f)
	return ProductOverview{
		TotalProductRevenue:   revenue.Value,
		TotalProductsSold:     sold.Int(),
		ProductsSoldToday:     today.Int(),
		ProductsSoldLastWeek:  week.Int(),
		ProductsSoldLastMonth: month.Int(),
	}, nil
}
