package controllers

import (
	"github.com/gin-gonic/gin"

	"salon-insights/metrics"
	"salon-insights/models"
)

// Handlers of the service tab. All read the "Client Data" dataset.

func (dc *DashboardController) GetServiceSummary(c *gin.Context) {
	serve(dc, c, models.ClientData, dc.Engine.CumulativeSales)
}

// GetIncentives accepts ?year=current to count this calendar year only.
func (dc *DashboardController) GetIncentives(c *gin.Context) {
	currentYear := c.Query("year") == "current"
	serve(dc, c, models.ClientData, func(f *metrics.Frame) ([]metrics.Incentive, error) {
		return dc.Engine.IncentiveTable(f, currentYear)
	})
}

func (dc *DashboardController) GetPerformance(c *gin.Context) {
	month := monthParam(c)
	serve(dc, c, models.ClientData, func(f *metrics.Frame) ([]metrics.WeeklyPerformance, error) {
		return dc.Engine.PerformanceTable(f, month)
	})
}

func (dc *DashboardController) GetPeakHours(c *gin.Context) {
	serve(dc, c, models.ClientData, dc.Engine.PeakHours)
}

// GetWeekdays accepts ?order=calendar (default) or ?order=busiest.
func (dc *DashboardController) GetWeekdays(c *gin.Context) {
	order := metrics.ParseWeekdayOrder(c.Query("order"))
	serve(dc, c, models.ClientData, func(f *metrics.Frame) ([]metrics.WeekdayCount, error) {
		return dc.Engine.WeekdayVisits(f, order)
	})
}

func (dc *DashboardController) GetServiceCounts(c *gin.Context) {
	month := monthParam(c)
	serve(dc, c, models.ClientData, func(f *metrics.Frame) ([]metrics.ServiceUsage, error) {
		return dc.Engine.UniqueServiceCounts(f, month)
	})
}

// GetMonths lists the values of the month selector.
func (dc *DashboardController) GetMonths(c *gin.Context) {
	serve(dc, c, models.ClientData, func(f *metrics.Frame) ([]string, error) {
		return metrics.MonthOptions(f), nil
	})
}

func (dc *DashboardController) GetTopClients(c *gin.Context) {
	serve(dc, c, models.ClientData, dc.Engine.TopClientsSpendVisits)
}

func (dc *DashboardController) GetLeastClients(c *gin.Context) {
	serve(dc, c, models.ClientData, dc.Engine.LeastClientsSpendVisits)
}

func (dc *DashboardController) GetTopClientsByVisits(c *gin.Context) {
	serve(dc, c, models.ClientData, dc.Engine.TopClientsByVisits)
}

func (dc *DashboardController) GetTopSpenders(c *gin.Context) {
	serve(dc, c, models.ClientData, dc.Engine.TopSpenders)
}

func (dc *DashboardController) GetSpendVsVisits(c *gin.Context) {
	serve(dc, c, models.ClientData, dc.Engine.SpendVsVisits)
}

func (dc *DashboardController) GetRecency(c *gin.Context) {
	serve(dc, c, models.ClientData, dc.Engine.DaysSinceLastVisit)
}

func (dc *DashboardController) GetEmployeeServices(c *gin.Context) {
	serve(dc, c, models.ClientData, dc.Engine.EmployeeServiceRanking)
}

func (dc *DashboardController) GetEmployeeRevenue(c *gin.Context) {
	serve(dc, c, models.ClientData, dc.Engine.EmployeeRevenueRanking)
}
