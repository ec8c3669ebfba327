package controllers

import (
	"github.com/gin-gonic/gin"

	"salon-insights/models"
)

// Handlers of the product tab. All read the "Product Sale" dataset.

func (dc *DashboardController) GetProductSummary(c *gin.Context) {
	serve(dc, c, models.ProductSale, dc.Engine.RevenueSummary)
}

func (dc *DashboardController) GetProductEmployeeSales(c *gin.Context) {
	serve(dc, c, models.ProductSale, dc.Engine.EmployeeSales)
}

func (dc *DashboardController) GetProductEmployeeRevenue(c *gin.Context) {
	serve(dc, c, models.ProductSale, dc.Engine.EmployeeProductRevenue)
}

func (dc *DashboardController) GetTopProducts(c *gin.Context) {
	serve(dc, c, models.ProductSale, dc.Engine.TopProducts)
}

func (dc *DashboardController) GetSalesByDay(c *gin.Context) {
	serve(dc, c, models.ProductSale, dc.Engine.SalesByDay)
}

func (dc *DashboardController) GetProductIncentives(c *gin.Context) {
	serve(dc, c, models.ProductSale, dc.Engine.IncentiveByEmployee)
}
