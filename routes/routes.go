package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon-insights/config"
	"salon-insights/controllers"
	"salon-insights/utils"
)

func SetupRouter(cfg *config.Config, dc *controllers.DashboardController, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", utils.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", utils.RequestIDHeader},
		AllowCredentials: true,
	}))
	r.Use(utils.RequestID())
	r.Use(utils.ErrorHandler(logger))
	r.Use(config.PerformanceLogger(logger))

	r.GET("/healthz", controllers.Healthz)

	api := r.Group("/api")
	api.Use(utils.RateLimit(cfg.MaxRequestsPerMin, logger))
	{
		api.GET("/home", dc.GetHome)

		svc := api.Group("/services")
		{
			svc.GET("/summary", dc.GetServiceSummary)
			svc.GET("/incentives", dc.GetIncentives)
			svc.GET("/performance", dc.GetPerformance)
			svc.GET("/peak-hours", dc.GetPeakHours)
			svc.GET("/weekdays", dc.GetWeekdays)
			svc.GET("/service-counts", dc.GetServiceCounts)
			svc.GET("/months", dc.GetMonths)

			clients := svc.Group("/clients")
			{
				clients.GET("/top", dc.GetTopClients)
				clients.GET("/least", dc.GetLeastClients)
				clients.GET("/top-visits", dc.GetTopClientsByVisits)
				clients.GET("/top-spenders", dc.GetTopSpenders)
				clients.GET("/spend-vs-visits", dc.GetSpendVsVisits)
				clients.GET("/recency", dc.GetRecency)
			}

			employees := svc.Group("/employees")
			{
				employees.GET("/services", dc.GetEmployeeServices)
				employees.GET("/revenue", dc.GetEmployeeRevenue)
			}
		}

		products := api.Group("/products")
		{
			products.GET("/summary", dc.GetProductSummary)
			products.GET("/employees/sales", dc.GetProductEmployeeSales)
			products.GET("/employees/revenue", dc.GetProductEmployeeRevenue)
			products.GET("/top", dc.GetTopProducts)
			products.GET("/by-day", dc.GetSalesByDay)
			products.GET("/incentives", dc.GetProductIncentives)
		}
	}

	return r
}
