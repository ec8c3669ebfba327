package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon-insights/metrics"
	"salon-insights/models"
	"salon-insights/services"
	"salon-insights/utils"
)

// DashboardController serves the metric catalog. Every request reads a fresh
// snapshot; nothing is cached between requests.
type DashboardController struct {
	Source services.DataSource
	Engine *metrics.Engine
	Logger *zap.Logger
}

func NewDashboardController(source services.DataSource, engine *metrics.Engine, logger *zap.Logger) *DashboardController {
	return &DashboardController{Source: source, Engine: engine, Logger: logger}
}

// MetricResponse wraps every metric. Empty is set when the snapshot had no
// rows, so the dashboard can show "no data" instead of a misleading zero.
type MetricResponse struct {
	Dataset string `json:"dataset"`
	Empty   bool   `json:"empty"`
	Data    any    `json:"data"`
}

type HomeData struct {
	Services metrics.HomeOverview    `json:"services"`
	Products metrics.ProductOverview `json:"products"`
}

// GetHome returns every KPI card of the home tab.
func (dc *DashboardController) GetHome(c *gin.Context) {
	clients, ok := dc.frame(c, models.ClientData)
	if !ok {
		return
	}
	products, ok := dc.frame(c, models.ProductSale)
	if !ok {
		return
	}

	home, err := dc.Engine.HomeOverview(clients)
	if err != nil {
		dc.fail(c, models.ClientData, err)
		return
	}
	prod, err := dc.Engine.ProductOverview(products)
	if err != nil {
		dc.fail(c, models.ProductSale, err)
		return
	}

	c.JSON(http.StatusOK, MetricResponse{
		Dataset: "home",
		Empty:   clients.Empty() && products.Empty(),
		Data:    HomeData{Services: home, Products: prod},
	})
}

func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// frame fetches and normalizes one dataset, answering the request itself on
// failure.
func (dc *DashboardController) frame(c *gin.Context, dataset string) (*metrics.Frame, bool) {
	f, err := dc.Engine.Normalize(dc.Source.Fetch(c.Request.Context(), dataset))
	if err != nil {
		dc.fail(c, dataset, err)
		return nil, false
	}
	return f, true
}

func (dc *DashboardController) fail(c *gin.Context, dataset string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, metrics.ErrMissingColumn) {
		status = http.StatusUnprocessableEntity
	}
	dc.Logger.Error("metric failed",
		zap.String("dataset", dataset),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(utils.RequestIDKey)),
		zap.Error(err),
	)
	utils.RespondWithError(c, status, err.Error())
}

// serve is the common path of single-dataset endpoints.
func serve[T any](dc *DashboardController, c *gin.Context, dataset string, compute func(*metrics.Frame) (T, error)) {
	f, ok := dc.frame(c, dataset)
	if !ok {
		return
	}
	data, err := compute(f)
	if err != nil {
		dc.fail(c, dataset, err)
		return
	}
	c.JSON(http.StatusOK, MetricResponse{Dataset: dataset, Empty: f.Empty(), Data: data})
}

func monthParam(c *gin.Context) string {
	return c.DefaultQuery("month", metrics.AllMonths)
}
