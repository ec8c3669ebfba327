package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"salon-insights/config"
	"salon-insights/controllers"
	"salon-insights/metrics"
	"salon-insights/routes"
	"salon-insights/services"
	"salon-insights/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	// The dashboard binds to numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	loc, _ := cfg.Location()
	engine := metrics.NewEngine(metrics.WithLocation(loc), metrics.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, err := services.NewDataSource(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("data source", zap.Error(err))
	}

	var digest *services.DigestService
	if cfg.DigestEnabled {
		digest = services.NewDigestService(source, engine, messenger(cfg, logger), cfg.Recipients(), logger)
		if err := digest.StartScheduler(cfg.DigestSchedule); err != nil {
			logger.Fatal("digest", zap.Error(err))
		}
	}

	dc := controllers.NewDashboardController(source, engine, logger)
	r := routes.SetupRouter(cfg, dc, logger)
	printRoutes(r, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("data_source", cfg.DataSource))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if digest != nil {
		digest.Stop()
	}
}

func messenger(cfg *config.Config, logger *zap.Logger) services.Messenger {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioFrom == "" {
		logger.Warn("twilio credentials missing, digest will only be logged")
		return services.LogMessenger{Logger: logger}
	}
	return services.NewTwilioMessenger(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom)
}

func printRoutes(r *gin.Engine, logger *zap.Logger) {
	for _, route := range r.Routes() {
		logger.Debug(fmt.Sprintf("%-6s %s", route.Method, route.Path))
	}
}
