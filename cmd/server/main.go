package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cropsense/config"
	"cropsense/database"
	"cropsense/pkg/middleware"
	"cropsense/router"

	"cropsense/pkg/agronomy"
	"cropsense/pkg/validation"

	"cropsense/pkg/advisor"
	advisorCtrlImp "cropsense/pkg/advisor/controllerImp"
	cropCtrlImp "cropsense/pkg/crop/controllerImp"
	cropSvcImp "cropsense/pkg/crop/serviceImp"
	healthCtrlImp "cropsense/pkg/health/controllerImp"
	knowCtrlImp "cropsense/pkg/knowledge/controllerImp"
	knowSvcImp "cropsense/pkg/knowledge/serviceImp"
	validationCtrlImp "cropsense/pkg/validation/controllerImp"
	"cropsense/pkg/weather"
	weatherCtrlImp "cropsense/pkg/weather/controllerImp"
	weatherRepoImp "cropsense/pkg/weather/repositoryImp"
	weatherSvcImp "cropsense/pkg/weather/serviceImp"
)

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	return logger
}

func main() {
	// 1) Config
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	// 2) Domain tables must be complete before serving anything
	if err := agronomy.VerifyTables(); err != nil {
		logger.Fatal("domain tables incomplete", zap.Error(err))
	}

	// 3) DB (sqlite) for the weather cache
	db := database.OpenSQLite(cfg.DBPath)

	// 4) Weather collaborator: provider client + cache; synthetic fallback
	// kicks in inside the service when the provider is unreachable.
	var provider = weather.NewAgro(cfg.AgroBaseURL, cfg.AgroAPIKey)
	if cfg.AgroAPIKey == "" {
		logger.Warn("AGRO_API_KEY not set, weather will be synthetic")
		provider = weather.NewSynthetic()
	}
	weatherRepo := weatherRepoImp.New(db)
	weatherSvc := weatherSvcImp.New(provider, weatherRepo, time.Duration(cfg.CacheTTLSec)*time.Second, logger)

	// 5) Core services
	cropSvc := cropSvcImp.New()
	knowSvc := knowSvcImp.New()
	rules := validation.New()
	adv := advisor.New(rules)

	// 6) Controllers
	weatherCtrl := weatherCtrlImp.New(weatherSvc)
	cropCtrl := cropCtrlImp.New(cropSvc, weatherSvc)
	knowCtrl := knowCtrlImp.New(knowSvc)
	validationCtrl := validationCtrlImp.New(rules)
	advisorCtrl := advisorCtrlImp.New(adv)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(middleware.RequestLogger(logger))

	r := router.New(e, weatherCtrl, cropCtrl, knowCtrl, validationCtrl, advisorCtrl, healthCtrl)

	// 8) Start
	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
