package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	weatherCtrl interface {
		Current(echo.Context) error
		Forecast(echo.Context) error
		Soil(echo.Context) error
	},
	cropCtrl interface {
		Schedule(echo.Context) error
		ExportSchedule(echo.Context) error
		Conditions(echo.Context) error
	},
	knowledgeCtrl interface {
		FarmingTechniques(echo.Context) error
		DiseaseRisks(echo.Context) error
		ProtectionMeasures(echo.Context) error
	},
	validationCtrl interface {
		CropManagement(echo.Context) error
		SoilAnalysis(echo.Context) error
		PestControl(echo.Context) error
		IrrigationSchedule(echo.Context) error
		HarvestTiming(echo.Context) error
	},
	advisorCtrl interface {
		CropManagement(echo.Context) error
		SoilAnalysis(echo.Context) error
		IrrigationSchedule(echo.Context) error
		HarvestTiming(echo.Context) error
		Recommendations(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")

	api.GET("/weather/current/:location_id", weatherCtrl.Current)
	api.GET("/weather/forecast/:location_id", weatherCtrl.Forecast)
	api.GET("/weather/soil/:location_id", weatherCtrl.Soil)

	api.GET("/crops/schedule/:crop_type/:location_id", cropCtrl.Schedule)
	api.GET("/crops/schedule/:crop_type/:location_id/export", cropCtrl.ExportSchedule)
	api.GET("/crops/conditions/:crop_type/:location_id", cropCtrl.Conditions)

	api.GET("/knowledge/farming-techniques/:crop_type", knowledgeCtrl.FarmingTechniques)
	api.GET("/knowledge/disease-risks/:crop_type", knowledgeCtrl.DiseaseRisks)
	api.GET("/knowledge/protection-measures/:crop_type", knowledgeCtrl.ProtectionMeasures)

	api.POST("/validate/crop-management", validationCtrl.CropManagement)
	api.POST("/validate/soil-analysis", validationCtrl.SoilAnalysis)
	api.POST("/validate/pest-control", validationCtrl.PestControl)
	api.POST("/validate/irrigation-schedule", validationCtrl.IrrigationSchedule)
	api.POST("/validate/harvest-timing", validationCtrl.HarvestTiming)

	api.POST("/advisor/crop-management", advisorCtrl.CropManagement)
	api.POST("/advisor/soil-analysis", advisorCtrl.SoilAnalysis)
	api.POST("/advisor/irrigation-schedule", advisorCtrl.IrrigationSchedule)
	api.POST("/advisor/harvest-timing", advisorCtrl.HarvestTiming)
	api.GET("/advisor/recommendations", advisorCtrl.Recommendations)

	return e
}
