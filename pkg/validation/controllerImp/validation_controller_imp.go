package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cropsense/entities"
	"cropsense/pkg/validation"
)

type ValidationCtrl struct{ rules validation.Engine }

func New(rules validation.Engine) *ValidationCtrl { return &ValidationCtrl{rules: rules} }

// respondErr maps rejections to 400 and everything else to 500.
func respondErr(c echo.Context, err error) error {
	var rej *validation.Rejection
	if errors.As(err, &rej) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": rej.Reason})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

type cropManagementReq struct {
	CropType         string    `json:"crop_type"`
	PlantingDate     time.Time `json:"planting_date"`
	FieldSize        float64   `json:"field_size"`
	PreviousCrop     string    `json:"previous_crop"`
	SoilType         string    `json:"soil_type"`
	IrrigationMethod *string   `json:"irrigation_method"`
	ClimateZone      string    `json:"climate_zone"`
	ExpectedRainfall *float64  `json:"expected_rainfall"`
}

func (r *cropManagementReq) toQuery() (*entities.CropManagementQuery, error) {
	crop, ok := entities.ParseCropType(r.CropType)
	if !ok {
		return nil, fmt.Errorf("unknown crop type %q", r.CropType)
	}
	soil, ok := entities.ParseSoilType(r.SoilType)
	if !ok {
		return nil, fmt.Errorf("unknown soil type %q", r.SoilType)
	}
	zone, ok := entities.ParseClimateZone(r.ClimateZone)
	if !ok {
		return nil, fmt.Errorf("unknown climate zone %q", r.ClimateZone)
	}
	q := &entities.CropManagementQuery{
		CropType:         crop,
		PlantingDate:     r.PlantingDate,
		FieldSize:        r.FieldSize,
		PreviousCrop:     r.PreviousCrop,
		SoilType:         soil,
		ClimateZone:      zone,
		ExpectedRainfall: r.ExpectedRainfall,
	}
	if r.IrrigationMethod != nil {
		m, ok := entities.ParseIrrigationMethod(*r.IrrigationMethod)
		if !ok {
			return nil, fmt.Errorf("unknown irrigation method %q", *r.IrrigationMethod)
		}
		q.IrrigationMethod = &m
	}
	return q, nil
}

func (h *ValidationCtrl) CropManagement(c echo.Context) error {
	var req cropManagementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	q, err := req.toQuery()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := h.rules.CropManagement(q, time.Now().UTC()); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status": "valid",
		"recommendations": []string{
			"Based on your soil type and climate zone, your crop selection is appropriate.",
			fmt.Sprintf("Optimal planting window confirmed for %s", q.CropType),
			"Consider soil preparation 2-3 weeks before planting date",
		},
	})
}

func (h *ValidationCtrl) SoilAnalysis(c echo.Context) error {
	var q entities.SoilAnalysisQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	recs, err := h.rules.SoilAnalysis(&q)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "valid", "recommendations": recs})
}

func (h *ValidationCtrl) PestControl(c echo.Context) error {
	var q entities.PestControlQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	assessment, err := h.rules.PestControl(&q)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "valid",
		"urgency":     assessment.Urgency,
		"description": assessment.Description,
		"recommendations": []string{
			fmt.Sprintf("Current infestation level: %s", assessment.Description),
			"Consider integrated pest management approach",
			fmt.Sprintf("Treatment urgency: %s", assessment.Urgency),
		},
	})
}

type irrigationReq struct {
	CropType         string  `json:"crop_type"`
	GrowthStage      string  `json:"growth_stage"`
	SoilMoisture     float64 `json:"soil_moisture"`
	ExpectedRainfall float64 `json:"expected_rainfall"`
	Temperature      float64 `json:"temperature"`
	Humidity         float64 `json:"humidity"`
	WindSpeed        float64 `json:"wind_speed"`
}

func (h *ValidationCtrl) IrrigationSchedule(c echo.Context) error {
	var req irrigationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	crop, ok := entities.ParseCropType(req.CropType)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown crop type %q", req.CropType)})
	}
	q := &entities.IrrigationScheduleQuery{
		CropType:         crop,
		GrowthStage:      req.GrowthStage,
		SoilMoisture:     req.SoilMoisture,
		ExpectedRainfall: req.ExpectedRainfall,
		Temperature:      req.Temperature,
		Humidity:         req.Humidity,
		WindSpeed:        req.WindSpeed,
	}
	urgency, err := h.rules.IrrigationUrgency(q)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "valid",
		"urgency": urgency,
		"recommendations": []string{
			fmt.Sprintf("Current soil moisture: %.0f%%", q.SoilMoisture),
			fmt.Sprintf("Expected rainfall: %.0fmm", q.ExpectedRainfall),
			"Adjust irrigation based on weather forecast and soil moisture levels",
		},
	})
}

type harvestReq struct {
	CropType          string    `json:"crop_type"`
	PlantingDate      time.Time `json:"planting_date"`
	GrowingDegreeDays float64   `json:"growing_degree_days"`
	GrainMoisture     *float64  `json:"grain_moisture"`
	RainfallForecast  float64   `json:"rainfall_forecast"`
}

func (h *ValidationCtrl) HarvestTiming(c echo.Context) error {
	var req harvestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	crop, ok := entities.ParseCropType(req.CropType)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown crop type %q", req.CropType)})
	}
	q := &entities.HarvestTimingQuery{
		CropType:          crop,
		PlantingDate:      req.PlantingDate,
		GrowingDegreeDays: req.GrowingDegreeDays,
		GrainMoisture:     req.GrainMoisture,
		RainfallForecast:  req.RainfallForecast,
	}
	if err := h.rules.HarvestTiming(q); err != nil {
		return respondErr(c, err)
	}
	recs := []string{"Conditions are suitable for harvest"}
	if q.GrainMoisture != nil {
		recs = append(recs, fmt.Sprintf("Grain moisture at %.0f%% is within acceptable range", *q.GrainMoisture))
	}
	if q.RainfallForecast > 0 {
		recs = append(recs, fmt.Sprintf("Note: %.0fmm rainfall forecasted - plan accordingly", q.RainfallForecast))
	}
	return c.JSON(http.StatusOK, map[string]any{"status": "valid", "recommendations": recs})
}
