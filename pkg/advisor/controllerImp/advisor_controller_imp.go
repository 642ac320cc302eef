package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cropsense/entities"
	"cropsense/pkg/advisor"
	"cropsense/pkg/validation"
)

type AdvisorCtrl struct{ adv *advisor.Advisor }

func New(adv *advisor.Advisor) *AdvisorCtrl { return &AdvisorCtrl{adv: adv} }

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
	SoilType         string    `json:"soil_type"`
	IrrigationMethod *string   `json:"irrigation_method"`
	ClimateZone      string    `json:"climate_zone"`
	ExpectedRainfall *float64  `json:"expected_rainfall"`
}

func (h *AdvisorCtrl) CropManagement(c echo.Context) error {
	var req cropManagementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	crop, ok := entities.ParseCropType(req.CropType)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown crop type %q", req.CropType)})
	}
	soil, ok := entities.ParseSoilType(req.SoilType)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown soil type %q", req.SoilType)})
	}
	zone, ok := entities.ParseClimateZone(req.ClimateZone)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown climate zone %q", req.ClimateZone)})
	}
	q := &entities.CropManagementQuery{
		CropType:         crop,
		PlantingDate:     req.PlantingDate,
		FieldSize:        req.FieldSize,
		SoilType:         soil,
		ClimateZone:      zone,
		ExpectedRainfall: req.ExpectedRainfall,
	}
	if req.IrrigationMethod != nil {
		m, ok := entities.ParseIrrigationMethod(*req.IrrigationMethod)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown irrigation method %q", *req.IrrigationMethod)})
		}
		q.IrrigationMethod = &m
	}
	resp, err := h.adv.CropManagement(q, time.Now().UTC())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdvisorCtrl) SoilAnalysis(c echo.Context) error {
	var q entities.SoilAnalysisQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	resp, err := h.adv.SoilAnalysis(&q)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdvisorCtrl) IrrigationSchedule(c echo.Context) error {
	var q entities.IrrigationScheduleQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	resp, err := h.adv.IrrigationSchedule(&q)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdvisorCtrl) HarvestTiming(c echo.Context) error {
	var q entities.HarvestTimingQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	resp, err := h.adv.HarvestTiming(&q)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Recommendations returns the advisor's standing context-free guidance.
func (h *AdvisorCtrl) Recommendations(c echo.Context) error {
	return c.JSON(http.StatusOK, []string{
		"Optimize planting schedule based on weather forecast",
		"Implement precision irrigation based on soil moisture",
		"Monitor crop health indicators",
		"Plan preventive pest control measures",
		"Schedule regular soil testing",
	})
}
