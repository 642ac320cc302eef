package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"cropsense/entities"
	svc "cropsense/pkg/knowledge/service"
)

type KnowledgeCtrl struct{ svc svc.KnowledgeService }

func New(s svc.KnowledgeService) *KnowledgeCtrl { return &KnowledgeCtrl{svc: s} }

// technique lookups accept the agriculturally relevant zones only
var techniqueZones = []string{"mediterranean", "continental", "tropical", "semi_arid", "humid_subtropical"}

func (h *KnowledgeCtrl) FarmingTechniques(c echo.Context) error {
	crop, ok := entities.ParseCropType(c.Param("crop_type"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown crop type %q", c.Param("crop_type"))})
	}
	zone := strings.ToLower(c.QueryParam("climate_zone"))
	valid := false
	for _, z := range techniqueZones {
		if zone == z {
			valid = true
			break
		}
	}
	if !valid {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "climate_zone must be one of: " + strings.Join(techniqueZones, ", "),
		})
	}
	soil := c.QueryParam("soil_type")

	tree, err := h.svc.FarmingTechniques(crop, zone, soil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, tree)
}

func (h *KnowledgeCtrl) DiseaseRisks(c echo.Context) error {
	crop, ok := entities.ParseCropType(c.Param("crop_type"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown crop type %q", c.Param("crop_type"))})
	}
	temp, err := strconv.ParseFloat(c.QueryParam("temperature"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "temperature is required and must be numeric"})
	}
	humidity, err := strconv.ParseFloat(c.QueryParam("humidity"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "humidity is required and must be numeric"})
	}
	if temp < -50 || temp > 60 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "temperature must be between -50 and 60"})
	}
	if humidity < 0 || humidity > 100 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "humidity must be between 0 and 100"})
	}
	return c.JSON(http.StatusOK, h.svc.DiseaseRisks(crop, temp, humidity))
}

func (h *KnowledgeCtrl) ProtectionMeasures(c echo.Context) error {
	crop, ok := entities.ParseCropType(c.Param("crop_type"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown crop type %q", c.Param("crop_type"))})
	}
	stage, ok := entities.ParseGrowthStage(c.QueryParam("growth_stage"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown growth stage %q", c.QueryParam("growth_stage"))})
	}
	return c.JSON(http.StatusOK, h.svc.ProtectionMeasures(crop, stage))
}
