package controllerImp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cropsense/entities"
	cropsvc "cropsense/pkg/crop/service"
	"cropsense/pkg/report"
	weathersvc "cropsense/pkg/weather/service"
)

type CropCtrl struct {
	crops   cropsvc.CropService
	weather weathersvc.WeatherService
}

func New(crops cropsvc.CropService, weather weathersvc.WeatherService) *CropCtrl {
	return &CropCtrl{crops: crops, weather: weather}
}

func (h *CropCtrl) parseRoute(c echo.Context) (entities.CropType, entities.GeoLocation, error) {
	crop, ok := entities.ParseCropType(c.Param("crop_type"))
	if !ok {
		return "", entities.GeoLocation{}, fmt.Errorf("unknown crop type %q", c.Param("crop_type"))
	}
	loc, err := entities.ParseLocationID(c.Param("location_id"))
	if err != nil {
		return "", entities.GeoLocation{}, err
	}
	return crop, loc, nil
}

func parseHarvestDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid target_harvest_date %q", s)
}

func (h *CropCtrl) schedule(c echo.Context) (*entities.FarmingSchedule, int, error) {
	crop, loc, err := h.parseRoute(c)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	target, err := parseHarvestDate(c.QueryParam("target_harvest_date"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	sched, err := h.crops.PlantingSchedule(crop, loc, target)
	if err != nil {
		// table misses are configuration faults, not user errors
		return nil, http.StatusInternalServerError, err
	}
	return sched, http.StatusOK, nil
}

func (h *CropCtrl) Schedule(c echo.Context) error {
	sched, status, err := h.schedule(c)
	if err != nil {
		return c.JSON(status, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, sched)
}

func (h *CropCtrl) ExportSchedule(c echo.Context) error {
	sched, status, err := h.schedule(c)
	if err != nil {
		return c.JSON(status, map[string]string{"error": err.Error()})
	}
	wb, err := report.ScheduleWorkbook(sched)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	name := fmt.Sprintf("%s_schedule_%s.xlsx", sched.CropType, sched.OptimalPlantingDate.Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return wb.Write(c.Response())
}

func (h *CropCtrl) Conditions(c echo.Context) error {
	crop, loc, err := h.parseRoute(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	obs, err := h.weather.Current(loc)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	rep, err := h.crops.AnalyzeConditions(crop, obs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"crop_type":   crop,
		"location_id": loc.ID(),
		"observed":    obs,
		"analysis":    rep,
	})
}
