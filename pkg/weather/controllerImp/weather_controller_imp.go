package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cropsense/entities"
	svc "cropsense/pkg/weather/service"
)

type WeatherCtrl struct{ svc svc.WeatherService }

func New(s svc.WeatherService) *WeatherCtrl { return &WeatherCtrl{svc: s} }

func (h *WeatherCtrl) Current(c echo.Context) error {
	loc, err := entities.ParseLocationID(c.Param("location_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid location format"})
	}
	obs, err := h.svc.Current(loc)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, obs)
}

func (h *WeatherCtrl) Forecast(c echo.Context) error {
	loc, err := entities.ParseLocationID(c.Param("location_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid location format"})
	}
	days := 7
	if v := c.QueryParam("days"); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			days = d
		}
	}
	fc, err := h.svc.Forecast(loc, days)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, fc)
}

func (h *WeatherCtrl) Soil(c echo.Context) error {
	loc, err := entities.ParseLocationID(c.Param("location_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid location format"})
	}
	data, err := h.svc.Soil(loc)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, data)
}
