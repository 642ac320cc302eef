package controllerImp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cropsense/entities"
	"cropsense/pkg/crop/serviceImp"
)

var testNow = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

type stubWeather struct {
	obs *entities.Observation
}

func (s *stubWeather) Current(loc entities.GeoLocation) (*entities.Observation, error) {
	return s.obs, nil
}

func (s *stubWeather) Forecast(loc entities.GeoLocation, days int) (*entities.WeatherForecast, error) {
	return &entities.WeatherForecast{LocationID: loc.ID()}, nil
}

func (s *stubWeather) Soil(loc entities.GeoLocation) (map[string]any, error) {
	return map[string]any{}, nil
}

func newTestCtrl(obs *entities.Observation) *CropCtrl {
	crops := serviceImp.NewWithClock(func() time.Time { return testNow })
	return New(crops, &stubWeather{obs: obs})
}

func doGet(t *testing.T, handler echo.HandlerFunc, cropType, locationID, query string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("crop_type", "location_id")
	c.SetParamValues(cropType, locationID)
	require.NoError(t, handler(c))
	return rec
}

func TestScheduleEndpoint(t *testing.T) {
	h := newTestCtrl(nil)

	t.Run("default harvest anchors planting at today", func(t *testing.T) {
		rec := doGet(t, h.Schedule, "corn", "40.7,-74", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var s entities.FarmingSchedule
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
		assert.Equal(t, 172, s.TotalGrowingDays)
		assert.True(t, s.OptimalPlantingDate.Equal(testNow))
		assert.Len(t, s.GrowthTimeline, 8)
	})

	t.Run("target harvest date pulls planting back", func(t *testing.T) {
		rec := doGet(t, h.Schedule, "corn", "40.7,-74", "target_harvest_date=2026-10-01")
		require.Equal(t, http.StatusOK, rec.Code)

		var s entities.FarmingSchedule
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
		harvest := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
		assert.True(t, s.TargetHarvestDate.Equal(harvest))
		assert.True(t, s.OptimalPlantingDate.Equal(harvest.AddDate(0, 0, -172)))
	})

	t.Run("bad inputs are 400s", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, doGet(t, h.Schedule, "rice", "40.7,-74", "").Code)
		assert.Equal(t, http.StatusBadRequest, doGet(t, h.Schedule, "corn", "91,0", "").Code)
		assert.Equal(t, http.StatusBadRequest, doGet(t, h.Schedule, "corn", "40.7,-74", "target_harvest_date=soon").Code)
	})
}

func TestExportScheduleEndpoint(t *testing.T) {
	h := newTestCtrl(nil)

	rec := doGet(t, h.ExportSchedule, "wheat", "40.7,-74", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "wheat_schedule_")

	wb, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer wb.Close()

	crop, err := wb.GetCellValue("Schedule", "B1")
	require.NoError(t, err)
	assert.Equal(t, "wheat", crop)
}

func TestConditionsEndpoint(t *testing.T) {
	moisture := 20.0
	h := newTestCtrl(&entities.Observation{
		Temperature:  35,
		Humidity:     40,
		SoilMoisture: &moisture,
		Source:       "provider",
	})

	rec := doGet(t, h.Conditions, "corn", "40.7,-74", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		CropType   string `json:"crop_type"`
		LocationID string `json:"location_id"`
		Analysis   struct {
			TemperatureStatus string   `json:"temperature_status"`
			MoistureStatus    string   `json:"moisture_status"`
			Recommendations   []string `json:"recommendations"`
		} `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "corn", out.CropType)
	assert.Equal(t, "40.7,-74", out.LocationID)
	assert.Equal(t, "too_hot", out.Analysis.TemperatureStatus)
	assert.Equal(t, "too_dry", out.Analysis.MoistureStatus)
	assert.Len(t, out.Analysis.Recommendations, 2)
}
