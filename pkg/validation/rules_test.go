package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropsense/entities"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func fp(v float64) *float64 { return &v }

func im(m entities.IrrigationMethod) *entities.IrrigationMethod { return &m }

func requireRejection(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	var rej *Rejection
	require.True(t, errors.As(err, &rej), "expected a rule rejection, got %T", err)
	assert.Equal(t, reason, rej.Reason)
}

func validCornQuery() *entities.CropManagementQuery {
	return &entities.CropManagementQuery{
		CropType:         entities.CropCorn,
		PlantingDate:     testNow.AddDate(0, 1, 0),
		FieldSize:        25,
		SoilType:         entities.SoilLoam,
		IrrigationMethod: im(entities.IrrigationDrip),
		ClimateZone:      entities.ZoneContinental,
	}
}

func TestCropManagement(t *testing.T) {
	e := New()

	t.Run("valid corn query passes", func(t *testing.T) {
		assert.NoError(t, e.CropManagement(validCornQuery(), testNow))
	})

	t.Run("field size must be positive", func(t *testing.T) {
		q := validCornQuery()
		q.FieldSize = 0
		requireRejection(t, e.CropManagement(q, testNow), "Field size must be greater than zero")
	})

	t.Run("planting date window is one year each way", func(t *testing.T) {
		q := validCornQuery()
		q.PlantingDate = testNow.AddDate(0, 0, -366)
		requireRejection(t, e.CropManagement(q, testNow), "Planting date cannot be more than a year in the past")

		q.PlantingDate = testNow.AddDate(0, 0, 366)
		requireRejection(t, e.CropManagement(q, testNow), "Planting date cannot be more than a year in the future")

		q.PlantingDate = testNow.AddDate(0, 0, 365)
		assert.NoError(t, e.CropManagement(q, testNow))
	})

	t.Run("wheat rejects sandy and silty clay soils", func(t *testing.T) {
		for _, soil := range []entities.SoilType{entities.SoilSandy, entities.SoilSiltyClay} {
			q := validCornQuery()
			q.CropType = entities.CropWheat
			q.SoilType = soil
			requireRejection(t, e.CropManagement(q, testNow), "Wheat prefers loamy or clay loam soils")
		}
	})

	t.Run("wheat rejects tropical climates", func(t *testing.T) {
		q := validCornQuery()
		q.CropType = entities.CropWheat
		q.ClimateZone = entities.ZoneTropical
		requireRejection(t, e.CropManagement(q, testNow), "Wheat is not suitable for tropical climates")
	})

	t.Run("corn rejects short growing seasons", func(t *testing.T) {
		for _, zone := range []entities.ClimateZone{entities.ZoneSubarctic, entities.ZoneMediterranean} {
			q := validCornQuery()
			q.ClimateZone = zone
			requireRejection(t, e.CropManagement(q, testNow), "Corn requires longer growing seasons")
		}
	})

	t.Run("corn needs irrigation or rainfall", func(t *testing.T) {
		q := validCornQuery()
		q.IrrigationMethod = nil
		q.ExpectedRainfall = fp(499)
		requireRejection(t, e.CropManagement(q, testNow), "Corn requires either irrigation or sufficient rainfall")

		// unset rainfall counts as 0mm
		q.ExpectedRainfall = nil
		requireRejection(t, e.CropManagement(q, testNow), "Corn requires either irrigation or sufficient rainfall")

		q.ExpectedRainfall = fp(500)
		assert.NoError(t, e.CropManagement(q, testNow))

		q.ExpectedRainfall = fp(100)
		q.IrrigationMethod = im(entities.IrrigationSprinkler)
		assert.NoError(t, e.CropManagement(q, testNow))
	})

	t.Run("sunflower has no crop-specific constraints", func(t *testing.T) {
		q := validCornQuery()
		q.CropType = entities.CropSunflower
		q.SoilType = entities.SoilSandy
		q.ClimateZone = entities.ZoneTropical
		q.IrrigationMethod = nil
		assert.NoError(t, e.CropManagement(q, testNow))
	})
}

func TestSoilAnalysis(t *testing.T) {
	e := New()

	base := entities.SoilAnalysisQuery{
		PHLevel:       6.5,
		OrganicMatter: 4,
		Nitrogen:      100,
		Phosphorus:    50,
		Potassium:     200,
		SoilMoisture:  50,
	}

	t.Run("healthy soil yields no recommendations", func(t *testing.T) {
		recs, err := e.SoilAnalysis(&base)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("out-of-range pH is rejected", func(t *testing.T) {
		q := base
		q.PHLevel = 14.5
		_, err := e.SoilAnalysis(&q)
		requireRejection(t, err, "pH level must be between 0 and 14")
	})

	t.Run("negative nutrients are rejected", func(t *testing.T) {
		q := base
		q.Potassium = -1
		_, err := e.SoilAnalysis(&q)
		requireRejection(t, err, "Nutrient levels cannot be negative")
	})

	t.Run("implausible nutrient levels are collected, not short-circuited", func(t *testing.T) {
		q := base
		q.Nitrogen = 501
		q.Phosphorus = 301
		q.Potassium = 801
		_, err := e.SoilAnalysis(&q)
		requireRejection(t, err,
			"Nitrogen level seems unreasonably high; Phosphorus level seems unreasonably high; Potassium level seems unreasonably high")
	})

	t.Run("threshold values themselves pass", func(t *testing.T) {
		q := base
		q.Nitrogen = 500
		q.Phosphorus = 300
		q.Potassium = 800
		_, err := e.SoilAnalysis(&q)
		assert.NoError(t, err)
	})

	t.Run("acidic soil gets a lime recommendation", func(t *testing.T) {
		q := base
		q.PHLevel = 5.5
		q.OrganicMatter = 2
		recs, err := e.SoilAnalysis(&q)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "Consider lime application to raise soil pH", recs[0])
		assert.Equal(t, "Add organic matter through cover crops or compost", recs[1])
	})

	t.Run("alkaline soil gets a sulfur recommendation", func(t *testing.T) {
		q := base
		q.PHLevel = 8
		recs, err := e.SoilAnalysis(&q)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "Consider sulfur application to lower soil pH", recs[0])
	})
}

func TestPestControl(t *testing.T) {
	e := New()

	t.Run("urgency ladder", func(t *testing.T) {
		cases := map[int]string{1: "low", 2: "low", 3: "medium", 4: "high", 5: "high"}
		for level, want := range cases {
			out, err := e.PestControl(&entities.PestControlQuery{InfestationLevel: level})
			require.NoError(t, err)
			assert.Equal(t, want, out.Urgency, "level %d", level)
			assert.Equal(t, level, out.Level)
			assert.NotEmpty(t, out.Description)
		}
	})

	t.Run("level descriptions", func(t *testing.T) {
		out, err := e.PestControl(&entities.PestControlQuery{InfestationLevel: 4})
		require.NoError(t, err)
		assert.Equal(t, "Severe infestation - Immediate treatment required", out.Description)
	})

	t.Run("out-of-range level is rejected", func(t *testing.T) {
		for _, level := range []int{0, 6, -1} {
			_, err := e.PestControl(&entities.PestControlQuery{InfestationLevel: level})
			requireRejection(t, err, "Infestation level must be between 1 and 5")
		}
	})
}

func TestIrrigationUrgency(t *testing.T) {
	e := New()

	q := func(moisture, rain, temp, humidity float64) *entities.IrrigationScheduleQuery {
		return &entities.IrrigationScheduleQuery{
			CropType:         entities.CropCorn,
			SoilMoisture:     moisture,
			ExpectedRainfall: rain,
			Temperature:      temp,
			Humidity:         humidity,
		}
	}

	t.Run("high needs dry soil, no rain, heat and low humidity", func(t *testing.T) {
		u, err := e.IrrigationUrgency(q(25, 5, 32, 40))
		require.NoError(t, err)
		assert.Equal(t, "high", u)
	})

	t.Run("medium when dry but not hot", func(t *testing.T) {
		u, err := e.IrrigationUrgency(q(25, 5, 28, 40))
		require.NoError(t, err)
		assert.Equal(t, "medium", u)

		// humidity at the boundary is not "low humidity"
		u, err = e.IrrigationUrgency(q(25, 5, 32, 50))
		require.NoError(t, err)
		assert.Equal(t, "medium", u)
	})

	t.Run("low when soil or rainfall suffice", func(t *testing.T) {
		u, err := e.IrrigationUrgency(q(30, 5, 32, 40))
		require.NoError(t, err)
		assert.Equal(t, "low", u)

		u, err = e.IrrigationUrgency(q(25, 10, 32, 40))
		require.NoError(t, err)
		assert.Equal(t, "low", u)
	})

	t.Run("bounds", func(t *testing.T) {
		_, err := e.IrrigationUrgency(q(101, 5, 20, 50))
		requireRejection(t, err, "Soil moisture must be between 0 and 100 percent")

		_, err = e.IrrigationUrgency(q(50, -1, 20, 50))
		requireRejection(t, err, "Expected rainfall cannot be negative")

		bad := q(50, 5, 20, 50)
		bad.WindSpeed = -3
		_, err = e.IrrigationUrgency(bad)
		requireRejection(t, err, "Wind speed cannot be negative")
	})
}

func TestHarvestTiming(t *testing.T) {
	e := New()

	t.Run("corn needs 2700 growing degree days", func(t *testing.T) {
		err := e.HarvestTiming(&entities.HarvestTimingQuery{CropType: entities.CropCorn, GrowingDegreeDays: 2699})
		requireRejection(t, err, "Insufficient growing degree days for corn harvest")

		assert.NoError(t, e.HarvestTiming(&entities.HarvestTimingQuery{CropType: entities.CropCorn, GrowingDegreeDays: 2700}))
	})

	t.Run("wheat grain moisture ceiling", func(t *testing.T) {
		err := e.HarvestTiming(&entities.HarvestTimingQuery{CropType: entities.CropWheat, GrowingDegreeDays: 2000, GrainMoisture: fp(18.5)})
		requireRejection(t, err, "Grain moisture too high for wheat harvest")

		assert.NoError(t, e.HarvestTiming(&entities.HarvestTimingQuery{CropType: entities.CropWheat, GrowingDegreeDays: 2000, GrainMoisture: fp(18)}))

		// absent grain moisture is never evaluated
		assert.NoError(t, e.HarvestTiming(&entities.HarvestTimingQuery{CropType: entities.CropWheat, GrowingDegreeDays: 2000}))
	})

	t.Run("negative degree days are rejected", func(t *testing.T) {
		err := e.HarvestTiming(&entities.HarvestTimingQuery{CropType: entities.CropSunflower, GrowingDegreeDays: -1})
		requireRejection(t, err, "Growing degree days cannot be negative")
	})

	t.Run("sunflower has no harvest constraints", func(t *testing.T) {
		assert.NoError(t, e.HarvestTiming(&entities.HarvestTimingQuery{CropType: entities.CropSunflower, GrowingDegreeDays: 0}))
	})
}
