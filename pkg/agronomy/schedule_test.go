package agronomy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropsense/entities"
)

func TestBuildScheduleCorn(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	harvest := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	s, err := BuildSchedule(entities.CropCorn, "40.7,-74", now, &harvest)
	require.NoError(t, err)

	// worst-case sum of stage maximums: 7+10+30+20+20+15+45+25
	assert.Equal(t, 172, s.TotalGrowingDays)
	assert.Equal(t, harvest, s.TargetHarvestDate)
	assert.Equal(t, harvest.AddDate(0, 0, -172), s.OptimalPlantingDate)
	assert.Equal(t, entities.CropCorn, s.CropType)
	assert.Equal(t, "40.7,-74", s.LocationID)
}

func TestBuildScheduleDefaultHarvest(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	s, err := BuildSchedule(entities.CropCorn, "0,0", now, nil)
	require.NoError(t, err)

	// no target harvest anchors planting at now
	assert.Equal(t, now, s.OptimalPlantingDate)
	assert.Equal(t, now.AddDate(0, 0, s.TotalGrowingDays), s.TargetHarvestDate)
}

func TestBuildScheduleTimelineContiguous(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for _, crop := range []entities.CropType{entities.CropCorn, entities.CropWheat, entities.CropSunflower} {
		s, err := BuildSchedule(crop, "0,0", now, nil)
		require.NoError(t, err)
		require.Len(t, s.GrowthTimeline, len(entities.StageOrder))

		assert.Equal(t, s.OptimalPlantingDate, s.GrowthTimeline[0].StartDate)
		for i, w := range s.GrowthTimeline {
			assert.Equal(t, entities.StageOrder[i], w.Stage)
			assert.Equal(t, w.StartDate.AddDate(0, 0, w.DurationDays), w.EndDate)
			if i > 0 {
				assert.Equal(t, s.GrowthTimeline[i-1].EndDate, w.StartDate,
					"%s stage %s must start where the previous stage ends", crop, w.Stage)
			}
		}
	}
}

func TestBuildScheduleTimelineUsesTruncatedAverages(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	s, err := BuildSchedule(entities.CropCorn, "0,0", now, nil)
	require.NoError(t, err)

	// germination 5..7 -> 6, emergence 7..10 -> 8
	assert.Equal(t, 6, s.GrowthTimeline[0].DurationDays)
	assert.Equal(t, 8, s.GrowthTimeline[1].DurationDays)

	// the display timeline is shorter than the worst-case total
	sum := 0
	for _, w := range s.GrowthTimeline {
		sum += w.DurationDays
	}
	assert.Equal(t, 147, sum)
	assert.Less(t, sum, s.TotalGrowingDays)
}

func TestBuildScheduleUnknownCrop(t *testing.T) {
	_, err := BuildSchedule(entities.CropType("soy"), "0,0", time.Now(), nil)
	require.Error(t, err)
}
