package agronomy

import (
	"time"

	"cropsense/entities"
)

// BuildSchedule computes the planting/harvest window and per-stage timeline
// for a crop. Total growing duration is the worst-case sum of per-stage
// maximums; the displayed timeline walks forward from the optimal planting
// date using truncated-average stage lengths, each stage starting exactly
// where the previous one ended.
//
// When targetHarvest is nil the harvest date defaults to now + total duration,
// which anchors planting at now.
func BuildSchedule(crop entities.CropType, locationID string, now time.Time, targetHarvest *time.Time) (*entities.FarmingSchedule, error) {
	durations, err := StageDurations(crop)
	if err != nil {
		return nil, err
	}

	totalDays := 0
	for _, stage := range entities.StageOrder {
		totalDays += durations[stage].MaxDays
	}

	harvest := now.AddDate(0, 0, totalDays)
	if targetHarvest != nil {
		harvest = *targetHarvest
	}
	planting := harvest.AddDate(0, 0, -totalDays)

	timeline := make([]entities.StageWindow, 0, len(entities.StageOrder))
	cur := planting
	for _, stage := range entities.StageOrder {
		avg := durations[stage].AvgDays()
		end := cur.AddDate(0, 0, avg)
		timeline = append(timeline, entities.StageWindow{
			Stage:        stage,
			StartDate:    cur,
			EndDate:      end,
			DurationDays: avg,
		})
		cur = end
	}

	return &entities.FarmingSchedule{
		CropType:            crop,
		LocationID:          locationID,
		OptimalPlantingDate: planting,
		TargetHarvestDate:   harvest,
		TotalGrowingDays:    totalDays,
		GrowthTimeline:      timeline,
	}, nil
}
