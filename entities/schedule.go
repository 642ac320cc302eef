package entities

import "time"

// StageWindow is one contiguous slice of the growth timeline.
type StageWindow struct {
	Stage        GrowthStage `json:"stage"`
	StartDate    time.Time   `json:"start_date"`
	EndDate      time.Time   `json:"end_date"`
	DurationDays int         `json:"duration_days"`
}

// FarmingSchedule is a computed view built once per request and discarded
// after the response; it has no lifecycle of its own.
type FarmingSchedule struct {
	CropType            CropType      `json:"crop_type"`
	LocationID          string        `json:"location_id"`
	OptimalPlantingDate time.Time     `json:"optimal_planting_date"`
	TargetHarvestDate   time.Time     `json:"target_harvest_date"`
	TotalGrowingDays    int           `json:"total_growing_days"`
	GrowthTimeline      []StageWindow `json:"growth_timeline"`
}
