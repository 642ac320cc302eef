package service

import (
	"time"

	"cropsense/entities"
	"cropsense/pkg/agronomy"
)

// CropService covers schedule computation and condition analysis for one crop.
type CropService interface {
	PlantingSchedule(crop entities.CropType, loc entities.GeoLocation, targetHarvest *time.Time) (*entities.FarmingSchedule, error)
	AnalyzeConditions(crop entities.CropType, obs *entities.Observation) (*agronomy.ConditionReport, error)
}
