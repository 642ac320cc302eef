package serviceImp

import (
	"time"

	"cropsense/entities"
	"cropsense/pkg/agronomy"
	"cropsense/pkg/crop/service"
)

type Svc struct {
	now func() time.Time
}

func New() service.CropService { return &Svc{now: func() time.Time { return time.Now().UTC() }} }

// NewWithClock pins the clock for deterministic schedule tests.
func NewWithClock(now func() time.Time) service.CropService { return &Svc{now: now} }

func (s *Svc) PlantingSchedule(crop entities.CropType, loc entities.GeoLocation, targetHarvest *time.Time) (*entities.FarmingSchedule, error) {
	return agronomy.BuildSchedule(crop, loc.ID(), s.now(), targetHarvest)
}

func (s *Svc) AnalyzeConditions(crop entities.CropType, obs *entities.Observation) (*agronomy.ConditionReport, error) {
	return agronomy.AnalyzeConditions(crop, obs)
}
