package agronomy

import (
	"fmt"

	"cropsense/entities"
)

// Range is an inclusive [Min,Max] band for one environmental variable.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// DurationRange bounds how long a crop spends in one growth stage.
type DurationRange struct {
	MinDays int `json:"min_days"`
	MaxDays int `json:"max_days"`
}

// AvgDays truncates toward zero; the timeline display uses this midpoint.
func (d DurationRange) AvgDays() int { return (d.MinDays + d.MaxDays) / 2 }

// OptimalConditions is the per-crop band set used by the condition analyzer.
// SoilPH is tabulated but never evaluated against observations: a standard
// observation carries no pH reading.
type OptimalConditions struct {
	Temperature  Range `json:"temperature"`
	SoilMoisture Range `json:"soil_moisture"`
	SoilPH       Range `json:"soil_ph"`
}

// stageDurations: (crop, stage) -> day range. Read-only after init; a crop
// missing here is a configuration fault, not something to paper over.
var stageDurations = map[entities.CropType]map[entities.GrowthStage]DurationRange{
	entities.CropCorn: {
		entities.StageGermination:    {5, 7},
		entities.StageEmergence:      {7, 10},
		entities.StageTillering:      {20, 30},
		entities.StageStemElongation: {15, 20},
		entities.StageHeading:        {15, 20},
		entities.StageFlowering:      {10, 15},
		entities.StageGrainFilling:   {35, 45},
		entities.StageMaturity:       {20, 25},
	},
	entities.CropWheat: {
		entities.StageGermination:    {4, 7},
		entities.StageEmergence:      {7, 12},
		entities.StageTillering:      {25, 40},
		entities.StageStemElongation: {20, 30},
		entities.StageHeading:        {10, 15},
		entities.StageFlowering:      {5, 10},
		entities.StageGrainFilling:   {30, 40},
		entities.StageMaturity:       {15, 20},
	},
	entities.CropSunflower: {
		entities.StageGermination:    {4, 8},
		entities.StageEmergence:      {7, 10},
		entities.StageTillering:      {15, 25},
		entities.StageStemElongation: {20, 30},
		entities.StageHeading:        {10, 15},
		entities.StageFlowering:      {10, 15},
		entities.StageGrainFilling:   {25, 35},
		entities.StageMaturity:       {15, 20},
	},
}

var optimalConditions = map[entities.CropType]OptimalConditions{
	entities.CropCorn: {
		Temperature:  Range{20.0, 30.0},
		SoilMoisture: Range{50.0, 70.0},
		SoilPH:       Range{6.0, 7.0},
	},
	entities.CropWheat: {
		Temperature:  Range{15.0, 25.0},
		SoilMoisture: Range{40.0, 60.0},
		SoilPH:       Range{6.0, 7.0},
	},
	entities.CropSunflower: {
		Temperature:  Range{18.0, 28.0},
		SoilMoisture: Range{45.0, 65.0},
		SoilPH:       Range{6.0, 7.5},
	},
}

// ConfigError marks an incomplete static table for a crop the enumeration
// claims to support. Controllers map it to a 500, never a 400.
type ConfigError struct {
	Crop   entities.CropType
	Table  string
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("agronomy: %s table incomplete for crop %q: %s", e.Table, e.Crop, e.Detail)
}

// StageDurations returns the full per-stage range table for a crop.
func StageDurations(crop entities.CropType) (map[entities.GrowthStage]DurationRange, error) {
	tbl, ok := stageDurations[crop]
	if !ok || len(tbl) == 0 {
		return nil, &ConfigError{Crop: crop, Table: "stage_durations", Detail: "no stages registered"}
	}
	return tbl, nil
}

// Optimal returns the optimal-condition bands for a crop.
func Optimal(crop entities.CropType) (OptimalConditions, error) {
	oc, ok := optimalConditions[crop]
	if !ok {
		return OptimalConditions{}, &ConfigError{Crop: crop, Table: "optimal_conditions", Detail: "no entry"}
	}
	return oc, nil
}

// VerifyTables checks the static tables at startup so a broken build fails
// before it can corrupt downstream schedule math.
func VerifyTables() error {
	for _, crop := range []entities.CropType{entities.CropCorn, entities.CropWheat, entities.CropSunflower} {
		tbl, ok := stageDurations[crop]
		if !ok {
			return &ConfigError{Crop: crop, Table: "stage_durations", Detail: "crop missing"}
		}
		for _, stage := range entities.StageOrder {
			d, ok := tbl[stage]
			if !ok {
				return &ConfigError{Crop: crop, Table: "stage_durations", Detail: fmt.Sprintf("stage %q missing", stage)}
			}
			if d.MinDays <= 0 || d.MinDays > d.MaxDays {
				return &ConfigError{Crop: crop, Table: "stage_durations", Detail: fmt.Sprintf("stage %q has invalid range %d..%d", stage, d.MinDays, d.MaxDays)}
			}
		}
		oc, ok := optimalConditions[crop]
		if !ok {
			return &ConfigError{Crop: crop, Table: "optimal_conditions", Detail: "crop missing"}
		}
		for name, r := range map[string]Range{"temperature": oc.Temperature, "soil_moisture": oc.SoilMoisture, "soil_ph": oc.SoilPH} {
			if r.Min > r.Max {
				return &ConfigError{Crop: crop, Table: "optimal_conditions", Detail: fmt.Sprintf("%s range inverted", name)}
			}
		}
	}
	return nil
}
