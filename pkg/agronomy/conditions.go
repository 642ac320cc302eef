package agronomy

import (
	"fmt"

	"cropsense/entities"
)

const (
	StatusOptimal = "optimal"
	StatusTooCold = "too_cold"
	StatusTooHot  = "too_hot"
	StatusTooDry  = "too_dry"
	StatusTooWet  = "too_wet"
	StatusUnknown = "unknown"
)

// ConditionReport is the categorical assessment of one observation.
type ConditionReport struct {
	TemperatureStatus string            `json:"temperature_status"`
	MoistureStatus    string            `json:"moisture_status"`
	Recommendations   []string          `json:"recommendations"`
	OptimalConditions OptimalConditions `json:"optimal_conditions"`
}

// AnalyzeConditions buckets an observation against the crop's optimal bands.
// An all-optimal reading yields an empty recommendation list; that is a good
// result, not an error. Soil pH is tabulated but never checked here because
// observations carry no pH reading.
func AnalyzeConditions(crop entities.CropType, obs *entities.Observation) (*ConditionReport, error) {
	optimal, err := Optimal(crop)
	if err != nil {
		return nil, err
	}

	tempStatus := StatusOptimal
	if obs.Temperature < optimal.Temperature.Min {
		tempStatus = StatusTooCold
	} else if obs.Temperature > optimal.Temperature.Max {
		tempStatus = StatusTooHot
	}

	moistStatus := StatusUnknown
	if obs.SoilMoisture != nil {
		m := *obs.SoilMoisture
		switch {
		case optimal.SoilMoisture.Contains(m):
			moistStatus = StatusOptimal
		case m < optimal.SoilMoisture.Min:
			moistStatus = StatusTooDry
		default:
			moistStatus = StatusTooWet
		}
	}

	recs := []string{}
	if tempStatus != StatusOptimal {
		recs = append(recs, fmt.Sprintf("Temperature is %s. Consider protective measures.", tempStatus))
	}
	if moistStatus != StatusOptimal && moistStatus != StatusUnknown {
		recs = append(recs, fmt.Sprintf("Soil moisture is %s. Adjust irrigation accordingly.", moistStatus))
	}

	return &ConditionReport{
		TemperatureStatus: tempStatus,
		MoistureStatus:    moistStatus,
		Recommendations:   recs,
		OptimalConditions: optimal,
	}, nil
}
