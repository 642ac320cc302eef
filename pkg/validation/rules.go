package validation

import (
	"fmt"
	"strings"
	"time"

	"cropsense/entities"
)

// Rejection is the expected, user-caused outcome of a violated rule. It is
// always recoverable by adjusting input and maps to a 400, never a fault.
type Rejection struct {
	Reason string
}

func (e *Rejection) Error() string { return e.Reason }

func reject(format string, args ...any) error {
	return &Rejection{Reason: fmt.Sprintf(format, args...)}
}

// PestAssessment is the derived outcome of a pest-control query.
type PestAssessment struct {
	Level       int    `json:"level"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"` // low|medium|high
}

type Engine interface {
	CropManagement(q *entities.CropManagementQuery, now time.Time) error
	SoilAnalysis(q *entities.SoilAnalysisQuery) ([]string, error)
	PestControl(q *entities.PestControlQuery) (*PestAssessment, error)
	IrrigationUrgency(q *entities.IrrigationScheduleQuery) (string, error)
	HarvestTiming(q *entities.HarvestTimingQuery) error
}

type rules struct{}

func New() Engine { return &rules{} }

// CropManagement applies the date-window rule plus the crop-specific
// compatibility constraints. First violated rule wins; each reason names
// exactly one constraint.
func (r *rules) CropManagement(q *entities.CropManagementQuery, now time.Time) error {
	if q.FieldSize <= 0 {
		return reject("Field size must be greater than zero")
	}
	if q.PlantingDate.Before(now.AddDate(0, 0, -365)) {
		return reject("Planting date cannot be more than a year in the past")
	}
	if q.PlantingDate.After(now.AddDate(0, 0, 365)) {
		return reject("Planting date cannot be more than a year in the future")
	}

	switch q.CropType {
	case entities.CropWheat:
		if q.SoilType == entities.SoilSandy || q.SoilType == entities.SoilSiltyClay {
			return reject("Wheat prefers loamy or clay loam soils")
		}
		if q.ClimateZone == entities.ZoneTropical {
			return reject("Wheat is not suitable for tropical climates")
		}
	case entities.CropCorn:
		if q.ClimateZone == entities.ZoneSubarctic || q.ClimateZone == entities.ZoneMediterranean {
			return reject("Corn requires longer growing seasons")
		}
		// Two independent conditions: the method must be genuinely absent AND
		// rainfall (unset counts as 0mm) below the 500mm threshold.
		rainfall := 0.0
		if q.ExpectedRainfall != nil {
			rainfall = *q.ExpectedRainfall
		}
		if q.IrrigationMethod == nil && rainfall < 500 {
			return reject("Corn requires either irrigation or sufficient rainfall")
		}
	}
	return nil
}

// SoilAnalysis rejects implausible NPK readings and otherwise returns
// amendment recommendations. All violated nutrients are collected into one
// reason rather than stopping at the first.
func (r *rules) SoilAnalysis(q *entities.SoilAnalysisQuery) ([]string, error) {
	if q.PHLevel < 0 || q.PHLevel > 14 {
		return nil, reject("pH level must be between 0 and 14")
	}
	if q.OrganicMatter < 0 || q.OrganicMatter > 100 {
		return nil, reject("Organic matter must be between 0 and 100 percent")
	}
	if q.SoilMoisture < 0 || q.SoilMoisture > 100 {
		return nil, reject("Soil moisture must be between 0 and 100 percent")
	}
	if q.Nitrogen < 0 || q.Phosphorus < 0 || q.Potassium < 0 {
		return nil, reject("Nutrient levels cannot be negative")
	}

	var violations []string
	if q.Nitrogen > 500 {
		violations = append(violations, "Nitrogen level seems unreasonably high")
	}
	if q.Phosphorus > 300 {
		violations = append(violations, "Phosphorus level seems unreasonably high")
	}
	if q.Potassium > 800 {
		violations = append(violations, "Potassium level seems unreasonably high")
	}
	if len(violations) > 0 {
		return nil, reject("%s", strings.Join(violations, "; "))
	}

	recs := []string{}
	if q.PHLevel < 6.0 {
		recs = append(recs, "Consider lime application to raise soil pH")
	} else if q.PHLevel > 7.5 {
		recs = append(recs, "Consider sulfur application to lower soil pH")
	}
	if q.OrganicMatter < 3.0 {
		recs = append(recs, "Add organic matter through cover crops or compost")
	}
	return recs, nil
}

var infestationDescriptions = map[int]string{
	1: "Minor presence - Monitoring required",
	2: "Light infestation - Consider treatment",
	3: "Moderate infestation - Treatment recommended",
	4: "Severe infestation - Immediate treatment required",
	5: "Critical infestation - Emergency measures needed",
}

func (r *rules) PestControl(q *entities.PestControlQuery) (*PestAssessment, error) {
	desc, ok := infestationDescriptions[q.InfestationLevel]
	if !ok {
		return nil, reject("Infestation level must be between 1 and 5")
	}
	urgency := "low"
	switch {
	case q.InfestationLevel >= 4:
		urgency = "high"
	case q.InfestationLevel == 3:
		urgency = "medium"
	}
	return &PestAssessment{Level: q.InfestationLevel, Description: desc, Urgency: urgency}, nil
}

// IrrigationUrgency walks the three-way priority ladder. Exactly one value
// comes out: "high" needs dry soil, no rain coming, heat and low humidity;
// "medium" is dry soil and no rain without the heat condition; anything else
// is "low".
func (r *rules) IrrigationUrgency(q *entities.IrrigationScheduleQuery) (string, error) {
	if q.SoilMoisture < 0 || q.SoilMoisture > 100 {
		return "", reject("Soil moisture must be between 0 and 100 percent")
	}
	if q.ExpectedRainfall < 0 {
		return "", reject("Expected rainfall cannot be negative")
	}
	if q.WindSpeed < 0 {
		return "", reject("Wind speed cannot be negative")
	}

	if q.SoilMoisture < 30 && q.ExpectedRainfall < 10 {
		if q.Temperature > 30 && q.Humidity < 50 {
			return "high", nil
		}
		return "medium", nil
	}
	return "low", nil
}

func (r *rules) HarvestTiming(q *entities.HarvestTimingQuery) error {
	if q.GrowingDegreeDays < 0 {
		return reject("Growing degree days cannot be negative")
	}
	if q.CropType == entities.CropCorn && q.GrowingDegreeDays < 2700 {
		return reject("Insufficient growing degree days for corn harvest")
	}
	if q.CropType == entities.CropWheat && q.GrainMoisture != nil && *q.GrainMoisture > 18 {
		return reject("Grain moisture too high for wheat harvest")
	}
	return nil
}
