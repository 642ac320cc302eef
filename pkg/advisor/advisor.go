package advisor

import (
	"fmt"
	"time"

	"cropsense/entities"
	"cropsense/pkg/validation"
)

// Action records what the advisor decided and why. Confidence values are
// canned per action type; there is no model behind them.
type Action struct {
	ActionType string  `json:"action_type"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// Response is the advisory envelope returned for every processed query.
type Response struct {
	Success         bool     `json:"success"`
	ActionTaken     *Action  `json:"action_taken,omitempty"`
	Recommendations []string `json:"recommendations"`
	NextActions     []string `json:"next_actions"`
}

// Advisor forwards validated queries to the rule engine and wraps accepted
// ones in canned confidence/reasoning strings. Rejections pass through
// unchanged so the transport maps them like any other rule violation.
type Advisor struct {
	rules validation.Engine
}

func New(rules validation.Engine) *Advisor { return &Advisor{rules: rules} }

func (a *Advisor) CropManagement(q *entities.CropManagementQuery, now time.Time) (*Response, error) {
	if err := a.rules.CropManagement(q, now); err != nil {
		return nil, err
	}
	return &Response{
		Success: true,
		ActionTaken: &Action{
			ActionType: "crop_management",
			Confidence: 0.9,
			Reasoning:  "Based on soil type and climate zone compatibility",
		},
		Recommendations: []string{
			fmt.Sprintf("Proceed with %s planting", q.CropType),
			fmt.Sprintf("Optimal soil preparation needed for %s", q.SoilType),
			"Monitor weather conditions closely",
		},
		NextActions: []string{"schedule_irrigation", "plan_fertilization", "set_monitoring_schedule"},
	}, nil
}

func (a *Advisor) SoilAnalysis(q *entities.SoilAnalysisQuery) (*Response, error) {
	recs, err := a.rules.SoilAnalysis(q)
	if err != nil {
		return nil, err
	}
	out := []string{fmt.Sprintf("pH level at %.1f requires attention", q.PHLevel)}
	out = append(out, recs...)
	out = append(out, "Schedule regular soil testing")
	return &Response{
		Success: true,
		ActionTaken: &Action{
			ActionType: "soil_analysis",
			Confidence: 0.85,
			Reasoning:  "Based on NPK levels and pH analysis",
		},
		Recommendations: out,
		NextActions:     []string{"adjust_soil_ph", "plan_fertilization", "monitor_soil_moisture"},
	}, nil
}

func (a *Advisor) IrrigationSchedule(q *entities.IrrigationScheduleQuery) (*Response, error) {
	urgency, err := a.rules.IrrigationUrgency(q)
	if err != nil {
		return nil, err
	}
	return &Response{
		Success: true,
		ActionTaken: &Action{
			ActionType: "irrigation_schedule",
			Confidence: 0.95,
			Reasoning:  "Based on soil moisture and weather forecast",
		},
		Recommendations: []string{
			fmt.Sprintf("Current soil moisture: %.0f%%", q.SoilMoisture),
			fmt.Sprintf("Irrigation urgency: %s", urgency),
			"Adjust irrigation based on forecast",
		},
		NextActions: []string{"implement_irrigation_schedule", "monitor_soil_moisture", "track_water_usage"},
	}, nil
}

func (a *Advisor) HarvestTiming(q *entities.HarvestTimingQuery) (*Response, error) {
	if err := a.rules.HarvestTiming(q); err != nil {
		return nil, err
	}
	recs := []string{"Monitor grain moisture levels", "Check weather forecast for harvest window"}
	if q.RainfallForecast > 0 {
		recs = append(recs, fmt.Sprintf("Note: %.0fmm rainfall forecasted - plan accordingly", q.RainfallForecast))
	}
	return &Response{
		Success: true,
		ActionTaken: &Action{
			ActionType: "harvest_timing",
			Confidence: 0.9,
			Reasoning:  "Based on growing degree days and grain moisture",
		},
		Recommendations: recs,
		NextActions:     []string{"schedule_harvest", "arrange_storage", "monitor_conditions"},
	}, nil
}
