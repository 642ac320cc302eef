package entities

import "time"

// CropManagementQuery is the full cross-field query the validation engine
// accepts or rejects. Optional fields stay pointers so "absent" is
// distinguishable from zero.
type CropManagementQuery struct {
	CropType         CropType          `json:"crop_type"`
	PlantingDate     time.Time         `json:"planting_date"`
	FieldSize        float64           `json:"field_size"` // hectares
	PreviousCrop     string            `json:"previous_crop,omitempty"`
	SoilType         SoilType          `json:"soil_type"`
	IrrigationMethod *IrrigationMethod `json:"irrigation_method,omitempty"`
	ClimateZone      ClimateZone       `json:"climate_zone"`
	ExpectedRainfall *float64          `json:"expected_rainfall,omitempty"` // mm
}

type SoilAnalysisQuery struct {
	PHLevel       float64 `json:"ph_level"`
	OrganicMatter float64 `json:"organic_matter"` // %
	Nitrogen      float64 `json:"nitrogen"`
	Phosphorus    float64 `json:"phosphorus"`
	Potassium     float64 `json:"potassium"`
	SoilMoisture  float64 `json:"soil_moisture"` // %
}

type PestControlQuery struct {
	PestType           string   `json:"pest_type"`
	InfestationLevel   int      `json:"infestation_level"` // 1-5
	CropStage          string   `json:"crop_stage"`
	Temperature        float64  `json:"temperature"`
	Humidity           float64  `json:"humidity"`
	PreviousTreatments []string `json:"previous_treatments,omitempty"`
}

type IrrigationScheduleQuery struct {
	CropType         CropType `json:"crop_type"`
	GrowthStage      string   `json:"growth_stage"`
	SoilMoisture     float64  `json:"soil_moisture"`     // %
	ExpectedRainfall float64  `json:"expected_rainfall"` // mm
	Temperature      float64  `json:"temperature"`
	Humidity         float64  `json:"humidity"`
	WindSpeed        float64  `json:"wind_speed"`
}

type HarvestTimingQuery struct {
	CropType          CropType  `json:"crop_type"`
	PlantingDate      time.Time `json:"planting_date"`
	GrowingDegreeDays float64   `json:"growing_degree_days"`
	GrainMoisture     *float64  `json:"grain_moisture,omitempty"` // %
	RainfallForecast  float64   `json:"rainfall_forecast"`        // mm
}
