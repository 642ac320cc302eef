package entities

// RiskFactors echoes the readings that made a disease rule fire.
type RiskFactors struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

// DiseaseRisk is one fired disease-risk rule. RiskLevel is always "high";
// the model has no graduated levels.
type DiseaseRisk struct {
	Disease             string      `json:"disease"`
	RiskLevel           string      `json:"risk_level"`
	Description         string      `json:"description"`
	Symptoms            []string    `json:"symptoms"`
	Management          []string    `json:"management"`
	ContributingFactors RiskFactors `json:"contributing_factors"`
}

// TechniqueSection is one top-level branch of a crop's technique tree
// (soil_preparation, planting, ...). Values below are free-form.
type TechniqueSection map[string]any

// TechniqueTree is a crop's full recommended-practice tree.
type TechniqueTree map[string]TechniqueSection
