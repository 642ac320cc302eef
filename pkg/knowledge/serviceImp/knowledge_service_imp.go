package serviceImp

import (
	"sort"
	"strings"

	"cropsense/entities"
	"cropsense/pkg/agronomy"
	"cropsense/pkg/knowledge/service"
)

type Svc struct{}

func New() service.KnowledgeService { return &Svc{} }

// DiseaseRisks returns every registered rule whose temperature AND humidity
// windows both contain the readings, bounds inclusive. No partial matches,
// no weighting. A crop with no registered diseases yields an empty list.
func (s *Svc) DiseaseRisks(crop entities.CropType, temperature, humidity float64) []entities.DiseaseRisk {
	risks := []entities.DiseaseRisk{}
	for _, disease := range sortedDiseases(crop) {
		rule := diseaseRules[crop][disease]
		if rule.TempRange.Contains(temperature) && rule.HumidityRange.Contains(humidity) {
			risks = append(risks, entities.DiseaseRisk{
				Disease:     disease,
				RiskLevel:   "high",
				Description: rule.Description,
				Symptoms:    rule.Symptoms,
				Management:  rule.Management,
				ContributingFactors: entities.RiskFactors{
					Temperature: temperature,
					Humidity:    humidity,
				},
			})
		}
	}
	return risks
}

func sortedDiseases(crop entities.CropType) []string {
	rules := diseaseRules[crop]
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	// stable output order for clients and tests
	sort.Strings(names)
	return names
}

// ProtectionMeasures matches the growth stage against each category's
// trigger set. All three category keys are always present, possibly empty.
func (s *Svc) ProtectionMeasures(crop entities.CropType, stage entities.GrowthStage) map[string][]string {
	out := map[string][]string{
		"disease_control": {},
		"pest_control":    {},
		"weed_control":    {},
	}

	if diseaseControlStages[stage] {
		out["disease_control"] = append(out["disease_control"],
			protectionStrategies["disease_control"]["cultural"]["crop_rotation"],
			protectionStrategies["disease_control"]["chemical"]["seed_treatment"],
		)
	}
	if pestControlStages[stage] {
		out["pest_control"] = append(out["pest_control"],
			protectionStrategies["pest_control"]["biological"]["beneficial_insects"],
			protectionStrategies["pest_control"]["chemical"]["insecticides"],
		)
	}
	if weedControlStages[stage] {
		out["weed_control"] = append(out["weed_control"],
			protectionStrategies["weed_control"]["mechanical"]["tillage"],
			protectionStrategies["weed_control"]["chemical"]["herbicides"],
		)
	}
	return out
}

// FarmingTechniques returns the crop's base technique tree with the climate
// zone's modifications merged in, shallow per top-level key. soilType is
// accepted for future filtering but does not alter the output today.
func (s *Svc) FarmingTechniques(crop entities.CropType, climateZone, soilType string) (entities.TechniqueTree, error) {
	base, ok := baseTechniques[crop]
	if !ok {
		return nil, &agronomy.ConfigError{Crop: crop, Table: "farming_techniques", Detail: "no technique tree"}
	}

	out := copyTree(base)
	zone := entities.ClimateZone(strings.ToLower(climateZone))
	if mods, ok := climateModifications[zone]; ok {
		mergeShallow(out, mods)
	}
	return out, nil
}

// copyTree copies the two mutated levels; deeper values are never written to.
func copyTree(t entities.TechniqueTree) entities.TechniqueTree {
	out := make(entities.TechniqueTree, len(t))
	for key, section := range t {
		cp := make(entities.TechniqueSection, len(section))
		for k, v := range section {
			cp[k] = v
		}
		out[key] = cp
	}
	return out
}

// mergeShallow updates each matching top-level section sub-key by sub-key;
// nested collections are overwritten, not merged recursively. Changing this
// would alter output for existing climate-zone combinations.
func mergeShallow(dst, mods entities.TechniqueTree) {
	for key, modSection := range mods {
		if section, ok := dst[key]; ok {
			for k, v := range modSection {
				section[k] = v
			}
			continue
		}
		cp := make(entities.TechniqueSection, len(modSection))
		for k, v := range modSection {
			cp[k] = v
		}
		dst[key] = cp
	}
}
