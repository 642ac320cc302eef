package service

import "cropsense/entities"

// KnowledgeService exposes the three independent rule-matching contracts
// over the static agricultural knowledge tables.
type KnowledgeService interface {
	DiseaseRisks(crop entities.CropType, temperature, humidity float64) []entities.DiseaseRisk
	ProtectionMeasures(crop entities.CropType, stage entities.GrowthStage) map[string][]string
	FarmingTechniques(crop entities.CropType, climateZone, soilType string) (entities.TechniqueTree, error)
}
