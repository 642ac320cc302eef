package serviceImp

import (
	"cropsense/entities"
	"cropsense/pkg/agronomy"
)

type diseaseRule struct {
	TempRange     agronomy.Range
	HumidityRange agronomy.Range
	Description   string
	Symptoms      []string
	Management    []string
}

// diseaseRules: (crop, disease) -> joint temperature/humidity risk window.
// A rule fires only when BOTH readings fall inside their inclusive ranges.
// Sunflower has no registered diseases; that is a valid empty result.
var diseaseRules = map[entities.CropType]map[string]diseaseRule{
	entities.CropWheat: {
		"black_rust": {
			TempRange:     agronomy.Range{Min: 15, Max: 25},
			HumidityRange: agronomy.Range{Min: 60, Max: 100},
			Description:   "High risk when temperature is between 15-25°C with high humidity",
			Symptoms: []string{
				"Reddish-brown pustules on leaves and stems",
				"Black teliospores form late in season",
				"Reduced grain fill and yield",
			},
			Management: []string{
				"Plant resistant varieties",
				"Early planting to avoid peak disease period",
				"Monitor and apply fungicides when necessary",
			},
		},
		"smut": {
			TempRange:     agronomy.Range{Min: 16, Max: 22},
			HumidityRange: agronomy.Range{Min: 70, Max: 100},
			Description:   "Risk increases with high humidity and moderate temperatures",
			Symptoms: []string{
				"Black spores replace grain in heads",
				"Fishy smell in infected grain",
				"Reduced grain quality",
			},
			Management: []string{
				"Use certified disease-free seed",
				"Treat seeds with fungicide",
				"Practice crop rotation",
			},
		},
		"powdery_mildew": {
			TempRange:     agronomy.Range{Min: 15, Max: 22},
			HumidityRange: agronomy.Range{Min: 50, Max: 100},
			Description:   "Common in dense canopies with high humidity",
			Symptoms: []string{
				"White powdery growth on leaves",
				"Yellowing and death of leaves",
				"Reduced photosynthesis",
			},
			Management: []string{
				"Use resistant varieties",
				"Maintain good air circulation",
				"Apply fungicides preventively in high-risk conditions",
			},
		},
	},
	entities.CropCorn: {
		"northern_leaf_blight": {
			TempRange:     agronomy.Range{Min: 18, Max: 27},
			HumidityRange: agronomy.Range{Min: 70, Max: 100},
			Description:   "Favored by moderate temperatures and high humidity",
			Symptoms: []string{
				"Long, cigar-shaped lesions",
				"Grayish-green to brown color",
				"Lesions begin on lower leaves",
			},
			Management: []string{
				"Plant resistant hybrids",
				"Rotate crops",
				"Apply fungicides at early infection",
			},
		},
		"gray_leaf_spot": {
			TempRange:     agronomy.Range{Min: 22, Max: 30},
			HumidityRange: agronomy.Range{Min: 85, Max: 100},
			Description:   "Severe in areas with high humidity and warm temperatures",
			Symptoms: []string{
				"Rectangular lesions between leaf veins",
				"Gray to tan color",
				"Lesions expand and coalesce",
			},
			Management: []string{
				"Use resistant hybrids",
				"Practice crop rotation",
				"Consider fungicide application",
			},
		},
		"common_rust": {
			TempRange:     agronomy.Range{Min: 16, Max: 25},
			HumidityRange: agronomy.Range{Min: 75, Max: 100},
			Description:   "Develops rapidly in cool, moist conditions",
			Symptoms: []string{
				"Small, circular pustules on leaves",
				"Reddish-brown color",
				"Pustules on both leaf surfaces",
			},
			Management: []string{
				"Plant resistant hybrids",
				"Monitor fields regularly",
				"Apply fungicides if detected early",
			},
		},
	},
}

// protectionStrategies: category -> approach -> canned recommendation.
var protectionStrategies = map[string]map[string]map[string]string{
	"disease_control": {
		"chemical": {
			"fungicides":     "Apply appropriate fungicides when disease risk is high",
			"seed_treatment": "Treat seeds with fungicides before planting",
		},
		"cultural": {
			"crop_rotation":       "Rotate crops to break disease cycles",
			"resistant_varieties": "Use disease-resistant varieties when available",
		},
	},
	"pest_control": {
		"chemical": {
			"insecticides": "Apply insecticides when pest thresholds are exceeded",
		},
		"biological": {
			"beneficial_insects": "Encourage natural predators",
			"trap_crops":         "Plant trap crops to protect main crop",
		},
	},
	"weed_control": {
		"chemical": {
			"herbicides": "Use selective herbicides appropriate for the crop",
		},
		"mechanical": {
			"tillage":  "Implement appropriate tillage practices",
			"mulching": "Use mulch to suppress weed growth",
		},
	},
}

// Stage sets that trigger each protection category. Membership only, no
// severity scaling.
var (
	diseaseControlStages = map[entities.GrowthStage]bool{
		entities.StageEmergence: true,
		entities.StageTillering: true,
	}
	pestControlStages = map[entities.GrowthStage]bool{
		entities.StageEmergence: true,
		entities.StageFlowering: true,
	}
	weedControlStages = map[entities.GrowthStage]bool{
		entities.StageEmergence: true,
		entities.StageTillering: true,
	}
)

// baseTechniques holds each crop's recommended-practice tree. The section
// depth deliberately varies per crop, matching the agronomic source data.
var baseTechniques = map[entities.CropType]entities.TechniqueTree{
	entities.CropSunflower: {
		"soil_preparation": {
			"tillage_depth":     "20-25cm",
			"primary_tillage":   "Deep plowing in fall",
			"secondary_tillage": "Light cultivation before planting",
			"soil_requirements": map[string]any{
				"optimal_ph":     "6.0-7.5",
				"organic_matter": ">1.5%",
				"drainage":       "Well-drained soils essential",
			},
			"recommended_methods": []string{
				"Deep tillage to break hardpan",
				"Seedbed should be firm and level",
				"Avoid excessive tillage to prevent soil moisture loss",
			},
		},
		"planting": {
			"timing": map[string]any{
				"soil_temperature": "Above 8°C (46°F)",
				"frost_risk":       "After all danger of spring frost",
				"season":           "Early spring to early summer",
			},
			"seed_depth":    "4-6cm",
			"row_spacing":   "70-100cm",
			"plant_spacing": "20-30cm",
			"seeding_rate":  "40,000-50,000 seeds/ha",
			"considerations": []string{
				"Plant when soil is moist but not wet",
				"Consider bee population for pollination",
				"Avoid planting in areas with bird pressure",
			},
		},
		"fertilization": {
			"base_application": map[string]any{
				"npk_ratio": "20-40-40",
				"timing":    "Pre-planting incorporation",
				"method":    "Broadcast and incorporate",
			},
			"nutrient_requirements": map[string]any{
				"nitrogen":   "60-100 kg/ha",
				"phosphorus": "40-80 kg/ha",
				"potassium":  "40-80 kg/ha",
				"boron":      "1-2 kg/ha if deficient",
			},
			"timing": []string{
				"50% at planting",
				"50% at V4 stage (4 true leaves)",
			},
		},
		"irrigation": {
			"critical_periods": []string{
				"Germination to emergence",
				"Flowering",
				"Seed filling",
			},
			"water_requirements": "400-500mm total",
			"methods": []string{
				"Center pivot irrigation",
				"Drip irrigation for water conservation",
			},
			"management": map[string]any{
				"early_stage": "Maintain consistent moisture",
				"flowering":   "Critical irrigation period",
				"maturity":    "Reduce irrigation for proper drying",
			},
		},
		"harvest": {
			"timing": map[string]any{
				"moisture_content": "Below 12%",
				"indicators": []string{
					"Back of head turns brown",
					"Bracts turn brown",
					"Seeds are firm and dark",
				},
			},
			"methods": []string{
				"Combine harvesting",
				"Adjust combine settings to minimize damage",
			},
			"post_harvest": []string{
				"Quick drying if moisture is above 10%",
				"Clean storage facilities",
				"Monitor temperature and moisture during storage",
			},
		},
	},
	entities.CropCorn: {
		"soil_preparation": {
			"tillage_depth":     "20-30cm",
			"primary_tillage":   "Fall plowing recommended for heavy soils",
			"secondary_tillage": "Spring cultivation to prepare seedbed",
			"soil_requirements": map[string]any{
				"optimal_ph":     "6.0-7.0",
				"organic_matter": ">2%",
				"drainage":       "Well-drained soils required",
			},
			"recommended_methods": []string{
				"Deep plowing for heavy soils",
				"Conservation tillage for erosion-prone areas",
				"Minimum tillage in dry regions",
			},
		},
		"planting": {
			"timing": map[string]any{
				"soil_temperature": "Above 10°C (50°F)",
				"frost_risk":       "Plant after last spring frost",
			},
			"seed_depth":    "5-7cm",
			"row_spacing":   "75-100cm",
			"plant_spacing": "15-20cm",
			"seeding_rate":  "60,000-70,000 seeds/ha",
			"considerations": []string{
				"Ensure soil moisture is adequate",
				"Consider using starter fertilizer",
				"Check soil temperature at planting depth",
			},
		},
		"fertilization": {
			"base_application": map[string]any{
				"npk_ratio": "15-15-15",
				"timing":    "Pre-planting or at planting",
				"method":    "Band placement 5cm below and beside seed",
			},
			"nitrogen_management": map[string]any{
				"total_n_required": "180-200 kg/ha",
				"split_applications": []string{
					"30% at planting",
					"40% at V6 stage",
					"30% at V12 stage",
				},
			},
		},
		"irrigation": {
			"critical_periods": []string{
				"Early vegetative growth",
				"Tasseling to silk emergence",
				"Grain filling",
			},
			"water_requirements": "500-800mm total",
			"methods": []string{
				"Center pivot irrigation",
				"Drip irrigation for water conservation",
				"Furrow irrigation in flat areas",
			},
			"scheduling": map[string]any{
				"early_stage": "Light, frequent irrigation",
				"mid_season":  "Heavy irrigation during critical periods",
				"late_season": "Reduced irrigation during maturity",
			},
		},
	},
	entities.CropWheat: {
		"soil_preparation": {
			"tillage_depth":     "15-20cm",
			"primary_tillage":   "Light cultivation for winter wheat",
			"secondary_tillage": "Seedbed preparation",
			"soil_requirements": map[string]any{
				"optimal_ph":     "6.0-7.0",
				"organic_matter": ">1.5%",
				"drainage":       "Moderate to well-drained",
				"texture":        "Medium to heavy soils preferred",
				"compaction":     "Avoid soil compaction below 15cm",
			},
			"seasonal_variations": map[string]any{
				"winter_wheat": map[string]any{
					"timing": "Early fall preparation",
					"depth":  "Slightly shallower to prevent heaving",
				},
				"spring_wheat": map[string]any{
					"timing": "Early spring as soon as workable",
					"depth":  "Standard depth for good root establishment",
				},
			},
			"recommended_methods": []string{
				"Minimum tillage for moisture conservation",
				"No-till in suitable conditions",
				"Conventional tillage in wet areas",
				"Strip tillage for erosion control",
				"Vertical tillage for residue management",
			},
		},
		"planting": {
			"timing": map[string]any{
				"winter_wheat": "Early fall, 6 weeks before frost",
				"spring_wheat": "Early spring, soil temp above 4°C",
			},
			"seed_depth":   "3-5cm",
			"row_spacing":  "15-20cm",
			"seeding_rate": "180-250 kg/ha",
			"considerations": []string{
				"Ensure good seed-to-soil contact",
				"Plant winter wheat at proper depth for winter protection",
				"Avoid planting too deep",
			},
		},
		"fertilization": {
			"base_application": map[string]any{
				"npk_ratio": "18-46-0",
				"timing":    "At planting",
				"method":    "Drill with seed or broadcast",
			},
			"nitrogen_management": map[string]any{
				"total_n_required": "100-150 kg/ha",
				"split_applications": []string{
					"40% at planting",
					"60% at tillering",
				},
			},
		},
		"irrigation": {
			"critical_periods": []string{
				"Tillering",
				"Stem elongation",
				"Grain filling",
			},
			"water_requirements": "450-650mm total",
			"methods": []string{
				"Sprinkler irrigation",
				"Flood irrigation in level fields",
			},
			"scheduling": map[string]any{
				"early_stage": "Regular light irrigation",
				"mid_season":  "Increased irrigation during heading",
				"late_season": "Reduced irrigation during ripening",
			},
		},
	},
}

// climateModifications overlay zone-specific practice onto the base tree.
// The merge is shallow per top-level key: zone sub-keys overwrite base
// sub-keys for that section; sections only the zone knows are added wholesale.
var climateModifications = map[entities.ClimateZone]entities.TechniqueTree{
	entities.ZoneMediterranean: {
		"irrigation": {
			"frequency":          "Increased during dry season",
			"water_conservation": "Critical consideration",
			"methods": []string{
				"Drip irrigation preferred",
				"Night irrigation to reduce evaporation",
				"Soil moisture monitoring essential",
			},
		},
		"planting": {
			"timing":    "Early spring for maximum rainfall utilization",
			"varieties": "Drought-tolerant varieties recommended",
		},
		"soil_management": {
			"mulching":       "Recommended for moisture conservation",
			"organic_matter": "Regular addition to improve water retention",
		},
	},
	entities.ZoneContinental: {
		"planting": {
			"timing":           "Adjusted for shorter growing season",
			"frost_protection": "Essential consideration",
			"methods": []string{
				"Use of frost-tolerant varieties",
				"Row covers for early planting",
				"Wind protection measures",
			},
		},
		"soil_preparation": {
			"timing":  "Early spring as soon as workable",
			"methods": "Minimum tillage to preserve moisture",
		},
		"winter_protection": {
			"methods": []string{
				"Snow trapping techniques",
				"Winter cover crops",
				"Windbreaks",
			},
		},
	},
	entities.ZoneTropical: {
		"disease_management": {
			"focus": "Increased focus on fungal disease prevention",
			"methods": []string{
				"Regular fungicide applications",
				"Resistant varieties essential",
				"Increased plant spacing for airflow",
			},
		},
		"irrigation": {
			"focus": "Focus on drainage during wet season",
			"methods": []string{
				"Raised beds recommended",
				"Surface drainage systems",
				"Timing based on rainfall patterns",
			},
		},
		"soil_management": {
			"erosion_control": "Critical in high rainfall",
			"methods": []string{
				"Contour plowing",
				"Cover crops during rainy season",
				"Terracing where appropriate",
			},
		},
	},
	entities.ZoneSemiArid: {
		"water_management": {
			"conservation": "Absolute priority",
			"methods": []string{
				"Drought-resistant varieties",
				"Mulching mandatory",
				"Deep tillage for moisture retention",
			},
		},
		"soil_management": {
			"focus": "Wind erosion control",
			"methods": []string{
				"Minimum tillage",
				"Stubble retention",
				"Windbreak establishment",
			},
		},
		"planting": {
			"timing":  "Synchronized with rainfall patterns",
			"density": "Reduced for water conservation",
		},
	},
	entities.ZoneHumidSubtropics: {
		"disease_management": {
			"focus": "Year-round disease pressure",
			"methods": []string{
				"Resistant varieties",
				"Preventive fungicide program",
				"Cultural controls",
			},
		},
		"soil_management": {
			"drainage": "Essential consideration",
			"methods": []string{
				"Raised beds",
				"Subsurface drainage",
				"Regular soil testing",
			},
		},
		"pest_management": {
			"focus": "Year-round pest pressure",
			"methods": []string{
				"IPM strategies",
				"Regular monitoring",
				"Beneficial insect conservation",
			},
		},
	},
}
