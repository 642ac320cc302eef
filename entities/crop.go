package entities

// CropType enumerates the crops the service knows how to advise on.
type CropType string

const (
	CropCorn      CropType = "corn"
	CropWheat     CropType = "wheat"
	CropSunflower CropType = "sunflower"
)

// ParseCropType maps a path/query literal onto the closed crop enumeration.
func ParseCropType(s string) (CropType, bool) {
	switch CropType(s) {
	case CropCorn, CropWheat, CropSunflower:
		return CropType(s), true
	}
	return "", false
}

// GrowthStage is an ordered enumeration; timelines always walk StageOrder.
type GrowthStage string

const (
	StageGermination    GrowthStage = "germination"
	StageEmergence      GrowthStage = "emergence"
	StageTillering      GrowthStage = "tillering"
	StageStemElongation GrowthStage = "stem_elongation"
	StageHeading        GrowthStage = "heading"
	StageFlowering      GrowthStage = "flowering"
	StageGrainFilling   GrowthStage = "grain_filling"
	StageMaturity       GrowthStage = "maturity"
)

// StageOrder fixes the life-cycle order; stage N+1 never precedes stage N.
var StageOrder = []GrowthStage{
	StageGermination,
	StageEmergence,
	StageTillering,
	StageStemElongation,
	StageHeading,
	StageFlowering,
	StageGrainFilling,
	StageMaturity,
}

func ParseGrowthStage(s string) (GrowthStage, bool) {
	for _, st := range StageOrder {
		if GrowthStage(s) == st {
			return st, true
		}
	}
	return "", false
}

// SoilType classifications accepted by crop-management validation.
type SoilType string

const (
	SoilClay      SoilType = "clay"
	SoilClayLoam  SoilType = "clay_loam"
	SoilLoam      SoilType = "loam"
	SoilSandyLoam SoilType = "sandy_loam"
	SoilSandy     SoilType = "sandy"
	SoilSiltLoam  SoilType = "silt_loam"
	SoilSiltyClay SoilType = "silty_clay"
)

func ParseSoilType(s string) (SoilType, bool) {
	switch SoilType(s) {
	case SoilClay, SoilClayLoam, SoilLoam, SoilSandyLoam, SoilSandy, SoilSiltLoam, SoilSiltyClay:
		return SoilType(s), true
	}
	return "", false
}

// ClimateZone holds the Koppen-style classifications relevant for agriculture.
type ClimateZone string

const (
	ZoneMediterranean   ClimateZone = "mediterranean"
	ZoneContinental     ClimateZone = "continental"
	ZoneTropical        ClimateZone = "tropical"
	ZoneSemiArid        ClimateZone = "semi_arid"
	ZoneHumidSubtropics ClimateZone = "humid_subtropical"
	ZoneOceanic         ClimateZone = "oceanic"
	ZoneSubarctic       ClimateZone = "subarctic"
)

func ParseClimateZone(s string) (ClimateZone, bool) {
	switch ClimateZone(s) {
	case ZoneMediterranean, ZoneContinental, ZoneTropical, ZoneSemiArid,
		ZoneHumidSubtropics, ZoneOceanic, ZoneSubarctic:
		return ClimateZone(s), true
	}
	return "", false
}

// IrrigationMethod enumerates the irrigation systems a query may declare.
type IrrigationMethod string

const (
	IrrigationDrip        IrrigationMethod = "drip"
	IrrigationSprinkler   IrrigationMethod = "sprinkler"
	IrrigationFlood       IrrigationMethod = "flood"
	IrrigationCenterPivot IrrigationMethod = "center_pivot"
	IrrigationSubsurface  IrrigationMethod = "subsurface"
)

func ParseIrrigationMethod(s string) (IrrigationMethod, bool) {
	switch IrrigationMethod(s) {
	case IrrigationDrip, IrrigationSprinkler, IrrigationFlood, IrrigationCenterPivot, IrrigationSubsurface:
		return IrrigationMethod(s), true
	}
	return "", false
}
