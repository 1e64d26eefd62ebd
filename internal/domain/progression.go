package domain

// --- БРЕМЯ И ЖЕЛАНИЕ АВТОМАТИЗАЦИИ ---

// DesireLevel - дискретный уровень желания автоматизировать задачу.
// Ступенчатая функция от накопленного бремени.
type DesireLevel uint8

const (
	DesireNone DesireLevel = iota
	DesireLow
	DesireMedium
	DesireHigh
	DesireCritical
)

var desireNames = map[DesireLevel]string{
	DesireNone:     "NONE",
	DesireLow:      "LOW",
	DesireMedium:   "MEDIUM",
	DesireHigh:     "HIGH",
	DesireCritical: "CRITICAL",
}

func (d DesireLevel) String() string {
	if name, ok := desireNames[d]; ok {
		return name
	}
	return "UNKNOWN"
}

// --- СИСТЕМЫ АВТОМАТИЗАЦИИ ---

// AutomationSystem - именованная подсистема, заменяющая ручной труд.
type AutomationSystem uint8

const (
	SystemUnknown AutomationSystem = iota
	SystemIrrigation
	SystemNutrientDosing
	SystemClimateUnit
	SystemSensorSuite
	SystemLightingRig
)

var systemNames = map[AutomationSystem]string{
	SystemIrrigation:     "IRRIGATION",
	SystemNutrientDosing: "NUTRIENT_DOSING",
	SystemClimateUnit:    "CLIMATE_UNIT",
	SystemSensorSuite:    "SENSOR_SUITE",
	SystemLightingRig:    "LIGHTING_RIG",
}

func (s AutomationSystem) String() string {
	if name, ok := systemNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// SystemsForTask - маппинг задача -> системы, которые её автоматизируют.
var SystemsForTask = map[CareTask][]AutomationSystem{
	TaskWatering:    {SystemIrrigation},
	TaskFeeding:     {SystemNutrientDosing},
	TaskMonitoring:  {SystemSensorSuite},
	TaskPestControl: {SystemSensorSuite, SystemClimateUnit},
	TaskTraining:    {SystemLightingRig},
}

// --- УРОВЕНЬ РАЗВИТИЯ ДЕРЕВА НАВЫКОВ ---

// TreeGrowthLevel - дискретный уровень "расцвета" дерева навыков,
// производный от доли разблокированных узлов (vibrancy).
type TreeGrowthLevel uint8

const (
	TreeSeed TreeGrowthLevel = iota
	TreeSprouting
	TreeBudding
	TreeFlowering
	TreeFullyFlowered
)

var treeLevelNames = map[TreeGrowthLevel]string{
	TreeSeed:          "SEED",
	TreeSprouting:     "SPROUTING",
	TreeBudding:       "BUDDING",
	TreeFlowering:     "FLOWERING",
	TreeFullyFlowered: "FULLY_FLOWERED",
}

func (l TreeGrowthLevel) String() string {
	if name, ok := treeLevelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// GrowthLevelForVibrancy переводит vibrancy [0,1] в уровень по
// непересекающимся полосам.
func GrowthLevelForVibrancy(v float64) TreeGrowthLevel {
	switch {
	case v >= 0.8:
		return TreeFullyFlowered
	case v >= 0.6:
		return TreeFlowering
	case v >= 0.4:
		return TreeBudding
	case v >= 0.2:
		return TreeSprouting
	default:
		return TreeSeed
	}
}

// --- ИСТОЧНИКИ ОПЫТА ---

// ExperienceSource - откуда пришел опыт (влияет на множитель начисления).
type ExperienceSource uint8

const (
	SourceManualCare ExperienceSource = iota
	SourceAutomatedCare
	SourceHarvest
	SourceDiscovery
)

func (s ExperienceSource) String() string {
	switch s {
	case SourceManualCare:
		return "MANUAL_CARE"
	case SourceAutomatedCare:
		return "AUTOMATED_CARE"
	case SourceHarvest:
		return "HARVEST"
	case SourceDiscovery:
		return "DISCOVERY"
	default:
		return "UNKNOWN"
	}
}
