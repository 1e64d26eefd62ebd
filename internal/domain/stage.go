package domain

// GrowthStage - стадия роста растения. Только вперед, без регрессии.
type GrowthStage uint8

const (
	StageSeed GrowthStage = iota
	StageGermination
	StageSeedling
	StageVegetative
	StagePreFlower
	StageFlowering
	StageHarvest
)

var stageNames = map[GrowthStage]string{
	StageSeed:        "SEED",
	StageGermination: "GERMINATION",
	StageSeedling:    "SEEDLING",
	StageVegetative:  "VEGETATIVE",
	StagePreFlower:   "PREFLOWER",
	StageFlowering:   "FLOWERING",
	StageHarvest:     "HARVEST",
}

func (s GrowthStage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsFinal сообщает, достигло ли растение стадии, пригодной к сбору.
func (s GrowthStage) IsFinal() bool {
	return s >= StageHarvest
}

// Next возвращает следующую стадию. Из финальной стадии выхода нет.
func (s GrowthStage) Next() GrowthStage {
	if s.IsFinal() {
		return StageHarvest
	}
	return s + 1
}

// StageWeights - фиксированное расписание вкладов стадий в общий прогресс.
// Сумма обязана быть равна 1.0 (проверяется тестом).
var StageWeights = map[GrowthStage]float64{
	StageSeed:        0.05,
	StageGermination: 0.05,
	StageSeedling:    0.10,
	StageVegetative:  0.35,
	StagePreFlower:   0.05,
	StageFlowering:   0.30,
	StageHarvest:     0.10,
}

// StageBaseRates - базовая скорость прогресса стадии (прогресс/сек при идеальных условиях).
// Величины подобраны так, чтобы полный цикл при среднем уходе занимал игровые "недели".
var StageBaseRates = map[GrowthStage]float64{
	StageSeed:        1.0 / 120.0,
	StageGermination: 1.0 / 240.0,
	StageSeedling:    1.0 / 600.0,
	StageVegetative:  1.0 / 1800.0,
	StagePreFlower:   1.0 / 300.0,
	StageFlowering:   1.0 / 1500.0,
	StageHarvest:     0, // Финальная стадия не прогрессирует
}

// OverallProgressAt вычисляет общий прогресс [0,1]:
// сумма весов завершенных стадий + вес текущей * внутристадийный прогресс.
func OverallProgressAt(stage GrowthStage, stageProgress float64) float64 {
	total := 0.0
	for s := StageSeed; s < stage; s++ {
		total += StageWeights[s]
	}
	if stageProgress < 0 {
		stageProgress = 0
	}
	if stageProgress > 1 {
		stageProgress = 1
	}
	total += StageWeights[stage] * stageProgress
	if total > 1 {
		total = 1
	}
	return total
}
