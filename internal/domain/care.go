package domain

import "strings"

// --- КАЧЕСТВО УХОДА ---

// CareQuality - градация качества выполненного действия.
// Никогда не хранится как состояние: пересчитывается на каждое действие.
type CareQuality uint8

const (
	QualityFailed CareQuality = iota
	QualityPoor
	QualityAverage
	QualityGood
	QualityExcellent
	QualityPerfect
)

var qualityNames = map[CareQuality]string{
	QualityFailed:    "FAILED",
	QualityPoor:      "POOR",
	QualityAverage:   "AVERAGE",
	QualityGood:      "GOOD",
	QualityExcellent: "EXCELLENT",
	QualityPerfect:   "PERFECT",
}

func (q CareQuality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return "UNKNOWN"
}

// QuantizeQuality переводит сырую оценку [0,1] в градацию
// по фиксированным порогам.
func QuantizeQuality(v float64) CareQuality {
	switch {
	case v >= 0.95:
		return QualityPerfect
	case v >= 0.85:
		return QualityExcellent
	case v >= 0.70:
		return QualityGood
	case v >= 0.50:
		return QualityAverage
	case v >= 0.25:
		return QualityPoor
	default:
		return QualityFailed
	}
}

// CareOutcome - классификация исхода для начисления опыта и бремени.
type CareOutcome uint8

const (
	OutcomeFailed CareOutcome = iota
	OutcomeSuboptimal
	OutcomeAdequate
	OutcomeSuccessful
	OutcomePerfect
)

var outcomeNames = map[CareOutcome]string{
	OutcomeFailed:     "FAILED",
	OutcomeSuboptimal: "SUBOPTIMAL",
	OutcomeAdequate:   "ADEQUATE",
	OutcomeSuccessful: "SUCCESSFUL",
	OutcomePerfect:    "PERFECT",
}

func (o CareOutcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "UNKNOWN"
}

// OutcomeForQuality сводит градацию качества к классу исхода.
func OutcomeForQuality(q CareQuality) CareOutcome {
	switch q {
	case QualityPerfect:
		return OutcomePerfect
	case QualityExcellent, QualityGood:
		return OutcomeSuccessful
	case QualityAverage:
		return OutcomeAdequate
	case QualityPoor:
		return OutcomeSuboptimal
	default:
		return OutcomeFailed
	}
}

// --- ИНСТРУМЕНТ ---

// Tool - опциональный инструмент, примененный к действию.
type Tool struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Quality float64  `json:"quality"` // 0-1
	Task    CareTask `json:"task"`    // задача, для которой инструмент предназначен
}

// CompatibleWith сообщает, подходит ли инструмент к задаче.
func (t *Tool) CompatibleWith(task CareTask) bool {
	if t == nil {
		return true // Без инструмента - руками - можно всё
	}
	return t.Task == task
}

// --- ДЕЙСТВИЕ УХОДА ---

// PruneStyle - стиль обрезки.
type PruneStyle uint8

const (
	PruneTopping PruneStyle = iota
	PruneFimming
	PruneLollipop
)

// TrainMethod - метод тренировки куста.
type TrainMethod uint8

const (
	TrainLST TrainMethod = iota // low stress training
	TrainHST                    // high stress training
	TrainSCROG
)

// CareAction - запрос на действие ухода. Payload специфичен задаче.
type CareAction struct {
	Task      CareTask `json:"task"`
	Tool      *Tool    `json:"tool,omitempty"`
	Timestamp float64  `json:"timestamp"` // сим-время выдачи

	// Снимок навыка исполнителя на момент действия
	Skill    float64 `json:"skill"`
	MaxSkill float64 `json:"maxSkill"`

	// Полив / подкормка
	Amount float64 `json:"amount,omitempty"` // 0-1

	// Обрезка / тренировка
	Prune PruneStyle  `json:"prune,omitempty"`
	Train TrainMethod `json:"train,omitempty"`

	// Пересадка
	TargetContainer string `json:"targetContainer,omitempty"`
}

// SkillRatio возвращает отношение навыка к максимуму, [0,1].
func (a CareAction) SkillRatio() float64 {
	if a.MaxSkill <= 0 {
		return 0
	}
	r := a.Skill / a.MaxSkill
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// --- ПРИЧИНЫ ОТКАЗА (machine-readable) ---

const (
	ReasonPlantDead        = "PLANT_DEAD"
	ReasonPlantHarvested   = "PLANT_HARVESTED"
	ReasonWrongStage       = "WRONG_STAGE"
	ReasonLowRelevance     = "LOW_RELEVANCE"
	ReasonToolIncompatible = "TOOL_INCOMPATIBLE"
	ReasonUnknownTask      = "UNKNOWN_TASK"
	ReasonUnknownPlant     = "UNKNOWN_PLANT"
)

// NormalizeReason приводит причину к каноническому виду для сравнения в логах.
func NormalizeReason(r string) string {
	return strings.ToUpper(strings.TrimSpace(r))
}
