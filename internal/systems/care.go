package systems

import (
	"math"

	"verdant-server/internal/domain"
	"verdant-server/pkg/logger"
	"verdant-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// CareConfig - настройки оценщика качества ухода.
type CareConfig struct {
	// Базовая эффективность по задачам (0-1)
	BaseEfficiency map[domain.CareTask]float64

	// Насколько максимальный навык усиливает качество: 1 + ratio*(mult-1)
	PrecisionMultiplier float64

	// Бонус инструмента: 1 + toolQuality*ToolBonus
	ToolBonus float64

	// Глобальный множитель качества от бенефитов дерева навыков
	QualityBonus float64
}

// DefaultCareConfig возвращает настройки по умолчанию.
func DefaultCareConfig() CareConfig {
	return CareConfig{
		BaseEfficiency: map[domain.CareTask]float64{
			domain.TaskWatering:      1.0,
			domain.TaskFeeding:       0.95,
			domain.TaskPruning:       0.9,
			domain.TaskTraining:      0.85,
			domain.TaskTransplanting: 0.8,
			domain.TaskPestControl:   0.9,
			domain.TaskMonitoring:    1.0,
			domain.TaskHarvesting:    1.0,
		},
		PrecisionMultiplier: 1.3,
		ToolBonus:           0.2,
		QualityBonus:        1.0,
	}
}

// AppliedEffect - один примененный к растению дельта-эффект (для уведомлений).
type AppliedEffect struct {
	Name  string  `json:"name"`
	Delta float64 `json:"delta"`
}

// EvalResult - результат оценки действия ухода.
// Отказы (OK=false) гарантированно не мутировали растение.
type EvalResult struct {
	OK     bool
	Reason string // machine-readable при отказе

	Quality domain.CareQuality
	Outcome domain.CareOutcome
	Raw     float64 // сырая оценка до квантования

	Effects []AppliedEffect
}

// failed - отказ без мутации
func failed(reason string) EvalResult {
	return EvalResult{
		OK:      false,
		Reason:  reason,
		Quality: domain.QualityFailed,
		Outcome: domain.OutcomeFailed,
	}
}

// EvaluateCare оценивает действие и применяет эффекты к растению.
// Сама оценка - чистая функция (снимок растения, действие, конфиг):
// два вызова на замороженных входах дают идентичное качество.
// Валидация идет ПЕРЕД любой мутацией и падает быстро.
func EvaluateCare(p *domain.PlantEntity, strain *domain.Strain, action domain.CareAction, cfg CareConfig, now float64) EvalResult {
	// --- Валидация (fail fast, без мутаций) ---

	if p.Vitals == nil || p.Vitals.IsDead {
		return failed(domain.ReasonPlantDead)
	}
	if p.Harvested {
		return failed(domain.ReasonPlantHarvested)
	}
	if !taskReceivable(action.Task, p.Growth.Stage) {
		return failed(domain.ReasonWrongStage)
	}
	if !action.Tool.CompatibleWith(action.Task) {
		return failed(domain.ReasonToolIncompatible)
	}

	relevance := ActionRelevance(p, action.Task)
	if relevance < domain.MinActionRelevance {
		return failed(domain.ReasonLowRelevance)
	}

	// --- Оценка: произведение четырех независимых модификаторов ---

	base := cfg.BaseEfficiency[action.Task] * relevance
	skillMod := 1 + action.SkillRatio()*(cfg.PrecisionMultiplier-1)
	timingMod := TimingModifier(p, now)
	toolMod := 1.0
	if action.Tool != nil {
		toolMod = 1 + action.Tool.Quality*cfg.ToolBonus
	}
	plantMod := utils.Lerp(0.7, 1.0, p.Vitals.Health)

	raw := utils.Clamp01(base * skillMod * timingMod * toolMod * plantMod * cfg.QualityBonus)
	quality := domain.QuantizeQuality(raw)

	result := EvalResult{
		OK:      true,
		Quality: quality,
		Outcome: domain.OutcomeForQuality(quality),
		Raw:     raw,
	}

	// --- Побочный шаг: дельты состояния, чистые функции качества ---
	result.Effects = applyEffects(p, action, raw, now)

	logger.Log.WithFields(logrus.Fields{
		"component": "care_system",
		"plant_id":  p.ID,
		"task":      action.Task.String(),
		"quality":   quality.String(),
		"raw":       raw,
	}).Debug("Care action evaluated.")

	return result
}

// taskReceivable - может ли растение принять задачу на текущей стадии.
func taskReceivable(task domain.CareTask, stage domain.GrowthStage) bool {
	switch task {
	case domain.TaskHarvesting:
		return stage == domain.StageHarvest
	case domain.TaskPruning, domain.TaskTraining:
		// Резать нечего до вегетации; на финальной стадии уже поздно
		return stage >= domain.StageVegetative && stage < domain.StageHarvest
	case domain.TaskTransplanting:
		// Пересадка в цветении гарантированно калечит растение
		return stage >= domain.StageSeedling && stage < domain.StagePreFlower
	case domain.TaskUnknown:
		return false
	default:
		return true
	}
}

// ActionRelevance - релевантность задачи текущим нуждам растения.
// Нужда = 1 - текущий уровень соответствующего ресурса.
func ActionRelevance(p *domain.PlantEntity, task domain.CareTask) float64 {
	v := p.Vitals
	waterNeed := 1 - v.Water
	nutrientNeed := 1 - v.Nutrient
	lightNeed := 1 - p.Fitness.Light
	generalNeed := utils.Clamp01((v.Stress + (1 - v.Health)) / 2)

	switch task {
	case domain.TaskWatering:
		return utils.Clamp01(waterNeed)
	case domain.TaskFeeding:
		return utils.Clamp01(nutrientNeed)
	case domain.TaskTraining:
		// Тренировка раскрывает крону под свет
		return utils.Clamp01(0.3 + 0.7*lightNeed)
	case domain.TaskPruning:
		return utils.Clamp01(0.4 + 0.6*generalNeed)
	case domain.TaskPestControl:
		// Релевантно только при биотических стрессорах
		for _, s := range p.ActiveStressors() {
			if s.Category == domain.StressBiotic {
				return utils.Clamp01(0.5 + 0.5*s.Intensity)
			}
		}
		return 0.1
	case domain.TaskTransplanting:
		return utils.Clamp01(0.3 + 0.7*generalNeed)
	case domain.TaskMonitoring:
		return 0.5
	case domain.TaskHarvesting:
		return 1.0
	default:
		return 0
	}
}

// TimingModifier - циркадный множитель: lerp(1.0, 0.5, dist/window).
// Оптимальное время выводится из возраста растения: фаза "утра"
// циркадного цикла.
func TimingModifier(p *domain.PlantEntity, now float64) float64 {
	age := now - p.PlantedAt
	phase := math.Mod(age, domain.CircadianPeriod)
	if phase < 0 {
		phase += domain.CircadianPeriod
	}

	optimal := domain.CircadianPeriod * 0.25 // "утро" цикла
	dist := math.Abs(phase - optimal)
	if wrap := domain.CircadianPeriod - dist; wrap < dist {
		dist = wrap
	}

	return utils.Lerp(1.0, 0.5, dist/domain.CareTimingWindow)
}

// applyEffects применяет к растению дельты, специфичные задаче.
// Каждая дельта - чистая функция качества (raw).
func applyEffects(p *domain.PlantEntity, action domain.CareAction, raw, now float64) []AppliedEffect {
	v := p.Vitals
	var effects []AppliedEffect

	record := func(name string, delta float64) {
		effects = append(effects, AppliedEffect{Name: name, Delta: delta})
	}

	switch action.Task {
	case domain.TaskWatering:
		hydration := action.Amount * raw
		v.Hydrate(hydration)
		record("hydration", hydration)
		if raw >= 0.7 {
			relief := 0.05 * raw
			v.RelieveStress(relief)
			record("stressRelief", relief)
		}

	case domain.TaskFeeding:
		feed := action.Amount * raw
		v.Feed(feed)
		record("nutrient", feed)

	case domain.TaskPruning:
		gain := 0.05 * raw
		p.YieldPotential = utils.Clamp01(p.YieldPotential + gain)
		record("yieldPotential", gain)
		if raw < 0.5 {
			// Кривая обрезка стрессует растение
			shock := (0.5 - raw) * 0.2
			p.AddStressor(&domain.Stressor{
				Source: "PRUNE_SHOCK", Category: domain.StressAbiotic,
				Intensity: shock, StartedAt: now, Active: true, DamageRate: 0.001,
			})
			record("pruneShock", shock)
		}

	case domain.TaskTraining:
		gain := 0.08 * raw
		p.YieldPotential = utils.Clamp01(p.YieldPotential + gain)
		record("yieldPotential", gain)

	case domain.TaskTransplanting:
		// Шок пересадки: чем лучше выполнено, тем мягче
		shock := utils.Lerp(0.25, 0.05, raw)
		p.AddStressor(&domain.Stressor{
			Source: "TRANSPLANT_SHOCK", Category: domain.StressAbiotic,
			Intensity: shock, StartedAt: now, Active: true, DamageRate: 0.002,
		})
		record("transplantShock", shock)
		gain := 0.04 * raw
		p.QualityPotential = utils.Clamp01(p.QualityPotential + gain)
		record("qualityPotential", gain)

	case domain.TaskPestControl:
		if raw >= 0.5 {
			cleared := 0
			for _, s := range p.ActiveStressors() {
				if s.Category == domain.StressBiotic {
					p.ClearStressor(s.Source)
					cleared++
				}
			}
			record("stressorsCleared", float64(cleared))
		}
		relief := 0.1 * raw
		v.RelieveStress(relief)
		record("stressRelief", relief)

	case domain.TaskMonitoring:
		// Осмотр сам по себе растение не двигает, но внимательный
		// гровер замечает проблемы: чуть-чуть потенциала качества
		gain := 0.01 * raw
		p.QualityPotential = utils.Clamp01(p.QualityPotential + gain)
		record("qualityPotential", gain)
	}

	return effects
}
