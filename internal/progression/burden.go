// Package progression реализует мета-слой прогрессии поверх симуляции:
// накопление бремени ручного труда, разблокировку автоматизации и
// дерево навыков. Все структуры пакета мутируются только на тик-горутине.
package progression

import (
	"math"

	"verdant-server/internal/domain"
	"verdant-server/pkg/utils"
)

// TaskProfile - параметры сложности задачи для модели бремени.
type TaskProfile struct {
	Complexity        float64 `yaml:"complexity"`        // когнитивная сложность, 0-1
	BaseDuration      float64 `yaml:"baseDuration"`      // типичная длительность, сек
	Urgency           float64 `yaml:"urgency"`           // фактор срочности, 0-2
	RequiredPrecision float64 `yaml:"requiredPrecision"` // 0-1
	RequiredQuality   float64 `yaml:"requiredQuality"`   // 0-1
}

// BurdenWeights - веса пяти подоценок в итоговом бремени.
type BurdenWeights struct {
	Cognitive   float64 `yaml:"cognitive"`
	Time        float64 `yaml:"time"`
	Consistency float64 `yaml:"consistency"`
	Scale       float64 `yaml:"scale"`
	QualityRisk float64 `yaml:"qualityRisk"`
}

// BurdenConfig - настройки аккумулятора бремени.
type BurdenConfig struct {
	Weights BurdenWeights

	// Пороги желания: Low, Medium, High, Critical (по возрастанию)
	DesireThresholds [4]float64

	// Окно подсчета частоты повторных действий, сек
	FrequencyWindow float64

	// Параметры давления масштаба
	ReferenceScale float64
	ScaleExponent  float64

	// Допуск ошибки для риска качества
	ErrorTolerance float64

	// Линейный спад при простое: после GracePeriod секунд без ручной
	// работы бремя убывает на DecayRate ед/сек, строго к нулю, не ниже.
	GracePeriod float64
	DecayRate   float64

	Tasks map[domain.CareTask]TaskProfile
}

// DefaultBurdenConfig - значения по умолчанию.
// Grace/decay - наш выбор дефолтов, закрепленный тестами.
func DefaultBurdenConfig() BurdenConfig {
	return BurdenConfig{
		Weights: BurdenWeights{
			Cognitive:   0.25,
			Time:        0.20,
			Consistency: 0.20,
			Scale:       0.20,
			QualityRisk: 0.15,
		},
		DesireThresholds: [4]float64{6, 15, 28, 55},
		FrequencyWindow:  600,
		ReferenceScale:   50,
		ScaleExponent:    0.75,
		ErrorTolerance:   0.5,
		GracePeriod:      120,
		DecayRate:        0.02,
		Tasks: map[domain.CareTask]TaskProfile{
			domain.TaskWatering:      {Complexity: 0.3, BaseDuration: 45, Urgency: 1.2, RequiredPrecision: 0.4, RequiredQuality: 0.5},
			domain.TaskFeeding:       {Complexity: 0.5, BaseDuration: 60, Urgency: 1.0, RequiredPrecision: 0.6, RequiredQuality: 0.6},
			domain.TaskPruning:       {Complexity: 0.7, BaseDuration: 120, Urgency: 0.6, RequiredPrecision: 0.8, RequiredQuality: 0.7},
			domain.TaskTraining:      {Complexity: 0.8, BaseDuration: 180, Urgency: 0.5, RequiredPrecision: 0.8, RequiredQuality: 0.7},
			domain.TaskTransplanting: {Complexity: 0.6, BaseDuration: 240, Urgency: 0.8, RequiredPrecision: 0.7, RequiredQuality: 0.6},
			domain.TaskPestControl:   {Complexity: 0.6, BaseDuration: 90, Urgency: 1.5, RequiredPrecision: 0.5, RequiredQuality: 0.6},
			domain.TaskMonitoring:    {Complexity: 0.2, BaseDuration: 30, Urgency: 0.8, RequiredPrecision: 0.3, RequiredQuality: 0.4},
			domain.TaskHarvesting:    {Complexity: 0.5, BaseDuration: 300, Urgency: 1.0, RequiredPrecision: 0.6, RequiredQuality: 0.8},
		},
	}
}

// AutomationProgress - состояние прогрессии автоматизации одной задачи.
type AutomationProgress struct {
	Task   domain.CareTask    `json:"task"`
	Burden float64            `json:"burden"`
	Desire domain.DesireLevel `json:"desire"`

	// Available - оба порога (бремя + навык) были выполнены.
	// Латч one-way: спад бремени его НЕ снимает.
	Available bool `json:"available"`

	// Unlocked - автоматизация разблокирована. Латч one-way.
	// Unlocked подразумевает, что Available уже был true.
	Unlocked bool `json:"unlocked"`

	// Скользящая история консистентности (среднее сырое качество), 0-1
	ConsistencyHistory float64 `json:"consistencyHistory"`

	TotalActions int `json:"totalActions"`

	lastWorkAt float64
	recentWork []float64 // таймстампы для окна частоты
}

// WorkSample - одно зафиксированное ручное действие.
type WorkSample struct {
	Duration     float64 // фактическая длительность, сек
	SkillRatio   float64 // навык исполнителя / максимум, 0-1
	PlantCount   int
	FacilitySize float64 // условные единицы площади
	Quality      float64 // сырое качество исхода, 0-1
	Timestamp    float64
}

// Accumulator считает многофакторное "желание автоматизации" по задачам.
type Accumulator struct {
	cfg      BurdenConfig
	progress map[domain.CareTask]*AutomationProgress
}

func NewAccumulator(cfg BurdenConfig) *Accumulator {
	return &Accumulator{
		cfg:      cfg,
		progress: make(map[domain.CareTask]*AutomationProgress),
	}
}

// Progress возвращает (создавая при нужде) состояние задачи.
func (a *Accumulator) Progress(task domain.CareTask) *AutomationProgress {
	p, ok := a.progress[task]
	if !ok {
		p = &AutomationProgress{Task: task, ConsistencyHistory: 0.5}
		a.progress[task] = p
	}
	return p
}

// Config возвращает активную конфигурацию (read-only для вызывающих).
func (a *Accumulator) Config() BurdenConfig {
	return a.cfg
}

// RecordWork фиксирует ручное действие и наращивает бремя.
// Возвращает (новое бремя, предыдущий уровень желания, новый уровень).
func (a *Accumulator) RecordWork(task domain.CareTask, sample WorkSample) (float64, domain.DesireLevel, domain.DesireLevel) {
	p := a.Progress(task)
	profile := a.cfg.Tasks[task]

	// Окно частоты: чистим устаревшие, добавляем текущий
	cutoff := sample.Timestamp - a.cfg.FrequencyWindow
	kept := p.recentWork[:0]
	for _, ts := range p.recentWork {
		if ts >= cutoff {
			kept = append(kept, ts)
		}
	}
	p.recentWork = append(kept, sample.Timestamp)
	frequency := float64(len(p.recentWork))

	// --- Пять независимых подоценок ---

	cognitive := profile.Complexity * (1 - sample.SkillRatio) * math.Log2(1+frequency)

	timeInvestment := (sample.Duration / 60.0) * math.Sqrt(float64(sample.PlantCount)) * profile.Urgency

	consistency := math.Max(0, profile.RequiredPrecision-sample.SkillRatio) * (2 - p.ConsistencyHistory)

	scale := 0.0
	if a.cfg.ReferenceScale > 0 {
		scale = math.Pow(float64(sample.PlantCount)*sample.FacilitySize/a.cfg.ReferenceScale, a.cfg.ScaleExponent)
	}

	qualityRisk := 0.0
	if a.cfg.ErrorTolerance > 0 {
		qualityRisk = math.Max(0, (profile.RequiredQuality-p.ConsistencyHistory)/a.cfg.ErrorTolerance)
	}

	w := a.cfg.Weights
	increment := cognitive*w.Cognitive +
		timeInvestment*w.Time +
		consistency*w.Consistency +
		scale*w.Scale +
		qualityRisk*w.QualityRisk

	if increment < 0 {
		increment = 0
	}

	p.Burden += increment
	p.TotalActions++
	p.lastWorkAt = sample.Timestamp

	// Скользящая консистентность: экспоненциальное сглаживание
	p.ConsistencyHistory = utils.Clamp01(p.ConsistencyHistory*0.8 + sample.Quality*0.2)

	prev := p.Desire
	p.Desire = a.desireFor(p.Burden)
	return p.Burden, prev, p.Desire
}

// desireFor - ступенчатая функция бремени.
func (a *Accumulator) desireFor(burden float64) domain.DesireLevel {
	t := a.cfg.DesireThresholds
	switch {
	case burden >= t[3]:
		return domain.DesireCritical
	case burden >= t[2]:
		return domain.DesireHigh
	case burden >= t[1]:
		return domain.DesireMedium
	case burden >= t[0]:
		return domain.DesireLow
	default:
		return domain.DesireNone
	}
}

// Decay применяет спад при простое ко всем задачам.
// Строго к нулю, никогда ниже; уровни желания пересчитываются,
// но латч Available это НЕ трогает (подтверждено дизайном).
func (a *Accumulator) Decay(now, dt float64) {
	for _, p := range a.progress {
		if p.Burden <= 0 {
			continue
		}
		if now-p.lastWorkAt < a.cfg.GracePeriod {
			continue
		}
		p.Burden -= a.cfg.DecayRate * dt
		if p.Burden < 0 {
			p.Burden = 0
		}
		p.Desire = a.desireFor(p.Burden)
	}
}

// Snapshot возвращает копии прогресса всех задач (для отладки/DTO).
func (a *Accumulator) Snapshot() []AutomationProgress {
	out := make([]AutomationProgress, 0, len(a.progress))
	for _, task := range domain.AllTasks() {
		if p, ok := a.progress[task]; ok {
			out = append(out, *p)
		}
	}
	return out
}
