package progression

import (
	"verdant-server/internal/domain"
	"verdant-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Причины отказа разблокировки (machine-readable, безопасно ретраить каждый тик)
const (
	ReasonBurdenBelowThreshold = "BURDEN_BELOW_THRESHOLD"
	ReasonSkillBelowThreshold  = "SKILL_BELOW_THRESHOLD"
	ReasonCooldownActive       = "COOLDOWN_ACTIVE"
	ReasonNoNewSystems         = "NO_NEW_SYSTEMS"
	ReasonTaskNotAutomatable   = "TASK_NOT_AUTOMATABLE"
)

// UnlockThresholds - пороги разблокировки для задачи.
type UnlockThresholds struct {
	Burden float64 `yaml:"burden"`
	Skill  float64 `yaml:"skill"` // 0-100
}

// UnlockConfig - настройки движка разблокировки.
type UnlockConfig struct {
	Thresholds map[domain.CareTask]UnlockThresholds

	// Cooldown между попытками разблокировки одной задачи, сек
	Cooldown float64

	// Доля бремени, остающаяся после разблокировки (остаточный надзор)
	BurdenRetention float64

	// Скидка порогов при разблокировке через узел дерева навыков
	SkillNodeDiscount float64
}

// DefaultUnlockConfig - значения по умолчанию.
func DefaultUnlockConfig() UnlockConfig {
	return UnlockConfig{
		Thresholds: map[domain.CareTask]UnlockThresholds{
			domain.TaskWatering:    {Burden: 30, Skill: 25},
			domain.TaskFeeding:     {Burden: 35, Skill: 35},
			domain.TaskMonitoring:  {Burden: 20, Skill: 20},
			domain.TaskPestControl: {Burden: 40, Skill: 45},
			domain.TaskTraining:    {Burden: 45, Skill: 50},
		},
		Cooldown:          60,
		BurdenRetention:   0.3,
		SkillNodeDiscount: 0.5,
	}
}

// SystemState - состояние одной системы автоматизации.
type SystemState struct {
	System     domain.AutomationSystem `json:"system"`
	Unlocked   bool                    `json:"unlocked"`
	Active     bool                    `json:"active"`
	UnlockedAt float64                 `json:"unlockedAt,omitempty"`
}

// UnlockResult - исход попытки разблокировки.
type UnlockResult struct {
	Success bool                      `json:"success"`
	Reason  string                    `json:"reason,omitempty"`
	Task    domain.CareTask           `json:"task"`
	Systems []domain.AutomationSystem `json:"systems,omitempty"` // ТОЛЬКО новые
}

// UnlockEngine гейтит доступность и разблокировку систем автоматизации.
type UnlockEngine struct {
	cfg UnlockConfig
	acc *Accumulator

	systems     map[domain.AutomationSystem]*SystemState
	lastAttempt map[domain.CareTask]float64
}

func NewUnlockEngine(cfg UnlockConfig, acc *Accumulator) *UnlockEngine {
	return &UnlockEngine{
		cfg:         cfg,
		acc:         acc,
		systems:     make(map[domain.AutomationSystem]*SystemState),
		lastAttempt: make(map[domain.CareTask]float64),
	}
}

// System возвращает (создавая при нужде) состояние системы.
func (e *UnlockEngine) System(s domain.AutomationSystem) *SystemState {
	state, ok := e.systems[s]
	if !ok {
		state = &SystemState{System: s}
		e.systems[s] = state
	}
	return state
}

// UpdateAvailability проверяет оба порога и взводит латч Available.
// Возвращает true, если латч взведен ИМЕННО этим вызовом
// (для публикации события ровно один раз).
func (e *UnlockEngine) UpdateAvailability(task domain.CareTask, skill float64) bool {
	th, ok := e.cfg.Thresholds[task]
	if !ok {
		return false
	}
	p := e.acc.Progress(task)
	if p.Available {
		return false
	}
	if p.Burden >= th.Burden && skill >= th.Skill {
		p.Available = true
		return true
	}
	return false
}

// TryUnlock - попытка разблокировать автоматизацию задачи.
// Требует: бремя >= порога, навык >= порога, истекший cooldown.
// Идемпотентна: повторная разблокировка возвращает success=false,
// "нет новых систем", и НЕ применяет удержание бремени второй раз.
func (e *UnlockEngine) TryUnlock(task domain.CareTask, skill, now float64) UnlockResult {
	return e.tryUnlock(task, skill, now, 1.0)
}

// TryUnlockDiscounted - разблокировка со скидкой порогов
// (узел дерева навыков типа AutomationUnlock: навык замещает бремя).
func (e *UnlockEngine) TryUnlockDiscounted(task domain.CareTask, skill, now float64) UnlockResult {
	return e.tryUnlock(task, skill, now, e.cfg.SkillNodeDiscount)
}

func (e *UnlockEngine) tryUnlock(task domain.CareTask, skill, now, discount float64) UnlockResult {
	result := UnlockResult{Task: task}

	th, ok := e.cfg.Thresholds[task]
	if !ok {
		result.Reason = ReasonTaskNotAutomatable
		return result
	}

	p := e.acc.Progress(task)

	if p.Unlocked {
		// Уже разблокировано: no-op без повторного удержания бремени
		result.Reason = ReasonNoNewSystems
		return result
	}

	// Cooldown считается от ЛЮБОЙ попытки, удачной или нет
	if last, attempted := e.lastAttempt[task]; attempted && now-last < e.cfg.Cooldown {
		result.Reason = ReasonCooldownActive
		return result
	}
	e.lastAttempt[task] = now

	if p.Burden < th.Burden*discount {
		result.Reason = ReasonBurdenBelowThreshold
		return result
	}
	if skill < th.Skill*discount {
		result.Reason = ReasonSkillBelowThreshold
		return result
	}

	// --- Разблокировка ---
	p.Available = true // unlocked подразумевает available
	p.Unlocked = true

	// Остаточный надзор: бремя не обнуляется, а сжимается
	p.Burden *= e.cfg.BurdenRetention
	p.Desire = e.acc.desireFor(p.Burden)

	for _, sys := range domain.SystemsForTask[task] {
		state := e.System(sys)
		if state.Unlocked {
			continue // Система могла прийти от другой задачи
		}
		state.Unlocked = true
		state.Active = true
		state.UnlockedAt = now
		result.Systems = append(result.Systems, sys)
	}

	result.Success = true
	logger.Log.WithFields(logrus.Fields{
		"component": "automation_engine",
		"task":      task.String(),
		"systems":   len(result.Systems),
		"burden":    p.Burden,
	}).Info("Automation unlocked.")
	return result
}

// ForceUnlock - принудительная разблокировка в обход порогов и cooldown
// (административная консоль). Возвращает false для неавтоматизируемой задачи.
func (e *UnlockEngine) ForceUnlock(task domain.CareTask, now float64) bool {
	if _, ok := e.cfg.Thresholds[task]; !ok {
		return false
	}
	p := e.acc.Progress(task)
	if p.Unlocked {
		return true
	}
	p.Available = true
	p.Unlocked = true
	for _, sys := range domain.SystemsForTask[task] {
		state := e.System(sys)
		if state.Unlocked {
			continue
		}
		state.Unlocked = true
		state.Active = true
		state.UnlockedAt = now
	}
	return true
}

// SystemsSnapshot - копии состояний всех известных систем.
func (e *UnlockEngine) SystemsSnapshot() []SystemState {
	out := make([]SystemState, 0, len(e.systems))
	for s := domain.SystemIrrigation; s <= domain.SystemLightingRig; s++ {
		if state, ok := e.systems[s]; ok {
			out = append(out, *state)
		}
	}
	return out
}
