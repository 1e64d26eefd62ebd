package progression

import (
	"verdant-server/internal/domain"
	"verdant-server/pkg/utils"
)

// MaxSkill - потолок навыка игрока по задаче.
const MaxSkill = 100.0

// CareRecord - исход действия ухода, поступающий в прогрессию.
type CareRecord struct {
	Task    domain.CareTask
	Outcome domain.CareOutcome
	Quality float64 // сырое качество, 0-1

	Duration     float64
	PlantCount   int
	FacilitySize float64

	Automated bool
	Timestamp float64
}

// Orchestrator - верхнеуровневый координатор прогрессии:
// исход ухода -> навык/бремя -> доступность/разблокировки -> бенефиты
// обратно в параметры симуляции.
type Orchestrator struct {
	burden *Accumulator
	engine *UnlockEngine
	tree   *Tree

	// publish - синхронный сток событий (шина движка). Может быть nil.
	publish func(domain.Event)

	// Навык игрока по задачам, 0-100
	skills map[domain.CareTask]float64

	// Маршрутизация опыта: задача -> цепочка узлов.
	// Опыт идет в первый еще не разблокированный узел цепочки.
	taskNodes map[domain.CareTask][]string
}

func NewOrchestrator(acc *Accumulator, engine *UnlockEngine, tree *Tree, publish func(domain.Event)) *Orchestrator {
	return &Orchestrator{
		burden:  acc,
		engine:  engine,
		tree:    tree,
		publish: publish,
		skills:  make(map[domain.CareTask]float64),
		taskNodes: map[domain.CareTask][]string{
			domain.TaskWatering:      {"cult_watering_1", "cult_watering_2", "auto_irrigation"},
			domain.TaskFeeding:       {"cult_feeding_1", "auto_dosing"},
			domain.TaskPruning:       {"cult_canopy_1"},
			domain.TaskTraining:      {"cult_canopy_1"},
			domain.TaskTransplanting: {"bot_phenohunt"},
			domain.TaskPestControl:   {"cult_canopy_1"},
			domain.TaskMonitoring:    {"auto_sensors", "bot_phenohunt"},
			domain.TaskHarvesting:    {"bot_growth_1", "bot_harvest_1"},
		},
	}
}

func (o *Orchestrator) emit(e domain.Event) {
	if o.publish != nil {
		o.publish(e)
	}
}

// Skill возвращает текущий навык по задаче.
func (o *Orchestrator) Skill(task domain.CareTask) float64 {
	return o.skills[task]
}

// GrantSkill напрямую добавляет навык (административная консоль).
func (o *Orchestrator) GrantSkill(task domain.CareTask, amount float64) {
	o.skills[task] = utils.Clamp(o.skills[task]+amount, 0, MaxSkill)
}

// Tree открывает доступ к дереву навыков (read-only использование).
func (o *Orchestrator) Tree() *Tree {
	return o.tree
}

// Burden открывает доступ к аккумулятору (снимки для DTO).
func (o *Orchestrator) Burden() *Accumulator {
	return o.burden
}

// Engine открывает доступ к движку разблокировки.
func (o *Orchestrator) Engine() *UnlockEngine {
	return o.engine
}

// skillGainFor - прирост навыка за исход (идея "усилие+успех" из выживалок).
func skillGainFor(outcome domain.CareOutcome) float64 {
	switch outcome {
	case domain.OutcomePerfect:
		return 3.0
	case domain.OutcomeSuccessful:
		return 2.0
	case domain.OutcomeAdequate:
		return 1.0
	case domain.OutcomeSuboptimal:
		return 0.5
	default:
		return 0.2 // Даже на провале чему-то учишься
	}
}

// xpGainFor - начисляемый узлу опыт за исход.
func xpGainFor(outcome domain.CareOutcome) float64 {
	return 10.0 * (skillGainFor(outcome) / 3.0)
}

// HandleCare - главная точка входа: обрабатывает один исход ухода.
// Порядок строго фиксирован: навык -> опыт дерева -> бремя -> пороги.
func (o *Orchestrator) HandleCare(rec CareRecord) {
	// 1. Рост навыка. Автоматика навык игрока не качает.
	if !rec.Automated {
		o.skills[rec.Task] = utils.Clamp(o.skills[rec.Task]+skillGainFor(rec.Outcome), 0, MaxSkill)
	}

	// 2. Опыт дерева навыков
	source := domain.SourceManualCare
	if rec.Automated {
		source = domain.SourceAutomatedCare
	}
	o.grantExperience(rec.Task, xpGainFor(rec.Outcome), source, rec.Timestamp)

	// 3. Бремя: только ручной труд давит на автоматизацию
	if !rec.Automated {
		o.recordBurden(rec)
	}
}

// grantExperience направляет опыт в первый незаблокированный узел цепочки задачи.
func (o *Orchestrator) grantExperience(task domain.CareTask, amount float64, source domain.ExperienceSource, now float64) {
	chain := o.taskNodes[task]
	var target string
	for _, id := range chain {
		if n := o.tree.Node(id); n != nil && !n.Unlocked {
			target = id
			break
		}
	}
	if target == "" {
		return // Вся цепочка пройдена
	}

	res := o.tree.AddExperience(target, amount, source)
	if !res.OK || !res.Unlocked {
		return
	}

	node := o.tree.Node(target)
	o.emit(domain.SkillNodeUnlockedEvent{NodeID: target, Branch: node.Branch, Timestamp: now})
	o.emit(domain.BranchProgressedEvent{Branch: node.Branch, Vibrancy: res.BranchVibrancy, Timestamp: now})
	if res.LevelChanged {
		o.emit(domain.TreeGrowthLevelChangedEvent{Prev: res.PrevLevel, New: res.NewLevel, Timestamp: now})
	}

	// Узел автоматизации: навык замещает бремя - пробуем со скидкой
	if node.Type == NodeAutomationUnlock {
		unlock := o.engine.TryUnlockDiscounted(node.Task, o.skills[node.Task], now)
		if unlock.Success {
			o.emit(domain.AutomationUnlockedEvent{Task: node.Task, Systems: unlock.Systems, Timestamp: now})
		}
	}
}

// recordBurden фиксирует ручную работу и гоняет пороговые переходы.
func (o *Orchestrator) recordBurden(rec CareRecord) {
	skillRatio := o.skills[rec.Task] / MaxSkill

	_, prevDesire, newDesire := o.burden.RecordWork(rec.Task, WorkSample{
		Duration:     rec.Duration,
		SkillRatio:   skillRatio,
		PlantCount:   rec.PlantCount,
		FacilitySize: rec.FacilitySize,
		Quality:      rec.Quality,
		Timestamp:    rec.Timestamp,
	})

	p := o.burden.Progress(rec.Task)
	if newDesire != prevDesire {
		o.emit(domain.BurdenThresholdReachedEvent{
			Task: rec.Task, Prev: prevDesire, New: newDesire,
			Burden: p.Burden, Timestamp: rec.Timestamp,
		})
	}

	if o.engine.UpdateAvailability(rec.Task, o.skills[rec.Task]) {
		o.emit(domain.AutomationAvailableEvent{Task: rec.Task, Timestamp: rec.Timestamp})
	}

	// Порог пересечен - пробуем разблокировать (cooldown гасит спам)
	if p.Available && !p.Unlocked {
		unlock := o.engine.TryUnlock(rec.Task, o.skills[rec.Task], rec.Timestamp)
		if unlock.Success {
			o.emit(domain.AutomationUnlockedEvent{Task: rec.Task, Systems: unlock.Systems, Timestamp: rec.Timestamp})
		}
	}
}

// HandleHarvest начисляет опыт за сбор урожая.
func (o *Orchestrator) HandleHarvest(result domain.HarvestResult, now float64) {
	o.grantExperience(domain.TaskHarvesting, 20*result.QualityScore, domain.SourceHarvest, now)
}

// Tick - периодическая работа прогрессии: спад бремени при простое.
func (o *Orchestrator) Tick(now, dt float64) {
	o.burden.Decay(now, dt)
}

// --- БЕНЕФИТЫ ОБРАТНО В СИМУЛЯЦИЮ ---

// QualityBonus - множитель качества ухода от разблокированных узлов.
func (o *Orchestrator) QualityBonus() float64 {
	return 1 + o.tree.UnlockedBenefit(NodeCareBonus)
}

// GrowthBonus - множитель скорости роста.
func (o *Orchestrator) GrowthBonus() float64 {
	return 1 + o.tree.UnlockedBenefit(NodeGrowthBonus)
}

// YieldBonus - множитель потенциала урожая.
func (o *Orchestrator) YieldBonus() float64 {
	return 1 + o.tree.UnlockedBenefit(NodeYieldBonus)
}
