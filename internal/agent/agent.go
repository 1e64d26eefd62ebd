package agent

import (
	"encoding/json"

	"verdant-server/internal/domain"
	"verdant-server/internal/engine"
	"verdant-server/pkg/api"
	"verdant-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Пороги нужды, при которых агент вмешивается
const (
	waterFloor    = 0.35
	nutrientFloor = 0.35

	// Минимальный интервал между действиями агента по одной паре
	// растение+задача, сим-секунды
	actionCooldown = 90.0

	// Период планового осмотра растения, сим-секунды
	monitorPeriod = 600.0
)

// Agent - исполнитель разблокированных систем автоматизации.
// Живет как хук конца тика: смотрит на нужды растений и кладет
// команды в ту же очередь, что и игрок, с пометкой Automated.
// Весь доступ к состоянию идет на тик-горутине, блокировки не нужны.
type Agent struct {
	sim *engine.SimulationService

	// Время последнего действия по паре растение+задача
	lastAction map[actionKey]float64
}

type actionKey struct {
	plant domain.PlantID
	task  domain.CareTask
}

func New(sim *engine.SimulationService) *Agent {
	return &Agent{
		sim:        sim,
		lastAction: make(map[actionKey]float64),
	}
}

// Attach регистрирует агента как тик-хук сервиса.
func (a *Agent) Attach() {
	a.sim.AddTickHook(a.Tick)
}

// Tick - один проход агента. Вызывается движком после обработки растений.
func (a *Agent) Tick(now, dt float64) {
	for _, p := range a.sim.Plants() {
		if !p.Alive() {
			continue
		}
		a.tend(p, now)
	}
}

func (a *Agent) tend(p *domain.PlantEntity, now float64) {
	if a.unlocked(domain.TaskWatering) && p.Vitals.Water < waterFloor {
		a.issue(p.ID, domain.TaskWatering, now, a.waterPayload(p))
	}
	if a.unlocked(domain.TaskFeeding) && p.Vitals.Nutrient < nutrientFloor {
		a.issue(p.ID, domain.TaskFeeding, now, a.feedPayload(p))
	}
	if a.unlocked(domain.TaskPestControl) && hasBioticStressor(p) {
		a.issue(p.ID, domain.TaskPestControl, now, []byte(`{}`))
	}
	if a.unlocked(domain.TaskMonitoring) && a.due(p.ID, domain.TaskMonitoring, now, monitorPeriod) {
		a.issue(p.ID, domain.TaskMonitoring, now, nil)
	}
}

// unlocked - разблокирована ли автоматизация задачи.
func (a *Agent) unlocked(task domain.CareTask) bool {
	return a.sim.Progression().Burden().Progress(task).Unlocked
}

func hasBioticStressor(p *domain.PlantEntity) bool {
	for _, s := range p.ActiveStressors() {
		if s.Category == domain.StressBiotic {
			return true
		}
	}
	return false
}

// due - прошло ли не меньше period с прошлого действия пары.
func (a *Agent) due(id domain.PlantID, task domain.CareTask, now, period float64) bool {
	last, ok := a.lastAction[actionKey{id, task}]
	return !ok || now-last >= period
}

// issue кладет команду в очередь движка, соблюдая cooldown пары.
func (a *Agent) issue(id domain.PlantID, task domain.CareTask, now float64, payload []byte) {
	key := actionKey{id, task}
	if last, ok := a.lastAction[key]; ok && now-last < actionCooldown {
		return
	}
	a.lastAction[key] = now

	a.sim.EnqueueAutomated(task, id, payload)
	logger.Log.WithFields(logrus.Fields{
		"component": "automation_agent",
		"plant_id":  id,
		"task":      task.String(),
	}).Debug("Automated care issued.")
}

// waterPayload доливает ровно до полного бака.
func (a *Agent) waterPayload(p *domain.PlantEntity) []byte {
	amount := 1.0 - p.Vitals.Water
	if amount <= 0 {
		amount = 0.1
	}
	raw, _ := json.Marshal(api.WaterPayload{Amount: amount})
	return raw
}

func (a *Agent) feedPayload(p *domain.PlantEntity) []byte {
	amount := 1.0 - p.Vitals.Nutrient
	if amount <= 0 {
		amount = 0.1
	}
	raw, _ := json.Marshal(api.FeedPayload{Amount: amount})
	return raw
}
