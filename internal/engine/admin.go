package engine

import (
	"fmt"

	"verdant-server/internal/domain"
)

// Реализация handlers.AdminOps: расширенные права консоли.
// Все методы вызываются только на тик-горутине.

// ForceStage переводит растение на указанную стадию. Только вперед:
// машина стадий необратима даже для админа.
func (s *SimulationService) ForceStage(id domain.PlantID, stage domain.GrowthStage) error {
	p := s.GetPlant(id)
	if p == nil || p.Growth == nil {
		return fmt.Errorf("растение %s не найдено", id)
	}
	if stage <= p.Growth.Stage {
		return fmt.Errorf("стадии двигаются только вперед (%s -> %s)", p.Growth.Stage, stage)
	}

	prev := p.Growth.Stage
	p.Growth.Stage = stage
	p.Growth.StageProgress = 0
	if overall := domain.OverallProgressAt(stage, 0); overall > p.Growth.Overall {
		p.Growth.Overall = overall
	}
	if stage == domain.StageFlowering && p.Growth.FloweringStartedAt == 0 {
		p.Growth.FloweringStartedAt = s.simTime
	}

	s.bus.Publish(domain.StageChangedEvent{
		PlantID: id, Prev: prev, New: stage, Timestamp: s.simTime,
	})
	return nil
}

// SetZoneEnvironment фиксирует условия зоны, затирая провайдер.
func (s *SimulationService) SetZoneEnvironment(zone domain.ZoneID, c domain.EnvironmentalConditions) {
	s.envOverride[zone] = c
}

// GrantSkill добавляет навык задаче.
func (s *SimulationService) GrantSkill(task domain.CareTask, amount float64) {
	s.progress.GrantSkill(task, amount)
}

// ForceUnlock принудительно разблокирует автоматизацию задачи.
func (s *SimulationService) ForceUnlock(task domain.CareTask) bool {
	if !s.progress.Engine().ForceUnlock(task, s.simTime) {
		return false
	}
	s.bus.Publish(domain.AutomationUnlockedEvent{
		Task:      task,
		Systems:   domain.SystemsForTask[task],
		Timestamp: s.simTime,
	})
	return true
}

// SpawnPlant сажает растение (консольный алиас AddPlant).
func (s *SimulationService) SpawnPlant(strainID string, zone domain.ZoneID, name string) (*domain.PlantEntity, error) {
	return s.AddPlant(strainID, zone, name)
}

// KillPlant мгновенно убивает растение.
func (s *SimulationService) KillPlant(id domain.PlantID) bool {
	p := s.GetPlant(id)
	if p == nil || p.Vitals == nil {
		return false
	}
	if p.Vitals.TakeDamage(p.Vitals.Health + 1) {
		s.handleDeath(p, "ADMIN")
	}
	return true
}
