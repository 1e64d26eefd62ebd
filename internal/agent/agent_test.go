package agent

import (
	"os"
	"testing"

	"verdant-server/internal/domain"
	"verdant-server/internal/engine"
	"verdant-server/pkg/logger"
	"verdant-server/pkg/strain"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newSim(t *testing.T) (*engine.SimulationService, *domain.PlantEntity) {
	t.Helper()
	cfg := engine.NewConfig()
	cfg.Seed = 7
	sim := engine.NewService(cfg, strain.NewCatalog(), nil)
	p, err := sim.AddPlant("northern_dream", 1, "")
	if err != nil {
		t.Fatalf("AddPlant: %v", err)
	}
	return sim, p
}

// drain executes every queued command on the caller's goroutine.
func drain(sim *engine.SimulationService) int {
	n := 0
	for {
		select {
		case cmd := <-sim.CommandChan:
			sim.ExecuteCommand(cmd)
			n++
		default:
			return n
		}
	}
}

func TestAgentIgnoresLockedSystems(t *testing.T) {
	sim, p := newSim(t)
	p.Vitals.Water = 0.1

	a := New(sim)
	a.Tick(100, 1)

	if n := drain(sim); n != 0 {
		t.Errorf("agent issued %d commands with nothing unlocked", n)
	}
}

func TestAgentWatersThirstyPlant(t *testing.T) {
	sim, p := newSim(t)
	sim.ForceUnlock(domain.TaskWatering)
	p.Vitals.Water = 0.1

	a := New(sim)
	a.Tick(100, 1)

	if n := drain(sim); n != 1 {
		t.Fatalf("agent issued %d commands, want 1 watering", n)
	}
	if p.Vitals.Water <= 0.1 {
		t.Error("automated watering must raise the water level")
	}
	// Automated work never grows player skill
	if got := sim.Progression().Skill(domain.TaskWatering); got != 0 {
		t.Errorf("player skill = %v, want 0 after automated care", got)
	}
}

func TestAgentRespectsCooldown(t *testing.T) {
	sim, p := newSim(t)
	sim.ForceUnlock(domain.TaskWatering)
	p.Vitals.Water = 0.1

	a := New(sim)
	a.Tick(100, 1)
	drain(sim)

	p.Vitals.Water = 0.1 // thirsty again right away
	a.Tick(110, 1)
	if n := drain(sim); n != 0 {
		t.Errorf("agent re-issued %d commands within cooldown", n)
	}

	a.Tick(100+91, 1)
	if n := drain(sim); n != 1 {
		t.Errorf("agent issued %d commands after cooldown, want 1", n)
	}
}

func TestAgentSkipsSatisfiedPlant(t *testing.T) {
	sim, p := newSim(t)
	sim.ForceUnlock(domain.TaskWatering)
	sim.ForceUnlock(domain.TaskFeeding)
	p.Vitals.Water = 0.9
	p.Vitals.Nutrient = 0.9

	a := New(sim)
	a.Tick(100, 1)
	if n := drain(sim); n != 0 {
		t.Errorf("agent issued %d commands for a satisfied plant", n)
	}
}

func TestAgentTreatsPests(t *testing.T) {
	sim, p := newSim(t)
	sim.ForceUnlock(domain.TaskPestControl)
	p.Vitals.Stress = 0.5
	p.AddStressor(&domain.Stressor{
		Source: "SPIDER_MITES", Category: domain.StressBiotic,
		Intensity: 0.6, StartedAt: 50, Active: true, DamageRate: 0.002,
	})

	a := New(sim)
	a.Tick(100, 1)
	if n := drain(sim); n != 1 {
		t.Fatalf("agent issued %d commands, want 1 pest control", n)
	}
	if p.Vitals.Stress >= 0.5 {
		t.Error("automated treatment must relieve stress")
	}
}

func TestAgentMonitorsPeriodically(t *testing.T) {
	sim, _ := newSim(t)
	sim.ForceUnlock(domain.TaskMonitoring)

	a := New(sim)
	a.Tick(100, 1)
	if n := drain(sim); n != 1 {
		t.Fatalf("first sweep must inspect the plant, got %d commands", n)
	}
	a.Tick(200, 1)
	if n := drain(sim); n != 0 {
		t.Errorf("inspection re-issued %d times before its period", n)
	}
	a.Tick(100+601, 1)
	if n := drain(sim); n != 1 {
		t.Errorf("agent issued %d commands after the period, want 1", n)
	}
}
