package systems

import (
	"testing"

	"verdant-server/internal/domain"
)

func TestGrowthAdvancesStage(t *testing.T) {
	strain := testStrain()
	p := healthyPlant()
	p.Growth = &domain.GrowthComponent{Stage: domain.StageSeed}
	p.Fitness.Overall = 1.0

	// Seed base rate is 1/120 per second; with fitness=1 (env mod 1.5),
	// health=1 (mod 1.2), one long tick is enough to leave the seed stage.
	advanced, prev := AdvanceGrowth(p, strain, 120, 1.0)
	if !advanced {
		t.Fatalf("expected stage advance, progress=%v", p.Growth.StageProgress)
	}
	if prev != domain.StageSeed || p.Growth.Stage != domain.StageGermination {
		t.Errorf("transition %s -> %s, want SEED -> GERMINATION", prev, p.Growth.Stage)
	}
	if p.Growth.StageProgress != 0 {
		t.Errorf("intra-stage progress must reset on advance, got %v", p.Growth.StageProgress)
	}
}

func TestGrowthMonotonicOverManyTicks(t *testing.T) {
	strain := testStrain()
	p := healthyPlant()
	p.Growth = &domain.GrowthComponent{Stage: domain.StageSeed}
	p.Fitness.Overall = 0.95

	prevStage := p.Growth.Stage
	prevOverall := p.Growth.Overall

	for i := 0; i < 5000; i++ {
		AdvanceGrowth(p, strain, 10, 1.0)

		if p.Growth.Stage < prevStage {
			t.Fatalf("stage regressed: %s -> %s at tick %d", prevStage, p.Growth.Stage, i)
		}
		if p.Growth.Overall < prevOverall {
			t.Fatalf("overall progress decreased: %v -> %v at tick %d", prevOverall, p.Growth.Overall, i)
		}
		if p.Growth.Overall < 0 || p.Growth.Overall > 1 {
			t.Fatalf("overall progress out of range: %v", p.Growth.Overall)
		}
		prevStage = p.Growth.Stage
		prevOverall = p.Growth.Overall
	}

	// Plenty of sim time: the plant must have reached the final stage
	if p.Growth.Stage != domain.StageHarvest {
		t.Errorf("expected HARVEST after long simulation, got %s", p.Growth.Stage)
	}
}

func TestGrowthFrozenAtFinalStage(t *testing.T) {
	strain := testStrain()
	p := healthyPlant()
	p.Growth = &domain.GrowthComponent{Stage: domain.StageHarvest, Overall: 0.95}

	advanced, _ := AdvanceGrowth(p, strain, 1000, 1.0)
	if advanced {
		t.Error("final stage must not advance")
	}
	if p.Growth.Stage != domain.StageHarvest {
		t.Errorf("stage left HARVEST: %s", p.Growth.Stage)
	}
}

func TestGrowthStoppedForDeadPlant(t *testing.T) {
	strain := testStrain()
	p := healthyPlant()
	p.Growth = &domain.GrowthComponent{Stage: domain.StageVegetative, StageProgress: 0.5}
	p.Vitals.IsDead = true

	advanced, _ := AdvanceGrowth(p, strain, 1000, 1.0)
	if advanced || p.Growth.StageProgress != 0.5 {
		t.Error("dead plant must not grow")
	}
}

func TestGrowthSpeedScalesWithFitness(t *testing.T) {
	strain := testStrain()

	fast := healthyPlant()
	fast.Growth = &domain.GrowthComponent{Stage: domain.StageVegetative}
	fast.Fitness.Overall = 1.0

	slow := healthyPlant()
	slow.Growth = &domain.GrowthComponent{Stage: domain.StageVegetative}
	slow.Fitness.Overall = 0.0

	AdvanceGrowth(fast, strain, 60, 1.0)
	AdvanceGrowth(slow, strain, 60, 1.0)

	if fast.Growth.StageProgress <= slow.Growth.StageProgress {
		t.Errorf("high fitness must grow faster: fast=%v slow=%v",
			fast.Growth.StageProgress, slow.Growth.StageProgress)
	}
}

func TestConsumeResources(t *testing.T) {
	p := healthyPlant()
	p.Growth.Stage = domain.StageFlowering
	waterBefore := p.Vitals.Water

	ConsumeResources(p, 100)
	if p.Vitals.Water >= waterBefore {
		t.Error("flowering plant must consume water")
	}
	// Never below zero
	ConsumeResources(p, 1e9)
	if p.Vitals.Water < 0 || p.Vitals.Nutrient < 0 {
		t.Errorf("resources must clamp at 0: water=%v nutrient=%v", p.Vitals.Water, p.Vitals.Nutrient)
	}
}
