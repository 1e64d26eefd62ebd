package systems

import (
	"math"
	"testing"

	"verdant-server/internal/domain"
)

func TestHarvestQualityScoreArithmetic(t *testing.T) {
	strain := testStrain()
	p := healthyPlant()
	p.Growth.Stage = domain.StageHarvest
	p.Growth.FloweringStartedAt = 86400
	p.Vitals.Health = 0.9
	p.QualityPotential = 0.8

	res, reason := ResolveHarvest(p, strain, 86400*11)
	if reason != "" {
		t.Fatalf("harvest refused: %s", reason)
	}

	// QualityScore = 0.4*0.9 + 0.6*0.8 = 0.84, exact arithmetic
	if math.Abs(res.QualityScore-0.84) > 1e-9 {
		t.Errorf("quality score = %v, want 0.84", res.QualityScore)
	}
	if res.FinalHealth != 0.9 {
		t.Errorf("final health = %v, want 0.9", res.FinalHealth)
	}
	if math.Abs(res.FloweringDays-10) > 1e-9 {
		t.Errorf("flowering days = %v, want 10", res.FloweringDays)
	}
	if !p.Harvested {
		t.Error("plant must be marked harvested")
	}
}

func TestHarvestPreconditions(t *testing.T) {
	strain := testStrain()

	// Not at harvest stage
	p := healthyPlant()
	p.Growth.Stage = domain.StageFlowering
	if _, reason := ResolveHarvest(p, strain, 0); reason != domain.ReasonWrongStage {
		t.Errorf("reason = %s, want WRONG_STAGE", reason)
	}

	// Dead
	dead := healthyPlant()
	dead.Growth.Stage = domain.StageHarvest
	dead.Vitals.IsDead = true
	if _, reason := ResolveHarvest(dead, strain, 0); reason != domain.ReasonPlantDead {
		t.Errorf("reason = %s, want PLANT_DEAD", reason)
	}

	// Double harvest
	ok := healthyPlant()
	ok.Growth.Stage = domain.StageHarvest
	if _, reason := ResolveHarvest(ok, strain, 0); reason != "" {
		t.Fatalf("first harvest refused: %s", reason)
	}
	if _, reason := ResolveHarvest(ok, strain, 0); reason != domain.ReasonPlantHarvested {
		t.Errorf("second harvest reason = %s, want PLANT_HARVESTED", reason)
	}
}

func TestHarvestYieldScalesWithPotential(t *testing.T) {
	strain := testStrain()

	tended := healthyPlant()
	tended.Growth.Stage = domain.StageHarvest
	tended.YieldPotential = 1.0

	neglected := healthyPlant()
	neglected.Growth.Stage = domain.StageHarvest
	neglected.YieldPotential = 0.0

	rTended, _ := ResolveHarvest(tended, strain, 0)
	rNeglected, _ := ResolveHarvest(neglected, strain, 0)

	if rTended.TotalYieldGrams <= rNeglected.TotalYieldGrams {
		t.Errorf("tended yield (%v) must exceed neglected (%v)",
			rTended.TotalYieldGrams, rNeglected.TotalYieldGrams)
	}
}
