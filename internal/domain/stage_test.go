package domain

import (
	"math"
	"testing"
)

func TestStageWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for s := StageSeed; s <= StageHarvest; s++ {
		w, ok := StageWeights[s]
		if !ok {
			t.Fatalf("stage %s has no weight", s)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("stage weights must sum to 1.0, got %v", sum)
	}
}

func TestStageNextIsForwardOnly(t *testing.T) {
	for s := StageSeed; s < StageHarvest; s++ {
		if s.Next() != s+1 {
			t.Errorf("Next of %s should be %s, got %s", s, s+1, s.Next())
		}
	}
	// Final stage is absorbing
	if StageHarvest.Next() != StageHarvest {
		t.Errorf("Next of HARVEST must stay HARVEST, got %s", StageHarvest.Next())
	}
}

func TestOverallProgress(t *testing.T) {
	// At seed start: zero
	if got := OverallProgressAt(StageSeed, 0); got != 0 {
		t.Errorf("progress at seed start = %v, want 0", got)
	}

	// Mid-vegetative: 0.05+0.05+0.10 + 0.35*0.5 = 0.375
	got := OverallProgressAt(StageVegetative, 0.5)
	if math.Abs(got-0.375) > 1e-9 {
		t.Errorf("mid-vegetative progress = %v, want 0.375", got)
	}

	// Harvest with full intra-progress: exactly 1
	got = OverallProgressAt(StageHarvest, 1.0)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("full progress = %v, want 1.0", got)
	}

	// Never exceeds [0,1] even with bad inputs
	if got := OverallProgressAt(StageHarvest, 5.0); got > 1 {
		t.Errorf("progress exceeded 1: %v", got)
	}
	if got := OverallProgressAt(StageSeed, -1); got < 0 {
		t.Errorf("progress below 0: %v", got)
	}
}
