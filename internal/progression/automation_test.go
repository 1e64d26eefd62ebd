package progression

import (
	"testing"

	"verdant-server/internal/domain"
)

// pumpBurden drives the watering burden above the unlock threshold.
func pumpBurden(acc *Accumulator, n int) {
	for i := 0; i < n; i++ {
		acc.RecordWork(domain.TaskWatering, wateringSample(float64(i*30)))
	}
}

func TestTryUnlockThresholdGates(t *testing.T) {
	acc := NewAccumulator(DefaultBurdenConfig())
	engine := NewUnlockEngine(DefaultUnlockConfig(), acc)

	// No burden at all
	res := engine.TryUnlock(domain.TaskWatering, 90, 0)
	if res.Success || res.Reason != ReasonBurdenBelowThreshold {
		t.Errorf("no burden: success=%v reason=%s", res.Success, res.Reason)
	}

	// Enough burden, not enough skill (past the cooldown window)
	pumpBurden(acc, 30)
	res = engine.TryUnlock(domain.TaskWatering, 5, 1000)
	if res.Success || res.Reason != ReasonSkillBelowThreshold {
		t.Errorf("low skill: success=%v reason=%s", res.Success, res.Reason)
	}

	// Cooldown from the failed attempt blocks the retry
	res = engine.TryUnlock(domain.TaskWatering, 90, 1001)
	if res.Success || res.Reason != ReasonCooldownActive {
		t.Errorf("cooldown: success=%v reason=%s", res.Success, res.Reason)
	}

	// After the cooldown: success
	res = engine.TryUnlock(domain.TaskWatering, 90, 1100)
	if !res.Success {
		t.Fatalf("expected unlock, reason=%s", res.Reason)
	}
	if len(res.Systems) != 1 || res.Systems[0] != domain.SystemIrrigation {
		t.Errorf("watering should unlock IRRIGATION, got %v", res.Systems)
	}
	if !engine.System(domain.SystemIrrigation).Unlocked {
		t.Error("irrigation system state must be unlocked")
	}
}

func TestUnlockBurdenRetention(t *testing.T) {
	acc := NewAccumulator(DefaultBurdenConfig())
	engine := NewUnlockEngine(DefaultUnlockConfig(), acc)

	pumpBurden(acc, 30)
	before := acc.Progress(domain.TaskWatering).Burden

	res := engine.TryUnlock(domain.TaskWatering, 90, 1000)
	if !res.Success {
		t.Fatalf("unlock failed: %s", res.Reason)
	}

	after := acc.Progress(domain.TaskWatering).Burden
	want := before * 0.3
	if after < want-1e-9 || after > want+1e-9 {
		t.Errorf("post-unlock burden = %v, want 30%% of %v = %v", after, before, want)
	}
}

func TestUnlockIdempotent(t *testing.T) {
	acc := NewAccumulator(DefaultBurdenConfig())
	engine := NewUnlockEngine(DefaultUnlockConfig(), acc)

	pumpBurden(acc, 30)
	first := engine.TryUnlock(domain.TaskWatering, 90, 1000)
	if !first.Success {
		t.Fatalf("first unlock failed: %s", first.Reason)
	}
	burdenAfterFirst := acc.Progress(domain.TaskWatering).Burden

	// Re-unlock: no new systems, no second burden reduction
	second := engine.TryUnlock(domain.TaskWatering, 90, 2000)
	if second.Success {
		t.Error("second unlock must not succeed")
	}
	if second.Reason != ReasonNoNewSystems {
		t.Errorf("reason = %s, want NO_NEW_SYSTEMS", second.Reason)
	}
	if len(second.Systems) != 0 {
		t.Errorf("second unlock returned systems: %v", second.Systems)
	}
	if acc.Progress(domain.TaskWatering).Burden != burdenAfterFirst {
		t.Error("burden reduction must not be double-applied")
	}
}

func TestDiscountedUnlockForSkillNode(t *testing.T) {
	acc := NewAccumulator(DefaultBurdenConfig())
	engine := NewUnlockEngine(DefaultUnlockConfig(), acc)

	// Burden between the discounted and the full threshold: plain unlock
	// refuses, the skill-node discounted path accepts.
	for i := 0; i < 12; i++ {
		acc.RecordWork(domain.TaskWatering, wateringSample(float64(i*30)))
	}
	burden := acc.Progress(domain.TaskWatering).Burden
	threshold := DefaultUnlockConfig().Thresholds[domain.TaskWatering].Burden
	if burden >= threshold {
		t.Skipf("setup produced burden %v above full threshold %v", burden, threshold)
	}

	res := engine.TryUnlock(domain.TaskWatering, 90, 1000)
	if res.Success {
		t.Fatal("plain unlock should fail below threshold")
	}

	res = engine.TryUnlockDiscounted(domain.TaskWatering, 90, 2000)
	if !res.Success {
		t.Errorf("discounted unlock should succeed at burden %v (threshold %v, discount 0.5): %s",
			burden, threshold, res.Reason)
	}
}

func TestUnknownTaskNotAutomatable(t *testing.T) {
	acc := NewAccumulator(DefaultBurdenConfig())
	engine := NewUnlockEngine(DefaultUnlockConfig(), acc)

	res := engine.TryUnlock(domain.TaskHarvesting, 90, 0)
	if res.Success || res.Reason != ReasonTaskNotAutomatable {
		t.Errorf("harvest has no automation mapping: success=%v reason=%s", res.Success, res.Reason)
	}
}
