package progression

import (
	"testing"

	"verdant-server/internal/domain"
)

func wateringSample(ts float64) WorkSample {
	return WorkSample{
		Duration:     60,
		SkillRatio:   0.3,
		PlantCount:   20,
		FacilitySize: 5,
		Quality:      0.6,
		Timestamp:    ts,
	}
}

func TestBurdenMonotonicIncreaseOnWork(t *testing.T) {
	acc := NewAccumulator(DefaultBurdenConfig())

	prev := 0.0
	for i := 0; i < 10; i++ {
		burden, _, _ := acc.RecordWork(domain.TaskWatering, wateringSample(float64(i*30)))
		if burden <= prev {
			t.Fatalf("burden must strictly increase on manual work: %v -> %v", prev, burden)
		}
		prev = burden
	}
}

func TestDesireLevelIsStepFunction(t *testing.T) {
	acc := NewAccumulator(DefaultBurdenConfig())
	thresholds := acc.Config().DesireThresholds

	// Desire must be non-decreasing as burden grows
	prevDesire := domain.DesireNone
	for i := 0; i < 200; i++ {
		_, _, desire := acc.RecordWork(domain.TaskWatering, wateringSample(float64(i*10)))
		if desire < prevDesire {
			t.Fatalf("desire regressed without decay: %s -> %s", prevDesire, desire)
		}
		prevDesire = desire
	}
	if prevDesire != domain.DesireCritical {
		t.Errorf("200 actions should reach CRITICAL, got %s", prevDesire)
	}

	// Exact band mapping
	cases := []struct {
		burden float64
		want   domain.DesireLevel
	}{
		{0, domain.DesireNone},
		{thresholds[0], domain.DesireLow},
		{thresholds[1], domain.DesireMedium},
		{thresholds[2], domain.DesireHigh},
		{thresholds[3], domain.DesireCritical},
	}
	for _, c := range cases {
		if got := acc.desireFor(c.burden); got != c.want {
			t.Errorf("desireFor(%v) = %s, want %s", c.burden, got, c.want)
		}
	}
}

func TestTwentyWateringsCrossHighThreshold(t *testing.T) {
	acc := NewAccumulator(DefaultBurdenConfig())

	// 20 manual watering rounds at high frequency (every 30 s)
	var burden float64
	for i := 0; i < 20; i++ {
		burden, _, _ = acc.RecordWork(domain.TaskWatering, wateringSample(float64(i*30)))
	}

	high := acc.Config().DesireThresholds[2]
	if burden < high {
		t.Errorf("20 high-frequency waterings produced burden %v, want >= HIGH threshold %v", burden, high)
	}
	if acc.Progress(domain.TaskWatering).Desire < domain.DesireHigh {
		t.Errorf("desire = %s, want at least HIGH", acc.Progress(domain.TaskWatering).Desire)
	}
}

func TestIdleDecay(t *testing.T) {
	cfg := DefaultBurdenConfig()
	acc := NewAccumulator(cfg)

	for i := 0; i < 20; i++ {
		acc.RecordWork(domain.TaskWatering, wateringSample(float64(i*30)))
	}
	p := acc.Progress(domain.TaskWatering)
	peak := p.Burden

	// Inside the grace period: no decay
	lastWork := 19 * 30.0
	acc.Decay(lastWork+cfg.GracePeriod-1, 10)
	if p.Burden != peak {
		t.Errorf("burden decayed inside grace period: %v -> %v", peak, p.Burden)
	}

	// Past the grace period: linear decay, strictly decreasing
	now := lastWork + cfg.GracePeriod + 1
	prev := p.Burden
	for i := 0; i < 50; i++ {
		acc.Decay(now, 10)
		now += 10
		if p.Burden > prev {
			t.Fatalf("decay must never increase burden: %v -> %v", prev, p.Burden)
		}
		prev = p.Burden
	}
	if p.Burden >= peak {
		t.Error("burden should have decayed below its peak")
	}

	// Decay converges to exactly 0, never below
	for i := 0; i < 100000; i++ {
		acc.Decay(now, 10)
		now += 10
	}
	if p.Burden != 0 {
		t.Errorf("burden must decay to exactly 0, got %v", p.Burden)
	}
}

func TestIdleDecayKeepsAvailability(t *testing.T) {
	cfg := DefaultBurdenConfig()
	acc := NewAccumulator(cfg)
	engine := NewUnlockEngine(DefaultUnlockConfig(), acc)

	for i := 0; i < 30; i++ {
		acc.RecordWork(domain.TaskWatering, wateringSample(float64(i*30)))
	}
	if !engine.UpdateAvailability(domain.TaskWatering, 50) {
		t.Fatal("availability latch should engage with high burden and skill")
	}

	// Burden fully decays away...
	now := 30*30.0 + cfg.GracePeriod
	for i := 0; i < 100000; i++ {
		acc.Decay(now, 10)
		now += 10
	}
	p := acc.Progress(domain.TaskWatering)
	if p.Burden != 0 {
		t.Fatalf("setup: burden should be 0, got %v", p.Burden)
	}

	// ...but availability is a one-way latch and must survive
	if !p.Available {
		t.Error("idle decay must never un-set the availability latch")
	}
}
