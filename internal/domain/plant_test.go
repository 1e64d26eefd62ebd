package domain

import "testing"

func TestVitalsTakeDamage(t *testing.T) {
	v := &VitalsComponent{Health: 0.5, MaxHealth: 1.0}

	if died := v.TakeDamage(0.2); died {
		t.Error("plant should survive 0.2 damage at 0.5 health")
	}
	if v.Health < 0.299 || v.Health > 0.301 {
		t.Errorf("health after damage = %v, want 0.3", v.Health)
	}

	// Lethal damage: exactly one death transition
	if died := v.TakeDamage(1.0); !died {
		t.Error("lethal damage must report death")
	}
	if v.Health != 0 {
		t.Errorf("health must clamp to 0, got %v", v.Health)
	}
	if !v.IsDead {
		t.Error("IsDead flag must be set")
	}

	// Dead plants take no further transitions
	if died := v.TakeDamage(1.0); died {
		t.Error("second lethal hit must not report death again")
	}
}

func TestVitalsRecoverRespectsDeath(t *testing.T) {
	v := &VitalsComponent{Health: 0, MaxHealth: 1.0, IsDead: true}
	v.Recover(0.5)
	if v.Health != 0 {
		t.Errorf("dead plant must not recover, health = %v", v.Health)
	}

	alive := &VitalsComponent{Health: 0.9, MaxHealth: 1.0}
	alive.Recover(0.5)
	if alive.Health != 1.0 {
		t.Errorf("recover must clamp at MaxHealth, got %v", alive.Health)
	}
}

func TestStressorOwnership(t *testing.T) {
	p := &PlantEntity{Vitals: &VitalsComponent{Health: 1, MaxHealth: 1}}

	p.AddStressor(&Stressor{Source: "HEAT", Intensity: 0.4, Active: true})
	p.AddStressor(&Stressor{Source: "PESTS", Category: StressBiotic, Intensity: 0.2, Active: true})

	// Same source updates intensity instead of duplicating
	p.AddStressor(&Stressor{Source: "HEAT", Intensity: 0.9, Active: true})
	if len(p.Stressors) != 2 {
		t.Fatalf("expected 2 stressors, got %d", len(p.Stressors))
	}
	if p.Stressors[0].Intensity != 0.9 {
		t.Errorf("HEAT intensity should be updated to 0.9, got %v", p.Stressors[0].Intensity)
	}

	if !p.ClearStressor("PESTS") {
		t.Error("expected PESTS stressor to be cleared")
	}
	if p.ClearStressor("FROST") {
		t.Error("clearing unknown stressor must return false")
	}
	if len(p.ActiveStressors()) != 1 {
		t.Errorf("expected 1 active stressor, got %d", len(p.ActiveStressors()))
	}
}

func TestPlantIDPacking(t *testing.T) {
	id := PackPlantID(3, 42)
	if id.Zone() != 3 {
		t.Errorf("zone = %d, want 3", id.Zone())
	}
	if id.Index() != 42 {
		t.Errorf("index = %d, want 42", id.Index())
	}

	// JSON round trip keeps precision via string encoding
	data, err := id.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	var back PlantID
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if back != id {
		t.Errorf("round trip mismatch: %v != %v", back, id)
	}
}

func TestGrowthLevelBands(t *testing.T) {
	cases := []struct {
		v    float64
		want TreeGrowthLevel
	}{
		{0, TreeSeed},
		{0.19, TreeSeed},
		{0.2, TreeSprouting},
		{0.45, TreeBudding},
		{0.6, TreeFlowering},
		{0.79, TreeFlowering},
		{0.8, TreeFullyFlowered},
		{1.0, TreeFullyFlowered},
	}
	for _, c := range cases {
		if got := GrowthLevelForVibrancy(c.v); got != c.want {
			t.Errorf("GrowthLevelForVibrancy(%v) = %s, want %s", c.v, got, c.want)
		}
	}
}
