package strain

import (
	"math/rand"
	"testing"

	"verdant-server/internal/domain"
)

func TestCatalogBuiltins(t *testing.T) {
	c := NewCatalog()
	if c.Len() == 0 {
		t.Fatal("catalog must ship builtin strains")
	}
	for _, id := range c.IDs() {
		s := c.Get(id)
		if s == nil {
			t.Fatalf("IDs() returned %s but Get misses it", id)
		}
		if s.GrowthModifier <= 0 {
			t.Errorf("strain %s has non-positive growth modifier", id)
		}
		if s.Tolerances.Temperature.Min >= s.Tolerances.Temperature.Max {
			t.Errorf("strain %s has inverted temperature band", id)
		}
	}
}

func TestCatalogAddValidates(t *testing.T) {
	c := NewCatalog()

	if err := c.Add(domain.Strain{}); err == nil {
		t.Error("strain without id must be rejected")
	}
	if err := c.Add(domain.Strain{ID: "x", GrowthModifier: 0}); err == nil {
		t.Error("zero growth modifier must be rejected")
	}

	ok := domain.Strain{
		ID:             "custom",
		Name:           "Custom",
		GrowthModifier: 1.0,
		Tolerances: domain.Tolerances{
			Temperature: domain.Band{Min: 20, Max: 27},
		},
	}
	if err := c.Add(ok); err != nil {
		t.Fatalf("valid strain rejected: %v", err)
	}
	if c.Get("custom") == nil {
		t.Error("added strain not retrievable")
	}
}

func TestNewPlantExpressesTraitsOnce(t *testing.T) {
	c := NewCatalog()
	def := c.Get("northern_dream")
	rng := rand.New(rand.NewSource(7))

	p := NewPlant(def, domain.PackPlantID(1, 42), "", 0, rng)

	if p.Growth.Stage != domain.StageSeed {
		t.Errorf("fresh plant stage = %s, want SEED", p.Growth.Stage)
	}
	if p.Vitals.Health != 1.0 || p.Vitals.IsDead {
		t.Error("fresh plant must be fully healthy")
	}
	if p.Traits == nil {
		t.Fatal("traits must be expressed at creation")
	}
	if p.Traits.YieldMultiplier < 0.85 || p.Traits.YieldMultiplier > 1.15 {
		t.Errorf("yield multiplier %v outside jitter envelope", p.Traits.YieldMultiplier)
	}
	if p.Name == "" {
		t.Error("empty requested name must be autofilled")
	}
}

func TestNewPlantDeterministicForSeed(t *testing.T) {
	c := NewCatalog()
	def := c.Get("citrus_haze")

	a := NewPlant(def, domain.PackPlantID(0, 1), "a", 0, rand.New(rand.NewSource(99)))
	b := NewPlant(def, domain.PackPlantID(0, 1), "b", 0, rand.New(rand.NewSource(99)))

	if a.Traits.YieldMultiplier != b.Traits.YieldMultiplier ||
		a.Traits.FloweringDays != b.Traits.FloweringDays {
		t.Error("same seed must express identical phenotype")
	}
}
