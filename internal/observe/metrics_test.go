package observe

import (
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"verdant-server/internal/domain"
)

func TestNewMetricsCreatesAllInstruments(t *testing.T) {
	mp := sdkmetric.NewMeterProvider()
	m, err := NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	if m.TickDuration == nil || m.CareActions == nil || m.LivePlants == nil ||
		m.PlantDeaths == nil || m.Harvests == nil ||
		m.AutomationUnlocks == nil || m.SkillUnlocks == nil {
		t.Error("all instruments must be initialised")
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	// Все методы записи должны быть no-op на nil
	m.RecordTick(0)
	m.PlantAdded()
	m.PlantRemoved()
	m.RecordHarvest("x")
	m.ObserveEvent(domain.PlantDiedEvent{})
}

func TestObserveEventRoutesKinds(t *testing.T) {
	mp := sdkmetric.NewMeterProvider()
	m, err := NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	// Не должно паниковать ни на одном виде события
	m.ObserveEvent(domain.CarePerformedEvent{Task: domain.TaskWatering, Quality: domain.QualityPerfect})
	m.ObserveEvent(domain.PlantDiedEvent{Cause: "FROST"})
	m.ObserveEvent(domain.AutomationUnlockedEvent{Task: domain.TaskWatering})
	m.ObserveEvent(domain.SkillNodeUnlockedEvent{Branch: "cultivation"})
	m.ObserveEvent(domain.StageChangedEvent{})
}
