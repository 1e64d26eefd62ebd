package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"verdant-server/internal/domain"
)

// meterName - имя инструментационного скоупа всех метрик сервера.
const meterName = "verdant-server"

// Metrics держит все инструменты симуляции.
// Потокобезопасны: синхронизация внутри типов OTel.
// Nil-receiver допустим: все методы записи тогда no-op
// (тесты и урезанные конфигурации не обязаны поднимать провайдер).
type Metrics struct {
	// TickDuration - длительность одного тика симуляции.
	TickDuration metric.Float64Histogram

	// CareActions - действия ухода. Атрибуты: task, quality, automated.
	CareActions metric.Int64Counter

	// LivePlants - живые растения в симуляции.
	LivePlants metric.Int64UpDownCounter

	// PlantDeaths / Harvests - выбытия растений.
	PlantDeaths metric.Int64Counter
	Harvests    metric.Int64Counter

	// AutomationUnlocks / SkillUnlocks - события прогрессии.
	AutomationUnlocks metric.Int64Counter
	SkillUnlocks      metric.Int64Counter
}

// NewMetrics создает инструменты на данном провайдере.
// Тесты передают изолированный провайдер, чтобы не пачкать глобальный.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	met := &Metrics{}
	var err error

	if met.TickDuration, err = m.Float64Histogram("verdant.tick.duration",
		metric.WithDescription("Simulation tick latency."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	if met.CareActions, err = m.Int64Counter("verdant.care.actions",
		metric.WithDescription("Care actions by task, quality and origin."),
	); err != nil {
		return nil, err
	}
	if met.LivePlants, err = m.Int64UpDownCounter("verdant.plants.live",
		metric.WithDescription("Number of live plants in the simulation."),
	); err != nil {
		return nil, err
	}
	if met.PlantDeaths, err = m.Int64Counter("verdant.plants.deaths",
		metric.WithDescription("Total plant deaths."),
	); err != nil {
		return nil, err
	}
	if met.Harvests, err = m.Int64Counter("verdant.plants.harvests",
		metric.WithDescription("Total harvests."),
	); err != nil {
		return nil, err
	}
	if met.AutomationUnlocks, err = m.Int64Counter("verdant.automation.unlocks",
		metric.WithDescription("Automation systems unlocked by task."),
	); err != nil {
		return nil, err
	}
	if met.SkillUnlocks, err = m.Int64Counter("verdant.skilltree.unlocks",
		metric.WithDescription("Skill tree nodes unlocked."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// Default создает метрики на глобальном провайдере.
func Default() (*Metrics, error) {
	return NewMetrics(otel.GetMeterProvider())
}

// RecordTick фиксирует длительность тика.
func (m *Metrics) RecordTick(d time.Duration) {
	if m == nil {
		return
	}
	m.TickDuration.Record(context.Background(), d.Seconds())
}

// PlantAdded / PlantRemoved двигают gauge живых растений.
func (m *Metrics) PlantAdded() {
	if m == nil {
		return
	}
	m.LivePlants.Add(context.Background(), 1)
}

func (m *Metrics) PlantRemoved() {
	if m == nil {
		return
	}
	m.LivePlants.Add(context.Background(), -1)
}

// ObserveEvent - подписчик шины: конвертирует события ядра в счетчики.
func (m *Metrics) ObserveEvent(e domain.Event) {
	if m == nil {
		return
	}
	ctx := context.Background()

	switch ev := e.(type) {
	case domain.CarePerformedEvent:
		m.CareActions.Add(ctx, 1, metric.WithAttributes(
			attribute.String("task", ev.Task.String()),
			attribute.String("quality", ev.Quality.String()),
			attribute.Bool("automated", ev.Automated),
		))
	case domain.PlantDiedEvent:
		m.PlantDeaths.Add(ctx, 1, metric.WithAttributes(
			attribute.String("cause", ev.Cause),
		))
	case domain.AutomationUnlockedEvent:
		m.AutomationUnlocks.Add(ctx, 1, metric.WithAttributes(
			attribute.String("task", ev.Task.String()),
		))
	case domain.SkillNodeUnlockedEvent:
		m.SkillUnlocks.Add(ctx, 1, metric.WithAttributes(
			attribute.String("branch", ev.Branch),
		))
	}
}

// RecordHarvest фиксирует сбор урожая.
func (m *Metrics) RecordHarvest(strainID string) {
	if m == nil {
		return
	}
	m.Harvests.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("strain", strainID),
	))
}
