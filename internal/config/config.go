// Package config - схема и загрузчик YAML-конфигурации сервера.
package config

import (
	"time"

	"verdant-server/internal/domain"
	"verdant-server/internal/engine"
)

// LogLevel управляет подробностью журнала.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid сообщает, известен ли уровень.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config - корневая структура конфигурации.
type Config struct {
	Server  ServerConfig   `yaml:"server"`
	Sim     SimConfig      `yaml:"sim"`
	Strains []StrainConfig `yaml:"strains"`
}

// ServerConfig - сетевые настройки.
type ServerConfig struct {
	Port     string   `yaml:"port"`
	LogLevel LogLevel `yaml:"log_level"`
}

// SimConfig - параметры цикла симуляции.
type SimConfig struct {
	// Интервал тика реального времени, миллисекунды
	TickIntervalMs int `yaml:"tick_interval_ms"`

	// Сим-секунд на одну реальную секунду
	TimeScale float64 `yaml:"time_scale"`

	// Растений на тик (round-robin планировщик)
	BatchSize int `yaml:"batch_size"`

	// Емкость очереди команд
	CommandBuffer int `yaml:"command_buffer"`

	// Размер фермы (нормирует бремя ухода)
	FacilitySize float64 `yaml:"facility_size"`

	// Сид ГСЧ фенотипов. 0 - случайный.
	Seed int64 `yaml:"seed"`
}

// StrainConfig - определение сорта в YAML-каталоге.
// Дополняет и переопределяет встроенные сорта по ID.
type StrainConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	Tolerances domain.Tolerances `yaml:"tolerances"`

	GrowthModifier float64 `yaml:"growth_modifier"`
	FloweringDays  float64 `yaml:"flowering_days"`

	BaseYieldGrams float64 `yaml:"base_yield_grams"`
	BaseQuality    float64 `yaml:"base_quality"`
	BasePotency    float64 `yaml:"base_potency"`

	DiseaseResistance float64 `yaml:"disease_resistance"`

	TerpeneProfile map[string]float64 `yaml:"terpene_profile"`
}

// Strain конвертирует YAML-определение в доменный шаблон.
func (s StrainConfig) Strain() domain.Strain {
	return domain.Strain{
		ID:                s.ID,
		Name:              s.Name,
		Tolerances:        s.Tolerances,
		GrowthModifier:    s.GrowthModifier,
		FloweringDays:     s.FloweringDays,
		BaseYieldGrams:    s.BaseYieldGrams,
		BaseQuality:       s.BaseQuality,
		BasePotency:       s.BasePotency,
		DiseaseResistance: s.DiseaseResistance,
		TerpeneProfile:    s.TerpeneProfile,
	}
}

// Default - конфигурация по умолчанию (без файла).
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080", LogLevel: LogInfo},
		Sim: SimConfig{
			TickIntervalMs: 250,
			TimeScale:      60,
			BatchSize:      64,
			CommandBuffer:  100,
			FacilitySize:   5,
		},
	}
}

// EngineConfig строит конфиг движка поверх его дефолтов.
func (c *Config) EngineConfig() engine.Config {
	cfg := engine.NewConfig()
	if c.Sim.TickIntervalMs > 0 {
		cfg.TickInterval = time.Duration(c.Sim.TickIntervalMs) * time.Millisecond
	}
	if c.Sim.TimeScale > 0 {
		cfg.TimeScale = c.Sim.TimeScale
	}
	if c.Sim.BatchSize > 0 {
		cfg.BatchSize = c.Sim.BatchSize
	}
	if c.Sim.CommandBuffer > 0 {
		cfg.CommandBuffer = c.Sim.CommandBuffer
	}
	if c.Sim.FacilitySize > 0 {
		cfg.FacilitySize = c.Sim.FacilitySize
	}
	if c.Sim.Seed != 0 {
		cfg.Seed = c.Sim.Seed
	}
	return cfg
}
