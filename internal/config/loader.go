package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load читает и валидирует YAML-конфигурацию по пути.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader декодирует YAML из r поверх дефолтов и валидирует.
// Удобно в тестах: конфиг собирается из строкового литерала.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет связность значений. Возвращает join всех найденных ошибок.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Port == "" {
		errs = append(errs, errors.New("server.port must not be empty"))
	}
	if cfg.Server.LogLevel != "" && !cfg.Server.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("server.log_level %q is invalid; valid values: debug, info, warn, error", cfg.Server.LogLevel))
	}

	if cfg.Sim.TickIntervalMs < 0 {
		errs = append(errs, errors.New("sim.tick_interval_ms must be positive"))
	}
	if cfg.Sim.TimeScale < 0 {
		errs = append(errs, errors.New("sim.time_scale must be positive"))
	}
	if cfg.Sim.BatchSize < 0 {
		errs = append(errs, errors.New("sim.batch_size must be positive"))
	}

	seen := make(map[string]bool)
	for i, s := range cfg.Strains {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("strains[%d]: id must not be empty", i))
			continue
		}
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("strains[%d]: duplicate id %q", i, s.ID))
		}
		seen[s.ID] = true
		if s.GrowthModifier <= 0 {
			errs = append(errs, fmt.Errorf("strain %q: growth_modifier must be positive", s.ID))
		}
		if s.Tolerances.Temperature.Min >= s.Tolerances.Temperature.Max {
			errs = append(errs, fmt.Errorf("strain %q: temperature band is inverted", s.ID))
		}
	}

	return errors.Join(errs...)
}
