package domain

// StressorCategory определяет взаимодействие стрессора с резистентностью сорта.
type StressorCategory uint8

const (
	// StressAbiotic - физика среды: жара, холод, пересушка, перелив.
	// Резистентность к болезням НЕ снижает такой урон.
	StressAbiotic StressorCategory = iota
	// StressBiotic - вредители, плесень, патогены.
	// Урон снижается пропорционально DiseaseResistance сорта.
	StressBiotic
)

func (c StressorCategory) String() string {
	if c == StressBiotic {
		return "BIOTIC"
	}
	return "ABIOTIC"
}

// Stressor - активный источник стресса, принадлежит ровно одному растению.
type Stressor struct {
	Source    string           `json:"source"` // "HEAT", "PESTS", "OVERWATER"...
	Category  StressorCategory `json:"category"`
	Intensity float64          `json:"intensity"` // 0-1
	StartedAt float64          `json:"startedAt"` // сим-время появления
	Active    bool             `json:"active"`

	// Урон здоровью в секунду при Intensity=1
	DamageRate float64 `json:"damageRate"`
}
