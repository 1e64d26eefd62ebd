// Package strain содержит каталог сортов и фабрику растений.
// Сорт - read-only шаблон; растение - его экспрессия с джиттером фенотипа.
package strain

import "verdant-server/internal/domain"

// builtins - встроенные сорта. YAML-каталог (internal/config) может
// дополнять и переопределять их по ID.
var builtins = []domain.Strain{
	{
		ID:   "northern_dream",
		Name: "Northern Dream",
		Tolerances: domain.Tolerances{
			Temperature: domain.Band{Min: 22, Max: 26},
			Humidity:    domain.Band{Min: 45, Max: 65},
			Light:       domain.Band{Min: 500, Max: 900},
			CO2:         domain.Band{Min: 700, Max: 1200},
		},
		GrowthModifier:    1.0,
		FloweringDays:     56,
		BaseYieldGrams:    450,
		BaseQuality:       0.7,
		BasePotency:       0.65,
		DiseaseResistance: 0.5,
		TerpeneProfile:    map[string]float64{"myrcene": 0.45, "pinene": 0.25, "limonene": 0.15},
	},
	{
		ID:   "citrus_haze",
		Name: "Citrus Haze",
		Tolerances: domain.Tolerances{
			Temperature: domain.Band{Min: 23, Max: 28},
			Humidity:    domain.Band{Min: 40, Max: 60},
			Light:       domain.Band{Min: 600, Max: 1000},
			CO2:         domain.Band{Min: 800, Max: 1400},
		},
		GrowthModifier:    0.85, // сативные гены тянутся дольше
		FloweringDays:     70,
		BaseYieldGrams:    380,
		BaseQuality:       0.8,
		BasePotency:       0.75,
		DiseaseResistance: 0.35,
		TerpeneProfile:    map[string]float64{"limonene": 0.5, "terpinolene": 0.3, "caryophyllene": 0.1},
	},
	{
		ID:   "granite_kush",
		Name: "Granite Kush",
		Tolerances: domain.Tolerances{
			Temperature: domain.Band{Min: 20, Max: 25},
			Humidity:    domain.Band{Min: 40, Max: 55},
			Light:       domain.Band{Min: 450, Max: 850},
			CO2:         domain.Band{Min: 600, Max: 1100},
		},
		GrowthModifier:    1.15,
		FloweringDays:     49,
		BaseYieldGrams:    520,
		BaseQuality:       0.6,
		BasePotency:       0.7,
		DiseaseResistance: 0.7, // выносливая индика
		TerpeneProfile:    map[string]float64{"myrcene": 0.35, "caryophyllene": 0.35, "humulene": 0.2},
	},
}
