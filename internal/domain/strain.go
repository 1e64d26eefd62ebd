package domain

// Band - оптимальный диапазон [Min, Max] для фактора среды.
type Band struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains сообщает, попадает ли значение внутрь диапазона.
func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// HalfWidth - половина ширины диапазона. Нормирует линейный спад фитнеса.
func (b Band) HalfWidth() float64 {
	return (b.Max - b.Min) / 2
}

// Tolerances - диапазоны толерантности сорта по факторам среды.
type Tolerances struct {
	Temperature Band `json:"temperature" yaml:"temperature"`
	Humidity    Band `json:"humidity" yaml:"humidity"`
	Light       Band `json:"light" yaml:"light"`
	CO2         Band `json:"co2" yaml:"co2"`
}

// Strain - статический шаблон сорта. Read-only: загружается один раз
// при создании растения, дальше никогда не мутируется.
type Strain struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Tolerances Tolerances `json:"tolerances"`

	// Генетика роста
	GrowthModifier float64 `json:"growthModifier"` // множитель скорости (0.8 - медленный сорт, 1.2 - быстрый)
	FloweringDays  float64 `json:"floweringDays"`  // эталонное время цветения

	// Базовые характеристики урожая
	BaseYieldGrams float64 `json:"baseYieldGrams"`
	BaseQuality    float64 `json:"baseQuality"` // 0-1
	BasePotency    float64 `json:"basePotency"` // 0-1

	// Устойчивость к биотическим стрессорам (вредители, плесень), 0-1
	DiseaseResistance float64 `json:"diseaseResistance"`

	// Ароматический профиль сорта (наследуется урожаем)
	TerpeneProfile map[string]float64 `json:"terpeneProfile,omitempty"`
}
