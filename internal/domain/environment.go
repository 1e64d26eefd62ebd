package domain

import "math"

// EnvironmentalConditions - неизменяемый снимок условий среды.
// Присваивается растению копией при каждой оценке - никогда не шарится
// между сущностями и не мутируется на месте.
type EnvironmentalConditions struct {
	Temperature    float64 `json:"temperature"`    // °C
	Humidity       float64 `json:"humidity"`       // относительная, 0-100
	LightIntensity float64 `json:"lightIntensity"` // PPFD, мкмоль/м²/с
	Photoperiod    float64 `json:"photoperiod"`    // часов света в сутках
	CO2            float64 `json:"co2"`            // ppm
	PH             float64 `json:"ph"`
	EC             float64 `json:"ec"`       // электропроводность, mS/cm
	Moisture       float64 `json:"moisture"` // влажность субстрата, 0-1
}

// Референсные "идеальные" значения для расчета стабильности.
const (
	refTemperature = 24.0
	refHumidity    = 55.0
	refCO2         = 900.0
	refPH          = 6.2
)

// Stability - производная оценка [0,1] того, насколько условия близки
// к референсным. Грубая метрика для UI и сенсоров, не участвует в фитнесе.
func (c EnvironmentalConditions) Stability() float64 {
	dev := math.Abs(c.Temperature-refTemperature)/10.0 +
		math.Abs(c.Humidity-refHumidity)/50.0 +
		math.Abs(c.CO2-refCO2)/1000.0 +
		math.Abs(c.PH-refPH)/2.0
	score := 1.0 - dev/4.0
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// FitnessScore - результат оценки соответствия среды сорту.
// Overall - взвешенная сумма, остальное - пофакторные оценки для диагностики.
type FitnessScore struct {
	Overall     float64 `json:"overall"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Light       float64 `json:"light"`
	CO2         float64 `json:"co2"`
}
