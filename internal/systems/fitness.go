package systems

import (
	"verdant-server/internal/domain"
	"verdant-server/pkg/utils"
)

// Веса факторов в итоговой оценке. Сумма обязана быть 1.0 (проверяется тестом).
const (
	fitnessWeightTemperature = 0.30
	fitnessWeightHumidity    = 0.25
	fitnessWeightLight       = 0.30
	fitnessWeightCO2         = 0.15
)

// FactorFitness - оценка одного фактора среды против оптимального диапазона.
// Внутри диапазона - 1.0. Снаружи - линейный спад пропорционально расстоянию
// за ближайшую границу, нормированному половиной ширины диапазона.
func FactorFitness(value float64, band domain.Band) float64 {
	if band.Contains(value) {
		return 1.0
	}
	half := band.HalfWidth()
	if half <= 0 {
		// Вырожденный диапазон: любое отклонение фатально
		return 0
	}

	var dist float64
	if value < band.Min {
		dist = band.Min - value
	} else {
		dist = value - band.Max
	}
	return utils.Clamp01(1.0 - dist/half)
}

// EvaluateFitness - чистая функция (условия, сорт) -> оценка соответствия.
// Никаких побочных эффектов: вызывающий сам решает, куда записать результат.
func EvaluateFitness(cond domain.EnvironmentalConditions, strain *domain.Strain) domain.FitnessScore {
	tol := strain.Tolerances

	score := domain.FitnessScore{
		Temperature: FactorFitness(cond.Temperature, tol.Temperature),
		Humidity:    FactorFitness(cond.Humidity, tol.Humidity),
		Light:       FactorFitness(cond.LightIntensity, tol.Light),
		CO2:         FactorFitness(cond.CO2, tol.CO2),
	}

	score.Overall = utils.Clamp01(
		score.Temperature*fitnessWeightTemperature +
			score.Humidity*fitnessWeightHumidity +
			score.Light*fitnessWeightLight +
			score.CO2*fitnessWeightCO2,
	)
	return score
}
