package engine

import (
	"math"

	"verdant-server/internal/domain"
)

// EnvironmentProvider отдает условия зоны на данный момент сим-времени.
// Реализации должны быть детерминированы по (zone, now).
type EnvironmentProvider interface {
	Conditions(zone domain.ZoneID, now float64) domain.EnvironmentalConditions
}

// DiurnalEnvironment - провайдер по умолчанию: базовые условия зоны
// с суточным циклом света и мягким качанием температуры.
type DiurnalEnvironment struct {
	Base domain.EnvironmentalConditions
}

// NewDiurnalEnvironment создает провайдер с разумной базой гроубокса.
func NewDiurnalEnvironment() *DiurnalEnvironment {
	return &DiurnalEnvironment{
		Base: domain.EnvironmentalConditions{
			Temperature:    24,
			Humidity:       55,
			LightIntensity: 700,
			Photoperiod:    18,
			CO2:            900,
			PH:             6.2,
			EC:             1.6,
			Moisture:       0.5,
		},
	}
}

// Conditions возвращает условия с наложенным суточным циклом.
// Световой день занимает Photoperiod/24 цикла; ночью лампы гаснут,
// температура проседает на пару градусов.
func (d *DiurnalEnvironment) Conditions(_ domain.ZoneID, now float64) domain.EnvironmentalConditions {
	c := d.Base

	phase := math.Mod(now, domain.CircadianPeriod) / domain.CircadianPeriod
	dayFraction := c.Photoperiod / 24.0

	if phase > dayFraction {
		// Ночь
		c.LightIntensity = 0
		c.Temperature -= 2.5
		c.Humidity += 5
	}
	return c
}
