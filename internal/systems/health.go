package systems

import (
	"verdant-server/internal/domain"
	"verdant-server/pkg/logger"
	"verdant-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// StressLevel - суммарный стресс растения: clamp01 суммы
// интенсивность * категорийный множитель по активным стрессорам.
func StressLevel(p *domain.PlantEntity) float64 {
	total := 0.0
	for _, s := range p.ActiveStressors() {
		weight := domain.AbioticStressWeight
		if s.Category == domain.StressBiotic {
			weight = domain.BioticStressWeight
		}
		total += s.Intensity * weight
	}
	return utils.Clamp01(total)
}

// UpdateHealth продвигает здоровье растения на dt секунд.
// Δ = средовой член + естественная регенерация - урон от стрессоров.
// Возвращает (died, cause): died=true ровно один раз за жизнь растения.
func UpdateHealth(p *domain.PlantEntity, strain *domain.Strain, dt float64) (died bool, cause string) {
	v := p.Vitals
	if v == nil || v.IsDead {
		return false, ""
	}

	v.Stress = StressLevel(p)

	// 1. Средовой член: награда за отличный фитнес, штраф за плохой.
	// Между порогами - мертвая зона, чтобы здоровье не дребезжало на границе.
	envDelta := 0.0
	fitness := p.Fitness.Overall
	if fitness > domain.FitnessRewardThreshold {
		envDelta = domain.EnvHealthRate * (fitness - domain.FitnessRewardThreshold) / (1 - domain.FitnessRewardThreshold)
	} else if fitness < domain.FitnessPenaltyThreshold {
		envDelta = -domain.EnvPenaltyRate * (domain.FitnessPenaltyThreshold - fitness) / domain.FitnessPenaltyThreshold
	}

	// 2. Естественная регенерация: только при умеренном стрессе
	recovery := 0.0
	if v.Stress <= domain.RecoveryStressCeiling {
		recovery = domain.NaturalRecoverRate * (1 - v.Stress)
	}

	// 3. Урон от стрессоров. Биотические снижаются резистентностью сорта.
	damage := 0.0
	var worst *domain.Stressor
	for _, s := range p.ActiveStressors() {
		d := s.Intensity * s.DamageRate
		if s.Category == domain.StressBiotic {
			d *= 1 - utils.Clamp01(strain.DiseaseResistance)
		}
		damage += d
		if worst == nil || s.Intensity > worst.Intensity {
			worst = s
		}
	}

	delta := (envDelta + recovery - damage) * dt

	if delta >= 0 {
		v.Recover(delta)
		return false, ""
	}

	died = v.TakeDamage(-delta)
	if died {
		if worst != nil {
			cause = worst.Source
		}
		logger.Log.WithFields(logrus.Fields{
			"component": "health_system",
			"plant_id":  p.ID,
			"cause":     cause,
			"stress":    v.Stress,
		}).Info("Plant died.")
	}
	return died, cause
}

// Источники ресурсных стрессоров
const (
	StressorDrought      = "DROUGHT"
	StressorMalnutrition = "MALNUTRITION"

	droughtThreshold   = 0.15
	nutrientThreshold  = 0.10
	resourceDamageRate = 0.003
)

// UpdateResourceStressors вешает/снимает стрессоры дефицита воды и питания.
// Вызывается после расхода ресурсов, до UpdateHealth.
func UpdateResourceStressors(p *domain.PlantEntity, now float64) {
	v := p.Vitals
	if v == nil {
		return
	}

	if v.Water < droughtThreshold {
		p.AddStressor(&domain.Stressor{
			Source:     StressorDrought,
			Category:   domain.StressAbiotic,
			Intensity:  utils.Clamp01((droughtThreshold - v.Water) / droughtThreshold),
			StartedAt:  now,
			Active:     true,
			DamageRate: resourceDamageRate,
		})
	} else {
		p.ClearStressor(StressorDrought)
	}

	if v.Nutrient < nutrientThreshold {
		p.AddStressor(&domain.Stressor{
			Source:     StressorMalnutrition,
			Category:   domain.StressAbiotic,
			Intensity:  utils.Clamp01((nutrientThreshold - v.Nutrient) / nutrientThreshold),
			StartedAt:  now,
			Active:     true,
			DamageRate: resourceDamageRate * 0.5,
		})
	} else {
		p.ClearStressor(StressorMalnutrition)
	}
}
