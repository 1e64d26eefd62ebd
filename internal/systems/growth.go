package systems

import (
	"verdant-server/internal/domain"
	"verdant-server/pkg/logger"
	"verdant-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// AdvanceGrowth продвигает рост растения на dt секунд.
// Эффективная скорость = базовая скорость стадии * модификатор среды *
// модификатор здоровья * генетика сорта * фенотип * глобальный множитель.
// Возвращает (advanced, prev): advanced=true, если стадия сменилась.
func AdvanceGrowth(p *domain.PlantEntity, strain *domain.Strain, dt, globalSpeed float64) (advanced bool, prev domain.GrowthStage) {
	g := p.Growth
	if g == nil || !p.Alive() {
		return false, 0
	}

	g.AgeSeconds += dt

	if g.Stage.IsFinal() {
		// Финальная стадия: прогресс заморожен, общий прогресс не двигается
		return false, g.Stage
	}

	envMod := utils.Lerp(domain.EnvModMin, domain.EnvModMax, p.Fitness.Overall)
	healthMod := utils.Lerp(domain.HealthModMin, domain.HealthModMax, p.Vitals.Health)
	phenoMod := 1.0
	if p.Traits != nil {
		phenoMod = p.Traits.StageInfluence(g.Stage)
	}

	rate := domain.StageBaseRates[g.Stage] * envMod * healthMod * strain.GrowthModifier * phenoMod * globalSpeed
	if rate < 0 {
		rate = 0
	}

	g.StageProgress += rate * dt

	prev = g.Stage
	if g.StageProgress >= 1.0 {
		g.Stage = g.Stage.Next()
		g.StageProgress = 0

		if g.Stage == domain.StageFlowering {
			g.FloweringStartedAt = p.PlantedAt + g.AgeSeconds
		}

		advanced = true
		logger.Log.WithFields(logrus.Fields{
			"component": "growth_system",
			"plant_id":  p.ID,
			"from":      prev.String(),
			"to":        g.Stage.String(),
		}).Debug("Stage transition.")
	}

	// Общий прогресс пересчитывается из расписания весов.
	// Монотонность гарантирована: стадия только вперед, внутристадийный
	// прогресс сбрасывается только при переходе.
	overall := domain.OverallProgressAt(g.Stage, g.StageProgress)
	if overall > g.Overall {
		g.Overall = overall
	}

	return advanced, prev
}

// ConsumeResources - растение расходует воду и питание.
// Потребление растет со стадией: цветущий куст пьет заметно больше ростка.
func ConsumeResources(p *domain.PlantEntity, dt float64) {
	v := p.Vitals
	if v == nil || !p.Alive() {
		return
	}

	scale := stageConsumptionScale(p.Growth.Stage)
	v.Water = utils.Clamp01(v.Water - domain.WaterUseRate*scale*dt)
	v.Nutrient = utils.Clamp01(v.Nutrient - domain.NutrientUseRate*scale*dt)
}

func stageConsumptionScale(s domain.GrowthStage) float64 {
	switch s {
	case domain.StageSeed, domain.StageGermination:
		return 0.2
	case domain.StageSeedling:
		return 0.5
	case domain.StageVegetative:
		return 1.0
	case domain.StagePreFlower:
		return 1.2
	case domain.StageFlowering:
		return 1.5
	default:
		return 0.8
	}
}
