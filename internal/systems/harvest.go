package systems

import (
	"verdant-server/internal/domain"
	"verdant-server/pkg/logger"
	"verdant-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// ResolveHarvest - синхронная операция сбора урожая.
// Возвращает (result, reason): при reason != "" сбор не состоялся и
// растение не тронуто. Успешный сбор помечает растение Harvested.
func ResolveHarvest(p *domain.PlantEntity, strain *domain.Strain, now float64) (domain.HarvestResult, string) {
	if p.Vitals == nil || p.Vitals.IsDead {
		return domain.HarvestResult{}, domain.ReasonPlantDead
	}
	if p.Harvested {
		return domain.HarvestResult{}, domain.ReasonPlantHarvested
	}
	if p.Growth == nil || p.Growth.Stage != domain.StageHarvest {
		return domain.HarvestResult{}, domain.ReasonWrongStage
	}

	health := p.Vitals.Health

	// Оценка качества: фиксированные веса здоровья и накопленного потенциала
	qualityScore := utils.Clamp01(
		domain.HarvestHealthWeight*health + domain.HarvestPotentialWeight*p.QualityPotential,
	)

	// Урожай: базовая масса сорта * фенотип * накопленный потенциал * здоровье
	yieldMult := 1.0
	potencyMult := 1.0
	if p.Traits != nil {
		yieldMult = p.Traits.YieldMultiplier
		potencyMult = p.Traits.PotencyMultiplier
	}
	yield := strain.BaseYieldGrams * yieldMult * (0.5 + 0.5*p.YieldPotential) * (0.4 + 0.6*health)

	// Химический профиль: потентность сорта * фенотип, масштаб качеством
	cannabinoids := map[string]float64{
		"THC": utils.Clamp01(strain.BasePotency*potencyMult) * qualityScore,
		"CBD": utils.Clamp01(strain.BasePotency*0.3) * qualityScore,
	}
	terpenes := make(map[string]float64, len(strain.TerpeneProfile))
	for name, base := range strain.TerpeneProfile {
		terpenes[name] = base * qualityScore
	}

	floweringDays := 0.0
	if p.Growth.FloweringStartedAt > 0 {
		floweringDays = (now - p.Growth.FloweringStartedAt) / 86400.0
		if floweringDays < 0 {
			floweringDays = 0
		}
	}

	result := domain.HarvestResult{
		PlantID:         p.ID,
		StrainID:        p.StrainID,
		TotalYieldGrams: yield,
		QualityScore:    qualityScore,
		Cannabinoids:    cannabinoids,
		Terpenes:        terpenes,
		FloweringDays:   floweringDays,
		FinalHealth:     health,
		Timestamp:       now,
	}

	p.Harvested = true

	logger.Log.WithFields(logrus.Fields{
		"component":     "harvest_system",
		"plant_id":      p.ID,
		"yield_grams":   yield,
		"quality_score": qualityScore,
	}).Info("Harvest resolved.")

	return result, ""
}
