package strain

import (
	"fmt"
	"math/rand"

	"verdant-server/internal/domain"
	"verdant-server/pkg/utils"
)

// Разброс фенотипа вокруг эталона сорта
const (
	jitterYield     = 0.15
	jitterQuality   = 0.10
	jitterPotency   = 0.10
	jitterFlowering = 3.0 // дней
	jitterHeight    = 0.20
)

// NewPlant экспрессирует сорт в конкретное растение.
// Фенотип сэмплируется один раз и больше никогда не меняется.
func NewPlant(def *domain.Strain, id domain.PlantID, name string, plantedAt float64, rng *rand.Rand) *domain.PlantEntity {
	if name == "" {
		name = fmt.Sprintf("%s #%d", def.Name, id.Index())
	}

	return &domain.PlantEntity{
		ID:        id,
		StrainID:  def.ID,
		Name:      name,
		PlantedAt: plantedAt,

		Growth: &domain.GrowthComponent{
			Stage: domain.StageSeed,
		},
		Vitals: &domain.VitalsComponent{
			Health:    1.0,
			MaxHealth: 1.0,
			Water:     0.6,
			Nutrient:  0.6,
		},
		Traits: &domain.TraitsComponent{
			YieldMultiplier:   utils.Jitter(rng, 1.0, jitterYield),
			QualityMultiplier: utils.Jitter(rng, 1.0, jitterQuality),
			PotencyMultiplier: utils.Jitter(rng, 1.0, jitterPotency),
			FloweringDays:     utils.Jitter(rng, def.FloweringDays, jitterFlowering),
			HeightMultiplier:  utils.Jitter(rng, 1.0, jitterHeight),
		},

		YieldPotential:   0.5,
		QualityPotential: def.BaseQuality,
	}
}
