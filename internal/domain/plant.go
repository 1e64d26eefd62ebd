package domain

// --- КОМПОНЕНТЫ ---

// GrowthComponent - состояние роста
type GrowthComponent struct {
	Stage         GrowthStage `json:"stage"`
	StageProgress float64     `json:"stageProgress"`   // 0-1 внутри текущей стадии
	Overall       float64     `json:"overallProgress"` // 0-1, строго неубывающий при жизни
	AgeSeconds    float64     `json:"ageSeconds"`

	// Сим-время входа в стадию цветения (для подсчета дней цветения в урожае)
	FloweringStartedAt float64 `json:"floweringStartedAt,omitempty"`
}

// VitalsComponent - жизненные показатели. Все значения в [0,1].
type VitalsComponent struct {
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"maxHealth"`
	Stress    float64 `json:"stress"`
	Water     float64 `json:"water"`
	Nutrient  float64 `json:"nutrient"`
	IsDead    bool    `json:"isDead"`
}

// TraitsComponent - экспрессированный фенотип.
// Сэмплируется один раз при создании с джиттером от эталона сорта.
type TraitsComponent struct {
	YieldMultiplier   float64 `json:"yieldMultiplier"`
	QualityMultiplier float64 `json:"qualityMultiplier"`
	PotencyMultiplier float64 `json:"potencyMultiplier"`
	FloweringDays     float64 `json:"floweringDays"`
	HeightMultiplier  float64 `json:"heightMultiplier"`
}

// StageInfluence возвращает вклад фенотипа в скорость конкретной стадии.
// Вегетативный рост тянут "ростовые" гены (высота), цветение - качество/урожайность.
func (tr *TraitsComponent) StageInfluence(stage GrowthStage) float64 {
	switch stage {
	case StageVegetative:
		return tr.HeightMultiplier
	case StagePreFlower, StageFlowering:
		return (tr.YieldMultiplier + tr.QualityMultiplier) / 2
	default:
		return 1.0
	}
}

// --- СУЩНОСТЬ ---

// PlantEntity - один симулируемый организм.
// Мутируется ТОЛЬКО на тик-горутине (см. SimulationService).
type PlantEntity struct {
	// Идентификация
	ID        PlantID `json:"id"`
	StrainID  string  `json:"strainId"`
	Name      string  `json:"name"`
	PlantedAt float64 `json:"plantedAt"` // сим-время посадки

	// Компоненты (Если nil - значит свойство отсутствует)
	Growth *GrowthComponent `json:"growth,omitempty"`
	Vitals *VitalsComponent `json:"vitals,omitempty"`
	Traits *TraitsComponent `json:"traits,omitempty"`

	// Активные стрессоры. Принадлежат исключительно этому растению.
	Stressors []*Stressor `json:"stressors,omitempty"`

	// Последний снимок среды и его оценка
	Environment *EnvironmentalConditions `json:"environment,omitempty"`
	Fitness     FitnessScore             `json:"fitness"`

	// Накопленный потенциал (двигается уходом, реализуется при сборе)
	YieldPotential   float64 `json:"yieldPotential"`   // 0-1
	QualityPotential float64 `json:"qualityPotential"` // 0-1

	// Собрано: растение вышло из симуляции через урожай, а не смерть
	Harvested bool `json:"harvested,omitempty"`
}

// Alive сообщает, участвует ли растение в симуляции.
func (p *PlantEntity) Alive() bool {
	return p.Vitals != nil && !p.Vitals.IsDead && !p.Harvested
}

// AddStressor вешает стрессор на растение. Источник уникален:
// повторный стрессор того же источника лишь обновляет интенсивность.
func (p *PlantEntity) AddStressor(s *Stressor) {
	for _, existing := range p.Stressors {
		if existing.Source == s.Source {
			existing.Intensity = s.Intensity
			existing.Active = true
			return
		}
	}
	p.Stressors = append(p.Stressors, s)
}

// ClearStressor снимает стрессор по источнику. Возвращает true, если нашелся.
func (p *PlantEntity) ClearStressor(source string) bool {
	for i, s := range p.Stressors {
		if s.Source == source {
			p.Stressors = append(p.Stressors[:i], p.Stressors[i+1:]...)
			return true
		}
	}
	return false
}

// ActiveStressors возвращает только активные стрессоры.
func (p *PlantEntity) ActiveStressors() []*Stressor {
	out := make([]*Stressor, 0, len(p.Stressors))
	for _, s := range p.Stressors {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}
