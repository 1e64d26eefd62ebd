package domain

// HarvestResult - синхронный результат сбора урожая.
// Возвращается напрямую из операции, НЕ через шину событий.
type HarvestResult struct {
	PlantID  PlantID `json:"plantId"`
	StrainID string  `json:"strainId"`

	TotalYieldGrams float64 `json:"totalYieldGrams"`
	QualityScore    float64 `json:"qualityScore"` // 0.4*health + 0.6*qualityPotential

	// Химический профиль
	Cannabinoids map[string]float64 `json:"cannabinoids"`
	Terpenes     map[string]float64 `json:"terpenes"`

	FloweringDays float64 `json:"floweringDays"`
	FinalHealth   float64 `json:"finalHealth"`
	Timestamp     float64 `json:"timestamp"`
}
