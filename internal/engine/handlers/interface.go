package handlers

import (
	"encoding/json"

	"verdant-server/internal/domain"
	"verdant-server/internal/systems"
)

// PlantFinder описывает любую структуру, которая может находить растение по ID.
// SimulationService неявно реализует этот интерфейс.
type PlantFinder interface {
	GetPlant(id domain.PlantID) *domain.PlantEntity
}

// AdminOps - расширенные права для административной консоли.
// Реализуется сервисом; обычным хендлерам недоступны.
type AdminOps interface {
	ForceStage(id domain.PlantID, stage domain.GrowthStage) error
	SetZoneEnvironment(zone domain.ZoneID, c domain.EnvironmentalConditions)
	GrantSkill(task domain.CareTask, amount float64)
	ForceUnlock(task domain.CareTask) bool
	SpawnPlant(strainID string, zone domain.ZoneID, name string) (*domain.PlantEntity, error)
	KillPlant(id domain.PlantID) bool
}

// Context передает хендлеру все, что нужно для выполнения команды.
// Растение уже найдено сервисом; хендлер мутирует его через системы.
type Context struct {
	Finder PlantFinder
	Admin  AdminOps // nil для не-административных команд

	Plant  *domain.PlantEntity
	Strain *domain.Strain

	Care systems.CareConfig // эффективный конфиг (с бонусами прогрессии)

	// YieldBonus - множитель урожая от дерева навыков (1.0 без бонусов)
	YieldBonus float64

	// Снимок навыка исполнителя по задаче
	Skill    float64
	MaxSkill float64

	Now float64 // сим-время
}

// Result - результат выполнения команды.
// Хендлер НЕ пишет в журнал сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст журнала
	MsgType string // Тип записи (INFO, CARE, ERROR)

	// Eval - исход оценки ухода (nil для команд без оценки).
	Eval *systems.EvalResult

	// Harvest - синхронный результат сбора урожая.
	Harvest *domain.HarvestResult
}

// HandlerFunc - это контракт для любой команды (WATER, FEED, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
