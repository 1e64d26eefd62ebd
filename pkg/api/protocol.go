package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" хозяйства: растения, прогрессия
// автоматизации и свежие записи журнала.
type ServerResponse struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// Tick порядковый номер тика симуляции.
	Tick uint64 `json:"tick"`

	// SimTime текущее сим-время в секундах.
	SimTime float64 `json:"simTime"`

	// Plants срез всех живых растений хозяйства.
	Plants []PlantView `json:"plants,omitempty"`

	// Progression состояние бремени, систем автоматизации и дерева навыков.
	Progression *ProgressionView `json:"progression,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлой рассылки.
	Logs []LogEntry `json:"logs,omitempty"`
}

// PlantView это DTO одного растения.
type PlantView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Strain string `json:"strain"`

	Stage         string  `json:"stage"`
	StageProgress float64 `json:"stageProgress"`
	Overall       float64 `json:"overallProgress"`
	AgeSeconds    float64 `json:"ageSeconds"`

	Health   float64 `json:"health"`
	Stress   float64 `json:"stress"`
	Water    float64 `json:"water"`
	Nutrient float64 `json:"nutrient"`

	Fitness          float64 `json:"fitness"`
	YieldPotential   float64 `json:"yieldPotential"`
	QualityPotential float64 `json:"qualityPotential"`

	// Stressors активные источники урона. Поле может отсутствовать.
	Stressors []StressorView `json:"stressors,omitempty"`

	// Environment последний снимок условий зоны.
	Environment *EnvironmentView `json:"environment,omitempty"`
}

// StressorView это DTO активного стрессора.
type StressorView struct {
	Source    string  `json:"source"`
	Category  string  `json:"category"` // ABIOTIC, BIOTIC
	Intensity float64 `json:"intensity"`
}

// EnvironmentView это DTO условий среды зоны.
type EnvironmentView struct {
	Temperature    float64 `json:"temperature"`
	Humidity       float64 `json:"humidity"`
	LightIntensity float64 `json:"lightIntensity"`
	CO2            float64 `json:"co2"`
	Stability      float64 `json:"stability"`
}

// ProgressionView собирает мета-состояние для клиента.
type ProgressionView struct {
	Burdens []BurdenView `json:"burdens,omitempty"`
	Systems []SystemView `json:"systems,omitempty"`
	Skills  []SkillView  `json:"skills,omitempty"`

	TreeLevel    string  `json:"treeLevel"`
	TreeVibrancy float64 `json:"treeVibrancy"`
}

// BurdenView это DTO бремени одной задачи ухода.
type BurdenView struct {
	Task      string  `json:"task"`
	Burden    float64 `json:"burden"`
	Desire    string  `json:"desire"`
	Available bool    `json:"available"`
	Unlocked  bool    `json:"unlocked"`
	Actions   int     `json:"actions"`
}

// SystemView это DTO системы автоматизации.
type SystemView struct {
	System   string `json:"system"`
	Unlocked bool   `json:"unlocked"`
	Active   bool   `json:"active"`
}

// SkillView это DTO узла дерева навыков.
type SkillView struct {
	ID         string  `json:"id"`
	Branch     string  `json:"branch"`
	Unlocked   bool    `json:"unlocked"`
	Experience float64 `json:"experience"`
	RequiredXP float64 `json:"requiredXp"`
}

// LogEntry представляет одну запись в журнале хозяйства.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, CARE, ERROR, EVENT
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token идентификатор сессии, от имени которой выполняется действие.
	Token string `json:"token,omitempty"`

	// Action название действия ухода (WATER, FEED, PRUNE, ...)
	// или CONSOLE для административной команды.
	Action string `json:"action"`

	// PlantID целевое растение (десятичная строка упакованного ID).
	PlantID string `json:"plantId,omitempty"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// WaterPayload используется для полива (WATER).
type WaterPayload struct {
	Amount float64 `json:"amount"`           // 0-1, доля емкости
	ToolID string  `json:"toolId,omitempty"` // опциональный инструмент
}

// FeedPayload используется для подкормки (FEED).
type FeedPayload struct {
	Amount float64 `json:"amount"` // 0-1
	ToolID string  `json:"toolId,omitempty"`
}

// PrunePayload используется для обрезки (PRUNE).
type PrunePayload struct {
	Style  string `json:"style,omitempty"` // TOPPING, FIMMING, LOLLIPOP
	ToolID string `json:"toolId,omitempty"`
}

// TrainPayload используется для тренировки куста (TRAIN).
type TrainPayload struct {
	Method string `json:"method,omitempty"` // LST, HST, SCROG
	ToolID string `json:"toolId,omitempty"`
}

// TransplantPayload используется для пересадки (TRANSPLANT).
type TransplantPayload struct {
	Container string `json:"container"`
}

// PestControlPayload используется для обработки от вредителей (PESTCONTROL).
type PestControlPayload struct {
	ToolID string `json:"toolId,omitempty"`
}

// ConsolePayload используется для административной консоли (CONSOLE).
type ConsolePayload struct {
	Line string `json:"line"` // например "heal 42" или "grow 42 FLOWERING"
}
