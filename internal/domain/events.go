package domain

import "strings"

// EventType - Внутренний числовой идентификатор события симуляции
type EventType uint8

const (
	EventUnknown EventType = iota
	EventStageChanged
	EventHealthChanged
	EventPlantDied
	EventEnvironmentChanged
	EventCarePerformed
	EventBurdenThresholdReached
	EventAutomationAvailable
	EventAutomationUnlocked
	EventSkillNodeUnlocked
	EventBranchProgressed
	EventTreeGrowthLevelChanged
)

// Маппинг для логов Domain -> String
var eventCmdToString = map[EventType]string{
	EventStageChanged:           "STAGE_CHANGED",
	EventHealthChanged:          "HEALTH_CHANGED",
	EventPlantDied:              "PLANT_DIED",
	EventEnvironmentChanged:     "ENVIRONMENT_CHANGED",
	EventCarePerformed:          "CARE_PERFORMED",
	EventBurdenThresholdReached: "BURDEN_THRESHOLD_REACHED",
	EventAutomationAvailable:    "AUTOMATION_AVAILABLE",
	EventAutomationUnlocked:     "AUTOMATION_UNLOCKED",
	EventSkillNodeUnlocked:      "SKILL_NODE_UNLOCKED",
	EventBranchProgressed:       "BRANCH_PROGRESSED",
	EventTreeGrowthLevelChanged: "TREE_GROWTH_LEVEL_CHANGED",
}

// Маппинг для конвертации String -> Domain (отладочные фильтры подписок)
var eventStringToCmd = func() map[string]EventType {
	m := make(map[string]EventType, len(eventCmdToString))
	for k, v := range eventCmdToString {
		m[v] = k
	}
	return m
}()

// ParseEvent конвертирует строку в EventType
func ParseEvent(s string) EventType {
	if val, ok := eventStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return EventUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (e EventType) String() string {
	if val, ok := eventCmdToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// --- ТИПИЗИРОВАННЫЕ СОБЫТИЯ ---

// Event - любое уведомление ядра. Подписчики получают события синхронно,
// в порядке регистрации, сразу после породившей их мутации.
type Event interface {
	Kind() EventType
}

// StageChangedEvent - растение перешло на следующую стадию.
type StageChangedEvent struct {
	PlantID   PlantID
	Prev      GrowthStage
	New       GrowthStage
	Timestamp float64
}

func (StageChangedEvent) Kind() EventType { return EventStageChanged }

// HealthChangedEvent - здоровье заметно изменилось (порог дребезга - в издателе).
type HealthChangedEvent struct {
	PlantID   PlantID
	Prev      float64
	New       float64
	Timestamp float64
}

func (HealthChangedEvent) Kind() EventType { return EventHealthChanged }

// PlantDiedEvent - здоровье достигло нуля. Ровно одно на растение.
type PlantDiedEvent struct {
	PlantID   PlantID
	Cause     string // источник доминирующего стрессора, если был
	Timestamp float64
}

func (PlantDiedEvent) Kind() EventType { return EventPlantDied }

// EnvironmentChangedEvent - условия в зоне существенно изменились.
type EnvironmentChangedEvent struct {
	PlantID   PlantID
	Prev      EnvironmentalConditions
	New       EnvironmentalConditions
	Timestamp float64
}

func (EnvironmentChangedEvent) Kind() EventType { return EventEnvironmentChanged }

// CarePerformedEvent - действие ухода обработано.
type CarePerformedEvent struct {
	PlantID   PlantID
	Task      CareTask
	Quality   CareQuality
	Outcome   CareOutcome
	Automated bool
	Timestamp float64
}

func (CarePerformedEvent) Kind() EventType { return EventCarePerformed }

// BurdenThresholdReachedEvent - бремя задачи пересекло уровень желания.
type BurdenThresholdReachedEvent struct {
	Task      CareTask
	Prev      DesireLevel
	New       DesireLevel
	Burden    float64
	Timestamp float64
}

func (BurdenThresholdReachedEvent) Kind() EventType { return EventBurdenThresholdReached }

// AutomationAvailableEvent - выполнены оба порога (бремя + навык).
// Латч one-way: событие публикуется не более одного раза на задачу.
type AutomationAvailableEvent struct {
	Task      CareTask
	Timestamp float64
}

func (AutomationAvailableEvent) Kind() EventType { return EventAutomationAvailable }

// AutomationUnlockedEvent - системы разблокированы.
type AutomationUnlockedEvent struct {
	Task      CareTask
	Systems   []AutomationSystem
	Timestamp float64
}

func (AutomationUnlockedEvent) Kind() EventType { return EventAutomationUnlocked }

// SkillNodeUnlockedEvent - узел дерева навыков разблокирован.
type SkillNodeUnlockedEvent struct {
	NodeID    string
	Branch    string
	Timestamp float64
}

func (SkillNodeUnlockedEvent) Kind() EventType { return EventSkillNodeUnlocked }

// BranchProgressedEvent - vibrancy ветки изменилась.
type BranchProgressedEvent struct {
	Branch    string
	Vibrancy  float64
	Timestamp float64
}

func (BranchProgressedEvent) Kind() EventType { return EventBranchProgressed }

// TreeGrowthLevelChangedEvent - уровень расцвета всего дерева изменился.
type TreeGrowthLevelChangedEvent struct {
	Prev      TreeGrowthLevel
	New       TreeGrowthLevel
	Timestamp float64
}

func (TreeGrowthLevelChangedEvent) Kind() EventType { return EventTreeGrowthLevelChanged }
