package domain

import "strings"

// CareTask - Внутренний числовой идентификатор задачи ухода.
// Единый тип для оценки качества, бремени и автоматизации -
// никакого string round-trip между подсистемами.
type CareTask uint8

const (
	TaskUnknown CareTask = iota
	TaskWatering
	TaskFeeding
	TaskPruning
	TaskTraining
	TaskTransplanting
	TaskPestControl
	TaskMonitoring
	TaskHarvesting
	// В будущем: TaskDefoliation, TaskFlushing...
)

// Маппинг для конвертации JSON -> Domain
var taskStringToCmd = map[string]CareTask{
	"WATER":       TaskWatering,
	"FEED":        TaskFeeding,
	"PRUNE":       TaskPruning,
	"TRAIN":       TaskTraining,
	"TRANSPLANT":  TaskTransplanting,
	"PESTCONTROL": TaskPestControl,
	"INSPECT":     TaskMonitoring,
	"HARVEST":     TaskHarvesting,
}

// Маппинг для логов Domain -> String
var taskCmdToString = map[CareTask]string{
	TaskWatering:      "WATER",
	TaskFeeding:       "FEED",
	TaskPruning:       "PRUNE",
	TaskTraining:      "TRAIN",
	TaskTransplanting: "TRANSPLANT",
	TaskPestControl:   "PESTCONTROL",
	TaskMonitoring:    "INSPECT",
	TaskHarvesting:    "HARVEST",
}

// ParseTask конвертирует строку из JSON в CareTask
func ParseTask(s string) CareTask {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := taskStringToCmd[upper]; ok {
		return val
	}
	return TaskUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (t CareTask) String() string {
	if val, ok := taskCmdToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// AllTasks возвращает список всех задач ухода (без TaskUnknown).
// Порядок стабилен - используется для детерминированных обходов.
func AllTasks() []CareTask {
	return []CareTask{
		TaskWatering, TaskFeeding, TaskPruning, TaskTraining,
		TaskTransplanting, TaskPestControl, TaskMonitoring, TaskHarvesting,
	}
}
