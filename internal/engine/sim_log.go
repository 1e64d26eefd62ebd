package engine

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"verdant-server/internal/domain"
	"verdant-server/pkg/api"
	"verdant-server/pkg/logger"
)

// AddLog добавляет запись в журнал хозяйства и дублирует в серверный лог.
func (s *SimulationService) AddLog(text, logType string) {
	if logType == "" {
		logType = "INFO"
	}
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", s.tick, time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"component": "farm_log",
		"log_type":  logType,
		"sim_time":  s.simTime,
	}).Info(text)
}

// logEvent - подписчик шины: заметные события попадают в журнал клиента.
func (s *SimulationService) logEvent(e domain.Event) {
	name := func(id domain.PlantID) string {
		if p := s.GetPlant(id); p != nil {
			return p.Name
		}
		return id.String()
	}

	switch ev := e.(type) {
	case domain.StageChangedEvent:
		s.AddLog(fmt.Sprintf("%s: стадия %s -> %s", name(ev.PlantID), ev.Prev, ev.New), "EVENT")
	case domain.PlantDiedEvent:
		s.AddLog(fmt.Sprintf("%s погибло (%s)", name(ev.PlantID), ev.Cause), "EVENT")
	case domain.BurdenThresholdReachedEvent:
		s.AddLog(fmt.Sprintf("Бремя %s: %s -> %s", ev.Task, ev.Prev, ev.New), "EVENT")
	case domain.AutomationAvailableEvent:
		s.AddLog(fmt.Sprintf("Автоматизация %s доступна для разблокировки", ev.Task), "EVENT")
	case domain.AutomationUnlockedEvent:
		s.AddLog(fmt.Sprintf("Автоматизация %s разблокирована", ev.Task), "EVENT")
	case domain.SkillNodeUnlockedEvent:
		s.AddLog(fmt.Sprintf("Открыт узел навыка %s (ветка %s)", ev.NodeID, ev.Branch), "EVENT")
	case domain.TreeGrowthLevelChangedEvent:
		s.AddLog(fmt.Sprintf("Древо навыков расцветает: %s -> %s", ev.Prev, ev.New), "EVENT")
	}
}
