package domain

import "encoding/json"

// InternalCommand - оптимизированная команда для движка.
// Использует CareTask вместо string.
type InternalCommand struct {
	Task    CareTask        // Число! Быстро и безопасно.
	Token   string          // ID сессии/исполнителя (игрок или агент автоматизации)
	PlantID PlantID         // Целевое растение
	Payload json.RawMessage // Сырые данные (парсятся хендлером)

	// Automated - команда выдана агентом автоматизации, а не игроком.
	// Влияет на источник опыта и запись бремени.
	Automated bool

	// Console - административная команда консоли, не действие ухода.
	// PlantID и Task при этом игнорируются.
	Console bool
}
