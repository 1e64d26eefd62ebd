package engine

import (
	"verdant-server/internal/domain"
	"verdant-server/pkg/logger"
)

// Scheduler раздает процессорное время растениям: персистентный курсор
// идет по списку кольцом, отдавая не больше batchSize сущностей за тик.
// Мертвые и собранные вычищаются ТОЛЬКО на границе оборота, поэтому
// умирающее растение гарантированно доживает свой проход.
type Scheduler struct {
	plants    []*domain.PlantEntity
	known     map[domain.PlantID]bool
	removed   map[domain.PlantID]bool
	cursor    int
	batchSize int
}

func NewScheduler(batchSize int) *Scheduler {
	if batchSize <= 0 {
		batchSize = 64
	}
	return &Scheduler{
		known:     make(map[domain.PlantID]bool),
		removed:   make(map[domain.PlantID]bool),
		batchSize: batchSize,
	}
}

// Register добавляет растение в расписание. Повторная регистрация - no-op.
func (s *Scheduler) Register(p *domain.PlantEntity) {
	if s.known[p.ID] {
		return
	}
	s.plants = append(s.plants, p)
	s.known[p.ID] = true
	delete(s.removed, p.ID)

	logger.Log.WithField("plant_id", p.ID).Debug("Plant registered in scheduler")
}

// Unregister помечает растение на удаление. Физически оно покинет
// список на ближайшей границе оборота курсора.
func (s *Scheduler) Unregister(id domain.PlantID) {
	if !s.known[id] {
		return
	}
	s.removed[id] = true
}

// NextBatch возвращает очередную порцию растений (не больше batchSize).
// Достигнув конца списка, курсор чистит помеченные и выбывшие записи
// и возвращается к началу.
func (s *Scheduler) NextBatch() []*domain.PlantEntity {
	if s.cursor >= len(s.plants) {
		s.prune()
		s.cursor = 0
	}
	if len(s.plants) == 0 {
		return nil
	}

	end := s.cursor + s.batchSize
	if end > len(s.plants) {
		end = len(s.plants)
	}
	batch := s.plants[s.cursor:end]
	s.cursor = end
	return batch
}

// prune выбрасывает помеченные Unregister и неживые растения.
func (s *Scheduler) prune() {
	kept := s.plants[:0]
	for _, p := range s.plants {
		if s.removed[p.ID] || !p.Alive() {
			delete(s.known, p.ID)
			delete(s.removed, p.ID)
			continue
		}
		kept = append(kept, p)
	}
	// Обнуляем хвост, чтобы не держать указатели
	for i := len(kept); i < len(s.plants); i++ {
		s.plants[i] = nil
	}
	s.plants = kept
}

func (s *Scheduler) Len() int {
	return len(s.plants)
}

// DebugDump возвращает снимок расписания для отладки.
func (s *Scheduler) DebugDump() []map[string]interface{} {
	// Инициализируем как пустой слайс, а не nil: в JSON это "[]", а не "null"
	result := make([]map[string]interface{}, 0)

	for i, p := range s.plants {
		result = append(result, map[string]interface{}{
			"id":      p.ID.String(),
			"name":    p.Name,
			"stage":   p.Growth.Stage.String(),
			"alive":   p.Alive(),
			"pending": s.removed[p.ID],
			"index":   i,
		})
	}
	return result
}
