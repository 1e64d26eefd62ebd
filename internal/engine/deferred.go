package engine

import (
	"container/heap"
	"sort"

	"verdant-server/internal/domain"
)

// DeferredEffect - отложенный эффект с временем срабатывания.
// Примеры: спад шока пересадки, инкубация вредителя, таймер осмотра.
type DeferredEffect struct {
	ID        string
	PlantID   domain.PlantID
	TriggerAt float64 // сим-время срабатывания

	// Apply вызывается на тик-горутине, когда время пришло.
	Apply func(now float64)

	seq   uint64 // порядок вставки, тай-брейк для FIFO
	index int    // позиция в куче (нужна для remove)
}

// effectHeap реализует heap.Interface поверх отложенных эффектов.
type effectHeap []*DeferredEffect

func (h effectHeap) Len() int { return len(h) }

func (h effectHeap) Less(i, j int) bool {
	if h[i].TriggerAt != h[j].TriggerAt {
		return h[i].TriggerAt < h[j].TriggerAt
	}
	return h[i].seq < h[j].seq
}

func (h effectHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *effectHeap) Push(x interface{}) {
	n := len(*h)
	item := x.(*DeferredEffect)
	item.index = n
	*h = append(*h, item)
}

func (h *effectHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[0 : n-1]
	return item
}

// DeferredQueue хранит эффекты до их времени срабатывания.
// Отмена - это удаление записи: никаких флагов "пропустить".
type DeferredQueue struct {
	heap    effectHeap
	byID    map[string]*DeferredEffect
	nextSeq uint64
}

func NewDeferredQueue() *DeferredQueue {
	return &DeferredQueue{
		heap: make(effectHeap, 0),
		byID: make(map[string]*DeferredEffect),
	}
}

// Schedule регистрирует эффект. Эффект с тем же ID замещается.
func (q *DeferredQueue) Schedule(e *DeferredEffect) {
	if old, ok := q.byID[e.ID]; ok {
		heap.Remove(&q.heap, old.index)
	}
	e.seq = q.nextSeq
	q.nextSeq++
	heap.Push(&q.heap, e)
	q.byID[e.ID] = e
}

// Cancel удаляет эффект по ID. Возвращает true, если он существовал.
func (q *DeferredQueue) Cancel(id string) bool {
	e, ok := q.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&q.heap, e.index)
	delete(q.byID, id)
	return true
}

// CancelPlant снимает все эффекты растения (смерть, сбор).
func (q *DeferredQueue) CancelPlant(plantID domain.PlantID) int {
	var ids []string
	for id, e := range q.byID {
		if e.PlantID == plantID {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		q.Cancel(id)
	}
	return len(ids)
}

// Drain снимает все эффекты с TriggerAt <= now и возвращает их
// в FIFO-порядке вставки (а не в порядке времен срабатывания).
func (q *DeferredQueue) Drain(now float64) []*DeferredEffect {
	var due []*DeferredEffect
	for q.heap.Len() > 0 && q.heap[0].TriggerAt <= now {
		e := heap.Pop(&q.heap).(*DeferredEffect)
		delete(q.byID, e.ID)
		due = append(due, e)
	}
	sort.Slice(due, func(i, j int) bool { return due[i].seq < due[j].seq })
	return due
}

func (q *DeferredQueue) Len() int {
	return q.heap.Len()
}
