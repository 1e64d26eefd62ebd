package engine

import (
	"testing"

	"verdant-server/internal/domain"
)

func TestDeferredDrainIsInsertionFIFO(t *testing.T) {
	q := NewDeferredQueue()
	var order []string
	mk := func(id string, at float64) *DeferredEffect {
		return &DeferredEffect{
			ID: id, PlantID: domain.PackPlantID(0, 1), TriggerAt: at,
			Apply: func(float64) { order = append(order, id) },
		}
	}

	// a вставлен раньше b, хотя срабатывает позже
	q.Schedule(mk("a", 10))
	q.Schedule(mk("b", 5))
	q.Schedule(mk("c", 10))

	if got := q.Drain(4); len(got) != 0 {
		t.Fatalf("nothing is due at t=4, got %d", len(got))
	}

	due := q.Drain(10)
	for _, e := range due {
		e.Apply(10)
	}
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("expired effects must drain in insertion order, got %v", order)
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty, len = %d", q.Len())
	}
}

func TestDeferredPartialDrain(t *testing.T) {
	q := NewDeferredQueue()
	q.Schedule(&DeferredEffect{ID: "early", TriggerAt: 5, Apply: func(float64) {}})
	q.Schedule(&DeferredEffect{ID: "late", TriggerAt: 50, Apply: func(float64) {}})

	due := q.Drain(10)
	if len(due) != 1 || due[0].ID != "early" {
		t.Fatalf("only the early effect is due, got %v", due)
	}
	if q.Len() != 1 {
		t.Errorf("late effect must stay queued, len = %d", q.Len())
	}
}

func TestDeferredCancel(t *testing.T) {
	q := NewDeferredQueue()
	fired := false
	q.Schedule(&DeferredEffect{ID: "x", TriggerAt: 5, Apply: func(float64) { fired = true }})

	if !q.Cancel("x") {
		t.Fatal("cancel of existing effect must return true")
	}
	if q.Cancel("x") {
		t.Error("second cancel must return false")
	}
	for _, e := range q.Drain(100) {
		e.Apply(100)
	}
	if fired {
		t.Error("cancelled effect must never fire")
	}
}

func TestDeferredCancelPlant(t *testing.T) {
	q := NewDeferredQueue()
	target := domain.PackPlantID(1, 7)
	other := domain.PackPlantID(1, 8)

	q.Schedule(&DeferredEffect{ID: "t1", PlantID: target, TriggerAt: 5, Apply: func(float64) {}})
	q.Schedule(&DeferredEffect{ID: "t2", PlantID: target, TriggerAt: 6, Apply: func(float64) {}})
	q.Schedule(&DeferredEffect{ID: "o1", PlantID: other, TriggerAt: 7, Apply: func(float64) {}})

	if n := q.CancelPlant(target); n != 2 {
		t.Errorf("cancelled %d effects, want 2", n)
	}
	due := q.Drain(100)
	if len(due) != 1 || due[0].ID != "o1" {
		t.Errorf("only the other plant's effect survives, got %v", due)
	}
}

func TestDeferredScheduleReplacesSameID(t *testing.T) {
	q := NewDeferredQueue()
	hits := 0
	q.Schedule(&DeferredEffect{ID: "x", TriggerAt: 5, Apply: func(float64) { hits++ }})
	q.Schedule(&DeferredEffect{ID: "x", TriggerAt: 8, Apply: func(float64) { hits++ }})

	if q.Len() != 1 {
		t.Fatalf("same-id schedule must replace, len = %d", q.Len())
	}
	for _, e := range q.Drain(10) {
		e.Apply(10)
	}
	if hits != 1 {
		t.Errorf("replaced effect fired %d times, want 1", hits)
	}
}
