package server

import (
	"encoding/json"
	"net/http"

	"verdant-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка.
// Чтения идут через SimulationService.Inspect: снимок собирается на
// тик-горутине, HTTP-горутина получает готовую копию.
type DebugHandler struct {
	Sim *engine.SimulationService
}

func NewDebugHandler(s *engine.SimulationService) *DebugHandler {
	return &DebugHandler{Sim: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/plants", h.handlePlants)
	mux.HandleFunc("/debug/scheduler", h.handleScheduler)
	mux.HandleFunc("/debug/progression", h.handleProgression)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// snapshot исполняет fn на тик-горутине и отдает результат клиенту.
func (h *DebugHandler) snapshot(w http.ResponseWriter, r *http.Request, fn func() interface{}) {
	var out interface{}
	if err := h.Sim.Inspect(r.Context(), func() { out = fn() }); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, out)
}

// /debug/plants - полный снимок состояния симуляции
func (h *DebugHandler) handlePlants(w http.ResponseWriter, r *http.Request) {
	h.snapshot(w, r, func() interface{} {
		return h.Sim.BuildState()
	})
}

// /debug/scheduler - внутренности планировщика (курсор, pending-удаления)
func (h *DebugHandler) handleScheduler(w http.ResponseWriter, r *http.Request) {
	h.snapshot(w, r, func() interface{} {
		return h.Sim.Scheduler().DebugDump()
	})
}

// /debug/progression - бремя, системы автоматизации, дерево навыков
func (h *DebugHandler) handleProgression(w http.ResponseWriter, r *http.Request) {
	h.snapshot(w, r, func() interface{} {
		p := h.Sim.Progression()
		return map[string]interface{}{
			"burdens": p.Burden().Snapshot(),
			"systems": p.Engine().SystemsSnapshot(),
			"nodes":   p.Tree().Nodes(),
			"level":   p.Tree().GrowthLevel().String(),
		}
	})
}
