package server

import (
	"context"
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"verdant-server/internal/engine"
	"verdant-server/internal/version"
	"verdant-server/pkg/logger"
)

type Server struct {
	Sim  *engine.SimulationService
	Port string
}

func New(sim *engine.SimulationService, port string) *Server {
	return &Server{
		Sim:  sim,
		Port: port,
	}
}

// Run запускает HTTP сервер и гасит его по отмене контекста.
func (s *Server) Run(ctx context.Context) error {
	mux := http.DefaultServeMux

	// Регистрируем роуты
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	mux.Handle("/metrics", promhttp.Handler())

	debugHandler := NewDebugHandler(s.Sim)
	debugHandler.RegisterRoutes(mux)

	srv := &http.Server{Addr: ":" + s.Port, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infof("🌱 Verdant Server running on :%s", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.Sim, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}
