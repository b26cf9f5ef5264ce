// Package health exposes HTTP probe endpoints for a running indexer.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status represents the health state of the indexer process.
type Status string

const (
	StatusStarting Status = "STARTING"
	StatusHealthy  Status = "HEALTHY"
	StatusStopping Status = "STOPPING"
)

// Response is the JSON body of every probe endpoint.
type Response struct {
	Status    string                 `json:"status"`
	Uptime    string                 `json:"uptime"`
	Timestamp string                 `json:"timestamp"`
	Metrics   map[string]interface{} `json:"metrics,omitempty"`
}

// Server serves /health, /ready and /live. Metrics are pulled from the
// relay's delivery counters on each request.
type Server struct {
	mu        sync.RWMutex
	status    Status
	port      int
	server    *http.Server
	metrics   func() map[string]interface{}
	startTime time.Time
	logger    *zap.Logger
}

// NewServer creates a health server on port. metrics may be nil.
func NewServer(port int, metrics func() map[string]interface{}, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		status:    StatusStarting,
		port:      port,
		metrics:   metrics,
		startTime: time.Now(),
		logger:    logger,
	}
}

// SetStatus sets the current health status.
func (s *Server) SetStatus(status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// GetStatus returns the current health status.
func (s *Server) GetStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Server) respond(w http.ResponseWriter, code int, withMetrics bool) {
	response := Response{
		Status:    string(s.GetStatus()),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if withMetrics && s.metrics != nil {
		response.Metrics = s.metrics()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// Handler returns the probe routes. Exposed so tests can hit them without
// binding a port.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		s.respond(w, http.StatusOK, true)
	})

	mux.HandleFunc("/ready", func(w http.ResponseWriter, _ *http.Request) {
		if s.GetStatus() == StatusHealthy {
			s.respond(w, http.StatusOK, false)
			return
		}
		s.respond(w, http.StatusServiceUnavailable, false)
	})

	mux.HandleFunc("/live", func(w http.ResponseWriter, _ *http.Request) {
		if s.GetStatus() == StatusStopping {
			s.respond(w, http.StatusServiceUnavailable, false)
			return
		}
		s.respond(w, http.StatusOK, false)
	})

	return mux
}

// Start starts the server in the background.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("health server failed", zap.Error(err))
		}
	}()

	return nil
}

// Stop shuts the server down.
func (s *Server) Stop() error {
	s.SetStatus(StatusStopping)
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
