package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/dixieflatline76/Easel/config"
	"github.com/dixieflatline76/Easel/util"
	"github.com/dixieflatline76/Easel/util/log"
)

// Server exposes the node registry over a local REST/WebSocket API.
type Server struct {
	httpServer *http.Server
	mux        *http.ServeMux
	upgrader   websocket.Upgrader
	addr       string

	// WebSocket management
	clients   map[*websocket.Conn]bool
	clientsMu sync.Mutex

	// Progress broadcasts are throttled so a chatty job cannot flood
	// connected clients.
	broadcastLimiter *rate.Limiter

	// stopping suppresses broadcasts while the server shuts down.
	stopping *util.SafeFlag
}

// NewServer creates a new API server listening on addr.
func NewServer(addr string) *Server {
	if addr == "" {
		addr = config.DefaultListenAddr
	}
	s := &Server{
		mux:  http.NewServeMux(),
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients:          make(map[*websocket.Conn]bool),
		broadcastLimiter: rate.NewLimiter(rate.Limit(20), 5),
		stopping:         util.NewSafeBool(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/health", s.enableCORS(s.handleHealth))
	s.mux.HandleFunc("/nodes", s.enableCORS(s.handleNodes))
	s.mux.HandleFunc("/invoke", s.enableCORS(s.handleInvoke))
	s.mux.HandleFunc("/ws", s.handleWebSocket)
}

// enableCORS adds CORS headers to the handler.
func (s *Server) enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Allow local graph hosts and browser frontends
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the server. This is blocking.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      s.mux,
		ReadTimeout:  config.HTTPReadTimeout,
		WriteTimeout: config.HTTPWriteTimeout,
	}
	return s.httpServer.ListenAndServe()
}

// Stop stops the server.
func (s *Server) Stop() error {
	s.stopping.Set(true)
	if s.httpServer != nil {
		return s.httpServer.Shutdown(context.Background())
	}
	return nil
}

// BroadcastProgress sends a job progress update to all connected clients,
// subject to the broadcast rate limit. Dropped updates are not an error;
// the final update for a job should use BroadcastResult instead.
func (s *Server) BroadcastProgress(jobID string, completed, total int) {
	if !s.broadcastLimiter.Allow() {
		return
	}
	s.broadcast(map[string]any{
		"type":      "progress",
		"job_id":    jobID,
		"completed": completed,
		"total":     total,
	})
}

// BroadcastResult sends a job completion message to all connected clients.
// Completion messages bypass the rate limit.
func (s *Server) BroadcastResult(jobID string, results map[string]any) {
	s.broadcast(map[string]any{
		"type":    "result",
		"job_id":  jobID,
		"results": results,
	})
}

func (s *Server) broadcast(msg map[string]any) {
	if s.stopping.Value() {
		return
	}
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	for client := range s.clients {
		if err := client.WriteJSON(msg); err != nil {
			log.Printf("Failed to broadcast to client: %v", err)
			client.Close()
			delete(s.clients, client)
		}
	}
}
