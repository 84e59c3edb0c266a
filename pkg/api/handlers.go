package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dixieflatline76/Easel/config"
	"github.com/dixieflatline76/Easel/pkg/graph"
	"github.com/dixieflatline76/Easel/pkg/resolution"
	"github.com/dixieflatline76/Easel/util/log"
)

// maxConcurrentInvocations bounds parallel node invocations in one batch
// request.
const maxConcurrentInvocations = 4

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "running",
		"version": config.AppVersion,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// nodeInfo is the wire form of a registered node's metadata.
type nodeInfo struct {
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name"`
	Category    string     `json:"category"`
	Inputs      graph.Spec `json:"inputs"`
	Invokable   bool       `json:"invokable"`
}

// handleNodes lists every registered node with its input schema.
func (s *Server) handleNodes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	names := graph.Names()
	nodes := make([]nodeInfo, 0, len(names))
	for _, name := range names {
		node, ok := graph.Get(name)
		if !ok {
			continue
		}
		_, invokable := node.(graph.Invoker)
		nodes = append(nodes, nodeInfo{
			Name:        node.Name(),
			DisplayName: node.DisplayName(),
			Category:    node.Category(),
			Inputs:      node.InputSpec(),
			Invokable:   invokable,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"nodes": nodes}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// invocation is one node call within an invoke request.
type invocation struct {
	Node string         `json:"node"`
	Args map[string]any `json:"args"`
}

// invokeRequest is a batch of node calls executed as one job.
type invokeRequest struct {
	Invocations []invocation `json:"invocations"`
}

type invocationResult struct {
	Node   string         `json:"node"`
	Output map[string]any `json:"output,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// handleInvoke runs a batch of node invocations concurrently and returns
// per-invocation results. Selection errors map to 422, unknown nodes to
// 404, and a fresh job ID ties the response to progress broadcasts.
func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req invokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Invocations) == 0 {
		http.Error(w, "No invocations given", http.StatusBadRequest)
		return
	}

	// Resolve every node up front so an unknown name fails the whole batch
	invokers := make([]graph.Invoker, len(req.Invocations))
	for i, inv := range req.Invocations {
		node, ok := graph.Get(inv.Node)
		if !ok {
			http.Error(w, "Unknown node: "+inv.Node, http.StatusNotFound)
			return
		}
		invoker, ok := node.(graph.Invoker)
		if !ok {
			http.Error(w, "Node not invokable over the API: "+inv.Node, http.StatusUnprocessableEntity)
			return
		}
		invokers[i] = invoker
	}

	jobID := uuid.NewString()
	results := make([]invocationResult, len(req.Invocations))
	errs := make([]error, len(req.Invocations))

	var completed int
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(maxConcurrentInvocations)
	for i := range req.Invocations {
		i := i
		g.Go(func() error {
			inv := req.Invocations[i]
			output, err := invokers[i].Invoke(ctx, inv.Args)

			mu.Lock()
			if err != nil {
				results[i] = invocationResult{Node: inv.Node, Error: err.Error()}
				errs[i] = err
			} else {
				results[i] = invocationResult{Node: inv.Node, Output: output}
			}
			completed++
			done := completed
			mu.Unlock()

			s.BroadcastProgress(jobID, done, len(req.Invocations))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Invocation errors are reported per result; only context failures
		// land here.
		log.Printf("Invoke job %s aborted: %v", jobID, err)
	}

	status := http.StatusOK
	for _, err := range errs {
		if err == nil {
			continue
		}
		if isSelectionError(err) {
			status = http.StatusUnprocessableEntity
		} else {
			status = http.StatusInternalServerError
			break
		}
	}

	response := map[string]any{
		"job_id":  jobID,
		"results": results,
	}
	s.BroadcastResult(jobID, response)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode invoke response: %v", err)
	}
}

// handleWebSocket upgrades the connection and tracks the client for
// broadcasts.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	s.clientsMu.Lock()
	s.clients[conn] = true
	s.clientsMu.Unlock()

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
	}()

	for {
		// Keepalive reads; clients only listen
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

var selectionErrors = []error{
	resolution.ErrUnsupportedMode,
	resolution.ErrInvalidManualDimensions,
	resolution.ErrInvalidPreset,
	resolution.ErrUnsupportedCombination,
	resolution.ErrMissingOverride,
}

// isSelectionError reports whether err is a selection validation failure.
func isSelectionError(err error) bool {
	for _, sentinel := range selectionErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
