package rest

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// pinger is a dependency that can report whether it is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

// Check names one dependency probed by /ready and /health.
type Check struct {
	Name   string
	Pinger pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []Check
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Root answers GET / with a plain-text liveness line.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Server is up and running!")) //nolint:errcheck
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 if every dependency answers, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components := h.probe(r.Context())

	status, code := "ok", http.StatusOK
	for _, c := range components {
		if c.Status != "ok" {
			status, code = "down", http.StatusServiceUnavailable
			break
		}
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component latency and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.probe(r.Context())

	status, code := "ok", http.StatusOK
	for _, c := range components {
		if c.Status != "ok" {
			status, code = "down", http.StatusServiceUnavailable
			break
		}
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// probe pings every dependency concurrently under a shared 3s deadline.
func (h *HealthHandler) probe(ctx context.Context) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = make(map[string]CompStatus, len(h.checks))
	)
	for _, c := range h.checks {
		wg.Add(1)
		go func() {
			defer wg.Done()

			start := time.Now()
			err := c.Pinger.Ping(ctx)
			latency := time.Since(start)

			st := CompStatus{Status: "ok", Latency: latency.String()}
			if err != nil {
				st = CompStatus{Status: "down"}
			}

			mu.Lock()
			out[c.Name] = st
			mu.Unlock()
		}()
	}
	wg.Wait()

	return out
}
