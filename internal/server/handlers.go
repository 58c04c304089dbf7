// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/amsot/portfolio/internal/models"
	"github.com/amsot/portfolio/internal/protocol"
	"github.com/amsot/portfolio/internal/store"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// ProjectStore is the part of *store.Store the API uses.
type ProjectStore interface {
	Snapshot() store.Snapshot
	Project(id int) (models.Project, bool)
	FetchProjects(ctx context.Context) store.Result
	Subscribe(buffer int) (<-chan protocol.Event, func())
}

var _ ProjectStore = (*store.Store)(nil)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	store   ProjectStore
	limiter *rate.Limiter // nil = unlimited

	// refreshCtx bounds fetches started by POST /refresh; they outlive
	// the request that triggered them.
	refreshCtx context.Context
	refreshWG  sync.WaitGroup
}

// NewHandlers creates the handler set. refreshPerMinute caps manual
// refreshes; 0 disables the limit.
func NewHandlers(ctx context.Context, st ProjectStore, refreshPerMinute int) *Handlers {
	h := &Handlers{store: st, refreshCtx: ctx}
	if refreshPerMinute > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(float64(refreshPerMinute)/60), refreshPerMinute)
	}
	return h
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		getLog().Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, msg, detail string) {
	body := map[string]string{"error": msg}
	if detail != "" {
		body["context"] = detail
	}
	writeJSON(w, status, body)
}

// Health handles GET /healthz
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetProjects handles GET /api/v1/projects. It answers with the store's
// current state and never triggers a fetch.
func (h *Handlers) GetProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Snapshot())
}

// GetProject handles GET /api/v1/projects/{id}
func (h *Handlers) GetProject(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid project id", rawID)
		return
	}

	project, ok := h.store.Project(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Project not found", rawID)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

// RefreshProjects handles POST /api/v1/projects/refresh. The fetch runs in
// the background; clients follow it through GET /projects or /ws.
func (h *Handlers) RefreshProjects(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil && !h.limiter.Allow() {
		getLog().Warn().Str("request_id", GetRequestID(r.Context())).Msg("Refresh rate limit exceeded")
		writeError(w, http.StatusTooManyRequests, "Too many refresh requests", "")
		return
	}

	h.refreshWG.Add(1)
	go func() {
		defer h.refreshWG.Done()
		h.store.FetchProjects(h.refreshCtx)
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "refreshing"})
}

// wait blocks until background refreshes started by the handlers return.
func (h *Handlers) wait() {
	h.refreshWG.Wait()
}
