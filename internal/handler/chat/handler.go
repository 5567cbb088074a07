// Package chat exposes the chat invocation endpoint and session REST API.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/ai"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/history"
	"github.com/FRANKMAKORI/your-revenue-ai/pkg/utils"
)

// Invoker runs one chat completion.
type Invoker interface {
	Invoke(ctx context.Context, req ai.Request) (*ai.Response, error)
}

// Handler serves the chat invocation and session endpoints.
type Handler struct {
	invoker Invoker
	history *history.Store
}

// New creates the chat handler. invoker may be nil when the gateway is not
// configured.
func New(invoker Invoker, historyStore *history.Store) *Handler {
	return &Handler{invoker: invoker, history: historyStore}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat-ai", h.handleChatAI)

	r.Get("/sessions", h.handleListSessions)
	r.Post("/sessions", h.handleCreateSession)
	r.Delete("/sessions", h.handleClearSessions)
	r.Get("/sessions/{sessionID}", h.handleLoadSession)
	r.Delete("/sessions/{sessionID}", h.handleDeleteSession)
}

func (h *Handler) handleChatAI(w http.ResponseWriter, r *http.Request) {
	if h.invoker == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "ai gateway not configured")
		return
	}

	var req ai.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "messages are required")
		return
	}

	resp, err := h.invoker.Invoke(r.Context(), req)
	if err != nil {
		var invErr *ai.InvocationError
		if errors.As(err, &invErr) {
			utils.RespondError(w, invErr.Status, invErr.Message)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.history.Sessions())
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id := h.history.CreateNewSession()
	utils.RespondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) handleClearSessions(w http.ResponseWriter, r *http.Request) {
	h.history.ClearAllHistory()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleLoadSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	messages, err := h.history.LoadSession(id)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"id": id, "messages": messages})
}

func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")

	if err := h.history.DeleteSession(id); err != nil {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
