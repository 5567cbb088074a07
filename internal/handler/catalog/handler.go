// Package catalog serves the static pickers: languages, FAQs, guided
// workflows, and voice profiles.
package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/catalog"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/voice"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/speech"
	"github.com/FRANKMAKORI/your-revenue-ai/pkg/utils"
)

// Handler serves the static catalogs.
type Handler struct{}

// New creates the catalog handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the catalog routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/languages", h.handleLanguages)
	r.Get("/faqs", h.handleFAQs)
	r.Get("/workflows", h.handleWorkflows)
	r.Get("/workflows/{workflowID}", h.handleWorkflow)
	r.Get("/voices", h.handleVoices)
	r.Post("/voices/match", h.handleMatchVoice)
}

func (h *Handler) handleLanguages(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, catalog.Languages())
}

func (h *Handler) handleFAQs(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, catalog.FAQs())
}

func (h *Handler) handleWorkflows(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, catalog.Workflows())
}

func (h *Handler) handleWorkflow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "workflowID")

	wf, ok := catalog.FindWorkflow(id)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "workflow not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, wf)
}

func (h *Handler) handleVoices(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	if language == "" {
		utils.RespondError(w, http.StatusBadRequest, "language query parameter is required")
		return
	}
	utils.RespondJSON(w, http.StatusOK, voice.ProfilesForLanguage(language))
}

// handleMatchVoice resolves the best platform voice for a catalog voice id
// given the voices the caller's platform reports.
func (h *Handler) handleMatchVoice(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		VoiceID  string        `json:"voiceId"`
		Language string        `json:"language"`
		Voices   []voice.Voice `json:"voices"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Language == "" {
		utils.RespondError(w, http.StatusBadRequest, "language is required")
		return
	}

	matched, score := speech.MatchScored(payload.VoiceID, payload.Language, payload.Voices)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"voice": matched,
		"score": score,
	})
}
