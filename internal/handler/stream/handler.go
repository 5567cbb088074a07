// Package stream delivers chat replies over Server-Sent Events so the
// client can show progress while the gateway works.
package stream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/chat"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/ai"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/assistant"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/history"
	"github.com/FRANKMAKORI/your-revenue-ai/pkg/utils"
)

// Invoker runs one chat completion.
type Invoker interface {
	Invoke(ctx context.Context, req ai.Request) (*ai.Response, error)
}

// Handler streams one invocation per request.
type Handler struct {
	invoker Invoker
	history *history.Store
}

// New creates the stream handler.
func New(invoker Invoker, historyStore *history.Store) *Handler {
	return &Handler{invoker: invoker, history: historyStore}
}

// Event is one streamed frame.
type Event struct {
	Event     string `json:"event"`
	Content   string `json:"content,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Params carries one streaming submission.
type Params struct {
	SessionID    string
	Message      string
	Language     string
	LanguageName string
	Modes        assistant.Modes
}

// HandleStreamRequest loads the session, invokes the gateway, and streams
// start/message/end frames. Failures surface as an error frame before the
// stream closes.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, p Params) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	messages, err := h.history.LoadSession(p.SessionID)
	if err != nil {
		h.sendError(w, flusher, "session not found")
		return err
	}

	utils.SendSSEChunk(w, flusher, Event{Event: "start", SessionID: p.SessionID})

	req := assistant.BuildRequest(messages, p.Message, p.Language, p.LanguageName, p.Modes)

	now := time.Now()
	messages = append(messages, chat.Message{Role: chat.RoleUser, Content: p.Message, Timestamp: now})
	h.history.UpdateSession(p.SessionID, messages)

	utils.SendSSEChunk(w, flusher, Event{Event: "typing", SessionID: p.SessionID})

	resp, err := h.invoker.Invoke(ctx, req)
	if err != nil {
		h.sendError(w, flusher, err.Error())
		return err
	}

	messages = append(messages, chat.Message{Role: chat.RoleAssistant, Content: resp.Response, Timestamp: time.Now()})
	h.history.UpdateSession(p.SessionID, messages)

	utils.SendSSEChunk(w, flusher, Event{Event: "message", SessionID: p.SessionID, Content: resp.Response})
	utils.SendSSEChunk(w, flusher, Event{Event: "end", SessionID: p.SessionID, Finished: true})
	return nil
}

func (h *Handler) sendError(w http.ResponseWriter, flusher http.Flusher, message string) {
	utils.SendSSEChunk(w, flusher, Event{Event: "error", Error: message})
}
