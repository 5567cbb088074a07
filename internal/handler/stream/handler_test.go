package stream

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	chatmodel "github.com/FRANKMAKORI/your-revenue-ai/internal/model/chat"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/ai"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/assistant"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/history"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/storage"
)

type stubInvoker struct {
	response string
	err      error
	requests []ai.Request
}

func (s *stubInvoker) Invoke(ctx context.Context, req ai.Request) (*ai.Response, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	return &ai.Response{Response: s.response}, nil
}

func TestHandleStreamRequestEmitsFrames(t *testing.T) {
	store := history.NewStore(storage.NewMemory())
	id := store.CreateNewSession()
	invoker := &stubInvoker{response: "PAYE is due by the 9th."}
	h := New(invoker, store)

	w := httptest.NewRecorder()
	err := h.HandleStreamRequest(context.Background(), w, Params{
		SessionID:    id,
		Message:      "When is PAYE due?",
		Language:     "en",
		LanguageName: "English",
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}

	body := w.Body.String()
	for _, want := range []string{`"event":"start"`, `"event":"typing"`, `"event":"message"`, `"event":"end"`, "PAYE is due by the 9th."} {
		if !strings.Contains(body, want) {
			t.Fatalf("stream body missing %q: %s", want, body)
		}
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type: %q", ct)
	}

	// Both turns landed in the session.
	messages, err := store.LoadSession(id)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages in session, got %d", len(messages))
	}
	if messages[1].Role != chatmodel.RoleAssistant {
		t.Fatalf("unexpected final role: %s", messages[1].Role)
	}
}

func TestHandleStreamRequestCarriesModes(t *testing.T) {
	store := history.NewStore(storage.NewMemory())
	id := store.CreateNewSession()
	invoker := &stubInvoker{response: "ok"}
	h := New(invoker, store)

	w := httptest.NewRecorder()
	err := h.HandleStreamRequest(context.Background(), w, Params{
		SessionID: id,
		Message:   "KRA VAT news",
		Language:  "en",
		Modes:     assistant.Modes{Search: true, TaxLaw: true},
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}

	req := invoker.requests[0]
	if req.SearchQuery != "KRA VAT news" || !req.UseTaxLawReference {
		t.Fatalf("modes not carried: %+v", req)
	}
}

func TestHandleStreamRequestUnknownSession(t *testing.T) {
	h := New(&stubInvoker{response: "unused"}, history.NewStore(storage.NewMemory()))

	w := httptest.NewRecorder()
	err := h.HandleStreamRequest(context.Background(), w, Params{SessionID: "missing", Message: "hi"})
	if err == nil {
		t.Fatal("expected error for unknown session")
	}
	if !strings.Contains(w.Body.String(), `"event":"error"`) {
		t.Fatalf("missing error frame: %s", w.Body.String())
	}
}

func TestHandleStreamRequestGatewayFailure(t *testing.T) {
	store := history.NewStore(storage.NewMemory())
	id := store.CreateNewSession()
	h := New(&stubInvoker{err: &ai.InvocationError{Status: 429, Message: "Rate limit exceeded. Please try again in a moment."}}, store)

	w := httptest.NewRecorder()
	err := h.HandleStreamRequest(context.Background(), w, Params{SessionID: id, Message: "hi", Language: "en"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(w.Body.String(), "Rate limit exceeded") {
		t.Fatalf("missing error frame: %s", w.Body.String())
	}

	// The user message is preserved even though the reply failed.
	messages, loadErr := store.LoadSession(id)
	if loadErr != nil {
		t.Fatalf("load session: %v", loadErr)
	}
	if len(messages) != 1 || messages[0].Role != chatmodel.RoleUser {
		t.Fatalf("unexpected session contents: %+v", messages)
	}
}
