package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	chatmodel "github.com/FRANKMAKORI/your-revenue-ai/internal/model/chat"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/ai"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/history"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/storage"
)

type stubInvoker struct {
	response string
	err      error
}

func (s *stubInvoker) Invoke(ctx context.Context, req ai.Request) (*ai.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &ai.Response{Response: s.response}, nil
}

func setupRouter(invoker Invoker) (*chi.Mux, *history.Store) {
	store := history.NewStore(storage.NewMemory())
	handler := New(invoker, store)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, store
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestChatAIReturnsResponse(t *testing.T) {
	r, _ := setupRouter(&stubInvoker{response: "VAT is 16%."})

	resp := postJSON(r, "/chat-ai", ai.Request{
		Messages: []ai.TurnMessage{{Role: chatmodel.RoleUser, Content: "VAT rate?"}},
		Language: "en",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body ai.Response
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Response != "VAT is 16%." {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestChatAIPropagatesInvocationStatus(t *testing.T) {
	r, _ := setupRouter(&stubInvoker{err: &ai.InvocationError{
		Status:  http.StatusBadRequest,
		Message: "I can only search for Kenya Revenue Authority (KRA) related information. Please ask about KRA services, tax matters, or revenue topics.",
	}})

	resp := postJSON(r, "/chat-ai", ai.Request{
		Messages:    []ai.TurnMessage{{Role: chatmodel.RoleUser, Content: "best pizza recipe"}},
		Language:    "en",
		SearchQuery: "best pizza recipe",
	})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Kenya Revenue Authority") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestChatAIRequiresMessages(t *testing.T) {
	r, _ := setupRouter(&stubInvoker{response: "unused"})

	resp := postJSON(r, "/chat-ai", ai.Request{Language: "en"})

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestChatAIWithoutGatewayReturns503(t *testing.T) {
	r, _ := setupRouter(nil)

	resp := postJSON(r, "/chat-ai", ai.Request{
		Messages: []ai.TurnMessage{{Role: chatmodel.RoleUser, Content: "hello"}},
	})

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestSessionLifecycleOverREST(t *testing.T) {
	r, store := setupRouter(&stubInvoker{response: "unused"})

	// Create.
	resp := postJSON(r, "/sessions", nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var created map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	id := created["id"]

	store.UpdateSession(id, []chatmodel.Message{{Role: chatmodel.RoleUser, Content: "hello"}})

	// List.
	listReq := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	listResp := httptest.NewRecorder()
	r.ServeHTTP(listResp, listReq)
	if listResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", listResp.Code)
	}
	var sessions []chatmodel.Session
	if err := json.Unmarshal(listResp.Body.Bytes(), &sessions); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != id {
		t.Fatalf("unexpected sessions: %+v", sessions)
	}

	// Load.
	loadReq := httptest.NewRequest(http.MethodGet, "/sessions/"+id, nil)
	loadResp := httptest.NewRecorder()
	r.ServeHTTP(loadResp, loadReq)
	if loadResp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", loadResp.Code)
	}
	if !strings.Contains(loadResp.Body.String(), "hello") {
		t.Fatalf("loaded session missing messages: %s", loadResp.Body.String())
	}

	// Delete.
	delReq := httptest.NewRequest(http.MethodDelete, "/sessions/"+id, nil)
	delResp := httptest.NewRecorder()
	r.ServeHTTP(delResp, delReq)
	if delResp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", delResp.Code)
	}
	if len(store.Sessions()) != 0 {
		t.Fatal("session not deleted")
	}
}

func TestLoadUnknownSessionReturns404(t *testing.T) {
	r, _ := setupRouter(&stubInvoker{response: "unused"})

	req := httptest.NewRequest(http.MethodGet, "/sessions/missing", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestClearSessions(t *testing.T) {
	r, store := setupRouter(&stubInvoker{response: "unused"})
	store.CreateNewSession()
	store.CreateNewSession()

	req := httptest.NewRequest(http.MethodDelete, "/sessions", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if len(store.Sessions()) != 0 {
		t.Fatal("sessions not cleared")
	}
}
