package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/config"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/chat"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *int64) {
	t.Helper()

	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	svc := NewService(config.GatewayConfig{
		BaseURL:       srv.URL + "/v1",
		APIKey:        "test-key",
		Model:         "test-model",
		Timeout:       5,
		FetchPreviews: true,
	})
	return svc, &calls
}

func completionHandler(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"` + content + `"}}]}`))
	}
}

func TestInvokeReturnsAssistantReply(t *testing.T) {
	svc, _ := newTestService(t, completionHandler("VAT returns are due by the 20th."))

	resp, err := svc.Invoke(context.Background(), Request{
		Messages: []TurnMessage{{Role: chat.RoleUser, Content: "When are VAT returns due?"}},
		Language: "en",
	})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if resp.Response != "VAT returns are due by the 20th." {
		t.Fatalf("unexpected response: %q", resp.Response)
	}
}

func TestInvokeRejectsOffTopicSearchBeforeGatewayCall(t *testing.T) {
	svc, calls := newTestService(t, completionHandler("unused"))

	_, err := svc.Invoke(context.Background(), Request{
		Messages:    []TurnMessage{{Role: chat.RoleUser, Content: "best pizza recipe"}},
		Language:    "en",
		SearchQuery: "best pizza recipe",
	})

	var invErr *InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvocationError, got %v", err)
	}
	if invErr.Status != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", invErr.Status)
	}
	if !strings.Contains(invErr.Message, "Kenya Revenue Authority") {
		t.Fatalf("unexpected message: %q", invErr.Message)
	}
	if got := atomic.LoadInt64(calls); got != 0 {
		t.Fatalf("expected no gateway calls, got %d", got)
	}
}

func TestInvokeAllowsRelevantSearch(t *testing.T) {
	svc, calls := newTestService(t, completionHandler("Here is the latest on eTIMS."))

	_, err := svc.Invoke(context.Background(), Request{
		Messages:    []TurnMessage{{Role: chat.RoleUser, Content: "latest eTIMS deadline news"}},
		Language:    "en",
		SearchQuery: "latest eTIMS deadline news",
	})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if got := atomic.LoadInt64(calls); got != 1 {
		t.Fatalf("expected 1 gateway call, got %d", got)
	}
}

func TestInvokeMapsRateLimit(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"slow down","type":"rate_limit_exceeded"}}`))
	})

	_, err := svc.Invoke(context.Background(), Request{
		Messages: []TurnMessage{{Role: chat.RoleUser, Content: "hello"}},
		Language: "en",
	})

	var invErr *InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvocationError, got %v", err)
	}
	if invErr.Status != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", invErr.Status)
	}
	if invErr.Message != msgRateLimited {
		t.Fatalf("unexpected message: %q", invErr.Message)
	}
}

func TestInvokeMapsPaymentRequired(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"no credits","type":"insufficient_quota"}}`))
	})

	_, err := svc.Invoke(context.Background(), Request{
		Messages: []TurnMessage{{Role: chat.RoleUser, Content: "hello"}},
		Language: "en",
	})

	var invErr *InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvocationError, got %v", err)
	}
	if invErr.Status != http.StatusPaymentRequired {
		t.Fatalf("expected status 402, got %d", invErr.Status)
	}
}

func TestInvokeMapsOtherGatewayFailuresTo500(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := svc.Invoke(context.Background(), Request{
		Messages: []TurnMessage{{Role: chat.RoleUser, Content: "hello"}},
		Language: "en",
	})

	var invErr *InvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvocationError, got %v", err)
	}
	if invErr.Status != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", invErr.Status)
	}
	if invErr.Message != msgGatewayError {
		t.Fatalf("unexpected message: %q", invErr.Message)
	}
}

func TestBuildSystemPromptAddenda(t *testing.T) {
	svc, _ := newTestService(t, completionHandler("unused"))
	svc.now = func() time.Time {
		return time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)
	}

	req := Request{
		Messages: []TurnMessage{
			{Role: chat.RoleUser, Content: "first topic"},
			{Role: chat.RoleAssistant, Content: "an answer"},
			{Role: chat.RoleUser, Content: "second topic"},
			{Role: chat.RoleUser, Content: "third topic"},
			{Role: chat.RoleUser, Content: "fourth topic"},
		},
		Language:            "sw",
		LanguageName:        "Kiswahili",
		ConversationContext: "user: VAT registration",
		SearchQuery:         "vat deadline",
		UseTaxLawReference:  true,
	}

	prompt := svc.buildSystemPrompt(context.Background(), req)

	for _, want := range []string{
		"KENYA REVENUE AUTHORITY (KRA) COMPREHENSIVE KNOWLEDGE BASE",
		"TAX LAW REFERENCE MODE ACTIVE",
		"CONVERSATION CONTEXT: The user has been discussing: user: VAT registration",
		`WEB SEARCH ACTIVE - User searching for: "vat deadline"`,
		"second topic; third topic; fourth topic",
		"Respond in Kiswahili",
		"Friday, March 14, 2025",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "first topic;") {
		t.Fatal("prompt should only carry the last three user topics")
	}
}

func TestBuildSystemPromptEnglishSkipsLanguageInstruction(t *testing.T) {
	svc, _ := newTestService(t, completionHandler("unused"))

	prompt := svc.buildSystemPrompt(context.Background(), Request{Language: "en", LanguageName: "English"})

	if strings.Contains(prompt, "Translate all responses") {
		t.Fatal("english requests must not carry a translation instruction")
	}
}

func TestBuildSystemPromptIncludesURLPreview(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("iTax maintenance window announcement"))
	}))
	defer page.Close()

	svc, _ := newTestService(t, completionHandler("unused"))

	prompt := svc.buildSystemPrompt(context.Background(), Request{Language: "en", URL: page.URL})

	if !strings.Contains(prompt, "iTax maintenance window announcement") {
		t.Fatal("prompt missing fetched URL preview")
	}
	if !strings.Contains(prompt, "Content from "+page.URL) {
		t.Fatal("prompt missing URL attribution")
	}
}

func TestBuildSystemPromptNotesUnreachableURL(t *testing.T) {
	svc, _ := newTestService(t, completionHandler("unused"))

	prompt := svc.buildSystemPrompt(context.Background(), Request{Language: "en", URL: "http://127.0.0.1:1/nothing"})

	if !strings.Contains(prompt, "Could not fetch URL content") {
		t.Fatal("prompt missing fetch failure note")
	}
}
