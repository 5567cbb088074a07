package voice

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	voicemodel "github.com/FRANKMAKORI/your-revenue-ai/internal/model/voice"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/ai"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/storage"
)

type stubInvoker struct {
	response string
}

func (s *stubInvoker) Invoke(ctx context.Context, req ai.Request) (*ai.Response, error) {
	return &ai.Response{Response: s.response}, nil
}

func dialConsole(t *testing.T, invoker *stubInvoker) *websocket.Conn {
	t.Helper()

	r := chi.NewRouter()
	New(invoker, storage.NewMemory()).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/voice/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func sendFrame(t *testing.T, conn *websocket.Conn, frameType string, data any) {
	t.Helper()
	raw, _ := json.Marshal(data)
	if err := conn.WriteJSON(map[string]json.RawMessage{
		"type": json.RawMessage(`"` + frameType + `"`),
		"data": raw,
	}); err != nil {
		t.Fatalf("write %s: %v", frameType, err)
	}
}

// waitFrame reads frames until one of the wanted type arrives.
func waitFrame(t *testing.T, conn *websocket.Conn, frameType string) map[string]any {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	conn.SetReadDeadline(deadline)
	for time.Now().Before(deadline) {
		var frame struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		}
		if err := conn.ReadJSON(&frame); err != nil {
			t.Fatalf("read: %v", err)
		}
		if frame.Type != frameType {
			continue
		}
		var data map[string]any
		if len(frame.Data) > 0 {
			if err := json.Unmarshal(frame.Data, &data); err != nil {
				t.Fatalf("decode %s frame: %v", frameType, err)
			}
		}
		return data
	}
	t.Fatalf("no %q frame received", frameType)
	return nil
}

func TestConsoleInitMovesToIdle(t *testing.T) {
	conn := dialConsole(t, &stubInvoker{response: "karibu"})

	sendFrame(t, conn, "init", initPayload{
		Language:     "sw",
		LanguageName: "Kiswahili",
		Voices:       []voicemodel.Voice{{Name: "Swahili Kenya", Lang: "sw-KE"}},
	})

	state := waitFrame(t, conn, "state")
	if state["state"] != "idle" {
		t.Fatalf("unexpected state: %v", state)
	}
	if state["language"] != "sw" {
		t.Fatalf("unexpected language: %v", state)
	}
}

func TestConsoleTextRoundTripWithNarration(t *testing.T) {
	conn := dialConsole(t, &stubInvoker{response: "**VAT** is 16%"})

	sendFrame(t, conn, "init", initPayload{
		Language:     "en",
		LanguageName: "English",
		Voices:       []voicemodel.Voice{{Name: "Samantha", Lang: "en-US", LocalService: true}},
	})
	waitFrame(t, conn, "state")

	sendFrame(t, conn, "text", textPayload{Text: "What is the VAT rate?"})

	speak := waitFrame(t, conn, "speak")
	if speak["text"] != "VAT is 16%" {
		t.Fatalf("narration not stripped: %v", speak)
	}

	message := waitFrame(t, conn, "message")
	if message["content"] != "**VAT** is 16%" {
		t.Fatalf("unexpected message frame: %v", message)
	}
	if message["role"] != "assistant" {
		t.Fatalf("unexpected role: %v", message)
	}
}

func TestConsoleListeningRoundTrip(t *testing.T) {
	conn := dialConsole(t, &stubInvoker{response: "PIN registration takes 24-48 hours."})

	sendFrame(t, conn, "init", initPayload{Language: "en", LanguageName: "English"})
	waitFrame(t, conn, "state")

	sendFrame(t, conn, "start_listening", nil)
	waitFrame(t, conn, "start_listening")

	sendFrame(t, conn, "transcript", textPayload{Text: "How long does PIN registration take?"})

	message := waitFrame(t, conn, "message")
	if message["content"] != "PIN registration takes 24-48 hours." {
		t.Fatalf("unexpected message frame: %v", message)
	}
}

func TestConsoleSubmitWithoutInitNotifies(t *testing.T) {
	conn := dialConsole(t, &stubInvoker{response: "unused"})

	sendFrame(t, conn, "text", textPayload{Text: "hello"})

	notice := waitFrame(t, conn, "notice")
	if notice["message"] == "" {
		t.Fatalf("expected a notice message, got %v", notice)
	}
}

func TestConsoleUnknownFrameType(t *testing.T) {
	conn := dialConsole(t, &stubInvoker{response: "unused"})

	sendFrame(t, conn, "bogus", map[string]string{})

	errFrame := waitFrame(t, conn, "error")
	if !strings.Contains(errFrame["message"].(string), "unknown frame type") {
		t.Fatalf("unexpected error frame: %v", errFrame)
	}
}
