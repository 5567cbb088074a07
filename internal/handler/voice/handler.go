// Package voice hosts the websocket voice console: one connection owns one
// conversation, with narration frames flowing back to the client's speech
// engine.
package voice

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	voicemodel "github.com/FRANKMAKORI/your-revenue-ai/internal/model/voice"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/assistant"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/history"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/speech"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/storage"
)

// Handler upgrades voice console connections.
type Handler struct {
	invoker  assistant.Invoker
	kv       storage.KeyValue
	upgrader websocket.Upgrader
}

// New creates the voice console handler. Each connection gets its own
// conversation backed by the shared key-value store.
func New(invoker assistant.Invoker, kv storage.KeyValue) *Handler {
	return &Handler{
		invoker: invoker,
		kv:      kv,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/voice/ws", h.handleWebSocket)
}

type inboundFrame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type outboundFrame struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

type initPayload struct {
	Language     string             `json:"language"`
	LanguageName string             `json:"languageName"`
	Voices       []voicemodel.Voice `json:"voices"`
	AutoNarrate  bool               `json:"autoNarrate"`
}

type textPayload struct {
	Text string `json:"text"`
}

type settingsPayload struct {
	VoiceID string  `json:"voiceId"`
	Rate    float64 `json:"rate"`
	Pitch   float64 `json:"pitch"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[voice] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session := newConsoleSession(conn, h.invoker, h.kv)
	log.Printf("[voice] console connected from %s", r.RemoteAddr)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	for {
		var frame inboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[voice] read error: %v", err)
			}
			return
		}
		session.dispatch(ctx, frame)
	}
}

// consoleSession binds one websocket connection to one orchestrator.
type consoleSession struct {
	conn  *websocket.Conn
	wmu   sync.Mutex
	synth *wsSynthesizer
	recog *wsRecognizer

	orch *assistant.Orchestrator
}

func newConsoleSession(conn *websocket.Conn, invoker assistant.Invoker, kv storage.KeyValue) *consoleSession {
	s := &consoleSession{conn: conn}
	s.synth = &wsSynthesizer{send: s.send}
	s.recog = &wsRecognizer{send: s.send}

	notifier := &wsNotifier{send: s.send}
	s.orch = assistant.New(assistant.Options{
		History:     history.NewStore(kv),
		Invoker:     invoker,
		Narrator:    speech.NewController(s.synth, notifier),
		Settings:    speech.NewSettingsStore(kv),
		Notifier:    notifier,
		AutoNarrate: true,
	})
	return s
}

func (s *consoleSession) dispatch(ctx context.Context, frame inboundFrame) {
	switch frame.Type {
	case "init":
		var p initPayload
		if err := json.Unmarshal(frame.Data, &p); err != nil {
			s.sendError("invalid init payload")
			return
		}
		s.synth.setVoices(p.Voices)
		s.orch.SelectLanguage(p.Language, p.LanguageName)
		s.sendState()

	case "text":
		var p textPayload
		if err := json.Unmarshal(frame.Data, &p); err != nil {
			s.sendError("invalid text payload")
			return
		}
		go s.submit(ctx, p.Text)

	case "start_listening":
		if err := s.recog.Start(func(transcript string) {
			go s.submit(ctx, transcript)
		}); err != nil {
			s.sendError(err.Error())
		}

	case "stop_listening":
		s.recog.Stop()

	case "transcript":
		var p textPayload
		if err := json.Unmarshal(frame.Data, &p); err != nil {
			s.sendError("invalid text payload")
			return
		}
		// A transcript while listening completes the recognition; one sent
		// without start_listening is treated like typed text.
		if !s.recog.finish(p.Text) {
			go s.submit(ctx, p.Text)
		}

	case "modes":
		var m assistant.Modes
		if err := json.Unmarshal(frame.Data, &m); err != nil {
			s.sendError("invalid modes payload")
			return
		}
		s.orch.SetModes(m)

	case "voice_settings":
		var p settingsPayload
		if err := json.Unmarshal(frame.Data, &p); err != nil {
			s.sendError("invalid settings payload")
			return
		}
		s.orch.UpdateVoiceSettings(voicemodel.Settings{VoiceID: p.VoiceID, Rate: p.Rate, Pitch: p.Pitch})

	case "stop_speech":
		s.orch.StopSpeaking()

	case "speech_end":
		s.synth.finish(nil)

	case "new_session":
		s.orch.NewSession()
		s.sendState()

	default:
		s.sendError("unknown frame type: " + frame.Type)
	}
}

func (s *consoleSession) submit(ctx context.Context, text string) {
	s.sendState()
	err := s.orch.Submit(ctx, text)
	s.sendState()
	if err != nil {
		// Guard errors never reach the orchestrator's notifier.
		switch {
		case errors.Is(err, assistant.ErrNoLanguage),
			errors.Is(err, assistant.ErrBusy),
			errors.Is(err, assistant.ErrEmptyInput):
			s.send("notice", map[string]string{"message": err.Error()})
		}
		return
	}

	messages := s.orch.Messages()
	if len(messages) > 0 {
		s.send("message", messages[len(messages)-1])
	}
}

func (s *consoleSession) sendState() {
	code, _ := s.orch.Language()
	s.send("state", map[string]interface{}{
		"state":    s.orch.State(),
		"language": code,
	})
}

func (s *consoleSession) sendError(message string) {
	s.send("error", map[string]string{"message": message})
}

func (s *consoleSession) send(frameType string, data interface{}) {
	s.wmu.Lock()
	defer s.wmu.Unlock()

	frame := outboundFrame{Type: frameType, Data: data, Timestamp: time.Now().UnixMilli()}
	if err := s.conn.WriteJSON(frame); err != nil {
		log.Printf("[voice] write failed: %v", err)
	}
}

// wsSynthesizer relays utterances to the client's speech engine and routes
// its completion signals back into the controller.
type wsSynthesizer struct {
	send func(frameType string, data interface{})

	mu     sync.Mutex
	voices []voicemodel.Voice
	events speech.Events
}

func (w *wsSynthesizer) setVoices(voices []voicemodel.Voice) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.voices = voices
}

func (w *wsSynthesizer) Voices() []voicemodel.Voice {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]voicemodel.Voice(nil), w.voices...)
}

func (w *wsSynthesizer) Speak(u voicemodel.Utterance, events speech.Events) {
	w.mu.Lock()
	w.events = events
	w.mu.Unlock()

	w.send("speak", u)
	if events.OnStart != nil {
		events.OnStart()
	}
}

func (w *wsSynthesizer) Cancel() {
	w.mu.Lock()
	w.events = speech.Events{}
	w.mu.Unlock()

	w.send("cancel_speech", nil)
}

// finish reports the current utterance done (or failed) from the client.
func (w *wsSynthesizer) finish(err error) {
	w.mu.Lock()
	events := w.events
	w.events = speech.Events{}
	w.mu.Unlock()

	if err != nil {
		if events.OnError != nil {
			events.OnError(err)
		}
		return
	}
	if events.OnEnd != nil {
		events.OnEnd()
	}
}

// wsRecognizer relays listening directives to the client's recognition
// engine; transcripts flow back as frames and complete the capture.
type wsRecognizer struct {
	send func(frameType string, data interface{})

	mu       sync.Mutex
	onResult func(transcript string)
}

var _ speech.Recognizer = (*wsRecognizer)(nil)

func (r *wsRecognizer) Start(onResult func(transcript string)) error {
	r.mu.Lock()
	if r.onResult != nil {
		r.mu.Unlock()
		return errors.New("already listening")
	}
	r.onResult = onResult
	r.mu.Unlock()

	r.send("start_listening", nil)
	return nil
}

func (r *wsRecognizer) Stop() {
	r.mu.Lock()
	r.onResult = nil
	r.mu.Unlock()

	r.send("stop_listening", nil)
}

// finish delivers a transcript to the pending capture. It reports false when
// no capture is active.
func (r *wsRecognizer) finish(transcript string) bool {
	r.mu.Lock()
	onResult := r.onResult
	r.onResult = nil
	r.mu.Unlock()

	if onResult == nil {
		return false
	}
	onResult(transcript)
	return true
}

type wsNotifier struct {
	send func(frameType string, data interface{})
}

func (n *wsNotifier) Notify(message string) {
	n.send("notice", map[string]string{"message": message})
}
