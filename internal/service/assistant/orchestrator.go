// Package assistant coordinates one user's conversation: language
// selection, message submission, session lifecycle, and narration.
package assistant

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/chat"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/voice"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/ai"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/history"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/speech"
	"github.com/FRANKMAKORI/your-revenue-ai/pkg/textutil"
)

// State is the conversation lifecycle phase.
type State string

const (
	StateAwaitingLanguage State = "awaiting_language"
	StateIdle             State = "idle"
	StateProcessing       State = "processing"
)

var (
	ErrNoLanguage = errors.New("no language selected")
	ErrBusy       = errors.New("a request is already being processed")
	ErrEmptyInput = errors.New("input is empty")
)

// Context digest bounds.
const (
	contextMessageLimit = 5
	contextContentLimit = 100
)

const failureNotice = "Failed to get AI response. Please try again."

var urlPattern = regexp.MustCompile(`^https?://`)

// Invoker runs one chat completion.
type Invoker interface {
	Invoke(ctx context.Context, req ai.Request) (*ai.Response, error)
}

// Narrator speaks assistant replies aloud.
type Narrator interface {
	Speak(text, language string, settings voice.Settings)
	Stop()
}

// Notifier surfaces user-facing notices.
type Notifier interface {
	Notify(message string)
}

// Modes are the submission toggles. They are additive: any combination may
// be active at once.
type Modes struct {
	Search bool `json:"search"`
	URL    bool `json:"url"`
	TaxLaw bool `json:"taxlaw"`
}

// Orchestrator drives a single conversation through its states. All methods
// are safe for concurrent use.
type Orchestrator struct {
	mu sync.Mutex

	state           State
	messages        []chat.Message
	modes           Modes
	language        string
	languageName    string
	lastSearchQuery string
	voiceSettings   voice.Settings
	autoNarrate     bool

	history  *history.Store
	invoker  Invoker
	narrator Narrator
	settings *speech.SettingsStore
	notifier Notifier
}

// Options carries the collaborators an orchestrator needs. History is
// required; the rest may be nil and the matching feature degrades.
type Options struct {
	History     *history.Store
	Invoker     Invoker
	Narrator    Narrator
	Settings    *speech.SettingsStore
	Notifier    Notifier
	AutoNarrate bool
}

// New creates an orchestrator awaiting language selection.
func New(opts Options) *Orchestrator {
	return &Orchestrator{
		state:         StateAwaitingLanguage,
		voiceSettings: voice.DefaultSettings(),
		history:       opts.History,
		invoker:       opts.Invoker,
		narrator:      opts.Narrator,
		settings:      opts.Settings,
		notifier:      opts.Notifier,
		autoNarrate:   opts.AutoNarrate,
	}
}

// SelectLanguage fixes the conversation language and moves to Idle. It may
// be called again later to switch languages mid-conversation.
func (o *Orchestrator) SelectLanguage(code, name string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.language = code
	o.languageName = name
	if o.settings != nil {
		o.voiceSettings = o.settings.ForLanguage(code)
	}
	if o.state == StateAwaitingLanguage {
		o.state = StateIdle
	}
	o.ensureSessionLocked()
}

// Submit sends one user input through the assistant. The user message is
// appended optimistically and survives a failed invocation.
func (o *Orchestrator) Submit(ctx context.Context, input string) error {
	text := strings.TrimSpace(input)
	if text == "" {
		return ErrEmptyInput
	}

	o.mu.Lock()
	if o.state == StateAwaitingLanguage {
		o.mu.Unlock()
		return ErrNoLanguage
	}
	if o.state == StateProcessing {
		o.mu.Unlock()
		return ErrBusy
	}
	o.state = StateProcessing

	req := o.buildRequestLocked(text)

	o.messages = append(o.messages, chat.Message{
		Role:      chat.RoleUser,
		Content:   text,
		Timestamp: time.Now(),
	})
	o.syncSessionLocked()

	if o.modes.Search {
		o.lastSearchQuery = text
	}

	invoker := o.invoker
	o.mu.Unlock()

	var (
		resp *ai.Response
		err  error
	)
	if invoker == nil {
		err = errors.New("assistant gateway not configured")
	} else {
		resp, err = invoker.Invoke(ctx, req)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = StateIdle

	if err != nil {
		log.Printf("[assistant] invocation failed: %v", err)
		o.notifyLocked(err)
		return err
	}

	reply := chat.Message{
		Role:      chat.RoleAssistant,
		Content:   resp.Response,
		Timestamp: time.Now(),
	}
	o.messages = append(o.messages, reply)
	o.syncSessionLocked()

	if o.autoNarrate && o.narrator != nil {
		o.narrator.Speak(textutil.StripMarkdown(reply.Content), o.language, o.voiceSettings)
	}
	return nil
}

func (o *Orchestrator) buildRequestLocked(text string) ai.Request {
	return BuildRequest(o.messages, text, o.language, o.languageName, o.modes)
}

// BuildRequest assembles the gateway request for one submission. The
// context digest summarizes the conversation before the new input; the
// message list includes it.
func BuildRequest(messages []chat.Message, text, language, languageName string, modes Modes) ai.Request {
	req := ai.Request{
		Language:            language,
		LanguageName:        languageName,
		ConversationContext: digest(messages),
		UseTaxLawReference:  modes.TaxLaw,
	}

	for _, m := range messages {
		req.Messages = append(req.Messages, ai.TurnMessage{Role: m.Role, Content: m.Content})
	}
	req.Messages = append(req.Messages, ai.TurnMessage{Role: chat.RoleUser, Content: text})

	if modes.Search {
		req.SearchQuery = text
	}
	if modes.URL && urlPattern.MatchString(text) {
		req.URL = text
	}
	return req
}

// digest summarizes the most recent turns as "role: content" fragments,
// content truncated to keep the prompt bounded.
func digest(messages []chat.Message) string {
	start := 0
	if len(messages) > contextMessageLimit {
		start = len(messages) - contextMessageLimit
	}

	parts := make([]string, 0, len(messages)-start)
	for _, m := range messages[start:] {
		parts = append(parts, m.Role+": "+textutil.Truncate(m.Content, contextContentLimit))
	}
	return strings.Join(parts, "; ")
}

func (o *Orchestrator) notifyLocked(err error) {
	if o.notifier == nil {
		return
	}
	var invErr *ai.InvocationError
	if errors.As(err, &invErr) {
		o.notifier.Notify(invErr.Message)
		return
	}
	o.notifier.Notify(failureNotice)
}

// ensureSessionLocked opens a session lazily for a fresh conversation.
func (o *Orchestrator) ensureSessionLocked() {
	if o.history == nil {
		return
	}
	if o.history.ActiveID() == "" && len(o.messages) == 0 {
		o.history.CreateNewSession()
	}
}

func (o *Orchestrator) syncSessionLocked() {
	if o.history == nil {
		return
	}
	if id := o.history.ActiveID(); id != "" {
		o.history.UpdateSession(id, o.messages)
	}
}

// SetModes replaces the submission toggles.
func (o *Orchestrator) SetModes(modes Modes) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.modes = modes
}

// Modes returns the current submission toggles.
func (o *Orchestrator) Modes() Modes {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.modes
}

// State reports the current lifecycle phase.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Language reports the selected language code and display name.
func (o *Orchestrator) Language() (string, string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.language, o.languageName
}

// Messages returns a copy of the conversation so far.
func (o *Orchestrator) Messages() []chat.Message {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]chat.Message, len(o.messages))
	copy(out, o.messages)
	return out
}

// LastSearchQuery reports the most recent search-mode submission.
func (o *Orchestrator) LastSearchQuery() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastSearchQuery
}

// PlayMessage narrates arbitrary assistant text on demand.
func (o *Orchestrator) PlayMessage(text string) {
	o.mu.Lock()
	narrator, language, settings := o.narrator, o.language, o.voiceSettings
	o.mu.Unlock()

	if narrator != nil {
		narrator.Speak(textutil.StripMarkdown(text), language, settings)
	}
}

// StopSpeaking cancels any narration in flight.
func (o *Orchestrator) StopSpeaking() {
	o.mu.Lock()
	narrator := o.narrator
	o.mu.Unlock()

	if narrator != nil {
		narrator.Stop()
	}
}

// UpdateVoiceSettings clamps and persists narration settings for the
// selected language.
func (o *Orchestrator) UpdateVoiceSettings(settings voice.Settings) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.voiceSettings = settings.Clamp()
	if o.settings != nil && o.language != "" {
		o.settings.Save(o.language, o.voiceSettings)
	}
}

// VoiceSettings returns the active narration settings.
func (o *Orchestrator) VoiceSettings() voice.Settings {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.voiceSettings
}

// NewSession starts a fresh conversation, keeping the selected language.
func (o *Orchestrator) NewSession() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.messages = nil
	o.lastSearchQuery = ""
	if o.state == StateProcessing {
		o.state = StateIdle
	}
	if o.history == nil {
		return ""
	}
	return o.history.CreateNewSession()
}

// LoadSession switches the conversation to a stored session.
func (o *Orchestrator) LoadSession(id string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.history == nil {
		return history.ErrSessionNotFound
	}
	messages, err := o.history.LoadSession(id)
	if err != nil {
		return err
	}
	o.messages = messages
	o.lastSearchQuery = ""
	if o.state == StateAwaitingLanguage {
		o.state = StateIdle
	}
	return nil
}

// DeleteSession removes a stored session. Deleting the loaded one clears
// the visible conversation.
func (o *Orchestrator) DeleteSession(id string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.history == nil {
		return history.ErrSessionNotFound
	}
	active := o.history.ActiveID() == id
	if err := o.history.DeleteSession(id); err != nil {
		return err
	}
	if active {
		o.messages = nil
	}
	return nil
}

// ClearHistory drops every stored session and the visible conversation.
func (o *Orchestrator) ClearHistory() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.messages = nil
	o.lastSearchQuery = ""
	if o.history != nil {
		o.history.ClearAllHistory()
	}
}

// Sessions lists stored sessions newest-first.
func (o *Orchestrator) Sessions() []chat.Session {
	if o.history == nil {
		return nil
	}
	return o.history.Sessions()
}
