package speech

import (
	"log"
	"sync"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/voice"
)

// User-facing notices the controller emits.
const (
	noticeUnsupported  = "Speech synthesis is not supported in this environment"
	noticeSpeakFailure = "Failed to synthesize speech"
)

// Controller plays at most one utterance at a time. Starting a new
// utterance cancels the one in flight, and callbacks from a canceled
// utterance can no longer flip the speaking flag.
type Controller struct {
	mu         sync.Mutex
	synth      Synthesizer
	notifier   Notifier
	speaking   bool
	generation uint64
}

// NewController wires a controller to a synthesizer. synth may be nil when
// the environment has no speech engine; Speak then notifies instead.
func NewController(synth Synthesizer, notifier Notifier) *Controller {
	return &Controller{synth: synth, notifier: notifier}
}

// Speak narrates text in the given language with the given settings,
// canceling any utterance already playing.
func (c *Controller) Speak(text, language string, settings voice.Settings) {
	c.mu.Lock()

	if c.synth == nil {
		c.mu.Unlock()
		c.notify(noticeUnsupported)
		return
	}

	c.synth.Cancel()
	c.generation++
	gen := c.generation

	settings = settings.Clamp()
	pref := voice.PreferenceFor(settings.VoiceID, language)
	utterance := voice.Utterance{
		Text:  text,
		Lang:  pref.LocaleTag,
		Rate:  settings.Rate,
		Pitch: settings.Pitch,
	}
	if matched := Match(settings.VoiceID, language, c.synth.Voices()); matched != nil {
		log.Printf("[speech] selected voice %q (%s)", matched.Name, matched.Lang)
		utterance.Voice = matched
	}

	c.speaking = true
	synth := c.synth
	c.mu.Unlock()

	synth.Speak(utterance, Events{
		OnStart: func() { c.setSpeaking(gen, true) },
		OnEnd:   func() { c.setSpeaking(gen, false) },
		OnError: func(err error) {
			log.Printf("[speech] synthesis error: %v", err)
			c.setSpeaking(gen, false)
			c.notify(noticeSpeakFailure)
		},
	})
}

// Stop cancels any utterance in flight.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.synth != nil {
		c.synth.Cancel()
	}
	c.generation++
	c.speaking = false
}

// IsSpeaking reports whether an utterance is currently playing.
func (c *Controller) IsSpeaking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speaking
}

func (c *Controller) setSpeaking(gen uint64, speaking bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Callbacks from a superseded utterance are stale.
	if gen != c.generation {
		return
	}
	c.speaking = speaking
}

func (c *Controller) notify(message string) {
	if c.notifier != nil {
		c.notifier.Notify(message)
	}
}
