// Package speech matches narration voices and drives speech playback
// through a pluggable synthesis engine.
package speech

import "github.com/FRANKMAKORI/your-revenue-ai/internal/model/voice"

// Events carries the playback callbacks a synthesizer reports. Any field
// may be nil.
type Events struct {
	OnStart func()
	OnEnd   func()
	OnError func(error)
}

// Synthesizer is the speech engine the controller plays utterances through.
// Speak returns immediately; the engine reports progress via Events.
type Synthesizer interface {
	Voices() []voice.Voice
	Speak(utterance voice.Utterance, events Events)
	Cancel()
}

// Recognizer converts microphone input into transcripts.
type Recognizer interface {
	Start(onResult func(transcript string)) error
	Stop()
}

// Notifier surfaces user-facing notices, toast-style.
type Notifier interface {
	Notify(message string)
}
