package voice

// Rate and pitch both live in the same closed range.
const (
	MinRate  = 0.5
	MaxRate  = 2.0
	MinPitch = 0.5
	MaxPitch = 2.0
)

// Settings hold the narration preferences persisted per selected language.
type Settings struct {
	VoiceID string  `json:"voiceId"`
	Rate    float64 `json:"rate"`
	Pitch   float64 `json:"pitch"`
}

// DefaultSettings returns neutral narration settings with no voice selected.
func DefaultSettings() Settings {
	return Settings{Rate: 1.0, Pitch: 1.0}
}

// Clamp forces rate and pitch back into their closed ranges so corrupt
// persisted values never propagate to the synthesis engine.
func (s Settings) Clamp() Settings {
	s.Rate = clamp(s.Rate, MinRate, MaxRate)
	s.Pitch = clamp(s.Pitch, MinPitch, MaxPitch)
	return s
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
