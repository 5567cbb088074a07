package voice

// Voice describes one synthesis voice the platform reports.
type Voice struct {
	Name         string `json:"name"`
	Lang         string `json:"lang"`
	LocalService bool   `json:"localService"`
}

// Utterance is a single speech-synthesis playback request for one text span.
type Utterance struct {
	Text  string  `json:"text"`
	Lang  string  `json:"lang"`
	Voice *Voice  `json:"voice,omitempty"`
	Rate  float64 `json:"rate"`
	Pitch float64 `json:"pitch"`
}
