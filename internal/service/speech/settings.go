package speech

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/voice"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/storage"
)

// SettingsStorageKey is the key the per-language voice settings live under.
const SettingsStorageKey = "yourrevenueai-voice-settings"

// SettingsStore persists narration settings keyed by language code.
type SettingsStore struct {
	mu sync.Mutex
	kv storage.KeyValue
}

// NewSettingsStore wraps kv with per-language settings access.
func NewSettingsStore(kv storage.KeyValue) *SettingsStore {
	return &SettingsStore{kv: kv}
}

// ForLanguage returns the stored settings for a language. When none exist
// it selects the first catalog voice for the language, persists that
// default, and returns it.
func (s *SettingsStore) ForLanguage(language string) voice.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.loadLocked()
	if settings, ok := all[language]; ok {
		return settings.Clamp()
	}

	settings := voice.DefaultSettings()
	if profiles := voice.ProfilesForLanguage(language); len(profiles) > 0 {
		settings.VoiceID = profiles[0].ID
	}
	all[language] = settings
	s.saveLocked(all)
	return settings
}

// Save persists settings for a language, clamping rate and pitch first.
func (s *SettingsStore) Save(language string, settings voice.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.loadLocked()
	all[language] = settings.Clamp()
	s.saveLocked(all)
}

func (s *SettingsStore) loadLocked() map[string]voice.Settings {
	all := make(map[string]voice.Settings)
	raw, ok := s.kv.Get(SettingsStorageKey)
	if !ok || raw == "" {
		return all
	}
	if err := json.Unmarshal([]byte(raw), &all); err != nil {
		log.Printf("[speech] failed to load voice settings: %v", err)
		return make(map[string]voice.Settings)
	}
	return all
}

func (s *SettingsStore) saveLocked(all map[string]voice.Settings) {
	raw, err := json.Marshal(all)
	if err != nil {
		log.Printf("[speech] failed to encode voice settings: %v", err)
		return
	}
	if err := s.kv.Set(SettingsStorageKey, string(raw)); err != nil {
		log.Printf("[speech] failed to save voice settings: %v", err)
	}
}
