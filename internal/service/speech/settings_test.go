package speech

import (
	"testing"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/voice"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/storage"
)

func TestForLanguageDefaultsToFirstCatalogVoice(t *testing.T) {
	kv := storage.NewMemory()
	store := NewSettingsStore(kv)

	settings := store.ForLanguage("sw")

	if settings.VoiceID != "sw-KE-female" {
		t.Fatalf("unexpected default voice: %q", settings.VoiceID)
	}
	if settings.Rate != 1 || settings.Pitch != 1 {
		t.Fatalf("unexpected default rate/pitch: %+v", settings)
	}

	// The default is persisted so a reload sees the same selection.
	if got := NewSettingsStore(kv).ForLanguage("sw"); got.VoiceID != "sw-KE-female" {
		t.Fatalf("default not persisted, got %q", got.VoiceID)
	}
}

func TestForLanguageUnknownLanguageUsesGenericCatalog(t *testing.T) {
	store := NewSettingsStore(storage.NewMemory())

	if got := store.ForLanguage("kal"); got.VoiceID != "default-female" {
		t.Fatalf("unexpected voice: %q", got.VoiceID)
	}
}

func TestSaveClampsAndRoundTrips(t *testing.T) {
	kv := storage.NewMemory()
	store := NewSettingsStore(kv)

	store.Save("en", voice.Settings{VoiceID: "en-GB-male", Rate: 5, Pitch: 0.1})

	got := NewSettingsStore(kv).ForLanguage("en")
	if got.VoiceID != "en-GB-male" {
		t.Fatalf("unexpected voice: %q", got.VoiceID)
	}
	if got.Rate != voice.MaxRate || got.Pitch != voice.MinPitch {
		t.Fatalf("settings not clamped: %+v", got)
	}
}

func TestSettingsAreKeyedPerLanguage(t *testing.T) {
	store := NewSettingsStore(storage.NewMemory())

	store.Save("en", voice.Settings{VoiceID: "en-US-male", Rate: 1, Pitch: 1})
	store.Save("sw", voice.Settings{VoiceID: "sw-KE-male", Rate: 1.5, Pitch: 1})

	if got := store.ForLanguage("en"); got.VoiceID != "en-US-male" {
		t.Fatalf("unexpected en voice: %q", got.VoiceID)
	}
	if got := store.ForLanguage("sw"); got.VoiceID != "sw-KE-male" || got.Rate != 1.5 {
		t.Fatalf("unexpected sw settings: %+v", got)
	}
}

func TestCorruptSettingsBlobFallsBackToDefaults(t *testing.T) {
	kv := storage.NewMemory()
	if err := kv.Set(SettingsStorageKey, "{oops"); err != nil {
		t.Fatalf("seed kv: %v", err)
	}

	store := NewSettingsStore(kv)
	if got := store.ForLanguage("en"); got.VoiceID != "en-US-female" {
		t.Fatalf("unexpected voice after corrupt load: %q", got.VoiceID)
	}
}
