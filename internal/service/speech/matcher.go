package speech

import (
	"strings"

	"github.com/FRANKMAKORI/your-revenue-ai/internal/model/voice"
)

// Additive score contributions for voice matching.
const (
	scoreExactLocale   = 100
	scorePrefixLocale  = 50
	scoreAccentKeyword = 30
	scoreGenderKeyword = 20
	scoreLocalService  = 5
)

// Match picks the best available platform voice for a requested catalog
// voice id. It returns nil when no available voice scores above zero.
func Match(voiceID, language string, available []voice.Voice) *voice.Voice {
	matched, _ := MatchScored(voiceID, language, available)
	return matched
}

// MatchScored is Match plus the winning score, for diagnostics. Scoring is
// additive: exact locale 100, primary-subtag prefix 50, each accent keyword
// 30, gender keyword 20, local service 5. Ties keep the earliest voice so
// the outcome is deterministic for a fixed voice list.
func MatchScored(voiceID, language string, available []voice.Voice) (*voice.Voice, int) {
	pref := voice.PreferenceFor(voiceID, language)
	gender := voice.GenderFor(voiceID)
	langPrefix := primarySubtag(pref.LocaleTag)

	var (
		best      *voice.Voice
		bestScore int
	)
	for i := range available {
		score := scoreVoice(available[i], pref, gender, langPrefix)
		if score > bestScore {
			best = &available[i]
			bestScore = score
		}
	}
	if best == nil {
		return nil, 0
	}
	out := *best
	return &out, bestScore
}

func scoreVoice(v voice.Voice, pref voice.Preference, gender, langPrefix string) int {
	name := strings.ToLower(v.Name)
	lang := strings.ToLower(v.Lang)

	score := 0
	switch {
	case lang == strings.ToLower(pref.LocaleTag):
		score += scoreExactLocale
	case langPrefix != "" && strings.HasPrefix(lang, langPrefix):
		score += scorePrefixLocale
	}
	for _, keyword := range pref.AccentKeywords {
		if strings.Contains(name, keyword) {
			score += scoreAccentKeyword
		}
	}
	if gender != "" && hasGenderKeyword(name, gender) {
		score += scoreGenderKeyword
	}
	if v.LocalService {
		score += scoreLocalService
	}
	return score
}

func hasGenderKeyword(name, gender string) bool {
	keywords := voice.FemaleKeywords
	if gender == voice.GenderMale {
		keywords = voice.MaleKeywords
	}
	for _, keyword := range keywords {
		if strings.Contains(name, keyword) {
			// "female" contains "male" and "woman" contains "man"; a
			// female-named voice never satisfies a male request.
			if gender == voice.GenderMale && (keyword == "male" || keyword == "man") &&
				(strings.Contains(name, "female") || strings.Contains(name, "woman")) {
				continue
			}
			return true
		}
	}
	return false
}

func primarySubtag(localeTag string) string {
	tag := strings.ToLower(localeTag)
	if i := strings.IndexByte(tag, '-'); i > 0 {
		return tag[:i]
	}
	return tag
}
