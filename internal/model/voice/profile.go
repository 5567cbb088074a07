package voice

import "strings"

// Profile is a static catalog entry presented to the user when choosing a
// narration voice for the selected language.
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Accent     string `json:"accent"`
	SampleText string `json:"sampleText"`
}

// Preference guides the matching of a catalog voice id onto the voices the
// platform actually ships.
type Preference struct {
	LocaleTag      string
	AccentKeywords []string
}

// GenericLocale is used when neither the voice id nor the language code is
// recognized.
const GenericLocale = "en-US"

// Requested genders derived from a voice id.
const (
	GenderFemale = "female"
	GenderMale   = "male"
)

var profilesByLanguage = map[string][]Profile{
	"en": {
		{ID: "en-US-female", Name: "Sarah", Accent: "American Female", SampleText: "Hello, I'm Sarah with an American accent."},
		{ID: "en-US-male", Name: "James", Accent: "American Male", SampleText: "Hello, I'm James with an American accent."},
		{ID: "en-GB-female", Name: "Emma", Accent: "British Female", SampleText: "Hello, I'm Emma with a British accent."},
		{ID: "en-GB-male", Name: "Oliver", Accent: "British Male", SampleText: "Hello, I'm Oliver with a British accent."},
		{ID: "en-AU-female", Name: "Charlotte", Accent: "Australian Female", SampleText: "G'day, I'm Charlotte with an Australian accent."},
		{ID: "en-KE-female", Name: "Amina", Accent: "Kenyan Female", SampleText: "Habari, I'm Amina with a Kenyan English accent."},
	},
	"sw": {
		{ID: "sw-KE-female", Name: "Zawadi", Accent: "Swahili Female", SampleText: "Habari, mimi ni Zawadi, msaidizi wako wa kodi."},
		{ID: "sw-KE-male", Name: "Juma", Accent: "Swahili Male", SampleText: "Habari, mimi ni Juma, msaidizi wako wa kodi."},
		{ID: "sw-TZ-female", Name: "Neema", Accent: "Tanzanian Female", SampleText: "Habari, mimi ni Neema kutoka Tanzania."},
	},
	"ki": {
		{ID: "ki-KE-female", Name: "Wanjiku", Accent: "Kikuyu Female", SampleText: "Wĩmwega, nĩ Wanjiku, mũthuuri waku wa mĩthuko."},
		{ID: "ki-KE-male", Name: "Kamau", Accent: "Kikuyu Male", SampleText: "Wĩmwega, nĩ Kamau, mũthuuri waku wa mĩthuko."},
	},
	"kam": {
		{ID: "kam-KE-female", Name: "Mutheu", Accent: "Kamba Female", SampleText: "Uvoo mweu, ni Mutheu, mwĩĩi waku wa musyolo."},
		{ID: "kam-KE-male", Name: "Mutua", Accent: "Kamba Male", SampleText: "Uvoo mweu, ni Mutua, mwĩĩi waku wa musyolo."},
	},
	"luo": {
		{ID: "luo-KE-female", Name: "Akinyi", Accent: "Luo Female", SampleText: "Ber, an Akinyi, jakony mari mar osuru."},
		{ID: "luo-KE-male", Name: "Ochieng", Accent: "Luo Male", SampleText: "Ber, an Ochieng, jakony mari mar osuru."},
	},
	"som": {
		{ID: "so-SO-female", Name: "Halima", Accent: "Somali Female", SampleText: "Salaan, waxaan ahay Halima, kaaliyahaaga canshuurta."},
		{ID: "so-SO-male", Name: "Ahmed", Accent: "Somali Male", SampleText: "Salaan, waxaan ahay Ahmed, kaaliyahaaga canshuurta."},
	},
}

// defaultProfiles serve languages without a dedicated catalog entry.
var defaultProfiles = []Profile{
	{ID: "default-female", Name: "Default", Accent: "Female Voice", SampleText: "Hello, I'm your tax assistant."},
	{ID: "default-male", Name: "Default", Accent: "Male Voice", SampleText: "Hello, I'm your tax assistant."},
}

// localeByLanguage maps spoken-language codes onto the closest synthesis
// locale tag. Languages without synthesis coverage borrow the Swahili voice.
var localeByLanguage = map[string]string{
	"en":  "en-US",
	"sw":  "sw-KE",
	"ki":  "sw-KE",
	"kam": "sw-KE",
	"luo": "sw-KE",
	"som": "so-SO",
}

var preferences = map[string]Preference{
	"en-US-female":  {LocaleTag: "en-US", AccentKeywords: []string{"samantha", "allison", "ava", "susan", "zira"}},
	"en-US-male":    {LocaleTag: "en-US", AccentKeywords: []string{"alex", "tom", "david", "mark"}},
	"en-GB-female":  {LocaleTag: "en-GB", AccentKeywords: []string{"kate", "serena", "hazel", "martha"}},
	"en-GB-male":    {LocaleTag: "en-GB", AccentKeywords: []string{"daniel", "oliver", "george", "arthur"}},
	"en-AU-female":  {LocaleTag: "en-AU", AccentKeywords: []string{"karen", "lee", "catherine"}},
	"en-KE-female":  {LocaleTag: "en-KE", AccentKeywords: []string{"kenya", "african"}},
	"sw-KE-female":  {LocaleTag: "sw-KE", AccentKeywords: []string{"swahili", "kiswahili"}},
	"sw-KE-male":    {LocaleTag: "sw-KE", AccentKeywords: []string{"swahili", "kiswahili"}},
	"sw-TZ-female":  {LocaleTag: "sw-TZ", AccentKeywords: []string{"tanzania", "swahili"}},
	"ki-KE-female":  {LocaleTag: "sw-KE", AccentKeywords: []string{"kikuyu", "gikuyu"}},
	"ki-KE-male":    {LocaleTag: "sw-KE", AccentKeywords: []string{"kikuyu", "gikuyu"}},
	"kam-KE-female": {LocaleTag: "sw-KE", AccentKeywords: []string{"kamba", "ukambani"}},
	"kam-KE-male":   {LocaleTag: "sw-KE", AccentKeywords: []string{"kamba", "ukambani"}},
	"luo-KE-female": {LocaleTag: "sw-KE", AccentKeywords: []string{"luo", "dholuo"}},
	"luo-KE-male":   {LocaleTag: "sw-KE", AccentKeywords: []string{"luo", "dholuo"}},
	"so-SO-female":  {LocaleTag: "so-SO", AccentKeywords: []string{"somali", "soomaali"}},
	"so-SO-male":    {LocaleTag: "so-SO", AccentKeywords: []string{"somali", "soomaali"}},
}

// Display-name keywords that identify a voice's gender across the common
// desktop and mobile synthesis engines.
var (
	FemaleKeywords = []string{"female", "woman", "samantha", "victoria", "karen", "moira", "kate", "serena", "hazel", "allison", "ava", "susan", "zira", "catherine"}
	MaleKeywords   = []string{"male", "man", "daniel", "alex", "david", "mark", "tom", "oliver", "george", "arthur", "fred"}
)

// ProfilesForLanguage returns the voice catalog for a language. Languages
// without a dedicated catalog fall back to the generic default profiles.
func ProfilesForLanguage(code string) []Profile {
	profiles, ok := profilesByLanguage[code]
	if !ok {
		profiles = defaultProfiles
	}
	return append([]Profile(nil), profiles...)
}

// PreferenceFor resolves the matching preference for a requested voice id.
// Unknown voice ids fall back to the language's synthesis locale; unknown
// languages fall back to the generic locale.
func PreferenceFor(voiceID, language string) Preference {
	if pref, ok := preferences[voiceID]; ok {
		return pref
	}
	if tag, ok := localeByLanguage[language]; ok {
		return Preference{LocaleTag: tag}
	}
	return Preference{LocaleTag: GenericLocale}
}

// GenderFor derives the requested gender from a voice id. The female check
// runs first because "female" contains "male" as a substring.
func GenderFor(voiceID string) string {
	switch {
	case strings.Contains(voiceID, GenderFemale):
		return GenderFemale
	case strings.Contains(voiceID, GenderMale):
		return GenderMale
	default:
		return ""
	}
}
