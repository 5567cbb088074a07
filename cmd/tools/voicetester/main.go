// voicetester exercises the voice matcher against a captured platform voice
// list, printing what the assistant would narrate with.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	voicemodel "github.com/FRANKMAKORI/your-revenue-ai/internal/model/voice"
	"github.com/FRANKMAKORI/your-revenue-ai/internal/service/speech"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	voicesPath := flag.String("voices", "", "path to a JSON file with the platform voice list")
	voiceID := flag.String("voice", "", "catalog voice id to match (e.g. sw-KE-female)")
	language := flag.String("lang", "en", "language code the conversation uses")
	listCatalog := flag.Bool("catalog", false, "print the voice catalog for -lang and exit")

	flag.Parse()

	if *listCatalog {
		printCatalog(*language)
		return
	}

	if *voicesPath == "" || *voiceID == "" {
		flag.Usage()
		log.Fatal("provide -voices and -voice, or use -catalog")
	}

	raw, err := os.ReadFile(*voicesPath)
	if err != nil {
		log.Fatalf("failed to read voices file: %v", err)
	}

	var available []voicemodel.Voice
	if err := json.Unmarshal(raw, &available); err != nil {
		log.Fatalf("failed to parse voices file: %v", err)
	}

	matched, score := speech.MatchScored(*voiceID, *language, available)
	if matched == nil {
		fmt.Printf("no platform voice matched %s (language %s) among %d voices\n", *voiceID, *language, len(available))
		pref := voicemodel.PreferenceFor(*voiceID, *language)
		fmt.Printf("requested locale was %s\n", pref.LocaleTag)
		return
	}

	fmt.Printf("matched voice: %s\n", matched.Name)
	fmt.Printf("  locale:  %s\n", matched.Lang)
	fmt.Printf("  local:   %v\n", matched.LocalService)
	fmt.Printf("  score:   %d\n", score)
}

func printCatalog(language string) {
	profiles := voicemodel.ProfilesForLanguage(language)
	fmt.Printf("voice catalog for %q (%d entries):\n", language, len(profiles))
	for _, p := range profiles {
		fmt.Printf("  %-16s %-12s %s\n", p.ID, p.Name, p.Accent)
	}
}
