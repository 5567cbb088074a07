package catalog

// Language is a selectable conversation language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Region     string `json:"region,omitempty"`
}

// Regions lists the grouping order the language picker presents.
func Regions() []string {
	return []string{
		"International", "Central Kenya", "Eastern Kenya", "Western Kenya",
		"Nyanza", "Rift Valley", "Coastal Kenya", "Northern Kenya", "Other", "Urban",
	}
}

// Languages returns the supported conversation languages grouped by region.
func Languages() []Language {
	return []Language{
		{Code: "en", Name: "English", NativeName: "English", Region: "International"},
		{Code: "sw", Name: "Swahili", NativeName: "Kiswahili", Region: "International"},

		{Code: "ebu", Name: "Embu", NativeName: "Kĩembu", Region: "Central Kenya"},
		{Code: "ki", Name: "Kikuyu", NativeName: "Gĩkũyũ", Region: "Central Kenya"},
		{Code: "mbe", Name: "Mbeere", NativeName: "Kĩmbeere", Region: "Central Kenya"},
		{Code: "mer", Name: "Meru", NativeName: "Kĩmĩrũ", Region: "Central Kenya"},
		{Code: "tha", Name: "Tharaka", NativeName: "Kitharaka", Region: "Central Kenya"},

		{Code: "kam", Name: "Kamba", NativeName: "Kikamba", Region: "Eastern Kenya"},
		{Code: "dav", Name: "Taita", NativeName: "Kidawida", Region: "Eastern Kenya"},
		{Code: "tav", Name: "Taveta", NativeName: "Kitaveta", Region: "Eastern Kenya"},

		{Code: "buk", Name: "Bukusu", NativeName: "Lubukusu", Region: "Western Kenya"},
		{Code: "isu", Name: "Isukha", NativeName: "Lwisukha", Region: "Western Kenya"},
		{Code: "khy", Name: "Khayo", NativeName: "Olukhayo", Region: "Western Kenya"},
		{Code: "luy", Name: "Luhya", NativeName: "Luluhya", Region: "Western Kenya"},
		{Code: "mra", Name: "Maragoli", NativeName: "Lulogooli", Region: "Western Kenya"},
		{Code: "sam", Name: "Samia", NativeName: "Lusamia", Region: "Western Kenya"},
		{Code: "tir", Name: "Tiriki", NativeName: "Ludirichi", Region: "Western Kenya"},
		{Code: "wan", Name: "Wanga", NativeName: "Oluwanga", Region: "Western Kenya"},
		{Code: "ban", Name: "Banyala", NativeName: "Lunyala", Region: "Western Kenya"},
		{Code: "guz", Name: "Kisii", NativeName: "Ekegusii", Region: "Western Kenya"},
		{Code: "kuj", Name: "Kuria", NativeName: "Ikuria", Region: "Western Kenya"},

		{Code: "luo", Name: "Luo", NativeName: "Dholuo", Region: "Nyanza"},
		{Code: "sub", Name: "Suba", NativeName: "Suba", Region: "Nyanza"},

		{Code: "elo", Name: "El Molo", NativeName: "El Molo", Region: "Rift Valley"},
		{Code: "kal", Name: "Kalenjin", NativeName: "Kalenjin", Region: "Rift Valley"},
		{Code: "kei", Name: "Keiyo", NativeName: "Keiyo", Region: "Rift Valley"},
		{Code: "mrk", Name: "Marakwet", NativeName: "Markweta", Region: "Rift Valley"},
		{Code: "nan", Name: "Nandi", NativeName: "Kalenjin", Region: "Rift Valley"},
		{Code: "pko", Name: "Pokot", NativeName: "Pökoot", Region: "Rift Valley"},
		{Code: "sab", Name: "Sabaot", NativeName: "Sabaot", Region: "Rift Valley"},
		{Code: "tug", Name: "Tugen", NativeName: "Tugen", Region: "Rift Valley"},
		{Code: "mas", Name: "Maasai", NativeName: "Maa", Region: "Rift Valley"},
		{Code: "saq", Name: "Samburu", NativeName: "Samburu", Region: "Rift Valley"},
		{Code: "tuv", Name: "Turkana", NativeName: "Turkana", Region: "Rift Valley"},
		{Code: "oki", Name: "Ogiek", NativeName: "Ogiek", Region: "Rift Valley"},

		{Code: "cho", Name: "Chonyi", NativeName: "Chichonyi", Region: "Coastal Kenya"},
		{Code: "dig", Name: "Digo", NativeName: "Chidigo", Region: "Coastal Kenya"},
		{Code: "dur", Name: "Duruma", NativeName: "Chiduruma", Region: "Coastal Kenya"},
		{Code: "nyf", Name: "Giriama", NativeName: "Kigiriama", Region: "Coastal Kenya"},
		{Code: "jib", Name: "Jibana", NativeName: "Chijibana", Region: "Coastal Kenya"},
		{Code: "kau", Name: "Kauma", NativeName: "Chikauma", Region: "Coastal Kenya"},
		{Code: "kmb", Name: "Kambe", NativeName: "Chikambe", Region: "Coastal Kenya"},
		{Code: "rab", Name: "Rabai", NativeName: "Chirabai", Region: "Coastal Kenya"},
		{Code: "rib", Name: "Ribe", NativeName: "Chiribe", Region: "Coastal Kenya"},
		{Code: "pkb", Name: "Pokomo", NativeName: "Kipfokomo", Region: "Coastal Kenya"},

		{Code: "bor", Name: "Borana", NativeName: "Borana", Region: "Northern Kenya"},
		{Code: "das", Name: "Dasenach", NativeName: "Dasenach", Region: "Northern Kenya"},
		{Code: "gax", Name: "Gabra", NativeName: "Gabra", Region: "Northern Kenya"},
		{Code: "rel", Name: "Rendille", NativeName: "Rendille", Region: "Northern Kenya"},
		{Code: "sak", Name: "Sakuye", NativeName: "Sakuye", Region: "Northern Kenya"},
		{Code: "som", Name: "Somali", NativeName: "Soomaali", Region: "Northern Kenya"},

		{Code: "nub", Name: "Nubi", NativeName: "Kinubi", Region: "Other"},
		{Code: "yaa", Name: "Yaaku", NativeName: "Yaaku", Region: "Other"},
		{Code: "sheng", Name: "Sheng", NativeName: "Sheng", Region: "Urban"},
	}
}

// FindLanguage looks up a language by code.
func FindLanguage(code string) (Language, bool) {
	for _, lang := range Languages() {
		if lang.Code == code {
			return lang, true
		}
	}
	return Language{}, false
}
