package domain

// Language codes supported by the UI.
const (
	LanguageEnglish = "en"
	LanguageUrdu    = "ur"
	LanguageArabic  = "ar"
	LanguageChinese = "zh"
)

// SupportedLanguages lists the selectable UI languages.
var SupportedLanguages = []string{LanguageEnglish, LanguageUrdu, LanguageArabic, LanguageChinese}

// rtlLanguages is the fixed set of right-to-left language codes.
var rtlLanguages = map[string]bool{
	LanguageUrdu:   true,
	LanguageArabic: true,
}

// IsValidLanguage reports whether code is a supported language.
func IsValidLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}

// TextDirection returns the document text direction for a language code.
func TextDirection(code string) string {
	if rtlLanguages[code] {
		return "rtl"
	}
	return "ltr"
}

// Theme values.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// IsValidTheme reports whether t is a recognised theme.
func IsValidTheme(t string) bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeSystem
}

// Preferences bundles the per-user UI preferences for a single response.
type Preferences struct {
	Language      string `json:"language"`
	TextDirection string `json:"text_direction"`
	Theme         string `json:"theme"`
	ShowBalance   bool   `json:"show_balance"`
}
