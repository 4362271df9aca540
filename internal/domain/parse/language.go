package parse

import "strings"

// Runes that only occur in Vietnamese orthography (plus the tonal vowels
// most common in money notes). Any hit is a decisive signal.
const vietnameseRunes = "ăâđêôơưàáảãạằắẳẵặầấẩẫậèéẻẽẹềếểễệìíỉĩịòóỏõọồốổỗộờớởỡợùúủũụừứửữựỳýỷỹỵ"

// Common Vietnamese money-note words in unaccented form, for input that
// lost its diacritics in transcription.
var vietnameseCueWords = []string{
	"tien", "hom qua", "hom nay", "mua", "luong", "nghin", "ngan", "trieu",
}

// DetectLanguage guesses the display language when the caller did not
// supply one. It only ever affects label language, never parsing rules.
func DetectLanguage(text string) Language {
	lower := strings.ToLower(text)
	if strings.ContainsAny(lower, vietnameseRunes) {
		return LangVietnamese
	}
	for _, w := range vietnameseCueWords {
		if strings.Contains(lower, w) {
			return LangVietnamese
		}
	}
	return LangEnglish
}
