package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Income cues: salary, bonus, freelance, being paid, incoming transfers.
// Matched as case-insensitive substrings against the raw text.
var incomeKeywords = []string{
	// English
	"salary", "bonus", "freelance", "got paid", "paid me", "income",
	"refund", "interest",
	// Vietnamese
	"lương", "thưởng", "được trả", "nhận tiền", "tiền về", "chuyển vào",
	"hoàn tiền",
}

// Expense cues: spending, bills, rent, food, transport.
var expenseKeywords = []string{
	// English
	"buy", "bought", "pay", "spent", "rent", "bill", "shopping",
	"lunch", "dinner", "breakfast", "coffee", "taxi", "bus", "grab",
	// Vietnamese
	"mua", "trả", "ăn", "uống", "cà phê", "xăng", "hóa đơn",
	"tiền nhà", "đi chợ", "nhậu",
}

// underThousandCues gates the colloquial-truncation correction: a VND amount
// below 1000 next to one of these food/transport/shopping words is read as
// thousands ("cafe 45" means 45,000). The set is a fixed observable contract;
// widening it changes parsing outcomes, so treat additions as breaking.
var underThousandCues = []string{
	"cafe", "cà phê", "coffee", "trà", "ăn", "cơm", "phở", "bún", "bánh",
	"grab", "taxi", "xe ôm", "xăng", "bus", "gửi xe",
	"mua", "chợ", "shopping",
}

// foldDiacritics strips combining marks and maps đ/Đ to d/D, so that
// unaccented voice or OCR text still hits the Vietnamese lexicons.
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	out = strings.ReplaceAll(out, "đ", "d")
	out = strings.ReplaceAll(out, "Đ", "D")
	return out
}

// containsAny reports whether any keyword occurs in the text. Keywords with
// diacritics also match their folded spelling, but only when the keyword is
// long enough that the folded form stays distinctive ("lương" matches
// "luong"; folding "ăn" to "an" would match half of English).
func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	folded := foldDiacritics(lower)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
		if fkw := foldDiacritics(kw); fkw != kw && utf8.RuneCountInString(kw) >= 4 {
			if strings.Contains(folded, fkw) {
				return true
			}
		}
	}
	return false
}
