package parse

import (
	"regexp"
	"strings"
)

var (
	// A digit followed by a bare "k" or "tr" token ("45k", "2 tr") is a
	// strong VND signal even without a currency word.
	vndShorthandRe = regexp.MustCompile(`(?i)\d\s*(?:k|tr)(?:[^\p{L}\d]|$)`)

	// A digit followed by the đồng letter ("45000đ").
	vndDongRe = regexp.MustCompile(`(?i)\d\s*đ`)
)

var vndWords = []string{"vnd", "₫", "triệu", "trieu", "nghìn", "nghin", "ngàn", "ngan"}

// DetectCurrency infers USD or VND from lexical cues, first match wins.
// It never fails: with no cue it returns the caller-supplied fallback
// (VND when the fallback itself is empty).
func DetectCurrency(text string, fallback Currency) Currency {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "$") || strings.Contains(lower, "usd") || strings.Contains(lower, "dollar") {
		return CurrencyUSD
	}

	for _, w := range vndWords {
		if strings.Contains(lower, w) {
			return CurrencyVND
		}
	}
	if vndShorthandRe.MatchString(lower) || vndDongRe.MatchString(lower) {
		return CurrencyVND
	}

	if fallback == "" {
		return CurrencyVND
	}
	return fallback
}
