package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// candidate is a numeric token discovered during the scan: its resolved
// value and whether the token carried an explicit unit/currency marker.
type candidate struct {
	value  float64
	marked bool
}

// One pass over the scrubbed text: optional "$" prefix, the numeric body
// (plain, decimal, or grouped thousands), optional trailing unit/currency
// run. Unrecognized trailing words ("4 people") leave the number unmarked.
var amountTokenRe = regexp.MustCompile(`(\$)?\s*(\d+(?:[.,]\d+)*)\s?([\p{L}$₫]+)?`)

// Shorthand unit multipliers and currency suffixes. Currency suffixes carry
// no magnitude but still count as marker-bearing. Unaccented spellings are
// aliases for the slang, not an extension of it.
var suffixMultipliers = map[string]float64{
	"k": 1_000, "xị": 1_000, "xi": 1_000,
	"nghìn": 1_000, "nghin": 1_000, "ngàn": 1_000, "ngan": 1_000,
	"tr": 1_000_000, "triệu": 1_000_000, "trieu": 1_000_000,
	"củ": 1_000_000, "cu": 1_000_000, "chai": 1_000_000,
	"m": 1_000_000, "mil": 1_000_000,
	"vnd": 1, "vnđ": 1, "đ": 1, "₫": 1, "usd": 1, "$": 1,
}

// ExtractAmount scans the text for the most plausible monetary amount.
// Date-shaped substrings are scrubbed first. Selection prefers the maximum
// among marker-bearing candidates (an explicit unit beats a bare number and
// the max guards against incidental digits like item counts), else the
// maximum among all. Returns ok=false when no numeric token exists.
func ExtractAmount(text string, currency Currency) (float64, bool) {
	scrubbed := scrubDates(text)

	var candidates []candidate
	for _, m := range amountTokenRe.FindAllStringSubmatch(scrubbed, -1) {
		value, ok := parseNumericToken(m[2])
		if !ok || value <= 0 {
			continue
		}
		marked := m[1] == "$"
		if suffix := strings.ToLower(m[3]); suffix != "" {
			if mult, known := suffixMultipliers[suffix]; known {
				value *= mult
				marked = true
			}
		}
		candidates = append(candidates, candidate{value: value, marked: marked})
	}
	if len(candidates) == 0 {
		return 0, false
	}

	best, found := 0.0, false
	for _, c := range candidates {
		if c.marked && c.value > best {
			best, found = c.value, true
		}
	}
	if !found {
		for _, c := range candidates {
			if c.value > best {
				best = c.value
			}
		}
	}

	// Colloquial truncation: "cafe 45" means 45,000 VND. Only applied for
	// VND, only under 1000, only next to a known spending cue.
	if currency == CurrencyVND && best < 1000 && containsAny(text, underThousandCues) {
		best *= 1000
	}

	return best, true
}

// parseNumericToken resolves a token that may use '.' or ',' as grouping or
// decimal separator, disambiguated by shape: repeating three-digit groups
// imply grouping ("8.000.000" is eight million, "12.50" is a decimal).
func parseNumericToken(tok string) (float64, bool) {
	hasDot := strings.Contains(tok, ".")
	hasComma := strings.Contains(tok, ",")

	switch {
	case hasDot && hasComma:
		// The later separator is the decimal one, the other is grouping.
		if strings.LastIndex(tok, ".") > strings.LastIndex(tok, ",") {
			tok = strings.ReplaceAll(tok, ",", "")
		} else {
			tok = strings.ReplaceAll(tok, ".", "")
			tok = strings.ReplaceAll(tok, ",", ".")
		}
	case hasDot || hasComma:
		sep := "."
		if hasComma {
			sep = ","
		}
		parts := strings.Split(tok, sep)
		grouped := len(parts) > 1
		for _, p := range parts[1:] {
			if len(p) != 3 {
				grouped = false
				break
			}
		}
		switch {
		case grouped:
			tok = strings.Join(parts, "")
		case len(parts) == 2:
			tok = parts[0] + "." + parts[1]
		default:
			tok = strings.Join(parts, "")
		}
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
