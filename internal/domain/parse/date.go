package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

var (
	isoDateRe = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	dmyDateRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`)

	// "day 5" / "ngày 12" phrases. Only used for scrubbing before amount
	// extraction, never resolved to a calendar date.
	dayWordRe = regexp.MustCompile(`(?i)(?:\bday|ngày|ngay)\s*\d{1,2}\b`)
)

var (
	yesterdayWords = []string{"yesterday", "hôm qua", "hom qua"}
	todayWords     = []string{"today", "hôm nay", "hom nay"}
)

// NormalizeDate resolves a calendar date from the text, in order: relative
// day words, an embedded ISO date, an embedded D/M[/Y] date, else "now".
// Two-digit years are read as 20YY; a missing year defaults to the current
// year. The result is always a valid ISO YYYY-MM-DD string.
func NormalizeDate(text string, now time.Time) string {
	lower := strings.ToLower(text)
	folded := foldDiacritics(lower)

	for _, w := range yesterdayWords {
		if strings.Contains(lower, w) || strings.Contains(folded, w) {
			return now.AddDate(0, 0, -1).Format(isoDate)
		}
	}
	for _, w := range todayWords {
		if strings.Contains(lower, w) || strings.Contains(folded, w) {
			return now.Format(isoDate)
		}
	}

	if m := isoDateRe.FindString(text); m != "" {
		if _, err := time.Parse(isoDate, m); err == nil {
			return m
		}
	}

	if m := dmyDateRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			y, _ := strconv.Atoi(m[3])
			if len(m[3]) == 2 {
				y += 2000
			}
			year = y
		}
		if d, ok := calendarDate(year, month, day); ok {
			return d.Format(isoDate)
		}
	}

	return now.Format(isoDate)
}

// calendarDate builds a date and rejects values time.Date would normalize
// away (31/2, month 13, ...).
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || int(d.Month()) != month || d.Year() != year {
		return time.Time{}, false
	}
	return d, true
}

// scrubDates blanks date-shaped substrings so day/month/year digits are
// never mistaken for a price. Must run before the amount scan; folding the
// two passes into one regex lets date digits leak into amount candidates.
func scrubDates(text string) string {
	out := isoDateRe.ReplaceAllString(text, " ")
	out = dmyDateRe.ReplaceAllString(out, " ")
	out = dayWordRe.ReplaceAllString(out, " ")
	return out
}
