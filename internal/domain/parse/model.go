// Package parse implements the local free-text transaction extractor.
// Given a short informal sentence (English or Vietnamese, typed, voice
// transcribed, or OCR-derived) it produces a structured transaction record
// without calling any external service, or fails with ErrNoAmountFound so
// the caller can escalate to a remote normalizer.
package parse

// TxType classifies a transaction as money in or money out.
type TxType string

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

// Currency is one of the two supported currency codes.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyVND Currency = "VND"
)

// Language selects the label language for categories and error messages.
type Language string

const (
	LangEnglish    Language = "en"
	LangVietnamese Language = "vi"
)

// ParsedTransaction is the extractor output. It carries no identity of its
// own; the caller assigns an id and timestamps before persisting.
type ParsedTransaction struct {
	Type      TxType   `json:"type"`
	Amount    float64  `json:"amount"`
	Currency  Currency `json:"currency"`
	Category  string   `json:"category"`
	Merchant  string   `json:"merchant,omitempty"` // reserved for the remote normalizer
	Date      string   `json:"date"`               // ISO YYYY-MM-DD
	Note      string   `json:"note"`
	InputMode string   `json:"input_mode"`
	RawInput  string   `json:"raw_input"`
}

// Options carries caller context for a single Parse call.
type Options struct {
	// InputMode is a provenance tag ("manual", "text", "voice", "image").
	// It is recorded verbatim, never inferred.
	InputMode string
	// Language selects label language. Empty means detect from the text.
	Language Language
	// FallbackCurrency is assumed when no lexical cue determines one.
	// Empty defaults to VND.
	FallbackCurrency Currency
	// PreferredType, when set, overrides keyword inference entirely
	// (e.g. a UI toggle already told us the direction).
	PreferredType TxType
}
