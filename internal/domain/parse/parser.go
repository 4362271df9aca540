package parse

import "time"

// Parser orchestrates the extraction pipeline. It holds no mutable state
// beyond the injected clock; the lexicons and rule tables are package-level
// read-only data, safe to share across concurrent callers.
type Parser struct {
	now func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock overrides the wall clock, mainly for tests that pin "today".
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// NewParser creates a parser using the process wall clock.
func NewParser(opts ...Option) *Parser {
	p := &Parser{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the full pipeline over one raw input string:
// detect currency, extract amount (the only stage that can fail), classify
// type and category, normalize the date, and assemble the record with the
// untouched original preserved in Note and RawInput. Merchant is left empty;
// it is reserved for the remote normalizer.
func (p *Parser) Parse(rawInput string, opts Options) (*ParsedTransaction, error) {
	lang := opts.Language
	if lang == "" {
		lang = DetectLanguage(rawInput)
	}
	fallback := opts.FallbackCurrency
	if fallback == "" {
		fallback = CurrencyVND
	}

	currency := DetectCurrency(rawInput, fallback)

	amount, ok := ExtractAmount(rawInput, currency)
	if !ok {
		return nil, &NoAmountError{Lang: lang}
	}

	txType := ClassifyType(rawInput, opts.PreferredType)
	category := ClassifyCategory(rawInput, lang, txType)
	date := NormalizeDate(rawInput, p.now())

	return &ParsedTransaction{
		Type:      txType,
		Amount:    amount,
		Currency:  currency,
		Category:  category,
		Date:      date,
		Note:      rawInput,
		InputMode: opts.InputMode,
		RawInput:  rawInput,
	}, nil
}
