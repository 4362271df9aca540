package parse

import "errors"

// ErrNoAmountFound is the single failure mode of the extractor: no numeric
// token anywhere in the (date-scrubbed) input. Every other stage is total
// and falls back to a documented default instead of failing.
var ErrNoAmountFound = errors.New("no valid amount found")

// NoAmountError carries the language-appropriate message for the caller to
// surface. It unwraps to ErrNoAmountFound so errors.Is keeps working.
type NoAmountError struct {
	Lang Language
}

func (e *NoAmountError) Error() string { return e.Message() }

func (e *NoAmountError) Unwrap() error { return ErrNoAmountFound }

// Message returns the user-facing text in the display language.
func (e *NoAmountError) Message() string {
	if e.Lang == LangVietnamese {
		return "không tìm thấy số tiền hợp lệ"
	}
	return "no valid amount found"
}
