package common

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrUnsupportedType     = errors.New("unsupported transaction type")
)
