package parse

// ClassifyType decides income vs. expense. A caller-preferred type wins
// unconditionally (UI context beats inference). Otherwise the income lexicon
// is checked before the expense lexicon, and expense is the default: expense
// entries dominate real usage, so defaulting there minimizes the cost of a
// miss.
func ClassifyType(text string, preferred TxType) TxType {
	if preferred == TypeIncome || preferred == TypeExpense {
		return preferred
	}
	if containsAny(text, incomeKeywords) {
		return TypeIncome
	}
	if containsAny(text, expenseKeywords) {
		return TypeExpense
	}
	return TypeExpense
}
