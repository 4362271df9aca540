package parse

import "regexp"

// categoryRule binds a pattern to a bilingual label pair. Rules are
// evaluated top to bottom and the first match wins, so the order below is
// the tie-break when a sentence carries several keyword families.
type categoryRule struct {
	pattern *regexp.Regexp
	en, vi  string
}

// Vietnamese terms avoid \b (ASCII-only in RE2); short risky ones get a
// manual letter boundary instead so "xe" never fires inside "xem".
var categoryRules = []categoryRule{
	{
		pattern: regexp.MustCompile(`(?i)(lương|luong|thưởng|\bsalary\b|\bbonus\b|\bfreelance\b|\bpayroll\b)`),
		en:      "Salary", vi: "Thu nhập",
	},
	{
		pattern: regexp.MustCompile(`(?i)(\b(lunch|dinner|breakfast|food|coffee|cafe|restaurant|snack|beer|pho)\b|cà phê|ca phe|trà sữa|nhậu|(?:^|[^\p{L}])(ăn|cơm|phở|bún|bánh)(?:$|[^\p{L}]))`),
		en:      "Food & Drink", vi: "Ăn uống",
	},
	{
		pattern: regexp.MustCompile(`(?i)(\brent\b|\bhousing\b|\blandlord\b|tiền nhà|tien nha|thuê nhà|chung cư)`),
		en:      "Housing", vi: "Nhà ở",
	},
	{
		pattern: regexp.MustCompile(`(?i)(\b(grab|taxi|bus|uber|fuel|parking|metro)\b|xăng|xe ôm|gửi xe|(?:^|[^\p{L}])xe(?:$|[^\p{L}]))`),
		en:      "Transport", vi: "Di chuyển",
	},
	{
		pattern: regexp.MustCompile(`(?i)(\b(bill|bills|electricity|electric|internet|wifi|water)\b|hóa đơn|hoa don|tiền điện|tiền nước|điện thoại)`),
		en:      "Bills & Utilities", vi: "Hóa đơn",
	},
	{
		pattern: regexp.MustCompile(`(?i)(\b(doctor|hospital|pharmacy|medicine|clinic|dentist)\b|thuốc|khám|bệnh viện)`),
		en:      "Health", vi: "Sức khỏe",
	},
	{
		pattern: regexp.MustCompile(`(?i)(\b(movie|cinema|game|netflix|spotify|concert|karaoke)\b|xem phim|giải trí|phim)`),
		en:      "Entertainment", vi: "Giải trí",
	},
	{
		pattern: regexp.MustCompile(`(?i)(\b(course|tuition|school|books|book|udemy)\b|học phí|khóa học|sách|(?:^|[^\p{L}])học(?:$|[^\p{L}]))`),
		en:      "Education", vi: "Giáo dục",
	},
	// Shopping last among the keyworded rules: its bare "mua" would
	// otherwise shadow "mua thuốc" (health) or "mua sách" (education).
	{
		pattern: regexp.MustCompile(`(?i)(\b(shopping|shopee|lazada|amazon|clothes|shoes)\b|mua sắm|quần áo|(?:^|[^\p{L}])mua(?:$|[^\p{L}]))`),
		en:      "Shopping", vi: "Mua sắm",
	},
}

// ClassifyCategory maps the raw text to a bilingual category label. With no
// rule match it falls back to the type-dependent default label.
func ClassifyCategory(text string, lang Language, txType TxType) string {
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(text) {
			if lang == LangVietnamese {
				return rule.vi
			}
			return rule.en
		}
	}
	if txType == TypeIncome {
		if lang == LangVietnamese {
			return "Thu khác"
		}
		return "Other Income"
	}
	if lang == LangVietnamese {
		return "Chi khác"
	}
	return "Other Expense"
}
