package parse

import "testing"

func TestExtractAmount_ShorthandUnits(t *testing.T) {
	tests := []struct {
		input    string
		currency Currency
		expected float64
	}{
		{"cafe 45k", CurrencyVND, 45000},
		{"lunch 8 usd", CurrencyUSD, 8},
		{"lương 20tr", CurrencyVND, 20000000},
		{"ăn sáng 30 nghìn", CurrencyVND, 30000},
		{"nhậu hết 2 chai", CurrencyVND, 2000000},
		{"bán xe được 3 củ", CurrencyVND, 3000000},
		{"tiền phòng 1.5tr", CurrencyVND, 1500000},
		{"thưởng 2 xị", CurrencyVND, 2000},
		{"freelance gig 1m", CurrencyVND, 1000000},
	}

	for _, tc := range tests {
		got, ok := ExtractAmount(tc.input, tc.currency)
		if !ok {
			t.Errorf("ExtractAmount(%q) found no candidate", tc.input)
			continue
		}
		if got != tc.expected {
			t.Errorf("ExtractAmount(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestExtractAmount_GroupedThousands(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"rent 8.000.000 vnd", 8000000},
		{"chuyển khoản 1,500,000đ", 1500000},
		{"trả 45.000", 45000},
		{"nạp điện thoại 20.5k", 20500},
		{"mua sách 1.234", 1234},
	}

	for _, tc := range tests {
		got, ok := ExtractAmount(tc.input, CurrencyVND)
		if !ok {
			t.Errorf("ExtractAmount(%q) found no candidate", tc.input)
			continue
		}
		if got != tc.expected {
			t.Errorf("ExtractAmount(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

// A marker-bearing token wins even when a bare number is larger, and the
// maximum wins within each group.
func TestExtractAmount_MarkerPreference(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"table for 4 people, 250k total", 250000},
		{"3 ly cà phê 90k", 90000},
		{"mua 12 quả trứng 40.000đ", 40000},
		{"order 55 and 70", 70},
	}

	for _, tc := range tests {
		got, ok := ExtractAmount(tc.input, CurrencyVND)
		if !ok {
			t.Errorf("ExtractAmount(%q) found no candidate", tc.input)
			continue
		}
		if got != tc.expected {
			t.Errorf("ExtractAmount(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestExtractAmount_UnderThousandCorrection(t *testing.T) {
	tests := []struct {
		input    string
		currency Currency
		expected float64
	}{
		// VND below 1000 next to a spending cue is read as thousands.
		{"cafe 45", CurrencyVND, 45000},
		{"grab 120", CurrencyVND, 120000},
		// No cue: the bare number stands.
		{"chuyển 500", CurrencyVND, 500},
		// USD never gets the correction.
		{"coffee 4", CurrencyUSD, 4},
	}

	for _, tc := range tests {
		got, ok := ExtractAmount(tc.input, tc.currency)
		if !ok {
			t.Errorf("ExtractAmount(%q) found no candidate", tc.input)
			continue
		}
		if got != tc.expected {
			t.Errorf("ExtractAmount(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

// Date-shaped digits must be scrubbed before the scan so they never become
// amount candidates.
func TestExtractAmount_DateScrub(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"2024-01-05 lunch 100k", 100000},
		{"ăn tối 15/3 hết 80k", 80000},
		{"ngày 12 mua đồ 200k", 200000},
		{"hóa đơn 5/3/24 1.2tr", 1200000},
	}

	for _, tc := range tests {
		got, ok := ExtractAmount(tc.input, CurrencyVND)
		if !ok {
			t.Errorf("ExtractAmount(%q) found no candidate", tc.input)
			continue
		}
		if got != tc.expected {
			t.Errorf("ExtractAmount(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestExtractAmount_NoCandidate(t *testing.T) {
	inputs := []string{
		"",
		"ăn trưa với bạn",
		"coffee with an old friend",
		"lunch on 12/5", // only a date, scrubbed away
	}

	for _, input := range inputs {
		if got, ok := ExtractAmount(input, CurrencyVND); ok {
			t.Errorf("ExtractAmount(%q) = %v, want no candidate", input, got)
		}
	}
}

func TestParseNumericToken(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"45", 45},
		{"12.50", 12.5},
		{"12,50", 12.5},
		{"8.000.000", 8000000},
		{"1,000,000", 1000000},
		{"1,234.56", 1234.56},
		{"1.234,56", 1234.56},
		{"1.5", 1.5},
	}

	for _, tc := range tests {
		got, ok := parseNumericToken(tc.input)
		if !ok {
			t.Errorf("parseNumericToken(%q) failed", tc.input)
			continue
		}
		if got != tc.expected {
			t.Errorf("parseNumericToken(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}
