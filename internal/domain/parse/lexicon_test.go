package parse

import "testing"

func TestFoldDiacritics(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"lương", "luong"},
		{"hôm qua", "hom qua"},
		{"nghìn", "nghin"},
		{"đồng", "dong"},
		{"tiền nhà", "tien nha"},
		{"already ascii", "already ascii"},
	}

	for _, tc := range tests {
		if got := foldDiacritics(tc.input); got != tc.expected {
			t.Errorf("foldDiacritics(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestContainsAny(t *testing.T) {
	tests := []struct {
		text     string
		keywords []string
		expected bool
	}{
		{"nhận lương tháng này", incomeKeywords, true},
		// Unaccented input still matches accented keywords.
		{"nhan luong thang nay", incomeKeywords, true},
		{"mua đồ ăn", expenseKeywords, true},
		// Short folded forms stay disabled: "an" alone must not trip "ăn".
		{"an apple a day", expenseKeywords, false},
		{"nothing relevant", incomeKeywords, false},
	}

	for _, tc := range tests {
		if got := containsAny(tc.text, tc.keywords); got != tc.expected {
			t.Errorf("containsAny(%q) = %v, want %v", tc.text, got, tc.expected)
		}
	}
}
