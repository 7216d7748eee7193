package scraper

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already clean", "AI mission expands", "AI mission expands"},
		{"collapses runs", "AI   mission \t expands", "AI mission expands"},
		{"newlines and tabs", "AI\nmission\t\texpands\n", "AI mission expands"},
		{"leading and trailing", "   AI mission   ", "AI mission"},
		{"empty", "", ""},
		{"only whitespace", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tt.input); got != tt.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"shorter than cap", "AI mission", 20, "AI mission"},
		{"exactly at cap", "AI", 2, "AI"},
		{"ascii truncation", "AI mission expands", 10, "AI mission"},
		{"devanagari keeps whole runes", "कृत्रिम बुद्धिमत्ता", 7, "कृत्रिम"},
		{"empty", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateRunes(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}
