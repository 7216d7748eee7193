package scraper

import "testing"

func TestParseJSONLD_SingleObject(t *testing.T) {
	raw := `{
		"@context": "https://schema.org",
		"@type": "NewsArticle",
		"headline": "Government unveils AI mission",
		"description": "A new national programme for artificial intelligence.",
		"datePublished": "2026-02-10T08:30:00+05:30"
	}`

	ld := ParseJSONLD(raw)
	if ld == nil {
		t.Fatal("Expected an article node, got nil")
	}
	if ld.Headline != "Government unveils AI mission" {
		t.Errorf("Unexpected headline: %q", ld.Headline)
	}
	if ld.Description == "" {
		t.Error("Expected description to be populated")
	}
	if ld.DatePublished != "2026-02-10T08:30:00+05:30" {
		t.Errorf("Unexpected datePublished: %q", ld.DatePublished)
	}
}

func TestParseJSONLD_ArrayPicksArticleNode(t *testing.T) {
	raw := `[
		{"@type": "WebPage", "headline": "ignored"},
		{"@type": "BlogPosting", "headline": "AI in the courts", "datePublished": "2026-01-05"},
		{"@type": "Article", "headline": "second article"}
	]`

	ld := ParseJSONLD(raw)
	if ld == nil {
		t.Fatal("Expected an article node, got nil")
	}
	if ld.Headline != "AI in the courts" {
		t.Errorf("Expected the first article-typed node, got %q", ld.Headline)
	}
}

func TestParseJSONLD_NonArticleTypes(t *testing.T) {
	cases := map[string]string{
		"organization": `{"@type": "Organization", "name": "Example"}`,
		"breadcrumb":   `{"@type": "BreadcrumbList"}`,
		"empty array":  `[]`,
	}

	for name, raw := range cases {
		if ld := ParseJSONLD(raw); ld != nil {
			t.Errorf("%s: expected nil, got %+v", name, ld)
		}
	}
}

func TestParseJSONLD_MalformedInput(t *testing.T) {
	cases := []string{
		"",
		"not json at all",
		`{"@type": "NewsArticle", "headline":`,
		`12345`,
	}

	for _, raw := range cases {
		if ld := ParseJSONLD(raw); ld != nil {
			t.Errorf("Expected nil for %q, got %+v", raw, ld)
		}
	}
}
