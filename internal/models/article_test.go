package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestArticle_JSONShape(t *testing.T) {
	article := Article{
		URL:       "https://example.com/news/2026/ai-story",
		Heading:   "AI story",
		Source:    "example.com",
		ScrapedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(article)
	if err != nil {
		t.Fatalf("Failed to marshal article: %v", err)
	}

	raw := string(data)
	if !strings.Contains(raw, `"url"`) || !strings.Contains(raw, `"heading"`) {
		t.Errorf("Expected url and heading keys, got %s", raw)
	}
	// Empty optional fields stay out of the payload
	if strings.Contains(raw, `"subheading"`) || strings.Contains(raw, `"date"`) {
		t.Errorf("Empty optional fields should be omitted, got %s", raw)
	}
}

func TestArticle_HasHeadingAndIsEmpty(t *testing.T) {
	empty := Article{URL: "https://example.com/news/2026/x-y"}
	if empty.HasHeading() {
		t.Error("Article without heading should not report HasHeading")
	}
	if !empty.IsEmpty() {
		t.Error("Article with only a URL should be empty")
	}

	dated := Article{URL: "https://example.com/news/2026/x-y", Date: "2026-02-10"}
	if dated.IsEmpty() {
		t.Error("Article with a date is not empty")
	}
	if dated.HasHeading() {
		t.Error("Date alone does not make a heading")
	}
}

func TestNewArticlesMetadata(t *testing.T) {
	sources := []string{"IndiaAI Articles", "The Hindu Tech"}
	meta := NewArticlesMetadata(42, sources)

	if meta.TotalArticles != 42 {
		t.Errorf("Expected 42 total articles, got %d", meta.TotalArticles)
	}
	if len(meta.Sources) != 2 {
		t.Errorf("Expected 2 sources, got %d", len(meta.Sources))
	}
	if meta.Version == "" {
		t.Error("Metadata version should be set")
	}
	if meta.LastUpdated.IsZero() {
		t.Error("LastUpdated should be set")
	}
}
