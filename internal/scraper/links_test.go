package scraper

import (
	"fmt"
	"reflect"
	"testing"
)

func TestFilterArticleLinks_ResolvesAndFilters(t *testing.T) {
	base := "https://news.example.com/technology/"
	hrefs := []string{
		"/news/2026/02/ai-budget-boost",                         // relative, valid
		"https://news.example.com/news/2026/02/ai-budget-boost", // duplicate of above
		"https://news.example.com/article/chip-fab-story",       // absolute, valid
		"https://other.example.org/news/2026/02/ai-story",       // different domain
		"/about-us",                // blacklisted
		"/news",                    // too shallow
		"mailto:editor@example.com", // not http
		"",                         // empty
	}

	got := FilterArticleLinks(base, hrefs, 15)
	want := []string{
		"https://news.example.com/article/chip-fab-story",
		"https://news.example.com/news/2026/02/ai-budget-boost",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterArticleLinks() = %v, want %v", got, want)
	}
}

func TestFilterArticleLinks_CapsResult(t *testing.T) {
	base := "https://news.example.com/"

	var hrefs []string
	for i := 0; i < 40; i++ {
		hrefs = append(hrefs, fmt.Sprintf("/news/2026/02/story-number-%02d", i))
	}

	got := FilterArticleLinks(base, hrefs, 15)
	if len(got) != 15 {
		t.Errorf("Expected 15 capped links, got %d", len(got))
	}

	// Uncapped keeps everything
	all := FilterArticleLinks(base, hrefs, 0)
	if len(all) != 40 {
		t.Errorf("Expected 40 links with no cap, got %d", len(all))
	}
}

func TestFilterArticleLinks_SameDomainOnly(t *testing.T) {
	base := "https://example.com/news/"
	hrefs := []string{
		"https://example.com/news/2026/good-story-here",
		"https://evil.com/news/2026/bad-story-here",
		"https://cdn.example.com.evil.com/news/2026/sneaky-story", // host merely contains base host
	}

	got := FilterArticleLinks(base, hrefs, 15)
	if len(got) != 2 {
		t.Fatalf("Expected 2 links, got %d: %v", len(got), got)
	}
	for _, link := range got {
		if link == "https://evil.com/news/2026/bad-story-here" {
			t.Errorf("Off-domain link survived the filter: %s", link)
		}
	}
}

func TestFilterArticleLinks_BadBaseURL(t *testing.T) {
	if got := FilterArticleLinks("://not-a-url", []string{"/news/2026/story-x"}, 15); got != nil {
		t.Errorf("Expected nil for unparseable base, got %v", got)
	}
}
