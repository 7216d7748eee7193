package scraper

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-rod/rod"

	"ai-news-scraper/internal/models"
)

// Selector fallbacks, tried in order until one yields usable text
var (
	headingSelectors    = []string{"h1", "[class*='title']", "[class*='headline']"}
	subheadingSelectors = []string{"h2", "[class*='subtitle']", "[class*='excerpt']", "article p"}
	dateSelectors       = []string{"time", "[class*='date']", "[class*='publish']"}
)

const (
	// Selector text shorter than this is treated as noise
	minSelectorTextLen = 5
	// Page-text excerpt cap handed to the LLM fallback
	maxExcerptLen = 6000
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// NormalizeWhitespace collapses runs of whitespace to single spaces and
// trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// ScrapeArticle loads an article page and runs the extraction cascade:
// JSON-LD, then og:/article: meta tags, then selector fallbacks. The
// timeout bounds the navigation wait. The returned excerpt is body text
// for the LLM fallback; it is only captured when the cascade failed to
// find a heading.
func (b *Browser) ScrapeArticle(ctx *rod.Browser, articleURL string, timeout time.Duration) (*models.Article, string, error) {
	page, err := b.NewPage(ctx)
	if err != nil {
		return nil, "", err
	}
	defer page.Close()

	if err := navigate(page, articleURL, timeout, articleIdleGrace); err != nil {
		return nil, "", err
	}

	article := &models.Article{
		URL:       articleURL,
		ScrapedAt: time.Now().UTC(),
	}

	if ld := extractJSONLD(page); ld != nil {
		article.Heading = ld.Headline
		article.Subheading = ld.Description
		article.Date = ld.DatePublished
	}

	if article.Heading == "" {
		article.Heading = metaContent(page, "og:title")
	}
	if article.Subheading == "" {
		article.Subheading = metaContent(page, "og:description")
	}
	if article.Date == "" {
		article.Date = metaContent(page, "article:published_time")
	}

	if article.Heading == "" {
		article.Heading = firstText(page, headingSelectors)
	}
	if article.Subheading == "" {
		article.Subheading = firstText(page, subheadingSelectors)
	}
	if article.Date == "" {
		article.Date = firstText(page, dateSelectors)
	}

	article.Heading = NormalizeWhitespace(article.Heading)
	article.Subheading = NormalizeWhitespace(article.Subheading)
	article.Date = NormalizeWhitespace(article.Date)

	var excerpt string
	if article.Heading == "" {
		excerpt = bodyExcerpt(page)
	}

	return article, excerpt, nil
}

// extractJSONLD scans ld+json script blocks for an article-typed node
func extractJSONLD(page *rod.Page) *JSONLDArticle {
	elements, err := page.Elements("script[type='application/ld+json']")
	if err != nil {
		return nil
	}

	for _, el := range elements {
		text, err := el.Property("textContent")
		if err != nil {
			continue
		}
		if ld := ParseJSONLD(text.Str()); ld != nil {
			return ld
		}
	}
	return nil
}

// metaContent reads a meta tag's content by property or name attribute
func metaContent(page *rod.Page, name string) string {
	selector := fmt.Sprintf("meta[property='%s'], meta[name='%s']", name, name)
	elements, err := page.Elements(selector)
	if err != nil || len(elements) == 0 {
		return ""
	}

	content, err := elements[0].Attribute("content")
	if err != nil || content == nil {
		return ""
	}
	return *content
}

// firstText returns the first selector whose first match has text
// longer than the noise threshold
func firstText(page *rod.Page, selectors []string) string {
	for _, selector := range selectors {
		elements, err := page.Elements(selector)
		if err != nil || len(elements) == 0 {
			continue
		}

		text, err := elements[0].Text()
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if len(text) > minSelectorTextLen {
			return text
		}
	}
	return ""
}

// bodyExcerpt grabs a capped chunk of visible body text
func bodyExcerpt(page *rod.Page) string {
	obj, err := page.Eval(`() => document.body ? document.body.innerText : ""`)
	if err != nil {
		return ""
	}
	return truncateRunes(NormalizeWhitespace(obj.Value.Str()), maxExcerptLen)
}

// truncateRunes caps a string at max runes without splitting a
// multi-byte sequence
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
