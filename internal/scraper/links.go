package scraper

import (
	"log"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/go-rod/rod"
)

// Selectors targeting article-like anchors on index pages. The broad
// all-anchors fallback only runs when every one of these comes up empty.
var articleLinkSelectors = []string{
	"article a",
	"a[href*='article']",
	"a[href*='news']",
	"a[href*='press']",
	"a[href*='post']",
	".article-link",
	".news-link",
	".post-link",
	".story-link",
	"[class*='article'] a",
	"[class*='news'] a",
	"[class*='post'] a",
}

const maxLinksPerSelector = 50

// DiscoverLinks loads an index page and returns up to maxLinks
// same-domain URLs that pass the article filter. The timeout bounds the
// DOMContentLoaded wait for this source.
func DiscoverLinks(page *rod.Page, baseURL string, timeout time.Duration, maxLinks int) ([]string, error) {
	if err := navigate(page, baseURL, timeout, indexIdleGrace); err != nil {
		return nil, err
	}

	raw := make(map[string]struct{})

	for _, selector := range articleLinkSelectors {
		elements, err := page.Elements(selector)
		if err != nil {
			continue
		}
		for i, el := range elements {
			if i >= maxLinksPerSelector {
				break
			}
			href, err := el.Attribute("href")
			if err != nil || href == nil || *href == "" {
				continue
			}
			raw[*href] = struct{}{}
		}
	}

	// Fallback: grab every anchor if the targeted selectors found nothing
	if len(raw) == 0 {
		obj, err := page.Eval(`() => Array.from(document.querySelectorAll("a[href]")).map(a => a.href)`)
		if err == nil {
			for _, v := range obj.Value.Arr() {
				if href := v.Str(); href != "" {
					raw[href] = struct{}{}
				}
			}
		}
	}

	hrefs := make([]string, 0, len(raw))
	for href := range raw {
		hrefs = append(hrefs, href)
	}

	log.Printf("Raw links found on %s: %d", baseURL, len(hrefs))

	return FilterArticleLinks(baseURL, hrefs, maxLinks), nil
}

// FilterArticleLinks resolves hrefs against the index URL, keeps only
// same-domain links that look like articles, and caps the result.
func FilterArticleLinks(baseURL string, hrefs []string, maxLinks int) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	links := make([]string, 0, len(hrefs))

	for _, href := range hrefs {
		href = strings.TrimSpace(href)
		if href == "" {
			continue
		}

		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		full := base.ResolveReference(ref)
		if full.Scheme != "http" && full.Scheme != "https" {
			continue
		}

		// Same-domain check against the index page's host
		if !strings.Contains(full.Host, base.Host) {
			continue
		}

		candidate := full.String()
		if !LooksLikeArticle(candidate) {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		links = append(links, candidate)
	}

	sort.Strings(links)
	if maxLinks > 0 && len(links) > maxLinks {
		links = links[:maxLinks]
	}
	return links
}
