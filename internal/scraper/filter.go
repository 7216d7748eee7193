package scraper

import (
	"net/url"
	"regexp"
	"strings"
)

// Substrings that mark a URL as navigation, account, media or ad chrome
// rather than an article. Matched against the whole lowercased URL.
var urlBlacklist = []string{
	"login", "signup", "subscribe", "register", "forgot-password",
	"category", "tag", "author", "archive", "page=", "#",
	"javascript:", "mailto:", "contact", "about-us", "privacy",
	"terms-of-use", "terms-and-conditions", "cookie", "sitemap",
	"disclaimer", "help", "faq", "feedback", "advertisement",
	"ads", "sponsored", "careers", "jobs", "partner", "advertise",
	"media-kit", "benefits", "pricing", "plan", "subscription",
	"account", "profile", "settings", "dashboard", "newsletter",
	"download", ".pdf", ".zip", ".doc", ".mp4", ".jpg", ".png",
	"rss", "feed", "xml", "json", ".css", ".js", "api/", "admin",
	"search?", "q=", "s=", "gallery", "video", "image", "photo",
}

// Keywords at least one of which must appear for a URL to qualify
var urlWhitelist = []string{
	"article", "news", "press", "release", "post", "blog", "story",
	"breaking", "report", "analysis", "update", "alert", "headline",
	"coverage", "dispatch", "bulletin", "feature", "interview",
}

var (
	yearPattern    = regexp.MustCompile(`\d{4}`)
	segmentPattern = regexp.MustCompile(`\d{2}/`)
)

// LooksLikeArticle applies the heuristic URL filter: no blacklisted
// term, at least one whitelisted keyword, at least two path segments,
// and a slug-or-date shaped path (hyphen, 4-digit year, or NN/ segment).
func LooksLikeArticle(rawURL string) bool {
	lowered := strings.ToLower(rawURL)

	for _, bad := range urlBlacklist {
		if strings.Contains(lowered, bad) {
			return false
		}
	}

	found := false
	for _, good := range urlWhitelist {
		if strings.Contains(lowered, good) {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	parsed, err := url.Parse(lowered)
	if err != nil {
		return false
	}
	path := parsed.Path

	// Needs at least 2 path segments (e.g. /2026/02/article-title/)
	if strings.Count(path, "/") < 2 {
		return false
	}

	return strings.Contains(path, "-") ||
		yearPattern.MatchString(path) ||
		segmentPattern.MatchString(path)
}
