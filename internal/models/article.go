package models

import "time"

// Article is one scraped news article with the fields the extraction
// cascade could recover. Missing fields stay empty rather than failing
// the article.
type Article struct {
	URL        string    `json:"url"`
	Heading    string    `json:"heading,omitempty"`
	Subheading string    `json:"subheading,omitempty"`
	Date       string    `json:"date,omitempty"`
	Source     string    `json:"source,omitempty"`
	ScrapedAt  time.Time `json:"scrapedAt,omitempty"`
}

// ArticlesMetadata describes a batch of scraped articles
type ArticlesMetadata struct {
	LastUpdated   time.Time `json:"last_updated"`
	TotalArticles int       `json:"total_articles"`
	Sources       []string  `json:"sources"`
	Version       string    `json:"version"`
}

// ArticlesOutput is the JSON envelope written to /tmp and uploaded to S3
type ArticlesOutput struct {
	Metadata ArticlesMetadata `json:"metadata"`
	Articles []Article        `json:"articles"`
}

// NewArticlesMetadata creates metadata for an articles batch
func NewArticlesMetadata(totalArticles int, sources []string) ArticlesMetadata {
	return ArticlesMetadata{
		LastUpdated:   time.Now(),
		TotalArticles: totalArticles,
		Sources:       sources,
		Version:       "1.0.0",
	}
}

// HasHeading reports whether the extraction cascade found a usable heading
func (a Article) HasHeading() bool {
	return a.Heading != ""
}

// IsEmpty reports whether extraction recovered nothing beyond the URL
func (a Article) IsEmpty() bool {
	return a.Heading == "" && a.Subheading == "" && a.Date == ""
}
