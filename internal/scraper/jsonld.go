package scraper

import "encoding/json"

// JSONLDArticle holds the structured-data fields the scraper consumes
// from a schema.org article node.
type JSONLDArticle struct {
	Type          string `json:"@type"`
	Headline      string `json:"headline"`
	Description   string `json:"description"`
	DatePublished string `json:"datePublished"`
}

// article-ish schema.org types accepted from JSON-LD payloads
var jsonLDArticleTypes = map[string]bool{
	"NewsArticle": true,
	"Article":     true,
	"BlogPosting": true,
}

// ParseJSONLD parses one ld+json script payload and returns the first
// article-typed node, or nil. Payloads can be a single object or an
// array of objects; malformed JSON is treated as no match.
func ParseJSONLD(raw string) *JSONLDArticle {
	if raw == "" {
		return nil
	}

	var single JSONLDArticle
	if err := json.Unmarshal([]byte(raw), &single); err == nil {
		if jsonLDArticleTypes[single.Type] {
			return &single
		}
	}

	var list []JSONLDArticle
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		for i := range list {
			if jsonLDArticleTypes[list[i].Type] {
				return &list[i]
			}
		}
	}

	return nil
}
