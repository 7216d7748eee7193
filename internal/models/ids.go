package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateArticleID creates a stable unique ID for an article URL.
// The same URL always maps to the same ID, which is what makes the
// seen-article registry work across runs.
func GenerateArticleID(url string) string {
	normalized := strings.TrimRight(strings.ToLower(strings.TrimSpace(url)), "/")
	hash := sha256.Sum256([]byte(normalized))
	return "art_" + hex.EncodeToString(hash[:])[:8]
}

// GenerateScrapingRunID creates a unique ID for a scraping run
func GenerateScrapingRunID(timestamp time.Time) string {
	input := fmt.Sprintf("run|%d", timestamp.UnixNano())
	hash := sha256.Sum256([]byte(input))
	return "run_" + hex.EncodeToString(hash[:])[:8]
}

// NewTriggerTaskID creates a random ID for manual trigger payloads
func NewTriggerTaskID() string {
	return "trg_" + uuid.New().String()[:8]
}

// IsValidURL performs basic URL validation
func IsValidURL(url string) bool {
	if url == "" {
		return false
	}
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
