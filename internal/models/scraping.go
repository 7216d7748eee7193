package models

import "time"

// Scraping run statuses
const (
	ScrapingStatusRunning   = "running"
	ScrapingStatusCompleted = "completed"
	ScrapingStatusFailed    = "failed"
	ScrapingStatusPartial   = "partial"
)

// Trigger types
const (
	TriggerTypeScheduled = "scheduled"
	TriggerTypeManual    = "manual"
	TriggerTypeWebhook   = "webhook"
)

// NewsSource represents a site whose index page is scanned for article links
type NewsSource struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Domain     string `json:"domain"`
	Priority   int    `json:"priority"` // 1-10, higher = more important
	Enabled    bool   `json:"enabled"`
	Timeout    int    `json:"timeout"` // navigation timeout in seconds
	RetryCount int    `json:"retry_count"`
}

// SourceResult represents the outcome of scraping a single source
type SourceResult struct {
	Name           string        `json:"name"`
	URL            string        `json:"url"`
	Success        bool          `json:"success"`
	LinksFound     int           `json:"links_found"`
	ArticlesFound  int           `json:"articles_found"`
	ProcessingTime time.Duration `json:"processing_time"`
	TokensUsed     int           `json:"tokens_used,omitempty"`
	Cost           float64       `json:"cost,omitempty"`
	Error          string        `json:"error,omitempty"`
}

// ScrapingRun represents a complete scraping operation across all sources
type ScrapingRun struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"startedAt"`
	CompletedAt time.Time `json:"completedAt,omitempty"`
	Duration    int64     `json:"duration,omitempty"` // total duration in milliseconds
	Status      string    `json:"status"`             // running|completed|failed|partial

	// Aggregated results
	TotalSources      int `json:"totalSources"`
	SuccessfulSources int `json:"successfulSources"`
	FailedSources     int `json:"failedSources"`
	TotalArticles     int `json:"totalArticles"`
	NewArticles       int `json:"newArticles"`
	DuplicatesRemoved int `json:"duplicatesRemoved"`

	// Per-source outcomes
	Results []SourceResult `json:"results,omitempty"`

	// Error summary
	ErrorSummary string   `json:"errorSummary,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`

	// Cost tracking for the LLM fallback extractor
	TotalTokensUsed int     `json:"totalTokensUsed"`
	EstimatedCost   float64 `json:"estimatedCost"` // estimated cost in USD

	// Metadata
	TriggerType     string `json:"triggerType"` // scheduled|manual|webhook
	ScrapingVersion string `json:"scrapingVersion"`
	LambdaRequestId string `json:"lambdaRequestId,omitempty"`
}
