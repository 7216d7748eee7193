package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"

	"ai-news-scraper/internal/models"
	"ai-news-scraper/internal/scraper"
	"ai-news-scraper/internal/services"
)

const (
	// MaxLinksPerSite caps the article links followed per index page
	MaxLinksPerSite = 15
	// ConcurrentArticles bounds simultaneous article pages per site
	ConcurrentArticles = 5
	// DefaultOutputFile is the Lambda-writable batch location
	DefaultOutputFile = "/tmp/scraped_data.json"

	scrapingVersion = "1.0.0"
)

// Options control a scraping run; zero values fall back to the defaults
type Options struct {
	SourceFilter       []string
	OutputFile         string
	MaxLinksPerSite    int
	ConcurrentArticles int
	TriggerType        string
}

// Orchestrator handles the complete scraping workflow: browser, link
// discovery, article extraction, dedup, local output and S3 upload.
// The S3, DynamoDB and OpenAI services are each optional and switched
// on by their environment variables.
type Orchestrator struct {
	browser   *scraper.Browser
	s3Client  *services.S3Client
	seen      *services.SeenArticleService
	llm       *services.OpenAIClient
	runID     string
	startTime time.Time
	opts      Options
}

// NewOrchestrator launches the browser and wires whichever services are
// configured in the environment
func NewOrchestrator(opts Options) (*Orchestrator, error) {
	if opts.OutputFile == "" {
		opts.OutputFile = DefaultOutputFile
	}
	if path := os.Getenv("OUTPUT_FILE"); path != "" && opts.OutputFile == DefaultOutputFile {
		opts.OutputFile = path
	}
	if opts.MaxLinksPerSite <= 0 {
		opts.MaxLinksPerSite = MaxLinksPerSite
	}
	if opts.ConcurrentArticles <= 0 {
		opts.ConcurrentArticles = ConcurrentArticles
	}
	if opts.TriggerType == "" {
		opts.TriggerType = models.TriggerTypeManual
	}

	browser, err := scraper.NewBrowser()
	if err != nil {
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	o := &Orchestrator{
		browser:   browser,
		runID:     models.GenerateScrapingRunID(time.Now()),
		startTime: time.Now(),
		opts:      opts,
	}

	if os.Getenv("S3_BUCKET_NAME") != "" {
		s3Client, err := services.NewS3Client()
		if err != nil {
			browser.Close()
			return nil, fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		o.s3Client = s3Client
	} else {
		log.Printf("S3_BUCKET_NAME not set, results will stay local")
	}

	if os.Getenv("SEEN_ARTICLES_TABLE") != "" {
		seen, err := services.NewSeenArticleService()
		if err != nil {
			browser.Close()
			return nil, fmt.Errorf("failed to initialize seen-article registry: %w", err)
		}
		o.seen = seen
	}

	if os.Getenv("OPENAI_API_KEY") != "" {
		llm, err := services.NewOpenAIClient()
		if err != nil {
			log.Printf("Warning: LLM fallback unavailable: %v", err)
		} else {
			o.llm = llm
		}
	}

	return o, nil
}

// RunID returns the generated identifier for this run
func (o *Orchestrator) RunID() string {
	return o.runID
}

// Close shuts down the browser
func (o *Orchestrator) Close() {
	o.browser.Close()
}

// Run scrapes every enabled source sequentially and returns the run
// record plus the deduplicated article batch. Individual source
// failures are recorded, never fatal.
func (o *Orchestrator) Run(ctx context.Context) (*models.ScrapingRun, []models.Article, error) {
	sources := FilterSources(NewsSources(), o.opts.SourceFilter)
	if len(sources) == 0 {
		return nil, nil, fmt.Errorf("no enabled sources to scrape")
	}

	log.Printf("Starting scraping run %s with %d sources", o.runID, len(sources))

	run := &models.ScrapingRun{
		ID:              o.runID,
		StartedAt:       o.startTime,
		Status:          models.ScrapingStatusRunning,
		TotalSources:    len(sources),
		TriggerType:     o.opts.TriggerType,
		ScrapingVersion: scrapingVersion,
	}

	var all []models.Article
	for _, source := range sources {
		if ctx.Err() != nil {
			run.Warnings = append(run.Warnings, fmt.Sprintf("run cancelled before %s", source.Name))
			break
		}

		result, articles := o.scrapeSource(ctx, source)
		run.Results = append(run.Results, result)
		if result.Success {
			run.SuccessfulSources++
		} else {
			run.FailedSources++
		}
		run.TotalTokensUsed += result.TokensUsed
		run.EstimatedCost += result.Cost
		all = append(all, articles...)
	}

	unique := RemoveDuplicates(all)
	run.DuplicatesRemoved = len(all) - len(unique)

	if o.seen != nil {
		fresh, err := o.seen.FilterNew(ctx, unique)
		if err != nil {
			log.Printf("Warning: seen-article filter failed, keeping full batch: %v", err)
		} else {
			run.DuplicatesRemoved += len(unique) - len(fresh)
			unique = fresh
		}
	}

	run.TotalArticles = len(unique)
	run.NewArticles = len(unique)
	run.CompletedAt = time.Now()
	run.Duration = time.Since(o.startTime).Milliseconds()

	switch {
	case run.SuccessfulSources == 0:
		run.Status = models.ScrapingStatusFailed
	case run.FailedSources > 0:
		run.Status = models.ScrapingStatusPartial
	default:
		run.Status = models.ScrapingStatusCompleted
	}

	log.Printf("Aggregated %d unique articles from %d total (%d duplicates removed)",
		len(unique), len(all), run.DuplicatesRemoved)

	return run, unique, nil
}

// scrapeSource scans one index page and fetches its articles with a
// bounded worker pool
func (o *Orchestrator) scrapeSource(ctx context.Context, source models.NewsSource) (models.SourceResult, []models.Article) {
	start := time.Now()
	result := models.SourceResult{Name: source.Name, URL: source.URL}

	log.Printf("Scanning %s (%s)", source.Name, source.URL)

	bctx, err := o.browser.NewContext()
	if err != nil {
		result.Error = fmt.Sprintf("browser context failed: %v", err)
		result.ProcessingTime = time.Since(start)
		return result, nil
	}
	defer o.browser.CloseContext(bctx)

	links, err := o.discoverWithRetries(bctx, source)
	if err != nil {
		result.Error = fmt.Sprintf("link discovery failed: %v", err)
		result.ProcessingTime = time.Since(start)
		log.Printf("Site failed: %s (%v)", source.Name, err)
		return result, nil
	}
	result.LinksFound = len(links)
	log.Printf("Valid article links on %s: %d", source.Name, len(links))

	articles := make([]*models.Article, len(links))
	tokens := make([]int, len(links))
	costs := make([]float64, len(links))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, o.opts.ConcurrentArticles)

	for i, link := range links {
		wg.Add(1)
		go func(index int, articleURL string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			article, excerpt, err := o.browser.ScrapeArticle(bctx, articleURL, sourceNavTimeout(source))
			if err != nil {
				log.Printf("✗ failed: %s (%v)", articleURL, err)
				return
			}

			if !article.HasHeading() && o.llm != nil && excerpt != "" {
				tokens[index], costs[index] = o.applyLLMFallback(ctx, article, excerpt)
			}

			article.Source = source.Domain
			heading := article.Heading
			if heading == "" {
				heading = "No heading"
			}
			if runes := []rune(heading); len(runes) > 80 {
				heading = string(runes[:80])
			}
			log.Printf("✓ %s", heading)

			articles[index] = article
		}(i, link)
	}

	wg.Wait()

	collected := make([]models.Article, 0, len(links))
	for i, article := range articles {
		if article != nil {
			collected = append(collected, *article)
		}
		result.TokensUsed += tokens[i]
		result.Cost += costs[i]
	}

	result.Success = true
	result.ArticlesFound = len(collected)
	result.ProcessingTime = time.Since(start)
	log.Printf("✓ Site %s completed in %.2fs (%d articles)",
		source.Name, result.ProcessingTime.Seconds(), result.ArticlesFound)

	return result, collected
}

// discoverWithRetries retries index-page discovery per the source's
// retry budget with a linear backoff. Each attempt gets a fresh page.
func (o *Orchestrator) discoverWithRetries(bctx *rod.Browser, source models.NewsSource) ([]string, error) {
	attempts := source.RetryCount
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		page, err := o.browser.NewPage(bctx)
		if err != nil {
			return nil, err
		}

		links, err := scraper.DiscoverLinks(page, source.URL, sourceNavTimeout(source), o.opts.MaxLinksPerSite)
		page.Close()
		if err == nil {
			return links, nil
		}
		lastErr = err

		if attempt < attempts-1 {
			waitTime := time.Duration(attempt+1) * 2 * time.Second
			log.Printf("Retrying %s in %v (attempt %d/%d): %v",
				source.Name, waitTime, attempt+1, attempts, err)
			time.Sleep(waitTime)
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}

// sourceNavTimeout converts a source's timeout (seconds) into the
// navigation budget, falling back to the default when unset
func sourceNavTimeout(source models.NewsSource) time.Duration {
	if source.Timeout <= 0 {
		return scraper.DefaultNavTimeout
	}
	return time.Duration(source.Timeout) * time.Second
}

// applyLLMFallback fills empty article fields from the model's answer
// and returns token/cost usage
func (o *Orchestrator) applyLLMFallback(ctx context.Context, article *models.Article, excerpt string) (int, float64) {
	llmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	extraction, err := o.llm.ExtractArticleFields(llmCtx, excerpt, article.URL)
	if err != nil {
		log.Printf("Warning: LLM fallback failed for %s: %v", article.URL, err)
		return 0, 0
	}

	if article.Heading == "" {
		article.Heading = extraction.Heading
	}
	if article.Subheading == "" {
		article.Subheading = extraction.Subheading
	}
	if article.Date == "" {
		article.Date = extraction.Date
	}

	return extraction.TokensUsed, extraction.EstimatedCost
}

// RemoveDuplicates drops articles whose normalized heading, URL and
// date all match an earlier article in the batch
func RemoveDuplicates(articles []models.Article) []models.Article {
	if len(articles) <= 1 {
		return articles
	}

	unique := make([]models.Article, 0, len(articles))
	seen := make(map[string]bool)

	for _, article := range articles {
		key := fmt.Sprintf("%s|%s|%s",
			strings.ToLower(article.Heading),
			strings.ToLower(article.URL),
			article.Date)

		if !seen[key] {
			seen[key] = true
			unique = append(unique, article)
		}
	}

	return unique
}

// WriteOutput writes the batch to the local output file before any
// upload is attempted
func (o *Orchestrator) WriteOutput(articles []models.Article, run *models.ScrapingRun) (string, error) {
	output := models.ArticlesOutput{
		Metadata: models.NewArticlesMetadata(len(articles), successfulSourceNames(run)),
		Articles: articles,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal articles: %w", err)
	}

	if err := os.WriteFile(o.opts.OutputFile, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", o.opts.OutputFile, err)
	}

	return o.opts.OutputFile, nil
}

// UploadResults pushes the batch and the run record to S3 and marks
// uploaded articles in the seen registry. Upload problems are logged,
// never fatal: the local output file already holds the results.
func (o *Orchestrator) UploadResults(ctx context.Context, articles []models.Article, run *models.ScrapingRun) []string {
	if o.s3Client == nil {
		log.Printf("S3_BUCKET_NAME environment variable not set. Skipping upload.")
		return nil
	}

	sources := successfulSourceNames(run)
	var uploaded []string

	if len(articles) > 0 {
		result, err := o.s3Client.UploadArticlesWithTimestamp(ctx, articles, sources)
		if err != nil {
			log.Printf("Warning: failed to upload articles: %v", err)
		} else {
			uploaded = append(uploaded, result.Key)
			log.Printf("Uploaded %d articles to s3://%s/%s", len(articles), o.s3Client.GetBucketName(), result.Key)
		}

		latest, err := o.s3Client.UploadLatestArticles(ctx, articles, sources)
		if err != nil {
			log.Printf("Warning: failed to upload latest batch: %v", err)
		} else {
			uploaded = append(uploaded, latest.Key)
		}

		if o.seen != nil {
			if err := o.seen.MarkSeen(ctx, articles); err != nil {
				log.Printf("Warning: failed to update seen-article registry: %v", err)
			}
		}
	} else {
		log.Printf("No output generated to upload.")
	}

	runKey := fmt.Sprintf("scraping-runs/%s.json", time.Now().UTC().Format("2006-01-02T15-04-05Z"))
	if result, err := o.s3Client.UploadScrapingRun(ctx, run, runKey); err != nil {
		log.Printf("Warning: failed to upload scraping run: %v", err)
	} else {
		uploaded = append(uploaded, result.Key)
	}

	return uploaded
}

// successfulSourceNames lists the sources that produced results
func successfulSourceNames(run *models.ScrapingRun) []string {
	names := make([]string, 0, len(run.Results))
	for _, result := range run.Results {
		if result.Success {
			names = append(names, result.Name)
		}
	}
	return names
}
