package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"ai-news-scraper/internal/models"
	"ai-news-scraper/internal/pipeline"
)

// Local runner: executes the same pipeline as the Lambda handler
// without the Lambda runtime, for development and one-off scrapes.
func main() {
	var (
		sourceFilter = flag.String("sources", "", "comma-separated domain or name filter")
		outputFile   = flag.String("output", pipeline.DefaultOutputFile, "output file path")
		maxLinks     = flag.Int("max-links", pipeline.MaxLinksPerSite, "max article links per site")
		concurrency  = flag.Int("concurrency", pipeline.ConcurrentArticles, "concurrent article pages per site")
	)
	flag.Parse()

	opts := pipeline.Options{
		OutputFile:         *outputFile,
		MaxLinksPerSite:    *maxLinks,
		ConcurrentArticles: *concurrency,
		TriggerType:        models.TriggerTypeManual,
	}
	if *sourceFilter != "" {
		for _, f := range strings.Split(*sourceFilter, ",") {
			if f = strings.TrimSpace(f); f != "" {
				opts.SourceFilter = append(opts.SourceFilter, f)
			}
		}
	}

	start := time.Now()
	log.Printf("============================================================")
	log.Printf("SCRAPING STARTED")
	log.Printf("============================================================")

	orchestrator, err := pipeline.NewOrchestrator(opts)
	if err != nil {
		log.Fatalf("Failed to initialize orchestrator: %v", err)
	}
	defer orchestrator.Close()

	run, articles, err := orchestrator.Run(context.Background())
	if err != nil {
		log.Fatalf("Scraping failed: %v", err)
	}

	if path, err := orchestrator.WriteOutput(articles, run); err != nil {
		log.Printf("WARNING: failed to write output file: %v", err)
	} else {
		log.Printf("Saved %d articles to %s", len(articles), path)
	}

	orchestrator.UploadResults(context.Background(), articles, run)

	elapsed := time.Since(start)
	log.Printf("============================================================")
	log.Printf("SCRAPING COMPLETED in %dm %.2fs",
		int(elapsed.Minutes()), elapsed.Seconds()-float64(int(elapsed.Minutes()))*60)
	fmt.Printf("Run %s: %d articles from %d/%d sources, %d duplicates removed\n",
		run.ID, run.TotalArticles, run.SuccessfulSources, run.TotalSources, run.DuplicatesRemoved)
}
