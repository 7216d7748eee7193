package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/lambda"

	"ai-news-scraper/internal/models"
	"ai-news-scraper/internal/pipeline"
)

// LambdaEvent represents the EventBridge trigger event
type LambdaEvent struct {
	Source       string                 `json:"source"`
	DetailType   string                 `json:"detail-type"`
	Detail       map[string]interface{} `json:"detail"`
	TriggerType  string                 `json:"trigger-type,omitempty"`  // manual, scheduled, webhook
	SourceFilter []string               `json:"source-filter,omitempty"` // optional filter for specific sources
}

// LambdaResponse represents the function response. StatusCode and Body
// keep the original API-gateway-shaped contract; the rest is run detail.
type LambdaResponse struct {
	StatusCode     int                 `json:"statusCode"`
	Body           string              `json:"body"`
	Success        bool                `json:"success"`
	Message        string              `json:"message"`
	ScrapingRunID  string              `json:"scraping_run_id,omitempty"`
	TotalArticles  int                 `json:"total_articles"`
	ProcessingTime int64               `json:"processing_time_ms"`
	Cost           float64             `json:"estimated_cost"`
	UploadedFiles  []string            `json:"uploaded_files,omitempty"`
	Run            *models.ScrapingRun `json:"run,omitempty"`
	Errors         []string            `json:"errors,omitempty"`
}

// ResolveTriggerType maps the incoming event to a trigger type: the
// explicit field wins, EventBridge events count as scheduled, anything
// else is a manual invoke.
func ResolveTriggerType(event LambdaEvent) string {
	if event.TriggerType != "" {
		return event.TriggerType
	}
	if event.Source == "aws.events" {
		return models.TriggerTypeScheduled
	}
	return models.TriggerTypeManual
}

// HandleLambdaEvent is the main Lambda handler function
func HandleLambdaEvent(ctx context.Context, event LambdaEvent) (LambdaResponse, error) {
	start := time.Now()

	log.Printf("Lambda handler started with event: %+v", event)

	orchestrator, err := pipeline.NewOrchestrator(pipeline.Options{
		SourceFilter: event.SourceFilter,
		TriggerType:  ResolveTriggerType(event),
	})
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to initialize orchestrator: %v", err)
		log.Printf("ERROR: %s", errorMsg)
		return LambdaResponse{
			StatusCode:     500,
			Body:           errorMsg,
			Message:        errorMsg,
			ProcessingTime: time.Since(start).Milliseconds(),
		}, err
	}
	defer orchestrator.Close()

	run, articles, err := orchestrator.Run(ctx)
	if err != nil {
		errorMsg := fmt.Sprintf("Scraping failed: %v", err)
		log.Printf("ERROR: %s", errorMsg)
		return LambdaResponse{
			StatusCode:     500,
			Body:           errorMsg,
			Message:        errorMsg,
			ScrapingRunID:  orchestrator.RunID(),
			ProcessingTime: time.Since(start).Milliseconds(),
		}, err
	}

	path, err := orchestrator.WriteOutput(articles, run)
	if err != nil {
		log.Printf("WARNING: failed to write output file: %v", err)
	} else {
		log.Printf("Saved %d articles to %s", len(articles), path)
	}

	uploaded := orchestrator.UploadResults(ctx, articles, run)

	response := LambdaResponse{
		StatusCode: 200,
		Body:       "Scraping completed!",
		Success:    run.SuccessfulSources > 0,
		Message: fmt.Sprintf("Scraped %d articles from %d/%d sources",
			run.TotalArticles, run.SuccessfulSources, run.TotalSources),
		ScrapingRunID:  run.ID,
		TotalArticles:  run.TotalArticles,
		ProcessingTime: time.Since(start).Milliseconds(),
		Cost:           run.EstimatedCost,
		UploadedFiles:  uploaded,
		Run:            run,
	}

	var errors []string
	for _, result := range run.Results {
		if !result.Success && result.Error != "" {
			errors = append(errors, fmt.Sprintf("%s: %s", result.Name, result.Error))
		}
	}
	response.Errors = errors

	log.Printf("Lambda handler completed: %s", response.Message)
	log.Printf("Total processing time: %dms, Cost: $%.4f", response.ProcessingTime, response.Cost)

	return response, nil
}

// main is the entry point for the Lambda function
func main() {
	lambda.Start(HandleLambdaEvent)
}
