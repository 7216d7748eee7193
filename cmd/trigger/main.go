package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	lambdaclient "github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"ai-news-scraper/internal/models"
)

// Ops tool: invokes the deployed scraper function with a manual trigger
// payload, asynchronously by default.
func main() {
	var (
		functionName = flag.String("function", os.Getenv("SCRAPER_FUNCTION_NAME"), "scraper Lambda function name")
		sourceFilter = flag.String("sources", "", "comma-separated source filter to pass through")
		wait         = flag.Bool("wait", false, "invoke synchronously and print the response")
	)
	flag.Parse()

	if *functionName == "" {
		log.Fatal("function name required (-function or SCRAPER_FUNCTION_NAME)")
	}

	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	client := lambdaclient.NewFromConfig(cfg)

	payload := map[string]interface{}{
		"trigger-type": models.TriggerTypeManual,
		"detail": map[string]interface{}{
			"task_id": models.NewTriggerTaskID(),
		},
	}
	if *sourceFilter != "" {
		var filters []string
		for _, f := range strings.Split(*sourceFilter, ",") {
			if f = strings.TrimSpace(f); f != "" {
				filters = append(filters, f)
			}
		}
		payload["source-filter"] = filters
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("Failed to marshal payload: %v", err)
	}

	invocationType := lambdatypes.InvocationTypeEvent
	if *wait {
		invocationType = lambdatypes.InvocationTypeRequestResponse
	}

	out, err := client.Invoke(context.Background(), &lambdaclient.InvokeInput{
		FunctionName:   functionName,
		InvocationType: invocationType,
		Payload:        body,
	})
	if err != nil {
		log.Fatalf("Invoke failed: %v", err)
	}

	log.Printf("Invoked %s (status %d)", *functionName, out.StatusCode)
	if *wait && len(out.Payload) > 0 {
		fmt.Println(string(out.Payload))
	}
}
