package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"ai-news-scraper/internal/models"
)

// SeenArticle is the registry record for an article that a previous run
// already scraped. The ID is the sha256-derived article ID, so the same
// URL always hits the same item.
type SeenArticle struct {
	ID        string    `dynamodbav:"id" json:"id"`
	URL       string    `dynamodbav:"url" json:"url"`
	Heading   string    `dynamodbav:"heading,omitempty" json:"heading,omitempty"`
	Source    string    `dynamodbav:"source,omitempty" json:"source,omitempty"`
	FirstSeen time.Time `dynamodbav:"firstSeen" json:"firstSeen"`
}

// SeenArticleService provides cross-run deduplication backed by DynamoDB
type SeenArticleService struct {
	client *dynamodb.Client
	table  string
}

// NewSeenArticleService creates the registry from the default AWS config
// chain. The table name comes from SEEN_ARTICLES_TABLE; callers treat a
// missing variable as "feature off" and skip construction.
func NewSeenArticleService() (*SeenArticleService, error) {
	table := os.Getenv("SEEN_ARTICLES_TABLE")
	if table == "" {
		return nil, fmt.Errorf("SEEN_ARTICLES_TABLE environment variable is not set")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SeenArticleService{
		client: dynamodb.NewFromConfig(cfg),
		table:  table,
	}, nil
}

// NewSeenArticleServiceWithClient wires an existing client, used by tests
// and by callers that manage their own AWS config
func NewSeenArticleServiceWithClient(client *dynamodb.Client, table string) *SeenArticleService {
	return &SeenArticleService{client: client, table: table}
}

// IsSeen reports whether an article ID exists in the registry
func (s *SeenArticleService) IsSeen(ctx context.Context, articleID string) (bool, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": articleID})
	if err != nil {
		return false, fmt.Errorf("failed to marshal registry key: %w", err)
	}

	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       key,
	})
	if err != nil {
		return false, fmt.Errorf("failed to get seen article %s: %w", articleID, err)
	}

	return len(result.Item) > 0, nil
}

// FilterNew returns only articles the registry has not seen before.
// A lookup failure keeps the article in the batch; losing dedup is
// cheaper than losing an article.
func (s *SeenArticleService) FilterNew(ctx context.Context, articles []models.Article) ([]models.Article, error) {
	fresh := make([]models.Article, 0, len(articles))

	for _, article := range articles {
		seen, err := s.IsSeen(ctx, models.GenerateArticleID(article.URL))
		if err != nil {
			log.Printf("Warning: seen-article lookup failed for %s: %v", article.URL, err)
			fresh = append(fresh, article)
			continue
		}
		if !seen {
			fresh = append(fresh, article)
		}
	}

	return fresh, nil
}

// MarkSeen records articles in the registry after a successful upload
func (s *SeenArticleService) MarkSeen(ctx context.Context, articles []models.Article) error {
	now := time.Now().UTC()

	for _, article := range articles {
		record := SeenArticle{
			ID:        models.GenerateArticleID(article.URL),
			URL:       article.URL,
			Heading:   article.Heading,
			Source:    article.Source,
			FirstSeen: now,
		}

		item, err := attributevalue.MarshalMap(record)
		if err != nil {
			return fmt.Errorf("failed to marshal seen article: %w", err)
		}

		_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(s.table),
			Item:      item,
		})
		if err != nil {
			return fmt.Errorf("failed to mark article %s as seen: %w", article.URL, err)
		}
	}

	return nil
}

// GetTableName returns the configured table name
func (s *SeenArticleService) GetTableName() string {
	return s.table
}
