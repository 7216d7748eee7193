package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"ai-news-scraper/internal/models"
)

// S3Client handles uploads and downloads of scraped article batches
type S3Client struct {
	client     *s3.Client
	bucketName string
	region     string
}

// S3Config holds configuration for the S3 client
type S3Config struct {
	BucketName string
	Region     string
	Profile    string // AWS profile to use
}

// S3FileInfo represents metadata about files in S3
type S3FileInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	ETag         string    `json:"etag"`
}

// S3UploadResult represents the result of an S3 upload operation
type S3UploadResult struct {
	Key         string    `json:"key"`
	ETag        string    `json:"etag"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
	ContentType string    `json:"content_type"`
	PublicURL   string    `json:"public_url"`
}

// NewS3Client creates an S3 client from the default AWS config chain.
// The bucket comes from S3_BUCKET_NAME; callers that want uploads to be
// optional should check the variable before constructing the client.
func NewS3Client() (*S3Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	bucketName := os.Getenv("S3_BUCKET_NAME")
	if bucketName == "" {
		return nil, fmt.Errorf("S3_BUCKET_NAME environment variable is not set")
	}

	return &S3Client{
		client:     s3.NewFromConfig(cfg),
		bucketName: bucketName,
		region:     cfg.Region,
	}, nil
}

// NewS3ClientWithConfig creates an S3 client with custom configuration
func NewS3ClientWithConfig(s3Config S3Config) (*S3Client, error) {
	var cfg aws.Config
	var err error

	if s3Config.Profile != "" {
		cfg, err = config.LoadDefaultConfig(
			context.TODO(),
			config.WithSharedConfigProfile(s3Config.Profile),
		)
	} else {
		cfg, err = config.LoadDefaultConfig(context.TODO())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if s3Config.Region != "" {
		cfg.Region = s3Config.Region
	}

	return &S3Client{
		client:     s3.NewFromConfig(cfg),
		bucketName: s3Config.BucketName,
		region:     cfg.Region,
	}, nil
}

// UploadArticles uploads an article batch to S3 as JSON
func (s *S3Client) UploadArticles(ctx context.Context, articles []models.Article, sources []string, key string) (*S3UploadResult, error) {
	output := models.ArticlesOutput{
		Metadata: models.NewArticlesMetadata(len(articles), sources),
		Articles: articles,
	}

	jsonData, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal articles to JSON: %w", err)
	}

	return s.uploadJSON(ctx, jsonData, key, "application/json")
}

// UploadScrapingRun uploads a scraping run record to S3
func (s *S3Client) UploadScrapingRun(ctx context.Context, run *models.ScrapingRun, key string) (*S3UploadResult, error) {
	jsonData, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scraping run to JSON: %w", err)
	}

	return s.uploadJSON(ctx, jsonData, key, "application/json")
}

// uploadJSON is the shared PutObject path
func (s *S3Client) uploadJSON(ctx context.Context, data []byte, key, contentType string) (*S3UploadResult, error) {
	key = strings.TrimPrefix(key, "/")

	uploadInput := &s3.PutObjectInput{
		Bucket:       aws.String(s.bucketName),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=300"), // 5 minutes
		Metadata: map[string]string{
			"uploaded-by": "ai-news-scraper",
			"upload-time": time.Now().UTC().Format(time.RFC3339),
		},
	}

	result, err := s.client.PutObject(ctx, uploadInput)
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &S3UploadResult{
		Key:         key,
		ETag:        strings.Trim(aws.ToString(result.ETag), `"`),
		Size:        int64(len(data)),
		UploadedAt:  time.Now(),
		ContentType: contentType,
		PublicURL:   s.GetPublicURL(key),
	}, nil
}

// DownloadArticles downloads and parses an article batch from S3
func (s *S3Client) DownloadArticles(ctx context.Context, key string) (*models.ArticlesOutput, error) {
	data, err := s.downloadJSON(ctx, key)
	if err != nil {
		return nil, err
	}

	var output models.ArticlesOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("failed to unmarshal articles JSON: %w", err)
	}

	return &output, nil
}

// downloadJSON is the shared GetObject path
func (s *S3Client) downloadJSON(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimPrefix(key, "/")

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download from S3: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body: %w", err)
	}

	return data, nil
}

// ListFiles lists the files in the bucket, optionally under a prefix
func (s *S3Client) ListFiles(ctx context.Context, prefix string) ([]S3FileInfo, error) {
	listInput := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucketName),
	}
	if prefix != "" {
		listInput.Prefix = aws.String(prefix)
	}

	result, err := s.client.ListObjectsV2(ctx, listInput)
	if err != nil {
		return nil, fmt.Errorf("failed to list S3 objects: %w", err)
	}

	files := make([]S3FileInfo, 0, len(result.Contents))
	for _, obj := range result.Contents {
		files = append(files, S3FileInfo{
			Key:          *obj.Key,
			Size:         obj.Size,
			LastModified: *obj.LastModified,
			ETag:         strings.Trim(*obj.ETag, `"`),
		})
	}

	return files, nil
}

// FileExists checks if a key exists in the bucket
func (s *S3Client) FileExists(ctx context.Context, key string) (bool, error) {
	key = strings.TrimPrefix(key, "/")

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "NoSuchKey") {
			return false, nil
		}
		return false, fmt.Errorf("failed to check if S3 object exists: %w", err)
	}

	return true, nil
}

// GetBucketName returns the configured bucket name
func (s *S3Client) GetBucketName() string {
	return s.bucketName
}

// GetRegion returns the configured AWS region
func (s *S3Client) GetRegion() string {
	return s.region
}

// GetPublicURL generates the public URL for an S3 object
func (s *S3Client) GetPublicURL(key string) string {
	key = strings.TrimPrefix(key, "/")
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key)
}

// TimestampedArticlesKey builds the per-run upload key. Unix seconds in
// the name keep successive runs from overwriting each other.
func TimestampedArticlesKey(t time.Time) string {
	return fmt.Sprintf("scraped_data_%d.json", t.Unix())
}

// UploadArticlesWithTimestamp uploads a batch under a per-run key
func (s *S3Client) UploadArticlesWithTimestamp(ctx context.Context, articles []models.Article, sources []string) (*S3UploadResult, error) {
	return s.UploadArticles(ctx, articles, sources, TimestampedArticlesKey(time.Now().UTC()))
}

// UploadLatestArticles uploads the batch as the stable "latest" key
func (s *S3Client) UploadLatestArticles(ctx context.Context, articles []models.Article, sources []string) (*S3UploadResult, error) {
	return s.UploadArticles(ctx, articles, sources, "latest.json")
}

// BackupArticlesKey builds the key for a timestamped backup copy
func BackupArticlesKey(t time.Time) string {
	return fmt.Sprintf("backups/%s.json", t.UTC().Format("2006-01-02T15-04-05Z"))
}

// BackupArticles keeps a timestamped copy of the batch under backups/,
// so overwriting latest.json never loses data
func (s *S3Client) BackupArticles(ctx context.Context, articles []models.Article, sources []string) (*S3UploadResult, error) {
	return s.UploadArticles(ctx, articles, sources, BackupArticlesKey(time.Now()))
}
