package services

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

func TestTimestampedArticlesKey(t *testing.T) {
	at := time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)
	key := TimestampedArticlesKey(at)

	want := "scraped_data_1770712200.json"
	if key != want {
		t.Errorf("TimestampedArticlesKey() = %q, want %q", key, want)
	}

	// Successive runs never collide
	later := TimestampedArticlesKey(at.Add(time.Second))
	if later == key {
		t.Error("Keys one second apart should differ")
	}
}

func TestBackupArticlesKey(t *testing.T) {
	at := time.Date(2026, 2, 10, 8, 30, 0, 0, time.UTC)

	want := "backups/2026-02-10T08-30-00Z.json"
	if got := BackupArticlesKey(at); got != want {
		t.Errorf("BackupArticlesKey() = %q, want %q", got, want)
	}

	// Non-UTC input normalizes to UTC in the key
	ist := time.FixedZone("IST", 5*3600+1800)
	if got := BackupArticlesKey(at.In(ist)); got != want {
		t.Errorf("BackupArticlesKey() in IST = %q, want %q", got, want)
	}
}

func TestS3Client_ListFiles(t *testing.T) {
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		t.Skip("Skipping S3 list test - S3_BUCKET_NAME not set")
	}

	client, err := NewS3Client()
	if err != nil {
		t.Skipf("Skipping S3 list test - no AWS config available: %v", err)
	}

	files, err := client.ListFiles(context.Background(), "scraping-runs/")
	if err != nil {
		t.Skipf("Skipping S3 list test - list failed (no credentials?): %v", err)
	}

	for _, file := range files {
		if file.Key == "" {
			t.Error("Listed file has empty key")
		}
		if !strings.HasPrefix(file.Key, "scraping-runs/") {
			t.Errorf("Key %q escaped the requested prefix", file.Key)
		}
	}
}

func TestS3Client_Configuration(t *testing.T) {
	config := S3Config{
		BucketName: "test-bucket",
		Region:     "ap-south-1",
	}

	client, err := NewS3ClientWithConfig(config)
	if err != nil {
		t.Skipf("Skipping S3 test - no AWS config available: %v", err)
	}

	if client.GetBucketName() != "test-bucket" {
		t.Errorf("Expected bucket name 'test-bucket', got %s", client.GetBucketName())
	}
	if client.GetRegion() != "ap-south-1" {
		t.Errorf("Expected region 'ap-south-1', got %s", client.GetRegion())
	}
}

func TestS3Client_PublicURL(t *testing.T) {
	client, err := NewS3ClientWithConfig(S3Config{
		BucketName: "test-bucket",
		Region:     "ap-south-1",
	})
	if err != nil {
		t.Skipf("Skipping S3 test - no AWS config available: %v", err)
	}

	tests := []struct {
		key      string
		expected string
	}{
		{
			key:      "latest.json",
			expected: "https://test-bucket.s3.ap-south-1.amazonaws.com/latest.json",
		},
		{
			key:      "/scraping-runs/run.json",
			expected: "https://test-bucket.s3.ap-south-1.amazonaws.com/scraping-runs/run.json",
		},
	}

	for _, tt := range tests {
		if got := client.GetPublicURL(tt.key); got != tt.expected {
			t.Errorf("GetPublicURL(%q) = %q, want %q", tt.key, got, tt.expected)
		}
	}
}

func TestNewS3Client_RequiresBucket(t *testing.T) {
	t.Setenv("S3_BUCKET_NAME", "")

	if _, err := NewS3Client(); err == nil {
		t.Error("Expected an error when S3_BUCKET_NAME is unset")
	}
}
