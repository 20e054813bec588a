// Package storage provides object storage implementations for product
// image uploads.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/smartsolar/backend/internal/domain/document"
	infraconfig "github.com/smartsolar/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Ensure S3BlobStore implements document.BlobStore
var _ document.BlobStore = (*S3BlobStore)(nil)

// S3BlobStore implements document.BlobStore using AWS S3 SDK v2.
// It is compatible with any S3-compatible storage (AWS S3, MinIO, etc.)
type S3BlobStore struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	publicBaseURL string
	urlExpiration time.Duration
	logger        *zap.Logger
}

// S3BlobStoreOption is a functional option for configuring S3BlobStore
type S3BlobStoreOption func(*S3BlobStore)

// WithLogger sets a custom logger for S3BlobStore
func WithLogger(logger *zap.Logger) S3BlobStoreOption {
	return func(s *S3BlobStore) {
		s.logger = logger
	}
}

// NewS3BlobStore creates a new S3BlobStore from configuration.
func NewS3BlobStore(cfg *infraconfig.StorageConfig, opts ...S3BlobStoreOption) (*S3BlobStore, error) {
	if cfg == nil {
		return nil, errors.New("storage configuration is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}
	if cfg.AccessKey == "" {
		return nil, errors.New("storage access key is required")
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("storage secret key is required")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "http://localhost:9000" // MinIO default
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		if cfg.UseSSL {
			endpoint = "https://" + endpoint
		} else {
			endpoint = "http://" + endpoint
		}
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, fmt.Errorf("invalid storage endpoint: %w", err)
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		o.BaseEndpoint = aws.String(endpoint)
	})

	store := &S3BlobStore{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		urlExpiration: cfg.URLExpiration,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(store)
	}
	if store.urlExpiration == 0 {
		store.urlExpiration = 24 * time.Hour
	}

	return store, nil
}

// EnsureBucket creates the bucket if it doesn't exist.
// Call this during application startup to ensure the bucket is ready.
func (s *S3BlobStore) EnsureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if !errors.As(err, &notFound) && !errors.As(err, &noSuchBucket) {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	s.logger.Info("Creating storage bucket", zap.String("bucket", s.bucket))
	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		// Another instance may have won the race.
		var alreadyOwned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &alreadyOwned) {
			return nil
		}
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	return nil
}

// Upload writes the blob at path and returns a URL it can be fetched
// from.
func (s *S3BlobStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	if path == "" {
		return "", errors.New("storage path is required")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	s.logger.Debug("uploaded blob",
		zap.String("path", path),
		zap.Int("size", len(data)))

	return s.DownloadURL(ctx, path)
}

// DownloadURL returns a fetchable URL for an existing blob. With a
// public base URL configured the URL is stable; otherwise it is
// presigned and expires.
func (s *S3BlobStore) DownloadURL(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", errors.New("storage path is required")
	}

	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + path, nil
	}

	presignReq, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	}, s3.WithPresignExpires(s.urlExpiration))
	if err != nil {
		return "", fmt.Errorf("failed to generate download URL: %w", err)
	}
	return presignReq.URL, nil
}

// Bucket returns the bucket name
func (s *S3BlobStore) Bucket() string {
	return s.bucket
}
