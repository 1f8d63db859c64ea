package media

import (
	"context"
	"fmt"
	"io"
	"path"

	"viewtube/internal/middleware"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore is a Store backed by a MinIO (S3-compatible) server.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// MinioConfig holds the connection settings for the object store.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// NewMinioStore connects to the object store and ensures the bucket exists.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	middleware.Logger.Info("Object store connected", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

// Upload stores the content under a fresh key in the given category prefix.
func (s *MinioStore) Upload(ctx context.Context, r io.Reader, size int64, contentType, category string) (Object, error) {
	key := path.Join(category, uuid.NewString()+extensionFor(contentType))

	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		middleware.MediaStoreOperations.WithLabelValues("upload", "error").Inc()
		return Object{}, fmt.Errorf("upload object %s: %w", key, err)
	}
	middleware.MediaStoreOperations.WithLabelValues("upload", "ok").Inc()

	return Object{
		Key: key,
		URL: fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, key),
	}, nil
}

// Remove deletes the object. MinIO treats removal of a missing key as a no-op.
func (s *MinioStore) Remove(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		middleware.MediaStoreOperations.WithLabelValues("remove", "error").Inc()
		return fmt.Errorf("remove object %s: %w", key, err)
	}
	middleware.MediaStoreOperations.WithLabelValues("remove", "ok").Inc()
	return nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
