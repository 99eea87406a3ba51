package s3

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	defaultRegion     = "us-east-1"
	defaultPresignTTL = 15 * time.Minute
	exportPrefix      = "audit-exports/"
)

type Config struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	Region     string
	UseSSL     bool
	PresignTTL time.Duration
}

// Archive stores exported documents in a bucket and hands out presigned download links.
type Archive struct {
	client *minio.Client
	bucket string
	ttl    time.Duration
}

func NewClient(cfg Config) (*minio.Client, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}

	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = defaultRegion
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(strings.TrimSpace(cfg.AccessKey), strings.TrimSpace(cfg.SecretKey), ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	return client, nil
}

func NewArchive(cfg Config) (*Archive, error) {
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}

	ttl := cfg.PresignTTL
	if ttl <= 0 {
		ttl = defaultPresignTTL
	}
	return &Archive{client: client, bucket: bucket, ttl: ttl}, nil
}

// Store uploads an export under the export prefix and returns a presigned link to it.
func (a *Archive) Store(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	key := exportPrefix + strings.TrimPrefix(strings.TrimSpace(name), "/")
	if err := a.Put(ctx, key, contentType, data); err != nil {
		return "", err
	}
	return a.PresignGet(ctx, key, a.ttl)
}

func (a *Archive) Put(ctx context.Context, key string, contentType string, data []byte) error {
	if a == nil || a.client == nil {
		return fmt.Errorf("s3 archive is not initialized")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("s3 object key is required")
	}

	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

func (a *Archive) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if a == nil || a.client == nil {
		return "", fmt.Errorf("s3 archive is not initialized")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", nil
	}
	if ttl <= 0 {
		ttl = defaultPresignTTL
	}

	presigned, err := a.client.PresignedGetObject(ctx, a.bucket, key, ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign get object: %w", err)
	}
	return presigned.String(), nil
}
