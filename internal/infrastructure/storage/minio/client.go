// Package minio stores raw CSV upload artifacts in S3-compatible object
// storage, keyed by dataset ID and version.
package minio

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/turtacn/BullsEye-Radar/internal/config"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

// MinIOAPI is the subset of the minio-go client the artifact store needs.
// Narrowing the surface keeps the store mockable.
type MinIOAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

// Client wraps a MinIO connection plus the bucket it operates on.
type Client struct {
	api    MinIOAPI
	bucket string
	logger logging.Logger
	mu     sync.RWMutex
	closed bool
}

// NewClient connects to the configured MinIO endpoint.  It does not touch the
// bucket; call EnsureBucket during startup.
func NewClient(cfg config.MinIOConfig, log logging.Logger) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageError, "failed to create minio client")
	}

	log.Info("Connected to MinIO",
		logging.String("endpoint", cfg.Endpoint),
		logging.String("bucket", cfg.Bucket),
	)

	return &Client{api: mc, bucket: cfg.Bucket, logger: log}, nil
}

// NewClientWithAPI wraps an existing API implementation (used by tests).
func NewClientWithAPI(api MinIOAPI, bucket string, log logging.Logger) *Client {
	return &Client{api: api, bucket: bucket, logger: log}
}

// EnsureBucket creates the artifact bucket when it does not exist yet.
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.api.BucketExists(ctx, c.bucket)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageError, "failed to check bucket")
	}
	if exists {
		return nil
	}
	if err := c.api.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageError, "failed to create bucket")
	}
	c.logger.Info("Created MinIO bucket", logging.String("bucket", c.bucket))
	return nil
}

// HealthCheck verifies the endpoint responds.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := c.api.BucketExists(ctx, c.bucket); err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageError, "minio health check failed")
	}
	return nil
}

// Close marks the client closed.  minio-go has no explicit close.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

//Personal.AI order the ending
