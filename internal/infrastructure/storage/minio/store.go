package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

const csvContentType = "text/csv"

// ArtifactStore archives the raw CSV body of every dataset import so the
// exact uploaded bytes can be re-fetched later, independent of how the rows
// were normalised on the way into the database.
type ArtifactStore interface {
	// PutCSV stores a raw CSV body for a dataset version.
	PutCSV(ctx context.Context, datasetID string, version int, body []byte) error

	// GetCSV returns the stored CSV body.  Returns ErrCodeNotFound when the
	// artifact does not exist.
	GetCSV(ctx context.Context, datasetID string, version int) ([]byte, error)

	// Delete removes the artifact for one dataset version.  Deleting an
	// absent artifact is not an error.
	Delete(ctx context.Context, datasetID string, version int) error

	// Exists reports whether the artifact is present.
	Exists(ctx context.Context, datasetID string, version int) (bool, error)
}

type artifactStore struct {
	client *Client
	logger logging.Logger
}

// NewArtifactStore builds an ArtifactStore on an established Client.
func NewArtifactStore(client *Client, log logging.Logger) ArtifactStore {
	return &artifactStore{client: client, logger: log}
}

func objectKey(datasetID string, version int) string {
	return fmt.Sprintf("datasets/%s/v%d.csv", datasetID, version)
}

func (s *artifactStore) PutCSV(ctx context.Context, datasetID string, version int, body []byte) error {
	key := objectKey(datasetID, version)
	_, err := s.client.api.PutObject(ctx, s.client.bucket, key,
		bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: csvContentType},
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageError, "failed to store csv artifact")
	}
	s.logger.Debug("Stored CSV artifact",
		logging.String("dataset_id", datasetID),
		logging.Int("version", version),
		logging.Int("bytes", len(body)),
	)
	return nil
}

func (s *artifactStore) GetCSV(ctx context.Context, datasetID string, version int) ([]byte, error) {
	key := objectKey(datasetID, version)
	obj, err := s.client.api.GetObject(ctx, s.client.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageError, "failed to fetch csv artifact")
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return nil, errors.New(errors.ErrCodeNotFound, "csv artifact not found: "+key)
		}
		return nil, errors.Wrap(err, errors.ErrCodeStorageError, "failed to read csv artifact")
	}
	return data, nil
}

func (s *artifactStore) Delete(ctx context.Context, datasetID string, version int) error {
	key := objectKey(datasetID, version)
	if err := s.client.api.RemoveObject(ctx, s.client.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageError, "failed to delete csv artifact")
	}
	return nil
}

func (s *artifactStore) Exists(ctx context.Context, datasetID string, version int) (bool, error) {
	key := objectKey(datasetID, version)
	_, err := s.client.api.StatObject(ctx, s.client.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, errors.Wrap(err, errors.ErrCodeStorageError, "failed to stat csv artifact")
	}
	return true, nil
}

//Personal.AI order the ending
