package dataset

import (
	"bytes"
	"context"
	"fmt"

	"github.com/turtacn/BullsEye-Radar/internal/domain/asset"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/storage/minio"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

// Service owns the dataset lifecycle.  Persistence is authoritative; artifact
// archival and event publication are best-effort and never fail an import.
type Service interface {
	// Import creates a new dataset from a CSV body.
	Import(ctx context.Context, name, source string, csvBody []byte) (*asset.Dataset, error)

	// Replace swaps a dataset's rows for the contents of a new CSV body,
	// bumping the version.
	Replace(ctx context.Context, id string, csvBody []byte) (*asset.Dataset, error)

	// Get loads one dataset with its rows.
	Get(ctx context.Context, id string) (*asset.Dataset, error)

	// List returns dataset headers, newest first.
	List(ctx context.Context, page, pageSize int) ([]*asset.Dataset, error)

	// Delete removes a dataset.
	Delete(ctx context.Context, id string) error

	// ExportCSV renders a dataset back to CSV, returning the body and a
	// suggested filename.
	ExportCSV(ctx context.Context, id string) ([]byte, string, error)

	// Template returns the import template CSV.
	Template() []byte
}

type serviceImpl struct {
	repo      asset.Repository
	artifacts minio.ArtifactStore  // nil disables archival
	publisher kafka.EventPublisher // nil disables events
	metrics   *prometheus.AppMetrics
	logger    logging.Logger
}

// NewService creates a dataset service.  artifacts, publisher, and metrics
// may each be nil.
func NewService(repo asset.Repository, artifacts minio.ArtifactStore, publisher kafka.EventPublisher, metrics *prometheus.AppMetrics, logger logging.Logger) Service {
	return &serviceImpl{
		repo:      repo,
		artifacts: artifacts,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

func (s *serviceImpl) Import(ctx context.Context, name, source string, csvBody []byte) (*asset.Dataset, error) {
	records, err := ParseCSV(bytes.NewReader(csvBody))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeCSVSchemaInvalid, "csv contains no data rows")
	}

	d, err := asset.NewDataset(name, source, records)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.archive(ctx, d, csvBody)
	s.publish(ctx, kafka.EventDatasetCreated, d)
	prometheus.RecordDatasetImport(s.metrics, sourceLabel(source), len(records))

	s.logger.Info("Imported dataset",
		logging.String("dataset_id", d.ID),
		logging.String("name", d.Name),
		logging.Int("rows", len(records)),
	)
	return d, nil
}

func (s *serviceImpl) Replace(ctx context.Context, id string, csvBody []byte) (*asset.Dataset, error) {
	records, err := ParseCSV(bytes.NewReader(csvBody))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeCSVSchemaInvalid, "csv contains no data rows")
	}

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.ReplaceAssets(records); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceAssets(ctx, d); err != nil {
		return nil, err
	}

	s.archive(ctx, d, csvBody)
	s.publish(ctx, kafka.EventDatasetReplaced, d)

	s.logger.Info("Replaced dataset rows",
		logging.String("dataset_id", d.ID),
		logging.Int("version", d.Version),
		logging.Int("rows", len(records)),
	)
	return d, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (*asset.Dataset, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *serviceImpl) List(ctx context.Context, page, pageSize int) ([]*asset.Dataset, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return s.repo.List(ctx, pageSize, (page-1)*pageSize)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.artifacts != nil {
		if err := s.artifacts.Delete(ctx, d.ID, d.Version); err != nil {
			s.logger.Warn("Failed to delete csv artifact",
				logging.String("dataset_id", d.ID), logging.Err(err))
		}
	}
	s.publish(ctx, kafka.EventDatasetDeleted, d)

	s.logger.Info("Deleted dataset", logging.String("dataset_id", id))
	return nil
}

func (s *serviceImpl) ExportCSV(ctx context.Context, id string) ([]byte, string, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, d.Assets); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("%s-v%d.csv", d.Name, d.Version), nil
}

func (s *serviceImpl) Template() []byte {
	return SampleCSV()
}

// archive stores the raw CSV body best-effort.
func (s *serviceImpl) archive(ctx context.Context, d *asset.Dataset, body []byte) {
	if s.artifacts == nil {
		return
	}
	if err := s.artifacts.PutCSV(ctx, d.ID, d.Version, body); err != nil {
		s.logger.Warn("Failed to archive csv artifact",
			logging.String("dataset_id", d.ID),
			logging.Int("version", d.Version),
			logging.Err(err),
		)
	}
}

// publish emits a lifecycle event best-effort.
func (s *serviceImpl) publish(ctx context.Context, eventType string, d *asset.Dataset) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishDatasetEvent(ctx, eventType, kafka.DatasetEventPayload{
		DatasetID: d.ID,
		Name:      d.Name,
		Version:   d.Version,
	})
	if err != nil {
		s.logger.Warn("Failed to publish dataset event",
			logging.String("event_type", eventType),
			logging.String("dataset_id", d.ID),
			logging.Err(err),
		)
		return
	}
	if s.metrics != nil {
		s.metrics.DatasetEventsTotal.WithLabelValues(eventType).Inc()
	}
}

func sourceLabel(source string) string {
	if source == "" {
		return "inline"
	}
	return "upload"
}

//Personal.AI order the ending
