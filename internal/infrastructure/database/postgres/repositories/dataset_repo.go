// Package repositories provides the PostgreSQL-backed implementation of the
// dataset repository interface.
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/turtacn/BullsEye-Radar/internal/domain/asset"
	"github.com/turtacn/BullsEye-Radar/internal/domain/layout"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// DatasetRepository
// ─────────────────────────────────────────────────────────────────────────────

// DatasetRepository is the PostgreSQL implementation of asset.Repository.
// Asset rows keep their CSV order via an explicit position column; layout
// output depends on that order, so it must survive round trips.
type DatasetRepository struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

var _ asset.Repository = (*DatasetRepository)(nil)

// NewDatasetRepository constructs a ready-to-use DatasetRepository.
func NewDatasetRepository(pool *pgxpool.Pool, logger logging.Logger) *DatasetRepository {
	return &DatasetRepository{pool: pool, logger: logger}
}

// ─────────────────────────────────────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────────────────────────────────────

// Create persists a dataset header and its asset rows in one transaction.
func (r *DatasetRepository) Create(ctx context.Context, d *asset.Dataset) error {
	r.logger.Debug("DatasetRepository.Create", logging.String("dataset_id", d.ID))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to begin transaction")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx, `
		INSERT INTO datasets (id, name, version, source, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		d.ID, d.Name, d.Version, d.Source, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to insert dataset")
	}

	if err := insertAssets(ctx, tx, d.ID, d.Assets); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to commit transaction")
	}
	return nil
}

func insertAssets(ctx context.Context, tx pgx.Tx, datasetID string, records []asset.Record) error {
	for i, rec := range records {
		_, err := tx.Exec(ctx, `
			INSERT INTO dataset_assets (dataset_id, position, name, company, phase, progress, moa, category)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			datasetID, i, rec.Name, rec.Company, string(rec.Phase), rec.Progress, rec.MOA, rec.Category,
		)
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to insert asset row")
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID
// ─────────────────────────────────────────────────────────────────────────────

// GetByID loads a dataset header plus its asset rows in original CSV order.
func (r *DatasetRepository) GetByID(ctx context.Context, id string) (*asset.Dataset, error) {
	r.logger.Debug("DatasetRepository.GetByID", logging.String("dataset_id", id))

	d := &asset.Dataset{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, version, source, created_at, updated_at
		FROM datasets WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.Version, &d.Source, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.New(errors.ErrCodeDatasetNotFound, "dataset not found: "+id)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to query dataset")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT name, company, phase, progress, moa, category
		FROM dataset_assets WHERE dataset_id = $1
		ORDER BY position`, id,
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to query asset rows")
	}
	defer rows.Close()

	for rows.Next() {
		var rec asset.Record
		var phase string
		if err := rows.Scan(&rec.Name, &rec.Company, &phase, &rec.Progress, &rec.MOA, &rec.Category); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan asset row")
		}
		rec.Phase = layout.Phase(phase)
		d.Assets = append(d.Assets, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to iterate asset rows")
	}
	return d, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// List
// ─────────────────────────────────────────────────────────────────────────────

// List returns dataset headers newest first, without asset rows.
func (r *DatasetRepository) List(ctx context.Context, limit, offset int) ([]*asset.Dataset, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, version, source, created_at, updated_at
		FROM datasets
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to list datasets")
	}
	defer rows.Close()

	var out []*asset.Dataset
	for rows.Next() {
		d := &asset.Dataset{}
		if err := rows.Scan(&d.ID, &d.Name, &d.Version, &d.Source, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to scan dataset")
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to iterate datasets")
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// ReplaceAssets
// ─────────────────────────────────────────────────────────────────────────────

// ReplaceAssets swaps a dataset's rows for a new set and persists the version
// bump, all in one transaction.
func (r *DatasetRepository) ReplaceAssets(ctx context.Context, d *asset.Dataset) error {
	r.logger.Debug("DatasetRepository.ReplaceAssets",
		logging.String("dataset_id", d.ID),
		logging.Int("version", d.Version),
	)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to begin transaction")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx, `
		UPDATE datasets SET version = $2, updated_at = $3 WHERE id = $1`,
		d.ID, d.Version, d.UpdatedAt,
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to update dataset")
	}
	if tag.RowsAffected() == 0 {
		return errors.New(errors.ErrCodeDatasetNotFound, "dataset not found: "+d.ID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM dataset_assets WHERE dataset_id = $1`, d.ID); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to clear asset rows")
	}
	if err := insertAssets(ctx, tx, d.ID, d.Assets); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to commit transaction")
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────────────────────────────────────

// Delete removes a dataset; asset rows go with it via ON DELETE CASCADE.
func (r *DatasetRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM datasets WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "failed to delete dataset")
	}
	if tag.RowsAffected() == 0 {
		return errors.New(errors.ErrCodeDatasetNotFound, "dataset not found: "+id)
	}
	return nil
}

//Personal.AI order the ending
