package asset

import "context"

// Repository is the persistence contract for datasets.  Implementations live
// in internal/infrastructure/database.
type Repository interface {
	// Create persists a new dataset with its asset rows.
	Create(ctx context.Context, d *Dataset) error

	// GetByID loads a dataset and its asset rows.  Returns an AppError with
	// ErrCodeDatasetNotFound when no such dataset exists.
	GetByID(ctx context.Context, id string) (*Dataset, error)

	// List returns dataset headers (no asset rows) ordered by creation time,
	// newest first.
	List(ctx context.Context, limit, offset int) ([]*Dataset, error)

	// ReplaceAssets persists a full replacement of a dataset's rows and the
	// accompanying version bump.
	ReplaceAssets(ctx context.Context, d *Dataset) error

	// Delete removes a dataset and its rows.  Deleting an absent dataset
	// returns ErrCodeDatasetNotFound.
	Delete(ctx context.Context, id string) error
}

//Personal.AI order the ending
