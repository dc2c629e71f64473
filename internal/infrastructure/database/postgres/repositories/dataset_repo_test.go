//go:build integration

// Package repositories_test provides integration tests for the PostgreSQL
// dataset repository.  Tests require Docker and are gated behind the
// "integration" build tag.
package repositories_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/turtacn/BullsEye-Radar/internal/domain/asset"
	"github.com/turtacn/BullsEye-Radar/internal/domain/layout"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/database/postgres/repositories"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Test helpers
// ─────────────────────────────────────────────────────────────────────────────

// startPostgres launches a PostgreSQL 16 container and returns a connected pool.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "bullseye_test",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/bullseye_test?sslmode=disable", host, port.Port())
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	applySchema(t, pool)
	return pool
}

func applySchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ddl := `
	CREATE TABLE IF NOT EXISTS datasets (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		version    INTEGER NOT NULL,
		source     TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	CREATE TABLE IF NOT EXISTS dataset_assets (
		dataset_id TEXT NOT NULL REFERENCES datasets(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		name       TEXT NOT NULL,
		company    TEXT NOT NULL DEFAULT '',
		phase      TEXT NOT NULL DEFAULT '',
		progress   DOUBLE PRECISION NOT NULL DEFAULT 0,
		moa        TEXT NOT NULL DEFAULT '',
		category   TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (dataset_id, position)
	);`
	_, err := pool.Exec(context.Background(), ddl)
	require.NoError(t, err)
}

func newRepo(t *testing.T) (*repositories.DatasetRepository, *pgxpool.Pool) {
	t.Helper()
	pool := startPostgres(t)
	return repositories.NewDatasetRepository(pool, logging.NewNopLogger()), pool
}

func sampleDataset(t *testing.T) *asset.Dataset {
	t.Helper()
	d, err := asset.NewDataset("oncology-pipeline", "pipeline.csv", []asset.Record{
		{Name: "BX-101", Company: "Aridis", Phase: layout.Phase1, MOA: "PD-1", Category: "Oncology"},
		{Name: "BX-204", Company: "Corbus", Phase: layout.Phase3, MOA: "EGFR", Category: "Oncology"},
		{Name: "BX-310", Company: "Aridis", Phase: layout.Marketed, MOA: "PD-1", Category: "Immunology"},
	})
	require.NoError(t, err)
	return d
}

// ─────────────────────────────────────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────────────────────────────────────

func TestDatasetRepository_CreateAndGetByID(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	d := sampleDataset(t)
	require.NoError(t, repo.Create(ctx, d))

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
	assert.Equal(t, d.Name, got.Name)
	assert.Equal(t, 1, got.Version)
	require.Len(t, got.Assets, 3)

	// Row order must survive the round trip.
	assert.Equal(t, "BX-101", got.Assets[0].Name)
	assert.Equal(t, "BX-204", got.Assets[1].Name)
	assert.Equal(t, "BX-310", got.Assets[2].Name)
	assert.Equal(t, layout.Phase3, got.Assets[1].Phase)
}

func TestDatasetRepository_GetByID_NotFound(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDatasetNotFound))
}

func TestDatasetRepository_List(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	first := sampleDataset(t)
	require.NoError(t, repo.Create(ctx, first))

	second, err := asset.NewDataset("cns-pipeline", "", []asset.Record{
		{Name: "BX-401", Company: "Nuvectra", Phase: layout.Phase2, MOA: "NMDA", Category: "CNS"},
	})
	require.NoError(t, err)
	second.CreatedAt = second.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(ctx, second))

	got, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "cns-pipeline", got[0].Name) // newest first
	assert.Nil(t, got[0].Assets)                 // headers only
}

func TestDatasetRepository_ReplaceAssets(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	d := sampleDataset(t)
	require.NoError(t, repo.Create(ctx, d))

	err := d.ReplaceAssets([]asset.Record{
		{Name: "BX-500", Company: "Aridis", Phase: layout.Phase2, MOA: "KRAS", Category: "Oncology"},
	})
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceAssets(ctx, d))

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
	require.Len(t, got.Assets, 1)
	assert.Equal(t, "BX-500", got.Assets[0].Name)
}

func TestDatasetRepository_ReplaceAssets_NotFound(t *testing.T) {
	repo, _ := newRepo(t)

	d := sampleDataset(t)
	err := repo.ReplaceAssets(context.Background(), d)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDatasetNotFound))
}

func TestDatasetRepository_Delete(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	d := sampleDataset(t)
	require.NoError(t, repo.Create(ctx, d))
	require.NoError(t, repo.Delete(ctx, d.ID))

	_, err := repo.GetByID(ctx, d.ID)
	assert.True(t, errors.IsCode(err, errors.ErrCodeDatasetNotFound))

	// Cascade removed the rows too.
	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM dataset_assets WHERE dataset_id = $1`, d.ID).Scan(&n))
	assert.Zero(t, n)

	assert.True(t, errors.IsCode(repo.Delete(ctx, d.ID), errors.ErrCodeDatasetNotFound))
}

//Personal.AI order the ending
