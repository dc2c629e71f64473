package chart

import (
	"context"
	"fmt"
	"time"

	"github.com/turtacn/BullsEye-Radar/internal/config"
	"github.com/turtacn/BullsEye-Radar/internal/domain/asset"
	"github.com/turtacn/BullsEye-Radar/internal/domain/layout"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/database/redis"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

// Service builds chart specs for stored datasets, with a read-through cache
// keyed by dataset version so stale specs can never be served.
type Service interface {
	// Build loads a dataset and assembles its chart spec.
	Build(ctx context.Context, datasetID string, opts BuildOptions) (*Spec, error)

	// Invalidate drops every cached spec for one dataset.
	Invalidate(ctx context.Context, datasetID string) error
}

type serviceImpl struct {
	repo     asset.Repository
	cache    redis.Cache // nil disables caching
	metrics  *prometheus.AppMetrics
	logger   logging.Logger
	defaults config.ChartConfig
}

// NewService creates a chart service.  cache and metrics may be nil; the
// service then works uncached and unmetered, which the CLI relies on.
func NewService(repo asset.Repository, cache redis.Cache, metrics *prometheus.AppMetrics, logger logging.Logger, defaults config.ChartConfig) Service {
	return &serviceImpl{
		repo:     repo,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
		defaults: defaults,
	}
}

func (s *serviceImpl) normalize(opts BuildOptions) BuildOptions {
	if opts.GroupBy == "" {
		opts.GroupBy = asset.GroupByCategory
	}
	if opts.MaxSegments == 0 {
		opts.MaxSegments = s.defaults.MaxSegments
	}
	if opts.RadiusOrder == "" {
		opts.RadiusOrder = layout.RadiusOrder(s.defaults.RadiusOrder)
	}
	if opts.RadiusOrder == "" {
		opts.RadiusOrder = layout.OrderInnermostFirst
	}
	return opts
}

func cacheKey(datasetID string, version int, opts BuildOptions) string {
	return fmt.Sprintf("chart:%s:v%d:%s:%d:%s",
		datasetID, version, opts.GroupBy, opts.MaxSegments, opts.RadiusOrder)
}

func (s *serviceImpl) Build(ctx context.Context, datasetID string, opts BuildOptions) (*Spec, error) {
	opts = s.normalize(opts)

	d, err := s.repo.GetByID(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	if s.cache == nil {
		return s.assemble(d, opts)
	}

	// GetOrSet runs the loader once per key across concurrent callers, so a
	// burst of identical requests computes the layout a single time.
	key := cacheKey(d.ID, d.Version, opts)
	assembled := false
	var spec Spec
	err = s.cache.GetOrSet(ctx, key, &spec, s.defaults.CacheTTL, func(context.Context) (interface{}, error) {
		assembled = true
		return s.assemble(d, opts)
	})
	if err != nil {
		return nil, err
	}
	prometheus.RecordChartCacheAccess(s.metrics, !assembled)
	return &spec, nil
}

func (s *serviceImpl) assemble(d *asset.Dataset, opts BuildOptions) (*Spec, error) {
	start := time.Now()
	spec, err := Assemble(d, opts)
	if err != nil {
		prometheus.RecordError(s.metrics, "chart", string(errors.GetCode(err)))
		return nil, err
	}
	prometheus.RecordLayoutCompute(s.metrics, string(opts.GroupBy), len(spec.Segments), spec.Unplaced, time.Since(start))
	if s.metrics != nil {
		s.metrics.ChartBuildsTotal.WithLabelValues(string(opts.GroupBy)).Inc()
	}

	s.logger.Debug("Built chart spec",
		logging.String("dataset_id", d.ID),
		logging.Int("version", d.Version),
		logging.String("group_by", string(opts.GroupBy)),
		logging.Int("segments", len(spec.Segments)),
		logging.Int("unplaced", spec.Unplaced),
	)
	return spec, nil
}

func (s *serviceImpl) Invalidate(ctx context.Context, datasetID string) error {
	if s.cache == nil {
		return nil
	}
	n, err := s.cache.DeleteByPrefix(ctx, "chart:"+datasetID+":")
	if err != nil {
		return err
	}
	s.logger.Debug("Invalidated cached chart specs",
		logging.String("dataset_id", datasetID),
		logging.Int64("deleted", n),
	)
	return nil
}

//Personal.AI order the ending
