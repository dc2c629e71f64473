package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/BullsEye-Radar/internal/application/chart"
	"github.com/turtacn/BullsEye-Radar/internal/domain/asset"
	"github.com/turtacn/BullsEye-Radar/internal/domain/layout"
	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
)

// ChartHandler serves the chart-spec endpoint.
type ChartHandler struct {
	chartSvc chart.Service
	logger   logging.Logger
}

func NewChartHandler(chartSvc chart.Service, logger logging.Logger) *ChartHandler {
	return &ChartHandler{chartSvc: chartSvc, logger: logger}
}

// Get handles GET /api/v1/datasets/:id/chart.  Query parameters group_by,
// max_segments, and radius_order override the configured defaults.
func (h *ChartHandler) Get(c *gin.Context) {
	opts, err := parseBuildOptions(c)
	if err != nil {
		respondError(c, err)
		return
	}

	spec, err := h.chartSvc.Build(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, spec)
}

func parseBuildOptions(c *gin.Context) (chart.BuildOptions, error) {
	var opts chart.BuildOptions

	groupBy, err := asset.ParseGroupBy(c.Query("group_by"))
	if err != nil {
		return opts, err
	}
	opts.GroupBy = groupBy

	if raw := c.Query("max_segments"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return opts, errors.New(errors.ErrCodeLayoutConfigInvalid, "max_segments must be an integer").
				WithDetail("got " + strconv.Quote(raw))
		}
		opts.MaxSegments = n
	}

	if raw := c.Query("radius_order"); raw != "" {
		order := layout.RadiusOrder(raw)
		if !order.Valid() {
			return opts, errors.New(errors.ErrCodeLayoutConfigInvalid, "unsupported radius_order").
				WithDetail("got " + strconv.Quote(raw) + "; expected innermost_first|outermost_first")
		}
		opts.RadiusOrder = order
	}

	return opts, nil
}

//Personal.AI order the ending
