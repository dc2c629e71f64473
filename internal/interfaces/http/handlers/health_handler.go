package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/BullsEye-Radar/pkg/types/common"
)

// Pinger checks one dependency.  A nil error means the dependency is up.
type Pinger func(ctx context.Context) error

// HealthHandler serves liveness and readiness probes.  Liveness always
// succeeds while the process runs; readiness pings every registered
// dependency.
type HealthHandler struct {
	version      string
	pingers      map[string]Pinger
	checkTimeout time.Duration
}

func NewHealthHandler(version string, pingers map[string]Pinger) *HealthHandler {
	return &HealthHandler{
		version:      version,
		pingers:      pingers,
		checkTimeout: 5 * time.Second,
	}
}

// Liveness handles GET /healthz.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, common.HealthReport{
		Status:  common.HealthUp,
		Version: h.version,
	})
}

// Readiness handles GET /readyz.  Returns 503 when any dependency is down.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.checkTimeout)
	defer cancel()

	names := make([]string, 0, len(h.pingers))
	for name := range h.pingers {
		names = append(names, name)
	}
	sort.Strings(names)

	report := common.HealthReport{Status: common.HealthUp, Version: h.version}
	status := http.StatusOK
	for _, name := range names {
		start := time.Now()
		err := h.pingers[name](ctx)
		component := common.ComponentHealth{
			Name:    name,
			Status:  common.HealthUp,
			Latency: time.Since(start).Round(time.Millisecond).String(),
		}
		if err != nil {
			component.Status = common.HealthDown
			component.Message = err.Error()
			report.Status = common.HealthDown
			status = http.StatusServiceUnavailable
		}
		report.Components = append(report.Components, component)
	}

	c.JSON(status, report)
}

//Personal.AI order the ending
