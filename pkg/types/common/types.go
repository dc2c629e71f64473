// Package common holds the shared wire and pagination types used by the HTTP
// layer and the REST client.
package common

import (
	"fmt"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Pagination
// ─────────────────────────────────────────────────────────────────────────────

// Pagination defines parameters for paginated requests.
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total,omitempty"`
}

// Validate checks pagination bounds.
func (p Pagination) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("page must be >= 1")
	}
	if p.PageSize < 1 || p.PageSize > 500 {
		return fmt.Errorf("page_size must be between 1 and 500")
	}
	return nil
}

// Offset returns the SQL OFFSET value.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ─────────────────────────────────────────────────────────────────────────────
// API envelope
// ─────────────────────────────────────────────────────────────────────────────

// ErrorDetail provides structured error information for API responses.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// APIResponse is the generic wrapper for all API responses.
type APIResponse[T any] struct {
	Success    bool         `json:"success"`
	Data       T            `json:"data,omitempty"`
	Error      *ErrorDetail `json:"error,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
	RequestID  string       `json:"request_id,omitempty"`
	Timestamp  time.Time    `json:"timestamp"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Health
// ─────────────────────────────────────────────────────────────────────────────

// HealthStatus indicates the health of a component or service.
type HealthStatus string

const (
	HealthUp       HealthStatus = "up"
	HealthDown     HealthStatus = "down"
	HealthDegraded HealthStatus = "degraded"
)

// ComponentHealth provides health information for a single dependency.
type ComponentHealth struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Latency string       `json:"latency,omitempty"`
	Message string       `json:"message,omitempty"`
}

// HealthReport aggregates component health for the health endpoint.
type HealthReport struct {
	Status     HealthStatus      `json:"status"`
	Version    string            `json:"version,omitempty"`
	Components []ComponentHealth `json:"components,omitempty"`
}

//Personal.AI order the ending
