// Package handlers implements the HTTP API endpoints: dataset lifecycle,
// chart building, and health.
package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/BullsEye-Radar/internal/interfaces/http/middleware"
	"github.com/turtacn/BullsEye-Radar/pkg/errors"
	"github.com/turtacn/BullsEye-Radar/pkg/types/common"
)

// respond writes a success envelope with the given payload.
func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, common.APIResponse[interface{}]{
		Success:   true,
		Data:      data,
		RequestID: middleware.GetRequestID(c),
		Timestamp: time.Now().UTC(),
	})
}

// respondPage writes a success envelope with pagination metadata.
func respondPage(c *gin.Context, status int, data interface{}, p common.Pagination) {
	c.JSON(status, common.APIResponse[interface{}]{
		Success:    true,
		Data:       data,
		Pagination: &p,
		RequestID:  middleware.GetRequestID(c),
		Timestamp:  time.Now().UTC(),
	})
}

// respondError maps an application error to its HTTP status and writes an
// error envelope.  Unknown error codes fall through to 500 with a masked
// message.
func respondError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)

	message := err.Error()
	if status >= 500 {
		message = "internal server error"
	}

	c.JSON(status, common.APIResponse[interface{}]{
		Success: false,
		Error: &common.ErrorDetail{
			Code:    code.String(),
			Message: message,
		},
		RequestID: middleware.GetRequestID(c),
		Timestamp: time.Now().UTC(),
	})
}

// parsePagination reads page and page_size query parameters with defaults.
func parsePagination(c *gin.Context) common.Pagination {
	p := common.Pagination{Page: 1, PageSize: 20}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil && v > 0 && v <= 500 {
		p.PageSize = v
	}
	return p
}

//Personal.AI order the ending
