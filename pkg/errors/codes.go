package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_005"
	ErrCodeTimeout            ErrorCode = "COMMON_006"
	ErrCodeValidation         ErrorCode = "COMMON_007"
	ErrCodeSerialization      ErrorCode = "COMMON_008"
	ErrCodeDatabaseError      ErrorCode = "COMMON_009"
	ErrCodeCacheError         ErrorCode = "COMMON_010"
	ErrCodeStorageError       ErrorCode = "COMMON_011"
	ErrCodeMessagingError     ErrorCode = "COMMON_012"
)

// Layout Module Error Codes
const (
	ErrCodeLayoutConfigInvalid ErrorCode = "LAYOUT_001"
)

// Dataset Module Error Codes
const (
	ErrCodeDatasetNotFound  ErrorCode = "DATASET_001"
	ErrCodeDatasetInvalid   ErrorCode = "DATASET_002"
	ErrCodeCSVSchemaInvalid ErrorCode = "DATASET_003"
	ErrCodeCSVPhaseInvalid  ErrorCode = "DATASET_004"
	ErrCodeCSVParseFailed   ErrorCode = "DATASET_005"
)

// Chart Module Error Codes
const (
	ErrCodeChartGroupByInvalid ErrorCode = "CHART_001"
	ErrCodeChartBuildFailed    ErrorCode = "CHART_002"
)

// Sentinel aliases used by chain-inspection helpers.
const (
	CodeOK      = ErrorCode("OK")
	CodeUnknown = ErrorCode("UNKNOWN")
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeStorageError:       http.StatusInternalServerError,
	ErrCodeMessagingError:     http.StatusInternalServerError,

	ErrCodeLayoutConfigInvalid: http.StatusBadRequest,

	ErrCodeDatasetNotFound:  http.StatusNotFound,
	ErrCodeDatasetInvalid:   http.StatusUnprocessableEntity,
	ErrCodeCSVSchemaInvalid: http.StatusBadRequest,
	ErrCodeCSVPhaseInvalid:  http.StatusBadRequest,
	ErrCodeCSVParseFailed:   http.StatusBadRequest,

	ErrCodeChartGroupByInvalid: http.StatusBadRequest,
	ErrCodeChartBuildFailed:    http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",
	ErrCodeStorageError:       "object storage error",
	ErrCodeMessagingError:     "message broker error",

	ErrCodeLayoutConfigInvalid: "invalid layout configuration",

	ErrCodeDatasetNotFound:  "dataset not found",
	ErrCodeDatasetInvalid:   "dataset failed validation",
	ErrCodeCSVSchemaInvalid: "CSV is missing required columns",
	ErrCodeCSVPhaseInvalid:  "CSV contains invalid phase values",
	ErrCodeCSVParseFailed:   "failed to parse CSV",

	ErrCodeChartGroupByInvalid: "unsupported grouping column",
	ErrCodeChartBuildFailed:    "failed to build chart specification",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
