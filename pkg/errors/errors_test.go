package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeDatasetNotFound, "dataset missing")
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeDatasetNotFound, err.Code)
	assert.Equal(t, "dataset missing", err.Message)
	assert.NotEmpty(t, err.Stack)
	assert.Equal(t, "[DATASET_001] dataset missing", err.Error())
}

func TestError_WithDetail(t *testing.T) {
	err := InvalidParam("max_segments must be >= 1").WithDetail("got 0")
	assert.Equal(t, "[COMMON_002] max_segments must be >= 1: got 0", err.Error())

	var nilErr *AppError
	assert.Nil(t, nilErr.WithDetail("ignored"))
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(cause, ErrCodeDatabaseError, "query failed")
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeDatabaseError, err.Code)
	assert.ErrorIs(t, err, cause)
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeDatabaseError, "query failed"))
}

func TestWrap_PreservesCodeWhenUnknown(t *testing.T) {
	inner := New(ErrCodeDatasetNotFound, "dataset missing")
	outer := Wrap(inner, CodeUnknown, "lookup failed")
	assert.Equal(t, ErrCodeDatasetNotFound, outer.Code)
}

func TestIsCode(t *testing.T) {
	inner := New(ErrCodeLayoutConfigInvalid, "max_segments must be >= 1")
	wrapped := fmt.Errorf("compute: %w", inner)
	assert.True(t, IsCode(wrapped, ErrCodeLayoutConfigInvalid))
	assert.False(t, IsCode(wrapped, ErrCodeDatasetNotFound))
	assert.False(t, IsCode(nil, ErrCodeDatasetNotFound))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(New(ErrCodeDatasetNotFound, "gone")))
	assert.True(t, IsNotFound(NotFound("gone")))
	assert.False(t, IsNotFound(Internal("boom")))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(New(ErrCodeCSVSchemaInvalid, "missing MOA column")))
	assert.True(t, IsValidation(New(ErrCodeLayoutConfigInvalid, "bad cap")))
	assert.True(t, IsValidation(Validation("asset name empty")))
	assert.False(t, IsValidation(NotFound("gone")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(errors.New("plain")))
	assert.Equal(t, ErrCodeConflict, GetCode(Conflict("dup")))
}

func TestHTTPStatusForCode(t *testing.T) {
	assert.Equal(t, 404, HTTPStatusForCode(ErrCodeDatasetNotFound))
	assert.Equal(t, 400, HTTPStatusForCode(ErrCodeLayoutConfigInvalid))
	assert.Equal(t, 500, HTTPStatusForCode(ErrorCode("NOPE_999")))
}

func TestModuleForCode(t *testing.T) {
	assert.Equal(t, "LAYOUT", ModuleForCode(ErrCodeLayoutConfigInvalid))
	assert.Equal(t, "DATASET", ModuleForCode(ErrCodeCSVParseFailed))
	assert.Equal(t, "COMMON", ModuleForCode(ErrCodeInternal))
}

//Personal.AI order the ending
