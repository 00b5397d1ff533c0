// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code helpers

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/sortdl/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "directory_not_found",
			code:    errors.ErrDirectoryNotFound,
			message: "directory not found: /tmp/x",
			wantStr: "[DIRECTORY_NOT_FOUND] directory not found: /tmp/x",
		},
		{
			name:    "invalid_entry",
			code:    errors.ErrInvalidEntry,
			message: "not a regular file",
			wantStr: "[INVALID_ENTRY] not a regular file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrRelocation, "copy failed"))
	})

	t.Run("wraps_and_unwraps", func(t *testing.T) {
		base := stderrors.New("disk full")
		err := errors.Wrapf(base, errors.ErrRelocation, "could not move %s", "a.jpg")
		require.NotNil(t, err)
		assert.Equal(t, "[RELOCATION] could not move a.jpg: disk full", err.Error())
		assert.True(t, stderrors.Is(err, base))
	})
}

func TestCodeHelpers(t *testing.T) {
	inner := errors.New(errors.ErrResolutionExhausted, "no free name")
	outer := fmt.Errorf("moving file: %w", inner)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrResolutionExhausted))
	assert.False(t, errors.IsErrorCode(outer, errors.ErrRelocation))
	assert.Equal(t, errors.ErrResolutionExhausted, errors.GetErrorCode(outer))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.True(t, stderrors.Is(outer, errors.New(errors.ErrResolutionExhausted, "")))

	detailed := errors.New(errors.ErrInvalidEntry, "bad").WithDetail("path", "/x")
	assert.Equal(t, "/x", errors.GetErrorDetails(detailed)["path"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIsSetupError(t *testing.T) {
	assert.True(t, errors.IsSetupError(errors.New(errors.ErrSetup, "no home")))
	assert.True(t, errors.IsSetupError(errors.New(errors.ErrSweepLocked, "busy")))
	assert.False(t, errors.IsSetupError(errors.New(errors.ErrDirectoryNotFound, "gone")))
	assert.False(t, errors.IsSetupError(nil))
}
