package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)

	assert.Equal(t, "CONFIG_ERROR: DB_URL is required: invalid input", err.Error())
	assert.ErrorIs(t, err, ErrInvalidInput)

	bare := NewAppError("DB_ERROR", "connection refused", nil)
	assert.Equal(t, "DB_ERROR: connection refused", bare.Error())
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "context"))

	cause := errors.New("boom")
	wrapped := WrapError(cause, "claim job")
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "claim job: boom", wrapped.Error())
}
