package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesTemplate(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("name is required")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrSessionNotFound))
	assert.Equal(t, "input validation failed: name is required", detailed.Error())
	assert.Equal(t, "name is required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrChannelSetupFailed.WrapMessage("host rejected channel")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	assert.Equal(t, "CHANNEL_SETUP_FAILED", appErr.ErrorCode())
	assert.True(t, errors.Is(wrapped, ErrChannelSetupFailed))
}
