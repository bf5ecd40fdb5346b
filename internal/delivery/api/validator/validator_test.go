package validator

import (
	"testing"
	"time"

	domainerrors "medreminder/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timeRequest struct {
	Time string `json:"time" validate:"required,clock"`
}

type optionalTimeRequest struct {
	Time *string `json:"time" validate:"omitempty,clock"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   timeRequest
		wantErr string
	}{
		{name: "valid time", input: timeRequest{Time: "09:05"}},
		{name: "midnight", input: timeRequest{Time: "00:00"}},
		{name: "missing", input: timeRequest{}, wantErr: "time is required"},
		{name: "twelve hour clock", input: timeRequest{Time: "9:05 PM"}, wantErr: "time must match 15:04"},
		{name: "out of range", input: timeRequest{Time: "25:00"}, wantErr: "time must match 15:04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantErr, appErr.Details())
		})
	}
}

func TestRequestValidator_ClockAliasFollowsLayout(t *testing.T) {
	v := New()

	valid := time.Date(2026, 3, 1, 21, 15, 0, 0, time.UTC).Format(ClockLayout)
	require.NoError(t, v.Validate(&timeRequest{Time: valid}))
	require.NoError(t, v.Validate(&optionalTimeRequest{}))

	invalid := "nine"
	err := v.Validate(&optionalTimeRequest{Time: &invalid})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "time must match "+ClockLayout, appErr.Details())
}
