package slot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func TestValidator_Validate(t *testing.T) {
	// Зафиксированное "сейчас": 2025-04-23 12:00:00 UTC
	now := time.Date(2025, 4, 23, 12, 0, 0, 0, time.UTC)
	v := NewValidatorWithTimeProvider(&fixedTimeProvider{now: now})

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name: "future datetime with offset is valid",
			raw:  "2025-04-23T16:00:00-04:00",
		},
		{
			name: "future datetime in UTC is valid",
			raw:  "2025-04-24T09:00:00Z",
		},
		{
			name: "space separated with offset is valid",
			raw:  "2025-04-23 16:00:00-04:00",
		},
		{
			name: "space separated with Z is valid",
			raw:  "2025-04-24 09:00:00Z",
		},
		{
			name:    "garbage string",
			raw:     "next tuesday at noon",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "date only",
			raw:     "2025-04-23",
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "parseable but no offset",
			raw:     "2025-04-23T16:00:00",
			wantErr: ErrMissingTimezone,
		},
		{
			name:    "space separated without offset",
			raw:     "2025-04-23 16:00:00",
			wantErr: ErrMissingTimezone,
		},
		{
			name:    "minutes precision without offset",
			raw:     "2025-04-23T16:00",
			wantErr: ErrMissingTimezone,
		},
		{
			name:    "past datetime",
			raw:     "2025-04-23T07:00:00-04:00",
			wantErr: ErrPastSlot,
		},
		{
			name:    "exactly now is rejected",
			raw:     "2025-04-23T08:00:00-04:00", // == 12:00 UTC
			wantErr: ErrPastSlot,
		},
		{
			name: "one second in the future is accepted",
			raw:  "2025-04-23T08:00:01-04:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := v.Validate(tt.raw)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, start.After(now.In(start.Location())))
		})
	}
}

func TestValidator_Validate_PreservesOffset(t *testing.T) {
	now := time.Date(2025, 4, 23, 12, 0, 0, 0, time.UTC)
	v := NewValidatorWithTimeProvider(&fixedTimeProvider{now: now})

	start, err := v.Validate("2025-04-23T16:00:00-04:00")
	require.NoError(t, err)

	// Момент времени тот же, что 20:00 UTC
	assert.True(t, start.Equal(time.Date(2025, 4, 23, 20, 0, 0, 0, time.UTC)))
}
