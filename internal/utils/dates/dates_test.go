package dates_test

import (
	"errors"
	"testing"

	"github.com/agentdesk/agent_closings_app/internal/apperrors"
	"github.com/agentdesk/agent_closings_app/internal/utils/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid date", "2025-01-15", false},
		{"leap day", "2024-02-29", false},
		{"invalid leap day", "2025-02-29", true},
		{"timestamp rejected", "2025-01-15T00:00:00Z", true},
		{"wrong order", "15-01-2025", true},
		{"empty", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := dates.Validate(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFirstOfMonth(t *testing.T) {
	got, err := dates.FirstOfMonth("2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", got)

	got, err = dates.FirstOfMonth("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-01", got)

	_, err = dates.FirstOfMonth("not-a-date")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestValidateRange(t *testing.T) {
	start := "2025-01-01"
	end := "2025-01-31"

	assert.NoError(t, dates.ValidateRange(&start, &end))
	assert.NoError(t, dates.ValidateRange(nil, nil))
	assert.NoError(t, dates.ValidateRange(&start, nil))

	bad := "2025-02-01"
	err := dates.ValidateRange(&bad, &end)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestStringComparisonIsChronological(t *testing.T) {
	// The storage layer relies on lexicographic comparison of ISO dates.
	assert.True(t, "2024-12-31" < "2025-01-01")
	assert.True(t, "2025-01-02" < "2025-01-10")
}
