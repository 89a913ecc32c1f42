package analytics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shenikar/crime_analytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCategory(t *testing.T) {
	require.NoError(t, ValidateCategory(nil))

	theft := models.CategoryTheft
	require.NoError(t, ValidateCategory(&theft))

	bogus := models.Category("jaywalking")
	err := ValidateCategory(&bogus)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "crime_type", verr.Field)
	assert.Contains(t, err.Error(), "jaywalking")
}

func TestValidatePositive(t *testing.T) {
	require.NoError(t, ValidatePositive("radius_km", 0.5))
	assert.True(t, IsValidation(ValidatePositive("radius_km", 0)))
	assert.True(t, IsValidation(ValidatePositive("radius_km", -1)))
}

func TestIsValidation_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", invalid("period", "bad"))

	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsValidation(errors.New("boom")))
	assert.False(t, IsValidation(ErrStoreUnavailable))
}
