package validator

import (
	"testing"

	domainerrors "crosspromo/internal/domain/errors"
	"crosspromo/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	StoreName string  `json:"storeName" validate:"required,max=5"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Logo      string  `json:"logo,omitempty" validate:"omitempty,base64"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{StoreName: "Cafe", Latitude: 40}))

	err := v.Validate(&sample{Latitude: 91, Logo: "%%%"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "storeName is required; latitude must be a valid latitude; logo must be base64 encoded", appErr.Details())

	err = v.Validate(&sample{StoreName: "Bakery A", Latitude: 1})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "storeName must be at most 5", appErr.Details())
}
