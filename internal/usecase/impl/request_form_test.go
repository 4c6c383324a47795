package impl

import (
	"testing"

	domainerrors "crosspromo/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestForm_HappyPath(t *testing.T) {
	form := NewRequestForm("C")
	assert.Equal(t, RequestFormIdle, form.State())

	form.SelectLocation("loc-1")
	assert.Equal(t, RequestFormLocationSelected, form.State())

	form.SetConsent(true)
	assert.Equal(t, RequestFormConsentGiven, form.State())

	require.NoError(t, form.Submit())
	assert.Equal(t, RequestFormSubmitting, form.State())

	form.Resolve(nil)
	assert.Equal(t, RequestFormSucceeded, form.State())
	assert.Equal(t, "C", form.TargetStoreID())
}

func TestRequestForm_SingleSelection(t *testing.T) {
	form := NewRequestForm("C")

	form.SelectLocation("loc-1")
	form.SelectLocation("loc-2")
	assert.Equal(t, "loc-2", form.SelectedLocation())

	form.DeselectLocation("loc-1")
	assert.Equal(t, "loc-2", form.SelectedLocation(), "deselecting a replaced location is a no-op")

	form.DeselectLocation("loc-2")
	assert.Empty(t, form.SelectedLocation())
	assert.Equal(t, RequestFormIdle, form.State())
}

func TestRequestForm_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*RequestForm)
		wantErr error
	}{
		{
			name:    "no location",
			prepare: func(f *RequestForm) { f.SetConsent(true) },
			wantErr: domainerrors.ErrLocationSelectionRequired,
		},
		{
			name:    "no consent",
			prepare: func(f *RequestForm) { f.SelectLocation("loc-1") },
			wantErr: domainerrors.ErrConsentRequired,
		},
		{
			name: "consent withdrawn",
			prepare: func(f *RequestForm) {
				f.SelectLocation("loc-1")
				f.SetConsent(true)
				f.SetConsent(false)
			},
			wantErr: domainerrors.ErrConsentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewRequestForm("C")
			tt.prepare(form)

			err := form.Submit()

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
			assert.NotEqual(t, RequestFormSubmitting, form.State())
		})
	}
}

func TestRequestForm_LockedOnceSubmitted(t *testing.T) {
	form := NewRequestForm("C")
	form.SelectLocation("loc-1")
	form.SetConsent(true)
	require.NoError(t, form.Submit())

	form.SelectLocation("loc-2")
	assert.Equal(t, "loc-1", form.SelectedLocation())
	require.ErrorIs(t, form.Submit(), domainerrors.ErrValidationFailed)

	form.Resolve(domainerrors.ErrBackendUnavailable)
	assert.Equal(t, RequestFormFailed, form.State())
	assert.ErrorIs(t, form.Err(), domainerrors.ErrBackendUnavailable)
}
