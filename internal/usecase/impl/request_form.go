package impl

import (
	domainerrors "crosspromo/internal/domain/errors"
)

// RequestFormState is the state of a partnership request form.
type RequestFormState string

const (
	RequestFormIdle             RequestFormState = "idle"
	RequestFormLocationSelected RequestFormState = "location_selected"
	RequestFormConsentGiven     RequestFormState = "consent_given"
	RequestFormSubmitting       RequestFormState = "submitting"
	RequestFormSucceeded        RequestFormState = "success"
	RequestFormFailed           RequestFormState = "failure"
)

// RequestForm collects the source location and consent for one partnership request.
// Only one location can be selected: selecting another replaces the previous choice.
type RequestForm struct {
	targetStoreID string
	selected      string
	consent       bool
	state         RequestFormState
	err           error
}

// NewRequestForm opens an empty form for the target store.
func NewRequestForm(targetStoreID string) *RequestForm {
	return &RequestForm{targetStoreID: targetStoreID, state: RequestFormIdle}
}

// SelectLocation selects the viewer location the request is sent from.
func (f *RequestForm) SelectLocation(locationID string) {
	if f.locked() {
		return
	}
	f.selected = locationID
	f.advance()
}

// DeselectLocation clears the selection if locationID is the selected location.
func (f *RequestForm) DeselectLocation(locationID string) {
	if f.locked() || f.selected != locationID {
		return
	}
	f.selected = ""
	f.advance()
}

// SetConsent records the viewer's agreement to the partnership terms.
func (f *RequestForm) SetConsent(consent bool) {
	if f.locked() {
		return
	}
	f.consent = consent
	f.advance()
}

// Submit validates the form and moves it to submitting. The returned error is a
// validation error and no request must be sent when it is non-nil.
func (f *RequestForm) Submit() error {
	if f.locked() {
		return domainerrors.ErrValidationFailed.WithDetails("request already submitted")
	}
	if f.selected == "" {
		return domainerrors.ErrLocationSelectionRequired
	}
	if !f.consent {
		return domainerrors.ErrConsentRequired
	}
	f.state = RequestFormSubmitting

	return nil
}

// Resolve records the outcome of the submitted request.
func (f *RequestForm) Resolve(err error) {
	if f.state != RequestFormSubmitting {
		return
	}
	f.err = err
	if err != nil {
		f.state = RequestFormFailed

		return
	}
	f.state = RequestFormSucceeded
}

// State returns the current form state.
func (f *RequestForm) State() RequestFormState {
	return f.state
}

// TargetStoreID returns the store the request is addressed to.
func (f *RequestForm) TargetStoreID() string {
	return f.targetStoreID
}

// SelectedLocation returns the selected source location, empty when none.
func (f *RequestForm) SelectedLocation() string {
	return f.selected
}

// Err returns the failure recorded by Resolve.
func (f *RequestForm) Err() error {
	return f.err
}

func (f *RequestForm) locked() bool {
	switch f.state {
	case RequestFormSubmitting, RequestFormSucceeded, RequestFormFailed:
		return true
	default:
		return false
	}
}

func (f *RequestForm) advance() {
	switch {
	case f.selected != "" && f.consent:
		f.state = RequestFormConsentGiven
	case f.selected != "":
		f.state = RequestFormLocationSelected
	default:
		f.state = RequestFormIdle
	}
}
