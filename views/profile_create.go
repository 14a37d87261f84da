package views

import (
	"context"

	"mentormatch/domain/forms"
	"mentormatch/domain/mentorship"
	"mentormatch/internal/logx"
	"mentormatch/lifecycle"
	"mentormatch/ports"
)

// ProfileCreateView drives the profile-creation screen. Form transforms run
// before submission; an invalid field is surfaced to the user and no request
// is issued. Once created, a profile is read-only from this layer.
type ProfileCreateView struct {
	backend ports.Backend
	m       lifecycle.Machine[mentorship.Profile]
}

// NewProfileCreateView creates the profile-creation controller.
func NewProfileCreateView(backend ports.Backend) *ProfileCreateView {
	return &ProfileCreateView{backend: backend}
}

// Submit transforms the form and posts it. The returned error is nil or an
// INVALID_INPUT the user must correct; request failures go through the
// lifecycle state instead.
func (v *ProfileCreateView) Submit(ctx context.Context, form forms.ProfileForm) error {
	payload, err := form.Payload()
	if err != nil {
		// Transform errors never reach the network layer.
		return err
	}

	ticket, ok := v.m.Begin()
	if !ok {
		// A submission is already in flight; the duplicate is a no-op.
		return nil
	}
	profile, err := v.backend.CreateProfile(ctx, payload)
	if err != nil {
		logx.Default.Warn("profile create failed: %v", err)
		v.m.Fail(ticket, err)
		return nil
	}
	v.m.Succeed(ticket, profile)
	return nil
}

// CreatedProfile returns the created profile once submission succeeded.
func (v *ProfileCreateView) CreatedProfile() (mentorship.Profile, bool) {
	if v.m.State() != lifecycle.Succeeded {
		return mentorship.Profile{}, false
	}
	return v.m.Data()
}

// State returns the submission lifecycle state.
func (v *ProfileCreateView) State() lifecycle.State {
	return v.m.State()
}

// ErrorMessage returns a display message for a failed submission.
func (v *ProfileCreateView) ErrorMessage() string {
	if v.m.Err() != nil {
		return "could not create your profile, please try again"
	}
	return ""
}

// Teardown discards the view state.
func (v *ProfileCreateView) Teardown() {
	v.m.Reset()
}
