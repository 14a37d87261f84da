package views

import (
	"context"

	"mentormatch/domain/mentorship"
	"mentormatch/internal/logx"
	"mentormatch/lifecycle"
	"mentormatch/ports"
	"mentormatch/present"
)

// LandingView drives the landing page. It loads the profile list on mount and
// derives community counts plus the heuristic activity estimates.
type LandingView struct {
	backend ports.Backend
	m       lifecycle.Machine[[]mentorship.Profile]
}

// NewLandingView creates the landing controller.
func NewLandingView(backend ports.Backend) *LandingView {
	return &LandingView{backend: backend}
}

// EnsureLoaded triggers the initial fetch if the view has never loaded.
func (v *LandingView) EnsureLoaded(ctx context.Context) {
	if v.m.State() == lifecycle.Idle {
		v.run(ctx)
	}
}

// Retry re-issues the request from failed or succeeded.
func (v *LandingView) Retry(ctx context.Context) {
	v.run(ctx)
}

func (v *LandingView) run(ctx context.Context) {
	ticket, ok := v.m.Begin()
	if !ok {
		return
	}
	profiles, err := v.backend.ListProfiles(ctx)
	if err != nil {
		logx.Default.Warn("landing: profile list failed: %v", err)
		v.m.Fail(ticket, err)
		return
	}
	v.m.Succeed(ticket, profiles)
}

// Teardown discards the view state.
func (v *LandingView) Teardown() {
	v.m.Reset()
}

// LandingModel is the display-ready landing page state. ApproxMatches and
// ApproxSessions are heuristic placeholders derived from the profile count,
// not backend-verified numbers.
type LandingModel struct {
	State          lifecycle.State
	ProfileCount   int
	ApproxMatches  int
	ApproxSessions int
	ErrorMessage   string
}

// Model derives the current display state.
func (v *LandingView) Model() LandingModel {
	model := LandingModel{State: v.m.State()}
	if profiles, ok := v.m.Data(); ok {
		model.ProfileCount = len(profiles)
		model.ApproxMatches, model.ApproxSessions = present.LandingEstimate(len(profiles))
	}
	if err := v.m.Err(); err != nil {
		model.ErrorMessage = "community stats are unavailable right now"
	}
	return model
}
