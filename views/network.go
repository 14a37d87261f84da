package views

import (
	"context"

	"mentormatch/domain/core"
	"mentormatch/domain/mentorship"
	"mentormatch/internal/logx"
	"mentormatch/lifecycle"
	"mentormatch/ports"
	"mentormatch/present"
)

// NetworkView drives the professional-network analysis screen. It is
// pull-based: analysis runs only on explicit user action.
type NetworkView struct {
	backend ports.Backend
	userID  core.UserID
	m       lifecycle.Machine[mentorship.NetworkAnalysis]
}

// NewNetworkView creates the network controller for a user.
func NewNetworkView(backend ports.Backend, userID core.UserID) *NetworkView {
	return &NetworkView{backend: backend, userID: userID}
}

// Analyze requests the network analysis. Triggering while pending is a no-op.
func (v *NetworkView) Analyze(ctx context.Context) {
	ticket, ok := v.m.Begin()
	if !ok {
		return
	}
	analysis, err := v.backend.NetworkAnalysis(ctx, v.userID)
	if err != nil {
		logx.Default.Warn("network analysis failed for %s: %v", v.userID, err)
		v.m.Fail(ticket, err)
		return
	}
	v.m.Succeed(ticket, analysis)
}

// Retry re-issues the same request.
func (v *NetworkView) Retry(ctx context.Context) {
	v.Analyze(ctx)
}

// Teardown discards the view state.
func (v *NetworkView) Teardown() {
	v.m.Reset()
}

// NetworkModel is the display-ready network screen state. Breakdown shares
// are shown as delivered; they are not required to sum to 100.
type NetworkModel struct {
	State            lifecycle.State
	HasData          bool
	TotalConnections int
	PotentialMentors int
	EventCount       int
	Breakdown        []present.BreakdownRow
	Opportunities    []present.OpportunityRow
	PromptMessage    string
	ErrorMessage     string
}

// Model derives the current display state.
func (v *NetworkView) Model() NetworkModel {
	model := NetworkModel{State: v.m.State()}

	if analysis, ok := v.m.Data(); ok {
		model.HasData = true
		model.TotalConnections = analysis.TotalConnections
		model.PotentialMentors = analysis.PotentialMentors
		model.EventCount = len(analysis.NetworkingEvents)
		model.Breakdown = present.BreakdownRows(analysis.IndustryBreakdown)
		model.Opportunities = present.OpportunityRows(analysis.MentorshipOpportunities)
	}
	switch {
	case model.State == lifecycle.Idle:
		model.PromptMessage = "analyze your network to surface mentorship opportunities"
	case v.m.Err() != nil:
		model.ErrorMessage = "could not analyze your network right now"
	}
	return model
}
