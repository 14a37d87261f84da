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

// DashboardView drives the dashboard screen for one user. The user identifier
// is an explicit constructor input: a different user means a new controller.
// The view auto-loads on mount.
type DashboardView struct {
	backend ports.Backend
	userID  core.UserID
	m       lifecycle.Machine[mentorship.DashboardSummary]
}

// NewDashboardView creates the dashboard controller for a user.
func NewDashboardView(backend ports.Backend, userID core.UserID) *DashboardView {
	return &DashboardView{backend: backend, userID: userID}
}

// EnsureLoaded triggers the initial fetch if the view has never loaded.
func (v *DashboardView) EnsureLoaded(ctx context.Context) {
	if v.m.State() == lifecycle.Idle {
		v.run(ctx)
	}
}

// Retry re-issues the same request.
func (v *DashboardView) Retry(ctx context.Context) {
	v.run(ctx)
}

func (v *DashboardView) run(ctx context.Context) {
	ticket, ok := v.m.Begin()
	if !ok {
		return
	}
	summary, err := v.backend.Dashboard(ctx, v.userID)
	if err != nil {
		logx.Default.Warn("dashboard load failed for %s: %v", v.userID, err)
		v.m.Fail(ticket, err)
		return
	}
	v.m.Succeed(ticket, summary)
}

// Teardown discards the view state.
func (v *DashboardView) Teardown() {
	v.m.Reset()
}

// DashboardModel is the display-ready dashboard state.
type DashboardModel struct {
	State   lifecycle.State
	HasData bool

	Profile            mentorship.Profile
	ActiveGoals        int
	CompletedGoals     int
	AvgProgressPercent int
	TotalMatches       int
	UpcomingSessions   int
	CompletedSessions  int

	RecentGoals    []present.GoalRow
	RecentInsights []present.InsightCard

	ErrorMessage string
	EmptyMessage string
}

// Model derives the current display state. Recent lists are bounded to the
// first three items in backend order.
func (v *DashboardView) Model() DashboardModel {
	model := DashboardModel{State: v.m.State()}

	if summary, ok := v.m.Data(); ok {
		model.HasData = true
		model.Profile = summary.Profile
		model.ActiveGoals = summary.Stats.ActiveGoals
		model.CompletedGoals = summary.Stats.CompletedGoals
		model.AvgProgressPercent = present.ProgressPercent(summary.Stats.AvgProgress)
		model.TotalMatches = summary.Stats.TotalMatches
		model.UpcomingSessions = summary.Stats.UpcomingSessions
		model.CompletedSessions = summary.Stats.CompletedSessions
		model.RecentGoals = present.GoalRows(present.RecentSlice(summary.RecentGoals))
		model.RecentInsights = present.InsightCards(present.RecentSlice(summary.RecentInsights))
	}

	if v.m.Err() != nil {
		model.ErrorMessage = "could not refresh the dashboard"
	}
	if !model.HasData && model.State != lifecycle.Pending {
		model.EmptyMessage = "dashboard data not available"
	}
	return model
}
