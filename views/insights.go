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

// InsightsView drives the AI career-insights screen. It is pull-based: data
// is populated only after an explicit "Generate Insights" action.
type InsightsView struct {
	backend ports.Backend
	userID  core.UserID
	m       lifecycle.Machine[[]mentorship.Insight]
}

// NewInsightsView creates the insights controller for a user.
func NewInsightsView(backend ports.Backend, userID core.UserID) *InsightsView {
	return &InsightsView{backend: backend, userID: userID}
}

// Generate requests insights. Triggering while pending is a no-op.
func (v *InsightsView) Generate(ctx context.Context) {
	ticket, ok := v.m.Begin()
	if !ok {
		return
	}
	insights, err := v.backend.Insights(ctx, v.userID)
	if err != nil {
		logx.Default.Warn("insight generation failed for %s: %v", v.userID, err)
		v.m.Fail(ticket, err)
		return
	}
	v.m.Succeed(ticket, insights)
}

// Retry re-issues the same request.
func (v *InsightsView) Retry(ctx context.Context) {
	v.Generate(ctx)
}

// Teardown discards the view state.
func (v *InsightsView) Teardown() {
	v.m.Reset()
}

// InsightsModel is the display-ready insights screen state.
type InsightsModel struct {
	State         lifecycle.State
	Cards         []present.InsightCard
	PromptMessage string
	ErrorMessage  string
	EmptyMessage  string
}

// Model derives the current display state.
func (v *InsightsView) Model() InsightsModel {
	model := InsightsModel{State: v.m.State()}

	insights, hasData := v.m.Data()
	if hasData {
		model.Cards = present.InsightCards(insights)
	}
	switch {
	case model.State == lifecycle.Idle:
		model.PromptMessage = "generate insights to see AI career guidance"
	case v.m.Err() != nil:
		model.ErrorMessage = "could not generate insights right now"
	case hasData && len(insights) == 0:
		model.EmptyMessage = "no insights available yet"
	}
	return model
}
