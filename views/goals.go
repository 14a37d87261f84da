package views

import (
	"context"

	"mentormatch/domain/core"
	"mentormatch/domain/forms"
	"mentormatch/domain/mentorship"
	"mentormatch/internal/logx"
	"mentormatch/lifecycle"
	"mentormatch/ports"
	"mentormatch/present"
)

// GoalsView drives the goal-tracking screen for one user. The list auto-loads
// on mount; after each creation it is refetched as a full replace, never
// merged locally.
type GoalsView struct {
	backend ports.Backend
	userID  core.UserID
	m       lifecycle.Machine[[]mentorship.Goal]
}

// NewGoalsView creates the goals controller for a user.
func NewGoalsView(backend ports.Backend, userID core.UserID) *GoalsView {
	return &GoalsView{backend: backend, userID: userID}
}

// EnsureLoaded triggers the initial fetch if the view has never loaded.
func (v *GoalsView) EnsureLoaded(ctx context.Context) {
	if v.m.State() == lifecycle.Idle {
		v.run(ctx)
	}
}

// Retry re-issues the same request.
func (v *GoalsView) Retry(ctx context.Context) {
	v.run(ctx)
}

func (v *GoalsView) run(ctx context.Context) {
	ticket, ok := v.m.Begin()
	if !ok {
		return
	}
	goals, err := v.backend.Goals(ctx, v.userID)
	if err != nil {
		logx.Default.Warn("goals load failed for %s: %v", v.userID, err)
		v.m.Fail(ticket, err)
		return
	}
	v.m.Succeed(ticket, goals)
}

// Create transforms the form, submits the goal and refetches the full list.
// The returned error is nil or an INVALID_INPUT the user must correct;
// request failures surface through the lifecycle state.
func (v *GoalsView) Create(ctx context.Context, form forms.GoalForm) error {
	form.UserID = v.userID
	payload, err := form.Payload()
	if err != nil {
		return err
	}
	if _, err := v.backend.CreateGoal(ctx, payload); err != nil {
		logx.Default.Warn("goal create failed for %s: %v", v.userID, err)
		if ticket, ok := v.m.Begin(); ok {
			v.m.Fail(ticket, err)
		}
		return nil
	}
	v.run(ctx)
	return nil
}

// Goals returns the raw loaded goals, e.g. for report export.
func (v *GoalsView) Goals() []mentorship.Goal {
	goals, _ := v.m.Data()
	return goals
}

// Teardown discards the view state.
func (v *GoalsView) Teardown() {
	v.m.Reset()
}

// GoalsModel is the display-ready goals screen state.
type GoalsModel struct {
	State        lifecycle.State
	Rows         []present.GoalRow
	ErrorMessage string
	EmptyMessage string
}

// Model derives the current display state. An empty list is a dedicated
// empty state, distinct from a request failure.
func (v *GoalsView) Model() GoalsModel {
	model := GoalsModel{State: v.m.State()}

	goals, hasData := v.m.Data()
	if hasData {
		model.Rows = present.GoalRows(goals)
	}
	if v.m.Err() != nil {
		model.ErrorMessage = "could not load your goals"
	}
	if hasData && len(goals) == 0 {
		model.EmptyMessage = "no goals yet"
	}
	return model
}
