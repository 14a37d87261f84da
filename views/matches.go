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

// MatchesView drives the mentor-match discovery screen. It is pull-based:
// it starts idle and only issues a request on an explicit "Find Matches"
// action, never on mount. Matches are ephemeral and discarded on teardown.
type MatchesView struct {
	backend ports.Backend
	userID  core.UserID
	m       lifecycle.Machine[[]mentorship.Match]
}

// NewMatchesView creates the matches controller for a user.
func NewMatchesView(backend ports.Backend, userID core.UserID) *MatchesView {
	return &MatchesView{backend: backend, userID: userID}
}

// Find asks the service to score mentor matches. Triggering while a request
// is outstanding is a no-op.
func (v *MatchesView) Find(ctx context.Context) {
	ticket, ok := v.m.Begin()
	if !ok {
		return
	}
	matches, err := v.backend.FindMatches(ctx, v.userID)
	if err != nil {
		logx.Default.Warn("match discovery failed for %s: %v", v.userID, err)
		v.m.Fail(ticket, err)
		return
	}
	v.m.Succeed(ticket, matches)
}

// Retry re-issues the same request.
func (v *MatchesView) Retry(ctx context.Context) {
	v.Find(ctx)
}

// Teardown discards the view state; a response that arrives afterwards is
// dropped.
func (v *MatchesView) Teardown() {
	v.m.Reset()
}

// MatchesModel is the display-ready matches screen state.
type MatchesModel struct {
	State         lifecycle.State
	Rows          []present.MatchRow
	PromptMessage string
	ErrorMessage  string
	EmptyMessage  string
}

// Model derives the current display state.
func (v *MatchesView) Model() MatchesModel {
	model := MatchesModel{State: v.m.State()}

	matches, hasData := v.m.Data()
	if hasData {
		model.Rows = present.MatchRows(matches)
	}
	switch {
	case model.State == lifecycle.Idle:
		model.PromptMessage = "run Find Matches to discover mentors"
	case v.m.Err() != nil:
		model.ErrorMessage = "could not find matches right now"
	case hasData && len(matches) == 0:
		model.EmptyMessage = "no mentor matches found yet"
	}
	return model
}
