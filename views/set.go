package views

import (
	"mentormatch/domain/core"
	"mentormatch/ports"
)

// Set bundles the per-user view controllers. Each controller owns an isolated
// lifecycle machine; nothing is shared across views or across users.
type Set struct {
	UserID    core.UserID
	Dashboard *DashboardView
	Goals     *GoalsView
	Matches   *MatchesView
	Insights  *InsightsView
	Network   *NetworkView
}

// NewSet creates the controllers for one user.
func NewSet(backend ports.Backend, userID core.UserID) *Set {
	return &Set{
		UserID:    userID,
		Dashboard: NewDashboardView(backend, userID),
		Goals:     NewGoalsView(backend, userID),
		Matches:   NewMatchesView(backend, userID),
		Insights:  NewInsightsView(backend, userID),
		Network:   NewNetworkView(backend, userID),
	}
}

// Teardown resets every controller, discarding in-flight responses.
func (s *Set) Teardown() {
	s.Dashboard.Teardown()
	s.Goals.Teardown()
	s.Matches.Teardown()
	s.Insights.Teardown()
	s.Network.Teardown()
}
