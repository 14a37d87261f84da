package ports

import (
	"context"

	"mentormatch/domain/core"
	"mentormatch/domain/forms"
	"mentormatch/domain/mentorship"
)

// Backend is the remote mentorship service. It owns matching, scoring,
// recommendation logic and all persistent storage; this layer only requests,
// validates shape, transforms and displays.
type Backend interface {
	// ListProfiles returns all profiles. The landing page uses only the count.
	ListProfiles(ctx context.Context) ([]mentorship.Profile, error)

	// CreateProfile submits a new profile and returns the created entity,
	// including its backend-assigned id.
	CreateProfile(ctx context.Context, payload forms.ProfileSubmission) (mentorship.Profile, error)

	// Dashboard returns the aggregated dashboard summary for a user.
	Dashboard(ctx context.Context, userID core.UserID) (mentorship.DashboardSummary, error)

	// FindMatches asks the service to score mentor matches for a mentee.
	FindMatches(ctx context.Context, userID core.UserID) ([]mentorship.Match, error)

	// Goals returns all goals for a user.
	Goals(ctx context.Context, userID core.UserID) ([]mentorship.Goal, error)

	// CreateGoal submits a new goal and returns the created entity.
	CreateGoal(ctx context.Context, payload forms.GoalSubmission) (mentorship.Goal, error)

	// Insights returns AI-generated career insights for a user.
	Insights(ctx context.Context, userID core.UserID) ([]mentorship.Insight, error)

	// NetworkAnalysis returns the professional-network analysis for a user.
	NetworkAnalysis(ctx context.Context, userID core.UserID) (mentorship.NetworkAnalysis, error)
}
