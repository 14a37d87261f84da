package views

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentormatch/domain/mentorship"
	"mentormatch/internal/testkit"
	"mentormatch/lifecycle"
)

func dashboardFixture() mentorship.DashboardSummary {
	goals := make([]mentorship.Goal, 5)
	for i := range goals {
		goals[i] = mentorship.Goal{Title: fmt.Sprintf("goal-%d", i)}
	}
	return mentorship.DashboardSummary{
		Profile: mentorship.Profile{ID: "u-1", Name: "Ada"},
		Stats: mentorship.DashboardStats{
			ActiveGoals:  4,
			AvgProgress:  62.5,
			TotalMatches: 3,
		},
		RecentGoals: goals,
	}
}

func TestDashboardAutoLoads(t *testing.T) {
	stub := testkit.NewStubBackend()
	stub.Summary = dashboardFixture()
	view := NewDashboardView(stub, "u-1")

	view.EnsureLoaded(context.Background())

	model := view.Model()
	assert.Equal(t, lifecycle.Succeeded, model.State)
	assert.True(t, model.HasData)
	assert.Equal(t, "Ada", model.Profile.Name)
	assert.Equal(t, 4, model.ActiveGoals)
	assert.Equal(t, 63, model.AvgProgressPercent, "avg progress is display-rounded")
}

func TestDashboardRecentGoalsBoundedToThree(t *testing.T) {
	stub := testkit.NewStubBackend()
	stub.Summary = dashboardFixture()
	view := NewDashboardView(stub, "u-1")

	view.EnsureLoaded(context.Background())

	model := view.Model()
	require.Len(t, model.RecentGoals, 3, "recent lists show at most the first three items")
	assert.Equal(t, "goal-0", model.RecentGoals[0].Title)
	assert.Equal(t, "goal-2", model.RecentGoals[2].Title)
}

func TestDashboardFirstLoadFailure(t *testing.T) {
	stub := testkit.NewStubBackend()
	stub.FailWith = errors.New("service down")
	view := NewDashboardView(stub, "u-1")

	view.EnsureLoaded(context.Background())

	model := view.Model()
	assert.Equal(t, lifecycle.Failed, model.State)
	assert.False(t, model.HasData)
	assert.Equal(t, "dashboard data not available", model.EmptyMessage)
}

func TestDashboardFailedRefreshKeepsData(t *testing.T) {
	stub := testkit.NewStubBackend()
	stub.Summary = dashboardFixture()
	view := NewDashboardView(stub, "u-1")

	view.EnsureLoaded(context.Background())
	stub.FailWith = errors.New("service down")
	view.Retry(context.Background())

	model := view.Model()
	assert.Equal(t, lifecycle.Failed, model.State)
	assert.True(t, model.HasData, "stale dashboard beats a blank one")
	assert.Empty(t, model.EmptyMessage)
	assert.NotEmpty(t, model.ErrorMessage)
}
