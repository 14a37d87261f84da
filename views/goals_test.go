package views

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentormatch/domain/core"
	"mentormatch/domain/forms"
	"mentormatch/domain/mentorship"
	"mentormatch/internal/apperr"
	"mentormatch/internal/testkit"
	"mentormatch/lifecycle"
)

func TestGoalsEmptyState(t *testing.T) {
	stub := testkit.NewStubBackend()
	view := NewGoalsView(stub, "u-1")

	view.EnsureLoaded(context.Background())

	model := view.Model()
	assert.Equal(t, lifecycle.Succeeded, model.State)
	assert.Equal(t, "no goals yet", model.EmptyMessage)
	assert.Empty(t, model.ErrorMessage, "an empty list renders the empty message, not an error")
}

func TestGoalsAutoLoadOnceOnMount(t *testing.T) {
	stub := testkit.NewStubBackend()
	view := NewGoalsView(stub, "u-1")

	view.EnsureLoaded(context.Background())
	view.EnsureLoaded(context.Background())

	assert.Equal(t, 1, stub.Calls("Goals"), "EnsureLoaded only fetches from idle")
}

func TestCreateGoalRefetchesFullList(t *testing.T) {
	stub := testkit.NewStubBackend()
	userID := core.UserID("u-1")
	stub.GoalsByUser[userID] = []mentorship.Goal{testkit.FakeGoal(userID)}
	view := NewGoalsView(stub, userID)

	view.EnsureLoaded(context.Background())
	require.Len(t, view.Goals(), 1)

	err := view.Create(context.Background(), forms.GoalForm{
		Title:      "Ship a service",
		Category:   "career",
		TargetDate: "2026-11-20",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, stub.Calls("CreateGoal"))
	assert.Equal(t, 2, stub.Calls("Goals"), "creation triggers a full refetch")
	assert.Len(t, view.Goals(), 2, "the list is replaced, not merged")
}

func TestCreateGoalInvalidFormNeverHitsBackend(t *testing.T) {
	stub := testkit.NewStubBackend()
	view := NewGoalsView(stub, "u-1")

	err := view.Create(context.Background(), forms.GoalForm{
		Title:      "Ship a service",
		Category:   "career",
		TargetDate: "someday",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidInput(err))
	assert.Equal(t, 0, stub.Calls("CreateGoal"), "transform errors never reach the network layer")
}

func TestGoalsFailureRetainsPreviousData(t *testing.T) {
	stub := testkit.NewStubBackend()
	userID := core.UserID("u-1")
	stub.GoalsByUser[userID] = []mentorship.Goal{testkit.FakeGoal(userID)}
	view := NewGoalsView(stub, userID)

	view.EnsureLoaded(context.Background())
	require.Equal(t, lifecycle.Succeeded, view.Model().State)

	stub.FailWith = errors.New("service down")
	view.Retry(context.Background())

	model := view.Model()
	assert.Equal(t, lifecycle.Failed, model.State)
	assert.NotEmpty(t, model.ErrorMessage)
	assert.Len(t, model.Rows, 1, "previous data is preserved on a failed refresh")
}
