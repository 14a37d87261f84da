package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"mentormatch/internal/testkit"
	"mentormatch/lifecycle"
)

func TestLandingEstimatesFromProfileCount(t *testing.T) {
	stub := testkit.NewStubBackend()
	stub.Profiles = testkit.FakeProfiles(10)
	view := NewLandingView(stub)

	view.EnsureLoaded(context.Background())

	model := view.Model()
	assert.Equal(t, lifecycle.Succeeded, model.State)
	assert.Equal(t, 10, model.ProfileCount)
	assert.Equal(t, 7, model.ApproxMatches)
	assert.Equal(t, 4, model.ApproxSessions)
}

func TestProfileSubmitInvalidInputStaysIdle(t *testing.T) {
	stub := testkit.NewStubBackend()
	view := NewProfileCreateView(stub)

	err := view.Submit(context.Background(), profileFormFixture("not-a-number"))
	assert.Error(t, err)
	assert.Equal(t, lifecycle.Idle, view.State(), "invalid input never starts a request")
	assert.Equal(t, 0, stub.Calls("CreateProfile"))
}

func TestProfileSubmitSuccess(t *testing.T) {
	stub := testkit.NewStubBackend()
	view := NewProfileCreateView(stub)

	err := view.Submit(context.Background(), profileFormFixture("4"))
	assert.NoError(t, err)

	created, ok := view.CreatedProfile()
	assert.True(t, ok)
	assert.False(t, created.ID.IsEmpty(), "the backend assigns the profile id")
}
