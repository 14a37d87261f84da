package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialStateIsIdle(t *testing.T) {
	var m Machine[int]
	assert.Equal(t, Idle, m.State())
	_, ok := m.Data()
	assert.False(t, ok)
}

func TestBeginSucceed(t *testing.T) {
	var m Machine[[]string]

	ticket, ok := m.Begin()
	assert.True(t, ok)
	assert.Equal(t, Pending, m.State())

	assert.True(t, m.Succeed(ticket, []string{"a"}))
	assert.Equal(t, Succeeded, m.State())
	data, ok := m.Data()
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, data)
}

func TestDuplicateTriggerWhilePendingIsSuppressed(t *testing.T) {
	var m Machine[int]

	ticket, ok := m.Begin()
	assert.True(t, ok)

	// A second trigger while pending must not start a second request.
	_, ok = m.Begin()
	assert.False(t, ok)

	// The single outstanding response determines the final state.
	assert.True(t, m.Succeed(ticket, 42))
	data, _ := m.Data()
	assert.Equal(t, 42, data)
}

func TestFailRetainsPreviousData(t *testing.T) {
	var m Machine[string]

	ticket, _ := m.Begin()
	m.Succeed(ticket, "loaded")

	ticket, ok := m.Begin()
	assert.True(t, ok, "retry from succeeded must be allowed")
	assert.True(t, m.Fail(ticket, errors.New("service down")))

	assert.Equal(t, Failed, m.State())
	assert.EqualError(t, m.Err(), "service down")

	data, ok := m.Data()
	assert.True(t, ok, "previous data must survive a failed refresh")
	assert.Equal(t, "loaded", data)
}

func TestFirstLoadFailureHasNoData(t *testing.T) {
	var m Machine[string]

	ticket, _ := m.Begin()
	m.Fail(ticket, errors.New("boom"))

	assert.Equal(t, Failed, m.State())
	_, ok := m.Data()
	assert.False(t, ok)
}

func TestRetryFromFailed(t *testing.T) {
	var m Machine[int]

	ticket, _ := m.Begin()
	m.Fail(ticket, errors.New("boom"))

	ticket, ok := m.Begin()
	assert.True(t, ok, "retry re-entry from failed must be allowed")
	assert.True(t, m.Succeed(ticket, 7))
	assert.Equal(t, Succeeded, m.State())
	assert.NoError(t, m.Err())
}

func TestStaleResponseDiscardedAfterReset(t *testing.T) {
	var m Machine[int]

	ticket, _ := m.Begin()

	// The view is torn down while the request is in flight.
	m.Reset()

	// The late response must be discarded, not applied to a detached view.
	assert.False(t, m.Succeed(ticket, 99))
	assert.Equal(t, Idle, m.State())
	_, ok := m.Data()
	assert.False(t, ok)

	assert.False(t, m.Fail(ticket, errors.New("late error")))
	assert.NoError(t, m.Err())
}

func TestResetDiscardsState(t *testing.T) {
	var m Machine[int]

	ticket, _ := m.Begin()
	m.Succeed(ticket, 3)

	m.Reset()
	assert.Equal(t, Idle, m.State())
	_, ok := m.Data()
	assert.False(t, ok, "navigating away discards prior view state")
}
