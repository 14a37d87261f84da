package lifecycle

import (
	"sync"
)

// State is the status of one asynchronous view operation.
type State int

const (
	Idle State = iota
	Pending
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Ticket identifies one in-flight request. A completion is applied only if its
// ticket is still current, so a response arriving after Reset (the view was
// torn down) is discarded rather than applied.
type Ticket uint64

// Machine tracks the idle/pending/succeeded/failed lifecycle of a single
// view operation. Each view owns its own machine; there is no shared state
// across views. Each view issues at most one outstanding request at a time:
// Begin while Pending is a no-op, never a queue.
type Machine[T any] struct {
	mu      sync.Mutex
	state   State
	data    T
	hasData bool
	err     error
	gen     Ticket
}

// Begin moves the machine to Pending and returns a ticket for the request.
// It returns ok=false while a request is already outstanding; the caller must
// not issue a second request.
func (m *Machine[T]) Begin() (Ticket, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Pending {
		return 0, false
	}
	m.gen++
	m.state = Pending
	return m.gen, true
}

// Succeed applies a decoded payload. Stale tickets are ignored.
func (m *Machine[T]) Succeed(t Ticket, data T) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t != m.gen || m.state != Pending {
		return false
	}
	m.state = Succeeded
	m.data = data
	m.hasData = true
	m.err = nil
	return true
}

// Fail records an error reason. Previously succeeded data is retained so the
// view can keep showing it; on a first load there is nothing to retain.
// Stale tickets are ignored.
func (m *Machine[T]) Fail(t Ticket, err error) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t != m.gen || m.state != Pending {
		return false
	}
	m.state = Failed
	m.err = err
	return true
}

// Reset discards all state and invalidates outstanding tickets. It models
// navigating away from the view: coming back starts from Idle and reloads.
func (m *Machine[T]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gen++
	m.state = Idle
	var zero T
	m.data = zero
	m.hasData = false
	m.err = nil
}

// State returns the current lifecycle state.
func (m *Machine[T]) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Data returns the last successfully loaded payload, if any.
func (m *Machine[T]) Data() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data, m.hasData
}

// Err returns the failure reason of the last attempt, if the machine is in
// the Failed state.
func (m *Machine[T]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}
