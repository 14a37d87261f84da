package testkit

import (
	"context"
	"sync"

	"mentormatch/domain/core"
	"mentormatch/domain/forms"
	"mentormatch/domain/mentorship"
	"mentormatch/ports"
)

// StubBackend is an in-memory ports.Backend for tests. Every operation counts
// its calls, can be forced to fail, and can be blocked on a barrier to hold a
// view in the pending state.
type StubBackend struct {
	mu sync.Mutex

	Profiles    []mentorship.Profile
	GoalsByUser map[core.UserID][]mentorship.Goal
	Matches     []mentorship.Match
	InsightList []mentorship.Insight
	Summary     mentorship.DashboardSummary
	Network     mentorship.NetworkAnalysis

	// FailWith, when set, makes every operation return this error.
	FailWith error
	// Barrier, when set, blocks each operation until the channel is closed.
	Barrier chan struct{}

	calls map[string]int
}

// NewStubBackend creates an empty stub backend.
func NewStubBackend() *StubBackend {
	return &StubBackend{
		GoalsByUser: make(map[core.UserID][]mentorship.Goal),
		calls:       make(map[string]int),
	}
}

var _ ports.Backend = (*StubBackend)(nil)

// Calls returns how many times the named operation ran.
func (s *StubBackend) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *StubBackend) enter(op string) error {
	s.mu.Lock()
	s.calls[op]++
	barrier := s.Barrier
	err := s.FailWith
	s.mu.Unlock()

	if barrier != nil {
		<-barrier
	}
	return err
}

func (s *StubBackend) ListProfiles(ctx context.Context) ([]mentorship.Profile, error) {
	if err := s.enter("ListProfiles"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mentorship.Profile(nil), s.Profiles...), nil
}

func (s *StubBackend) CreateProfile(ctx context.Context, payload forms.ProfileSubmission) (mentorship.Profile, error) {
	if err := s.enter("CreateProfile"); err != nil {
		return mentorship.Profile{}, err
	}
	profile := mentorship.Profile{
		ID:              core.UserID(core.NewID()),
		Name:            payload.Name,
		Email:           payload.Email,
		Role:            mentorship.Role(payload.Role),
		CurrentPosition: payload.CurrentPosition,
		Industry:        payload.Industry,
		ExperienceYears: payload.ExperienceYears,
		Skills:          payload.Skills,
		Goals:           payload.Goals,
		Bio:             payload.Bio,
		Interests:       payload.Interests,
		CreatedAt:       core.Now(),
	}.Normalized()

	s.mu.Lock()
	s.Profiles = append(s.Profiles, profile)
	s.mu.Unlock()
	return profile, nil
}

func (s *StubBackend) Dashboard(ctx context.Context, userID core.UserID) (mentorship.DashboardSummary, error) {
	if err := s.enter("Dashboard"); err != nil {
		return mentorship.DashboardSummary{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Summary.Normalized(), nil
}

func (s *StubBackend) FindMatches(ctx context.Context, userID core.UserID) ([]mentorship.Match, error) {
	if err := s.enter("FindMatches"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return mentorship.NormalizeMatches(s.Matches), nil
}

func (s *StubBackend) Goals(ctx context.Context, userID core.UserID) ([]mentorship.Goal, error) {
	if err := s.enter("Goals"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return mentorship.NormalizeGoals(s.GoalsByUser[userID]), nil
}

func (s *StubBackend) CreateGoal(ctx context.Context, payload forms.GoalSubmission) (mentorship.Goal, error) {
	if err := s.enter("CreateGoal"); err != nil {
		return mentorship.Goal{}, err
	}
	goal := mentorship.Goal{
		ID:          core.GoalID(core.NewID()),
		UserID:      payload.UserID,
		Title:       payload.Title,
		Description: payload.Description,
		Category:    mentorship.GoalCategory(payload.Category),
		TargetDate:  core.NewTimestamp(payload.TargetDate),
		CreatedAt:   core.Now(),
	}.Normalized()

	s.mu.Lock()
	s.GoalsByUser[payload.UserID] = append(s.GoalsByUser[payload.UserID], goal)
	s.mu.Unlock()
	return goal, nil
}

func (s *StubBackend) Insights(ctx context.Context, userID core.UserID) ([]mentorship.Insight, error) {
	if err := s.enter("Insights"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return mentorship.NormalizeInsights(s.InsightList), nil
}

func (s *StubBackend) NetworkAnalysis(ctx context.Context, userID core.UserID) (mentorship.NetworkAnalysis, error) {
	if err := s.enter("NetworkAnalysis"); err != nil {
		return mentorship.NetworkAnalysis{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Network.Normalized(), nil
}
