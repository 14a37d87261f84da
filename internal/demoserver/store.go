package demoserver

import (
	"context"
	"sync"

	"mentormatch/domain/core"
	"mentormatch/domain/mentorship"
)

// Store is the persistence surface of the stand-in backend. Profiles and
// goals are the durable entities; matches, insights and sessions are kept
// wherever is convenient for a demo.
type Store interface {
	CreateProfile(ctx context.Context, p mentorship.Profile) error
	ListProfiles(ctx context.Context) ([]mentorship.Profile, error)
	GetProfile(ctx context.Context, id core.UserID) (mentorship.Profile, bool, error)

	CreateGoal(ctx context.Context, g mentorship.Goal) error
	GoalsByUser(ctx context.Context, userID core.UserID) ([]mentorship.Goal, error)

	SaveMatches(ctx context.Context, matches []mentorship.Match) error
	MatchesByUser(ctx context.Context, userID core.UserID) ([]mentorship.Match, error)
	GetMatch(ctx context.Context, id core.MatchID) (mentorship.Match, bool, error)

	SaveInsights(ctx context.Context, insights []mentorship.Insight) error
	InsightsByUser(ctx context.Context, userID core.UserID) ([]mentorship.Insight, error)

	CreateSession(ctx context.Context, s mentorship.Session) error
	SessionsByUser(ctx context.Context, userID core.UserID) ([]mentorship.Session, error)
}

// MemStore is the default in-memory Store.
type MemStore struct {
	mu       sync.RWMutex
	profiles []mentorship.Profile
	goals    []mentorship.Goal
	matches  []mentorship.Match
	insights []mentorship.Insight
	sessions []mentorship.Session
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

var _ Store = (*MemStore)(nil)

func (s *MemStore) CreateProfile(ctx context.Context, p mentorship.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = append(s.profiles, p)
	return nil
}

func (s *MemStore) ListProfiles(ctx context.Context) ([]mentorship.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]mentorship.Profile(nil), s.profiles...), nil
}

func (s *MemStore) GetProfile(ctx context.Context, id core.UserID) (mentorship.Profile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profiles {
		if p.ID == id {
			return p, true, nil
		}
	}
	return mentorship.Profile{}, false, nil
}

func (s *MemStore) CreateGoal(ctx context.Context, g mentorship.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append(s.goals, g)
	return nil
}

func (s *MemStore) GoalsByUser(ctx context.Context, userID core.UserID) ([]mentorship.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []mentorship.Goal
	for _, g := range s.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *MemStore) SaveMatches(ctx context.Context, matches []mentorship.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = append(s.matches, matches...)
	return nil
}

func (s *MemStore) MatchesByUser(ctx context.Context, userID core.UserID) ([]mentorship.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []mentorship.Match
	for _, m := range s.matches {
		if m.MenteeID == userID || m.MentorID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MemStore) GetMatch(ctx context.Context, id core.MatchID) (mentorship.Match, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.matches {
		if m.ID == id {
			return m, true, nil
		}
	}
	return mentorship.Match{}, false, nil
}

func (s *MemStore) SaveInsights(ctx context.Context, insights []mentorship.Insight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insights = append(s.insights, insights...)
	return nil
}

func (s *MemStore) InsightsByUser(ctx context.Context, userID core.UserID) ([]mentorship.Insight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []mentorship.Insight
	for _, in := range s.insights {
		if in.UserID == userID {
			out = append(out, in)
		}
	}
	return out, nil
}

func (s *MemStore) CreateSession(ctx context.Context, sess mentorship.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, sess)
	return nil
}

func (s *MemStore) SessionsByUser(ctx context.Context, userID core.UserID) ([]mentorship.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []mentorship.Session
	for _, sess := range s.sessions {
		if sess.MentorID == userID || sess.MenteeID == userID {
			out = append(out, sess)
		}
	}
	return out, nil
}
