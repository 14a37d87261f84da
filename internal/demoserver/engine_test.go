package demoserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentormatch/domain/core"
	"mentormatch/domain/mentorship"
)

func mentorProfile() mentorship.Profile {
	return mentorship.Profile{
		ID:                 core.UserID(core.NewID()),
		Name:               "Ada Mentor",
		Role:               mentorship.RoleMentor,
		Industry:           "Technology",
		ExperienceYears:    12,
		Skills:             []string{"Go", "Leadership", "System Design"},
		Interests:          []string{"AI", "Open Source"},
		CommunicationStyle: "direct",
	}
}

func menteeProfile() mentorship.Profile {
	return mentorship.Profile{
		ID:                 core.UserID(core.NewID()),
		Name:               "Billie Mentee",
		Role:               mentorship.RoleMentee,
		Industry:           "Technology",
		ExperienceYears:    3,
		Skills:             []string{"Go", "SQL"},
		Interests:          []string{"AI"},
		CommunicationStyle: "direct",
	}
}

func TestScoreMatchRewardsAlignment(t *testing.T) {
	e := NewEngine()

	score, reasons := e.ScoreMatch(mentorProfile(), menteeProfile())
	assert.Greater(t, score, 0.6, "same industry, big experience gap, skill and style overlap")
	assert.LessOrEqual(t, score, 1.0)
	assert.NotEmpty(t, reasons)
}

func TestScoreMatchUnrelatedProfilesStayLow(t *testing.T) {
	e := NewEngine()
	mentor := mentorProfile()
	mentor.Industry = "Healthcare"
	mentor.Skills = []string{"Surgery"}
	mentor.Interests = []string{"Golf"}
	mentor.CommunicationStyle = "supportive"
	mentor.ExperienceYears = 4

	mentee := menteeProfile()
	mentee.ExperienceYears = 3

	score, _ := e.ScoreMatch(mentor, mentee)
	assert.Less(t, score, MatchThreshold)
}

func TestRankMentorsFiltersAndSorts(t *testing.T) {
	e := NewEngine()
	mentee := menteeProfile()

	strong := mentorProfile()
	weak := mentorProfile()
	weak.Industry = "Finance"
	weak.Skills = []string{"Negotiation"}
	weak.Interests = nil
	weak.CommunicationStyle = "supportive"
	peer := menteeProfile()

	matches := e.RankMentors(mentee, []mentorship.Profile{weak, strong, peer, mentee})
	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchScore, matches[i].MatchScore)
	}
	for _, m := range matches {
		assert.NotEqual(t, mentee.ID, m.MentorID, "mentee never matches itself")
		assert.Equal(t, mentee.ID, m.MenteeID)
		assert.GreaterOrEqual(t, m.MatchScore, MatchThreshold)
	}
	assert.Equal(t, strong.ID, matches[0].MentorID)
}

func TestAnalyzeProfileStages(t *testing.T) {
	e := NewEngine()

	junior := menteeProfile()
	junior.ExperienceYears = 1
	senior := mentorProfile()
	senior.ExperienceYears = 15

	assert.Equal(t, "early_career", e.AnalyzeProfile(junior)["career_stage"])
	assert.Equal(t, "senior", e.AnalyzeProfile(senior)["career_stage"])

	ready, ok := e.AnalyzeProfile(senior)["mentorship_readiness"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, ready, 5.0)
	assert.LessOrEqual(t, ready, 9.0)
}

func TestGenerateInsightsOnePerType(t *testing.T) {
	e := NewEngine()
	insights, err := e.GenerateInsights(context.Background(), menteeProfile())
	require.NoError(t, err)
	require.Len(t, insights, 4)

	seen := map[mentorship.InsightType]bool{}
	for _, in := range insights {
		seen[in.InsightType] = true
		assert.NotEmpty(t, in.Title)
		assert.NotEmpty(t, in.Recommendations)
		assert.Greater(t, in.ConfidenceScore, 0.0)
		assert.False(t, in.CreatedAt.IsZero())
	}
	assert.Len(t, seen, 4, "each insight type appears once")
}

func TestDashboardStatsAveragesProgress(t *testing.T) {
	e := NewEngine()
	goals := []mentorship.Goal{
		{Progress: 25},
		{Progress: 50},
		{Progress: 100, Status: "completed"},
	}
	sessions := []mentorship.Session{
		{Status: "scheduled"},
		{Status: "completed"},
	}

	st := e.DashboardStats(goals, nil, sessions)
	assert.Equal(t, 2, st.ActiveGoals)
	assert.Equal(t, 1, st.CompletedGoals)
	assert.InDelta(t, 58.3, st.AvgProgress, 0.001)
	assert.Equal(t, 0, st.TotalMatches)
	assert.Equal(t, 1, st.UpcomingSessions)
	assert.Equal(t, 1, st.CompletedSessions)
}

func TestDashboardStatsEmptyGoals(t *testing.T) {
	st := NewEngine().DashboardStats(nil, nil, nil)
	assert.Zero(t, st.AvgProgress)
	assert.Zero(t, st.ActiveGoals)
}
