package mentorship

import (
	"mentormatch/domain/core"
)

// Role identifies which side of a mentorship a profile is on.
type Role string

const (
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleMentor || r == RoleMentee
}

// GoalCategory classifies a tracked career goal.
type GoalCategory string

const (
	CategorySkill      GoalCategory = "skill"
	CategoryCareer     GoalCategory = "career"
	CategoryNetworking GoalCategory = "networking"
	CategoryLeadership GoalCategory = "leadership"
)

func (c GoalCategory) Valid() bool {
	switch c {
	case CategorySkill, CategoryCareer, CategoryNetworking, CategoryLeadership:
		return true
	}
	return false
}

// InsightType classifies an AI-generated career insight. Unrecognized values
// are allowed end to end; presentation falls back to a default glyph.
type InsightType string

const (
	InsightSkillGap    InsightType = "skill_gap"
	InsightMarketTrend InsightType = "market_trend"
	InsightCareerPath  InsightType = "career_path"
	InsightNetworking  InsightType = "networking"
)

// Profile is a platform participant with career attributes. The backend owns
// every field; this layer never mutates a profile after creation.
type Profile struct {
	ID                 core.UserID    `json:"id"`
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	Role               Role           `json:"role"`
	CurrentPosition    string         `json:"current_position"`
	Industry           string         `json:"industry"`
	ExperienceYears    int            `json:"experience_years"`
	Skills             []string       `json:"skills"`
	Goals              []string       `json:"goals"`
	Bio                string         `json:"bio"`
	Interests          []string       `json:"interests"`
	CommunicationStyle string         `json:"communication_style,omitempty"`
	// AIAnalysis carries backend-derived fields (skill_strengths, growth_areas,
	// ...) as opaque pass-through data.
	AIAnalysis map[string]interface{} `json:"ai_analysis,omitempty"`
	CreatedAt  core.Timestamp         `json:"created_at"`
}

// Goal is a tracked career objective. Progress is backend-owned.
type Goal struct {
	ID          core.GoalID    `json:"id"`
	UserID      core.UserID    `json:"user_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    GoalCategory   `json:"category"`
	TargetDate  core.Timestamp `json:"target_date"`
	// Progress arrives as a 0-100 value; the backend may send fractions, so it
	// is stored as received and rounded only for display.
	Progress          float64  `json:"progress"`
	AIRecommendations []string `json:"ai_recommendations,omitempty"`
	Status            string   `json:"status,omitempty"`
	CreatedAt         core.Timestamp `json:"created_at"`
}

// Match is a scored mentor suggestion. Matches are ephemeral: they are never
// persisted client-side across navigation.
type Match struct {
	ID               core.MatchID `json:"id"`
	MentorID         core.UserID  `json:"mentor_id"`
	MenteeID         core.UserID  `json:"mentee_id"`
	MentorName       string       `json:"mentor_name"`
	MentorPosition   string       `json:"mentor_position"`
	MentorIndustry   string       `json:"mentor_industry"`
	MentorExperience int          `json:"mentor_experience"`
	// MatchScore is kept as the raw unit-interval value; rounding happens only
	// at display time.
	MatchScore   float64  `json:"match_score"`
	MatchReasons []string `json:"match_reasons"`
	Status       string   `json:"status,omitempty"`
}

// Insight is an AI-generated career observation.
type Insight struct {
	ID              core.ID        `json:"id,omitempty"`
	UserID          core.UserID    `json:"user_id,omitempty"`
	InsightType     InsightType    `json:"insight_type"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Recommendations []string       `json:"recommendations"`
	ConfidenceScore float64        `json:"confidence_score"`
	CreatedAt       core.Timestamp `json:"created_at"`
}

// Session is a scheduled mentorship session. The client only consumes session
// counts on the dashboard; the full shape passes through untouched.
type Session struct {
	ID              core.ID        `json:"id"`
	MatchID         core.MatchID   `json:"match_id"`
	MentorID        core.UserID    `json:"mentor_id"`
	MenteeID        core.UserID    `json:"mentee_id"`
	ScheduledTime   core.Timestamp `json:"scheduled_time"`
	DurationMinutes int            `json:"duration_minutes"`
	Agenda          []string       `json:"agenda,omitempty"`
	Status          string         `json:"status,omitempty"`
}

// DashboardStats is the backend-computed stats block of a dashboard.
type DashboardStats struct {
	ActiveGoals       int     `json:"active_goals"`
	CompletedGoals    int     `json:"completed_goals"`
	AvgProgress       float64 `json:"avg_progress"`
	TotalMatches      int     `json:"total_matches"`
	UpcomingSessions  int     `json:"upcoming_sessions"`
	CompletedSessions int     `json:"completed_sessions"`
}

// DashboardSummary aggregates one user's entities for the dashboard screen.
// It is derived by the backend and never separately persisted here.
type DashboardSummary struct {
	Profile          Profile        `json:"profile"`
	Stats            DashboardStats `json:"stats"`
	RecentGoals      []Goal         `json:"recent_goals"`
	RecentMatches    []Match        `json:"recent_matches"`
	UpcomingSessions []Session      `json:"upcoming_sessions"`
	RecentInsights   []Insight      `json:"recent_insights"`
}

// NetworkingEvent is a suggested event from the network analysis. Only its
// presence is counted; fields pass through for display.
type NetworkingEvent struct {
	Name                string `json:"name"`
	Date                string `json:"date"`
	Location            string `json:"location"`
	RelevantConnections int    `json:"relevant_connections"`
}

// MentorshipOpportunity is one suggested contact from the network analysis.
type MentorshipOpportunity struct {
	Name              string `json:"name"`
	Position          string `json:"position"`
	Company           string `json:"company"`
	MutualConnections int    `json:"mutual_connections"`
	// MatchPotential is High/Medium/Low by convention, but any value must
	// render with a neutral style rather than failing.
	MatchPotential string `json:"match_potential"`
}

// NetworkAnalysis summarizes a user's professional-network composition.
// IndustryBreakdown shares are independent display values; they are not
// required to sum to 100 and must not be normalized here.
type NetworkAnalysis struct {
	TotalConnections        int                     `json:"total_connections"`
	PotentialMentors        int                     `json:"potential_mentors"`
	IndustryBreakdown       map[string]float64      `json:"industry_breakdown"`
	NetworkingEvents        []NetworkingEvent       `json:"networking_events"`
	MentorshipOpportunities []MentorshipOpportunity `json:"mentorship_opportunities"`
}
