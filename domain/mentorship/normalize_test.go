package mentorship

import (
	"encoding/json"
	"testing"
)

// A sparse backend payload must decode into a render-safe value: missing
// collections become empty, missing numerics stay zero, optional objects stay
// absent.
func TestProfileTolerantDecode(t *testing.T) {
	raw := `{"id":"u-1","name":"Ada","role":"mentee"}`

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	p = p.Normalized()

	if p.Skills == nil || len(p.Skills) != 0 {
		t.Errorf("expected empty skills, got %v", p.Skills)
	}
	if p.Interests == nil || len(p.Interests) != 0 {
		t.Errorf("expected empty interests, got %v", p.Interests)
	}
	if p.ExperienceYears != 0 {
		t.Errorf("expected zero experience_years, got %d", p.ExperienceYears)
	}
	if p.AIAnalysis != nil {
		t.Errorf("expected absent ai_analysis, got %v", p.AIAnalysis)
	}
}

func TestProfilePreservesDuplicates(t *testing.T) {
	raw := `{"id":"u-1","skills":["Go","Go","SQL"]}`

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	p = p.Normalized()

	if len(p.Skills) != 3 {
		t.Errorf("duplicates must be preserved, got %v", p.Skills)
	}
}

func TestInsightEmptyRecommendations(t *testing.T) {
	raw := `{"insight_type":"unknown_type","title":"T","description":"D","confidence_score":0.5}`

	var in Insight
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	in = in.Normalized()

	if in.Recommendations == nil || len(in.Recommendations) != 0 {
		t.Errorf("expected empty recommendations list, got %v", in.Recommendations)
	}
	if in.InsightType != "unknown_type" {
		t.Errorf("unrecognized insight types must pass through, got %s", in.InsightType)
	}
}

func TestGoalFractionalProgress(t *testing.T) {
	raw := `{"id":"g-1","user_id":"u-1","title":"Lead a team","progress":45.5}`

	var g Goal
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	g = g.Normalized()

	if g.Progress != 45.5 {
		t.Errorf("progress must be stored as received, got %v", g.Progress)
	}
	if g.AIRecommendations == nil {
		t.Error("expected empty ai_recommendations slice")
	}
}

func TestNetworkAnalysisDefaults(t *testing.T) {
	var n NetworkAnalysis
	if err := json.Unmarshal([]byte(`{"total_connections":812}`), &n); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	n = n.Normalized()

	if n.IndustryBreakdown == nil {
		t.Error("expected empty breakdown map")
	}
	if n.NetworkingEvents == nil || n.MentorshipOpportunities == nil {
		t.Error("expected empty event and opportunity slices")
	}
	if n.TotalConnections != 812 {
		t.Errorf("expected 812 connections, got %d", n.TotalConnections)
	}
}

func TestDashboardSummaryNormalizesNested(t *testing.T) {
	raw := `{"profile":{"id":"u-1"},"stats":{"active_goals":2},"recent_goals":[{"id":"g-1"}]}`

	var d DashboardSummary
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	d = d.Normalized()

	if d.RecentInsights == nil || d.RecentMatches == nil || d.UpcomingSessions == nil {
		t.Error("expected empty recent collections")
	}
	if d.RecentGoals[0].AIRecommendations == nil {
		t.Error("nested goals must be normalized")
	}
	if d.Stats.CompletedGoals != 0 {
		t.Errorf("missing stats must stay zero, got %d", d.Stats.CompletedGoals)
	}
}
