package present

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mentormatch/domain/mentorship"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		score    float64
		expected int
	}{
		{0.856, 86},
		{0, 0},
		{1, 100},
		{0.004, 0},
		{0.005, 1},
		{0.345, 35},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Percent(test.score), "Percent(%v)", test.score)
	}
}

func TestLandingEstimate(t *testing.T) {
	matches, sessions := LandingEstimate(10)
	assert.Equal(t, 7, matches)
	assert.Equal(t, 4, sessions)

	// Floor semantics: 11 profiles still estimate 7 matches and 4 sessions.
	matches, sessions = LandingEstimate(11)
	assert.Equal(t, 7, matches)
	assert.Equal(t, 4, sessions)

	matches, sessions = LandingEstimate(0)
	assert.Equal(t, 0, matches)
	assert.Equal(t, 0, sessions)
}

func TestRecentSlice(t *testing.T) {
	five := []string{"a", "b", "c", "d", "e"}
	assert.Equal(t, []string{"a", "b", "c"}, RecentSlice(five), "backend order, first three")

	two := []string{"x", "y"}
	assert.Equal(t, two, RecentSlice(two))

	assert.Empty(t, RecentSlice([]string{}))
}

func TestHumanizeLabel(t *testing.T) {
	assert.Equal(t, "skill gap", HumanizeLabel("skill_gap"))
	assert.Equal(t, "Market Trend", HumanizeLabel("Market_Trend"), "no casing transformation")
	assert.Equal(t, "career", HumanizeLabel("career"))
}

func TestInsightGlyphFallback(t *testing.T) {
	assert.Equal(t, "🎯", InsightGlyph(mentorship.InsightSkillGap))
	assert.Equal(t, "📈", InsightGlyph(mentorship.InsightMarketTrend))
	assert.Equal(t, "💡", InsightGlyph("unknown_type"), "unrecognized types fall back to the default glyph")
}

func TestPotentialBadgeFallback(t *testing.T) {
	assert.Equal(t, "badge-high", PotentialBadge("High"))
	assert.Equal(t, "badge-low", PotentialBadge("Low"))
	assert.Equal(t, "badge-neutral", PotentialBadge("Exceptional"), "unrecognized values render neutral")
	assert.Equal(t, "badge-neutral", PotentialBadge(""))
}

func TestMatchRows(t *testing.T) {
	matches := []mentorship.Match{
		{MentorName: "Grace", MentorExperience: 12, MatchScore: 0.856, MatchReasons: []string{"Same industry"}},
	}
	rows := MatchRows(matches)
	assert.Len(t, rows, 1)
	assert.Equal(t, 86, rows[0].ScorePercent)
	// The stored score is never rounded destructively.
	assert.Equal(t, 0.856, matches[0].MatchScore)
}

func TestInsightCardsUnknownType(t *testing.T) {
	cards := InsightCards([]mentorship.Insight{
		{InsightType: "unknown_type", Title: "T", ConfidenceScore: 0.5, Recommendations: []string{}},
	})
	assert.Len(t, cards, 1)
	assert.Equal(t, "💡", cards[0].Glyph)
	assert.Equal(t, "unknown type", cards[0].TypeLabel)
	assert.NotNil(t, cards[0].Recommendations)
}

func TestBreakdownRowsNoNormalization(t *testing.T) {
	rows := BreakdownRows(map[string]float64{"Technology": 35, "Finance": 90})
	assert.Len(t, rows, 2)
	// Sorted by name for stable rendering, shares untouched even though they
	// exceed 100 in total.
	assert.Equal(t, "Finance", rows[0].Industry)
	assert.Equal(t, 90.0, rows[0].Share)
	assert.Equal(t, 35.0, rows[1].Share)
}
