package present

import (
	"math"
	"sort"
	"strings"

	"mentormatch/domain/mentorship"
)

// Pure display derivations. Nothing in this package mutates source entities
// or re-derives values from rounded display output.

// Percent renders a unit-interval score as a whole percentage.
func Percent(score float64) int {
	return int(math.Round(score * 100))
}

// ProgressPercent renders a 0-100 progress value as a whole number.
func ProgressPercent(progress float64) int {
	return int(math.Round(progress))
}

// LandingEstimate derives the landing-page activity numbers from a profile
// count. The 0.7/0.4 factors are heuristic placeholders, not backend-verified
// counts; callers should label the results as approximate.
func LandingEstimate(profiles int) (matches, sessions int) {
	matches = int(math.Floor(float64(profiles) * 0.7))
	sessions = int(math.Floor(float64(profiles) * 0.4))
	return matches, sessions
}

// RecentLimit bounds every "recent" list on the dashboard.
const RecentLimit = 3

// RecentSlice returns at most the first RecentLimit items. Backend order is
// authoritative; no re-sorting happens here.
func RecentSlice[T any](items []T) []T {
	if len(items) <= RecentLimit {
		return items
	}
	return items[:RecentLimit]
}

// HumanizeLabel renders an enum token for display: underscores become spaces,
// casing is left untouched.
func HumanizeLabel(token string) string {
	return strings.ReplaceAll(token, "_", " ")
}

// InsightGlyph selects a display glyph for an insight type. Unrecognized
// types get the default glyph, never an error.
func InsightGlyph(t mentorship.InsightType) string {
	switch t {
	case mentorship.InsightSkillGap:
		return "🎯"
	case mentorship.InsightMarketTrend:
		return "📈"
	case mentorship.InsightCareerPath:
		return "🧭"
	case mentorship.InsightNetworking:
		return "🤝"
	}
	return "💡"
}

// PotentialBadge maps a match-potential label to a badge style. Anything
// outside High/Medium/Low renders with the neutral style.
func PotentialBadge(potential string) string {
	switch potential {
	case "High":
		return "badge-high"
	case "Medium":
		return "badge-medium"
	case "Low":
		return "badge-low"
	}
	return "badge-neutral"
}

// MatchRow is a display-ready mentor suggestion.
type MatchRow struct {
	MentorName      string
	MentorPosition  string
	MentorIndustry  string
	ExperienceYears int
	ScorePercent    int
	Reasons         []string
}

// MatchRows derives display rows from raw matches.
func MatchRows(matches []mentorship.Match) []MatchRow {
	rows := make([]MatchRow, len(matches))
	for i, m := range matches {
		rows[i] = MatchRow{
			MentorName:      m.MentorName,
			MentorPosition:  m.MentorPosition,
			MentorIndustry:  m.MentorIndustry,
			ExperienceYears: m.MentorExperience,
			ScorePercent:    Percent(m.MatchScore),
			Reasons:         m.MatchReasons,
		}
	}
	return rows
}

// InsightCard is a display-ready career insight.
type InsightCard struct {
	Glyph             string
	TypeLabel         string
	Title             string
	Description       string
	ConfidencePercent int
	Recommendations   []string
}

// InsightCards derives display cards from raw insights.
func InsightCards(insights []mentorship.Insight) []InsightCard {
	cards := make([]InsightCard, len(insights))
	for i, in := range insights {
		cards[i] = InsightCard{
			Glyph:             InsightGlyph(in.InsightType),
			TypeLabel:         HumanizeLabel(string(in.InsightType)),
			Title:             in.Title,
			Description:       in.Description,
			ConfidencePercent: Percent(in.ConfidenceScore),
			Recommendations:   in.Recommendations,
		}
	}
	return cards
}

// GoalRow is a display-ready goal.
type GoalRow struct {
	Title           string
	Description     string
	CategoryLabel   string
	TargetDate      string
	ProgressPercent int
	Recommendations []string
}

// GoalRows derives display rows from raw goals.
func GoalRows(goals []mentorship.Goal) []GoalRow {
	rows := make([]GoalRow, len(goals))
	for i, g := range goals {
		target := ""
		if !g.TargetDate.IsZero() {
			target = g.TargetDate.Time().Format("Jan 2, 2006")
		}
		rows[i] = GoalRow{
			Title:           g.Title,
			Description:     g.Description,
			CategoryLabel:   HumanizeLabel(string(g.Category)),
			TargetDate:      target,
			ProgressPercent: ProgressPercent(g.Progress),
			Recommendations: g.AIRecommendations,
		}
	}
	return rows
}

// BreakdownRow is one industry share of a network analysis. Shares are
// independent display values and are not normalized to sum to 100.
type BreakdownRow struct {
	Industry string
	Share    float64
}

// BreakdownRows flattens the industry breakdown into rows sorted by industry
// name for stable rendering of an otherwise unordered mapping.
func BreakdownRows(breakdown map[string]float64) []BreakdownRow {
	rows := make([]BreakdownRow, 0, len(breakdown))
	for industry, share := range breakdown {
		rows = append(rows, BreakdownRow{Industry: industry, Share: share})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Industry < rows[j].Industry })
	return rows
}

// OpportunityRow is a display-ready mentorship opportunity.
type OpportunityRow struct {
	Name              string
	Position          string
	Company           string
	MutualConnections int
	Potential         string
	BadgeClass        string
}

// OpportunityRows derives display rows from raw opportunities.
func OpportunityRows(opportunities []mentorship.MentorshipOpportunity) []OpportunityRow {
	rows := make([]OpportunityRow, len(opportunities))
	for i, o := range opportunities {
		rows[i] = OpportunityRow{
			Name:              o.Name,
			Position:          o.Position,
			Company:           o.Company,
			MutualConnections: o.MutualConnections,
			Potential:         o.MatchPotential,
			BadgeClass:        PotentialBadge(o.MatchPotential),
		}
	}
	return rows
}
