package mentorship

// Normalization makes backend payloads safe to render: a field the backend
// omitted must never crash a view. Collection fields default to empty slices,
// numeric fields stay at their zero value, optional objects stay absent.
// Normalization never invents, reorders or deduplicates data.

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// Normalized returns a render-safe copy of the profile.
func (p Profile) Normalized() Profile {
	p.Skills = emptyIfNil(p.Skills)
	p.Goals = emptyIfNil(p.Goals)
	p.Interests = emptyIfNil(p.Interests)
	return p
}

// Normalized returns a render-safe copy of the goal.
func (g Goal) Normalized() Goal {
	g.AIRecommendations = emptyIfNil(g.AIRecommendations)
	return g
}

// Normalized returns a render-safe copy of the match.
func (m Match) Normalized() Match {
	m.MatchReasons = emptyIfNil(m.MatchReasons)
	return m
}

// Normalized returns a render-safe copy of the insight. An insight with zero
// recommendations renders an empty list, not an error state.
func (i Insight) Normalized() Insight {
	i.Recommendations = emptyIfNil(i.Recommendations)
	return i
}

// Normalized returns a render-safe copy of the summary, normalizing every
// nested entity.
func (d DashboardSummary) Normalized() DashboardSummary {
	d.Profile = d.Profile.Normalized()
	d.RecentGoals = NormalizeGoals(d.RecentGoals)
	d.RecentMatches = NormalizeMatches(d.RecentMatches)
	d.RecentInsights = NormalizeInsights(d.RecentInsights)
	if d.UpcomingSessions == nil {
		d.UpcomingSessions = []Session{}
	}
	return d
}

// Normalized returns a render-safe copy of the network analysis.
func (n NetworkAnalysis) Normalized() NetworkAnalysis {
	if n.IndustryBreakdown == nil {
		n.IndustryBreakdown = map[string]float64{}
	}
	if n.NetworkingEvents == nil {
		n.NetworkingEvents = []NetworkingEvent{}
	}
	if n.MentorshipOpportunities == nil {
		n.MentorshipOpportunities = []MentorshipOpportunity{}
	}
	return n
}

// NormalizeProfiles normalizes a profile list in place-order.
func NormalizeProfiles(profiles []Profile) []Profile {
	out := make([]Profile, len(profiles))
	for i, p := range profiles {
		out[i] = p.Normalized()
	}
	return out
}

// NormalizeGoals normalizes a goal list in place-order.
func NormalizeGoals(goals []Goal) []Goal {
	out := make([]Goal, len(goals))
	for i, g := range goals {
		out[i] = g.Normalized()
	}
	return out
}

// NormalizeMatches normalizes a match list in place-order.
func NormalizeMatches(matches []Match) []Match {
	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = m.Normalized()
	}
	return out
}

// NormalizeInsights normalizes an insight list in place-order.
func NormalizeInsights(insights []Insight) []Insight {
	out := make([]Insight, len(insights))
	for i, in := range insights {
		out[i] = in.Normalized()
	}
	return out
}
