package demoserver

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"mentormatch/domain/core"
	"mentormatch/domain/mentorship"
)

// Engine computes match scores, profile analyses, insights and dashboard
// aggregates. All methods are pure over their inputs; persistence is the
// server's job.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// MatchThreshold is the minimum compatibility score for a mentor to be
// suggested at all.
const MatchThreshold = 0.3

// skillVectors projects two skill sets onto a shared vocabulary so their
// similarity can be computed as a cosine.
func skillVectors(a, b []string) ([]float64, []float64) {
	vocab := make(map[string]int)
	for _, s := range a {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, ok := vocab[key]; !ok {
			vocab[key] = len(vocab)
		}
	}
	for _, s := range b {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, ok := vocab[key]; !ok {
			vocab[key] = len(vocab)
		}
	}
	va := make([]float64, len(vocab))
	vb := make([]float64, len(vocab))
	for _, s := range a {
		if i, ok := vocab[strings.ToLower(strings.TrimSpace(s))]; ok {
			va[i] = 1
		}
	}
	for _, s := range b {
		if i, ok := vocab[strings.ToLower(strings.TrimSpace(s))]; ok {
			vb[i] = 1
		}
	}
	return va, vb
}

func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}

// ScoreMatch rates mentor compatibility for a mentee on a 0..1 scale and
// explains the components that contributed.
func (e *Engine) ScoreMatch(mentor, mentee mentorship.Profile) (float64, []string) {
	var score float64
	var reasons []string

	if mentor.Industry != "" && strings.EqualFold(mentor.Industry, mentee.Industry) {
		score += 0.2
		reasons = append(reasons, fmt.Sprintf("Same industry: %s", mentor.Industry))
	}

	gap := mentor.ExperienceYears - mentee.ExperienceYears
	switch {
	case gap >= 5:
		score += 0.15
		reasons = append(reasons, fmt.Sprintf("%d more years of experience", gap))
	case gap >= 2:
		score += 0.10
		reasons = append(reasons, "Slightly more experienced")
	}

	mv, sv := skillVectors(mentor.Skills, mentee.Skills)
	if sim := cosine(mv, sv); sim > 0 {
		score += 0.25 * sim
		reasons = append(reasons, fmt.Sprintf("Skill overlap: %d%%", int(math.Round(sim*100))))
	}

	if mentor.CommunicationStyle != "" && mentor.CommunicationStyle == mentee.CommunicationStyle {
		score += 0.15
		reasons = append(reasons, "Compatible communication styles")
	}

	shared := sharedValues(mentor.Interests, mentee.Interests)
	if len(shared) > 0 {
		add := 0.05 * float64(len(shared))
		if add > 0.15 {
			add = 0.15
		}
		score += add
		reasons = append(reasons, fmt.Sprintf("Shared interests: %s", strings.Join(shared, ", ")))
	}

	if r := readiness(mentor); r > 0 {
		score += 0.10 * (r / 10.0)
	}

	if score > 1 {
		score = 1
	}
	return score, reasons
}

func sharedValues(a, b []string) []string {
	seen := make(map[string]bool, len(a))
	for _, v := range a {
		seen[strings.ToLower(strings.TrimSpace(v))] = true
	}
	var out []string
	for _, v := range b {
		if seen[strings.ToLower(strings.TrimSpace(v))] {
			out = append(out, v)
		}
	}
	return out
}

func readiness(p mentorship.Profile) float64 {
	if p.AIAnalysis == nil {
		return 0
	}
	if v, ok := p.AIAnalysis["mentorship_readiness"]; ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return 0
}

// RankMentors scores every mentor against the mentee, drops those below the
// threshold and returns the remainder sorted best-first.
func (e *Engine) RankMentors(mentee mentorship.Profile, candidates []mentorship.Profile) []mentorship.Match {
	var matches []mentorship.Match
	for _, mentor := range candidates {
		if mentor.Role != mentorship.RoleMentor || mentor.ID == mentee.ID {
			continue
		}
		score, reasons := e.ScoreMatch(mentor, mentee)
		if score < MatchThreshold {
			continue
		}
		matches = append(matches, mentorship.Match{
			ID:               core.MatchID(core.NewID()),
			MentorID:         mentor.ID,
			MenteeID:         mentee.ID,
			MentorName:       mentor.Name,
			MentorPosition:   mentor.CurrentPosition,
			MentorIndustry:   mentor.Industry,
			MentorExperience: mentor.ExperienceYears,
			MatchScore:       score,
			MatchReasons:     reasons,
			Status:           "suggested",
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches
}

// AnalyzeProfile derives the backend-owned analysis block from a new profile.
// It mirrors what an LLM pass would produce, using deterministic heuristics.
func (e *Engine) AnalyzeProfile(p mentorship.Profile) map[string]interface{} {
	strengths := append([]string(nil), p.Skills...)
	if len(strengths) > 3 {
		strengths = strengths[:3]
	}

	stage := "early_career"
	switch {
	case p.ExperienceYears >= 12:
		stage = "senior"
	case p.ExperienceYears >= 6:
		stage = "mid_career"
	case p.ExperienceYears >= 3:
		stage = "establishing"
	}

	style := p.CommunicationStyle
	if style == "" {
		if p.Role == mentorship.RoleMentor {
			style = "direct"
		} else {
			style = "collaborative"
		}
	}

	ready := 5.0
	ready += math.Min(float64(p.ExperienceYears)*0.25, 3)
	if len(p.Goals) > 0 {
		ready++
	}
	if ready > 9 {
		ready = 9
	}

	return map[string]interface{}{
		"skill_strengths":      strengths,
		"growth_areas":         growthAreas(p),
		"career_stage":         stage,
		"communication_style":  style,
		"mentorship_readiness": ready,
		"personality_traits":   []string{"curious", "goal-oriented"},
	}
}

func growthAreas(p mentorship.Profile) []string {
	areas := []string{"strategic thinking"}
	if len(p.Skills) < 3 {
		areas = append(areas, "skill breadth")
	}
	if p.ExperienceYears < 5 {
		areas = append(areas, "leadership exposure")
	}
	return areas
}

// GoalRecommendations produces starter recommendations for a new goal.
func (e *Engine) GoalRecommendations(g mentorship.Goal) []string {
	base := []string{
		fmt.Sprintf("Break %q into monthly milestones", g.Title),
		"Review progress with your mentor every two weeks",
	}
	switch g.Category {
	case mentorship.CategorySkill:
		base = append(base, "Pick one project that forces you to use the new skill")
	case mentorship.CategoryCareer:
		base = append(base, "Map the roles one level above yours and their requirements")
	case mentorship.CategoryNetworking:
		base = append(base, "Schedule two coffee chats per month outside your team")
	case mentorship.CategoryLeadership:
		base = append(base, "Volunteer to run the next team retrospective")
	}
	return base
}

type insightBuilder func(p mentorship.Profile) mentorship.Insight

// GenerateInsights builds one insight per type concurrently. Builders are
// cheap here but the fan-out keeps the shape of a real generation pipeline.
func (e *Engine) GenerateInsights(ctx context.Context, p mentorship.Profile) ([]mentorship.Insight, error) {
	builders := []insightBuilder{
		buildSkillGapInsight,
		buildMarketTrendInsight,
		buildCareerPathInsight,
		buildNetworkingInsight,
	}

	out := make([]mentorship.Insight, len(builders))
	g, ctx := errgroup.WithContext(ctx)
	for i, build := range builders {
		i, build := i, build
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			in := build(p)
			in.ID = core.NewID()
			in.UserID = p.ID
			in.CreatedAt = core.Now()
			out[i] = in
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func buildSkillGapInsight(p mentorship.Profile) mentorship.Insight {
	focus := "a complementary technical skill"
	if len(p.Skills) > 0 {
		focus = fmt.Sprintf("skills adjacent to **%s**", p.Skills[0])
	}
	return mentorship.Insight{
		InsightType: mentorship.InsightSkillGap,
		Title:       "Close your next skill gap",
		Description: fmt.Sprintf("Based on your profile, developing %s would unlock more senior work in %s.", focus, nonEmpty(p.Industry, "your field")),
		Recommendations: []string{
			"Choose one skill and practice it weekly",
			"Ask your mentor to review your work on it monthly",
		},
		ConfidenceScore: 0.85,
	}
}

func buildMarketTrendInsight(p mentorship.Profile) mentorship.Insight {
	return mentorship.Insight{
		InsightType: mentorship.InsightMarketTrend,
		Title:       fmt.Sprintf("Trends in %s", nonEmpty(p.Industry, "your industry")),
		Description: "Demand is shifting toward cross-functional roles. Candidates who can *bridge teams* are being promoted faster than specialists.",
		Recommendations: []string{
			"Follow two industry newsletters",
			"Summarize one trend per month for your mentor",
		},
		ConfidenceScore: 0.72,
	}
}

func buildCareerPathInsight(p mentorship.Profile) mentorship.Insight {
	next := "a senior individual-contributor role"
	if p.ExperienceYears >= 8 {
		next = "a leadership or staff-level role"
	}
	return mentorship.Insight{
		InsightType: mentorship.InsightCareerPath,
		Title:       "Your likely next step",
		Description: fmt.Sprintf("Given %d years of experience, your most common next step is %s.", p.ExperienceYears, next),
		Recommendations: []string{
			"Write the job description of the role you want",
			"Identify the two gaps between it and your current role",
		},
		ConfidenceScore: 0.78,
	}
}

func buildNetworkingInsight(p mentorship.Profile) mentorship.Insight {
	return mentorship.Insight{
		InsightType: mentorship.InsightNetworking,
		Title:       "Grow your professional network",
		Description: "Your network determines which opportunities you hear about first. Weak ties matter more than close colleagues for finding new roles.",
		Recommendations: []string{
			"Reconnect with one former colleague each month",
			"Attend one industry event per quarter",
		},
		ConfidenceScore: 0.68,
	}
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// DashboardStats aggregates a user's entities into the stats block. Average
// progress is the mean over all goals, rounded to one decimal.
func (e *Engine) DashboardStats(goals []mentorship.Goal, matches []mentorship.Match, sessions []mentorship.Session) mentorship.DashboardStats {
	var st mentorship.DashboardStats
	var progress []float64
	for _, g := range goals {
		progress = append(progress, g.Progress)
		if g.Status == "completed" || g.Progress >= 100 {
			st.CompletedGoals++
		} else {
			st.ActiveGoals++
		}
	}
	if len(progress) > 0 {
		if mean, err := stats.Mean(progress); err == nil {
			st.AvgProgress = math.Round(mean*10) / 10
		}
	}
	st.TotalMatches = len(matches)
	for _, sess := range sessions {
		if sess.Status == "completed" {
			st.CompletedSessions++
		} else {
			st.UpcomingSessions++
		}
	}
	return st
}
