package demoserver

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"

	"mentormatch/domain/core"
	"mentormatch/domain/mentorship"
)

var seedIndustries = []string{
	"Technology", "Finance", "Healthcare", "Education", "Consulting",
}

var seedSkills = []string{
	"Python", "Go", "Leadership", "Data Analysis", "Product Strategy",
	"Public Speaking", "System Design", "Negotiation", "SQL", "Mentoring",
}

var seedInterests = []string{
	"AI", "Open Source", "Startups", "Climbing", "Reading", "Travel",
}

var seedStyles = []string{"direct", "collaborative", "supportive"}

// Seed fills the store with fake mentor profiles so a fresh deployment has
// someone to match against. Count is mentors only; mentees come from signups.
func Seed(ctx context.Context, store Store, engine *Engine, count int) error {
	for i := 0; i < count; i++ {
		p := mentorship.Profile{
			ID:                 core.UserID(core.NewID()),
			Name:               gofakeit.Name(),
			Email:              gofakeit.Email(),
			Role:               mentorship.RoleMentor,
			CurrentPosition:    gofakeit.JobTitle(),
			Industry:           seedIndustries[rand.Intn(len(seedIndustries))],
			ExperienceYears:    5 + rand.Intn(16),
			Skills:             pick(seedSkills, 3+rand.Intn(3)),
			Goals:              []string{"Give back to the community"},
			Bio:                gofakeit.Sentence(12),
			Interests:          pick(seedInterests, 2+rand.Intn(2)),
			CommunicationStyle: seedStyles[rand.Intn(len(seedStyles))],
			CreatedAt:          core.Now(),
		}
		p.AIAnalysis = engine.AnalyzeProfile(p)
		if err := store.CreateProfile(ctx, p); err != nil {
			return fmt.Errorf("seed profile %d: %w", i, err)
		}
	}
	return nil
}

func pick(pool []string, n int) []string {
	idx := rand.Perm(len(pool))
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for _, i := range idx[:n] {
		out = append(out, pool[i])
	}
	return out
}

// NetworkAnalysisFor produces the canned network-analysis payload. Real
// connection data would come from a LinkedIn import; this stands in with
// plausible randomized numbers.
func NetworkAnalysisFor(p mentorship.Profile) mentorship.NetworkAnalysis {
	industry := nonEmpty(p.Industry, "Technology")
	opportunities := make([]mentorship.MentorshipOpportunity, 0, 3)
	potentials := []string{"High", "Medium", "Low"}
	for i := 0; i < 3; i++ {
		opportunities = append(opportunities, mentorship.MentorshipOpportunity{
			Name:              gofakeit.Name(),
			Position:          gofakeit.JobTitle(),
			Company:           gofakeit.Company(),
			MutualConnections: 2 + rand.Intn(18),
			MatchPotential:    potentials[i],
		})
	}
	return mentorship.NetworkAnalysis{
		TotalConnections: 150 + rand.Intn(350),
		PotentialMentors: 5 + rand.Intn(20),
		IndustryBreakdown: map[string]float64{
			industry:     45,
			"Finance":    20,
			"Consulting": 15,
			"Other":      20,
		},
		NetworkingEvents: []mentorship.NetworkingEvent{
			{
				Name:                fmt.Sprintf("%s Leaders Meetup", industry),
				Date:                "2026-09-15",
				Location:            "San Francisco, CA",
				RelevantConnections: 12,
			},
			{
				Name:                "Mentorship & Growth Summit",
				Date:                "2026-10-02",
				Location:            "Virtual",
				RelevantConnections: 8,
			},
		},
		MentorshipOpportunities: opportunities,
	}
}
