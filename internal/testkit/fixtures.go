package testkit

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"

	"mentormatch/domain/core"
	"mentormatch/domain/mentorship"
)

// Fixture generators for tests and demo seeding.

// FakeProfile generates a plausible profile with the given role.
func FakeProfile(role mentorship.Role) mentorship.Profile {
	years := gofakeit.Number(1, 8)
	if role == mentorship.RoleMentor {
		years = gofakeit.Number(8, 25)
	}
	return mentorship.Profile{
		ID:              core.UserID(core.NewID()),
		Name:            gofakeit.Name(),
		Email:           gofakeit.Email(),
		Role:            role,
		CurrentPosition: gofakeit.JobTitle(),
		Industry:        gofakeit.RandomString([]string{"Technology", "Finance", "Healthcare", "Education"}),
		ExperienceYears: years,
		Skills:          []string{gofakeit.ProgrammingLanguage(), "Leadership", gofakeit.BuzzWord()},
		Goals:           []string{fmt.Sprintf("Grow into a %s role", gofakeit.JobLevel())},
		Bio:             gofakeit.Sentence(12),
		Interests:       []string{gofakeit.Hobby(), gofakeit.Hobby()},
		CreatedAt:       core.Now(),
	}.Normalized()
}

// FakeProfiles generates n profiles, alternating mentors and mentees.
func FakeProfiles(n int) []mentorship.Profile {
	profiles := make([]mentorship.Profile, n)
	for i := range profiles {
		role := mentorship.RoleMentor
		if i%2 == 1 {
			role = mentorship.RoleMentee
		}
		profiles[i] = FakeProfile(role)
	}
	return profiles
}

// FakeGoal generates a goal owned by the given user.
func FakeGoal(userID core.UserID) mentorship.Goal {
	return mentorship.Goal{
		ID:          core.GoalID(core.NewID()),
		UserID:      userID,
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Sentence(10),
		Category:    mentorship.GoalCategory(gofakeit.RandomString([]string{"skill", "career", "networking", "leadership"})),
		TargetDate:  core.NewTimestamp(gofakeit.FutureDate()),
		Progress:    float64(gofakeit.Number(0, 100)),
		Status:      "active",
		CreatedAt:   core.Now(),
	}.Normalized()
}
