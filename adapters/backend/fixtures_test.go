package backend

import (
	"mentormatch/domain/forms"
)

func profileSubmissionFixture() forms.ProfileSubmission {
	return forms.ProfileSubmission{
		Name:            "Ada",
		Email:           "ada@example.com",
		Role:            "mentee",
		CurrentPosition: "Engineer",
		Industry:        "Technology",
		ExperienceYears: 4,
		Skills:          []string{"Go"},
		Goals:           []string{"Become a tech lead"},
		Interests:       []string{"Math"},
	}
}
