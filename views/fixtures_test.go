package views

import (
	"mentormatch/domain/forms"
)

func profileFormFixture(experienceYears string) forms.ProfileForm {
	return forms.ProfileForm{
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Role:            "mentee",
		CurrentPosition: "Engineer",
		Industry:        "Technology",
		ExperienceYears: experienceYears,
		Skills:          "Go, Distributed Systems",
		Goals:           "Become a tech lead",
		Interests:       "Math, Music",
	}
}
