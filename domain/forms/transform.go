package forms

import (
	"strconv"
	"strings"
	"time"

	"mentormatch/domain/core"
	"mentormatch/domain/mentorship"
	"mentormatch/internal/apperr"
)

// Form transforms convert raw user input into structured submission payloads.
// They are pure: errors are returned as values and never cross the view
// boundary as panics, and a transform error never reaches the network layer.

// SplitList parses a comma-delimited field into a list: segments are trimmed,
// empty segments are dropped, order and duplicates are preserved.
func SplitList(s string) []string {
	out := []string{}
	for _, seg := range strings.Split(s, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		out = append(out, seg)
	}
	return out
}

// ParseExperienceYears parses the experience field as a non-negative integer.
// Non-numeric input is an invalid-input error, never a silent zero.
func ParseExperienceYears(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apperr.InvalidInput("experience_years", "value is required")
	}
	years, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperr.InvalidInput("experience_years", "must be a whole number")
	}
	if years < 0 {
		return 0, apperr.InvalidInput("experience_years", "cannot be negative")
	}
	return years, nil
}

// ParseTargetDate parses a YYYY-MM-DD calendar date and normalizes it to an
// absolute instant with start-of-day semantics. The result is always a
// timezone-absolute instant, never a bare date string.
func ParseTargetDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, apperr.InvalidInput("target_date", "value is required")
	}
	day, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, apperr.InvalidInput("target_date", "must be a YYYY-MM-DD date")
	}
	return day, nil
}

// ProfileForm is the raw state of the profile-creation form.
type ProfileForm struct {
	Name            string
	Email           string
	Role            string
	CurrentPosition string
	Industry        string
	ExperienceYears string
	Skills          string
	Goals           string
	Bio             string
	Interests       string
}

// ProfileSubmission is the POST /profiles payload.
type ProfileSubmission struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Role            string   `json:"role"`
	CurrentPosition string   `json:"current_position"`
	Industry        string   `json:"industry"`
	ExperienceYears int      `json:"experience_years"`
	Skills          []string `json:"skills"`
	Goals           []string `json:"goals"`
	Bio             string   `json:"bio"`
	Interests       []string `json:"interests"`
}

// Payload converts the form into a submission payload, surfacing the first
// invalid field to the user before any request is attempted.
func (f ProfileForm) Payload() (ProfileSubmission, error) {
	if strings.TrimSpace(f.Name) == "" {
		return ProfileSubmission{}, apperr.InvalidInput("name", "value is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		return ProfileSubmission{}, apperr.InvalidInput("email", "value is required")
	}
	if !mentorship.Role(f.Role).Valid() {
		return ProfileSubmission{}, apperr.InvalidInput("role", "must be mentor or mentee")
	}
	years, err := ParseExperienceYears(f.ExperienceYears)
	if err != nil {
		return ProfileSubmission{}, err
	}

	return ProfileSubmission{
		Name:            strings.TrimSpace(f.Name),
		Email:           strings.TrimSpace(f.Email),
		Role:            f.Role,
		CurrentPosition: strings.TrimSpace(f.CurrentPosition),
		Industry:        strings.TrimSpace(f.Industry),
		ExperienceYears: years,
		Skills:          SplitList(f.Skills),
		Goals:           SplitList(f.Goals),
		Bio:             strings.TrimSpace(f.Bio),
		Interests:       SplitList(f.Interests),
	}, nil
}

// GoalForm is the raw state of the goal-creation form.
type GoalForm struct {
	UserID      core.UserID
	Title       string
	Description string
	Category    string
	TargetDate  string
}

// GoalSubmission is the POST /goals payload. TargetDate marshals as an
// RFC3339 instant.
type GoalSubmission struct {
	UserID      core.UserID `json:"user_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	TargetDate  time.Time   `json:"target_date"`
}

// Payload converts the form into a submission payload.
func (f GoalForm) Payload() (GoalSubmission, error) {
	if f.UserID.IsEmpty() {
		return GoalSubmission{}, apperr.InvalidInput("user_id", "value is required")
	}
	if strings.TrimSpace(f.Title) == "" {
		return GoalSubmission{}, apperr.InvalidInput("title", "value is required")
	}
	if !mentorship.GoalCategory(f.Category).Valid() {
		return GoalSubmission{}, apperr.InvalidInput("category", "must be skill, career, networking or leadership")
	}
	target, err := ParseTargetDate(f.TargetDate)
	if err != nil {
		return GoalSubmission{}, err
	}

	return GoalSubmission{
		UserID:      f.UserID,
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Category:    f.Category,
		TargetDate:  target,
	}, nil
}
