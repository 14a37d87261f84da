package ui

import (
	"net/http"

	"mentormatch/domain/forms"
)

// handleLanding renders the landing page with community counts.
func (a *App) handleLanding(w http.ResponseWriter, r *http.Request) {
	a.landing.EnsureLoaded(r.Context())
	a.render(w, "landing.html", a.landing.Model())
}

// handleLandingRetry re-issues the profile-count request.
func (a *App) handleLandingRetry(w http.ResponseWriter, r *http.Request) {
	a.landing.Retry(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// profileFormPage is the template state for the profile-creation screen.
type profileFormPage struct {
	Form       forms.ProfileForm
	FieldError string
	ErrorMsg   string
}

// handleProfileForm renders an empty profile-creation form.
func (a *App) handleProfileForm(w http.ResponseWriter, r *http.Request) {
	a.render(w, "profile_new.html", profileFormPage{})
}

// handleProfileSubmit transforms and submits the form. Invalid input is
// re-rendered with the user's values intact; a created profile redirects to
// its dashboard.
func (a *App) handleProfileSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	form := forms.ProfileForm{
		Name:            r.PostFormValue("name"),
		Email:           r.PostFormValue("email"),
		Role:            r.PostFormValue("role"),
		CurrentPosition: r.PostFormValue("current_position"),
		Industry:        r.PostFormValue("industry"),
		ExperienceYears: r.PostFormValue("experience_years"),
		Skills:          r.PostFormValue("skills"),
		Goals:           r.PostFormValue("goals"),
		Bio:             r.PostFormValue("bio"),
		Interests:       r.PostFormValue("interests"),
	}

	if err := a.profile.Submit(r.Context(), form); err != nil {
		a.render(w, "profile_new.html", profileFormPage{Form: form, FieldError: err.Error()})
		return
	}
	if created, ok := a.profile.CreatedProfile(); ok {
		a.profile.Teardown()
		http.Redirect(w, r, "/users/"+created.ID.String()+"/dashboard", http.StatusSeeOther)
		return
	}
	a.render(w, "profile_new.html", profileFormPage{Form: form, ErrorMsg: a.profile.ErrorMessage()})
}
