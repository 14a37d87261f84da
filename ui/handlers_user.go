package ui

import (
	"net/http"

	"mentormatch/domain/forms"
	"mentormatch/views"
)

// userPage wraps a view model with the route context templates need.
type userPage[T any] struct {
	UserID string
	Model  T
}

func page[T any](userID string, model T) userPage[T] {
	return userPage[T]{UserID: userID, Model: model}
}

// goalsPage adds form re-rendering state to the goals screen.
type goalsPage struct {
	UserID     string
	Model      views.GoalsModel
	Form       forms.GoalForm
	FieldError string
}

func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.userID(w, r)
	if !ok {
		return
	}
	view := a.set(userID).Dashboard
	view.EnsureLoaded(r.Context())
	a.render(w, "dashboard.html", page(userID.String(), view.Model()))
}

func (a *App) handleDashboardRetry(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.userID(w, r)
	if !ok {
		return
	}
	a.set(userID).Dashboard.Retry(r.Context())
	http.Redirect(w, r, "/users/"+userID.String()+"/dashboard", http.StatusSeeOther)
}

func (a *App) handleGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.userID(w, r)
	if !ok {
		return
	}
	view := a.set(userID).Goals
	view.EnsureLoaded(r.Context())
	a.render(w, "goals.html", goalsPage{UserID: userID.String(), Model: view.Model()})
}

func (a *App) handleGoalsRetry(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.userID(w, r)
	if !ok {
		return
	}
	a.set(userID).Goals.Retry(r.Context())
	http.Redirect(w, r, "/users/"+userID.String()+"/goals", http.StatusSeeOther)
}

func (a *App) handleGoalSubmit(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.userID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	form := forms.GoalForm{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Category:    r.PostFormValue("category"),
		TargetDate:  r.PostFormValue("target_date"),
	}

	view := a.set(userID).Goals
	if err := view.Create(r.Context(), form); err != nil {
		a.render(w, "goals.html", goalsPage{
			UserID:     userID.String(),
			Model:      view.Model(),
			Form:       form,
			FieldError: err.Error(),
		})
		return
	}
	http.Redirect(w, r, "/users/"+userID.String()+"/goals", http.StatusSeeOther)
}

func (a *App) handleMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.userID(w, r)
	if !ok {
		return
	}
	a.render(w, "matches.html", page(userID.String(), a.set(userID).Matches.Model()))
}

func (a *App) handleFindMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.userID(w, r)
	if !ok {
		return
	}
	a.set(userID).Matches.Find(r.Context())
	http.Redirect(w, r, "/users/"+userID.String()+"/matches", http.StatusSeeOther)
}

func (a *App) handleInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.userID(w, r)
	if !ok {
		return
	}
	a.render(w, "insights.html", page(userID.String(), a.set(userID).Insights.Model()))
}

func (a *App) handleGenerateInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.userID(w, r)
	if !ok {
		return
	}
	a.set(userID).Insights.Generate(r.Context())
	http.Redirect(w, r, "/users/"+userID.String()+"/insights", http.StatusSeeOther)
}

func (a *App) handleNetwork(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.userID(w, r)
	if !ok {
		return
	}
	a.render(w, "network.html", page(userID.String(), a.set(userID).Network.Model()))
}

func (a *App) handleAnalyzeNetwork(w http.ResponseWriter, r *http.Request) {
	userID, ok := a.userID(w, r)
	if !ok {
		return
	}
	a.set(userID).Network.Analyze(r.Context())
	http.Redirect(w, r, "/users/"+userID.String()+"/network", http.StatusSeeOther)
}
