package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"

	"mentormatch/domain/core"
	"mentormatch/internal/logx"
	"mentormatch/ports"
	"mentormatch/views"
)

//go:embed templates/*
var embeddedFiles embed.FS

// App is the MentorMatch web UI. It composes the per-screen view controllers
// around one backend port; handlers stay thin and never duplicate transform,
// lifecycle or presentation logic.
type App struct {
	router    *chi.Mux
	backend   ports.Backend
	templates *template.Template
	log       *logx.Logger

	landing *views.LandingView
	profile *views.ProfileCreateView

	// Per-user controllers. Each user's set is isolated; leaving a user's
	// pages tears the set down so stale responses are dropped.
	mu   sync.Mutex
	sets map[core.UserID]*views.Set
}

// Config holds UI application configuration
type Config struct {
	Port string
}

// NewApp creates a new UI application
func NewApp(config Config, backend ports.Backend) (*App, error) {
	funcMap := template.FuncMap{
		// AI-written descriptions arrive as markdown.
		"markdown": func(s string) template.HTML {
			return template.HTML(markdown.ToHTML([]byte(s), nil, nil))
		},
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		backend:   backend,
		templates: templates,
		log:       logx.Default,
		landing:   views.NewLandingView(backend),
		profile:   views.NewProfileCreateView(backend),
		sets:      make(map[core.UserID]*views.Set),
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleLanding)
	a.router.Post("/retry", a.handleLandingRetry)

	a.router.Get("/profiles/new", a.handleProfileForm)
	a.router.Post("/profiles", a.handleProfileSubmit)

	a.router.Route("/users/{userID}", func(r chi.Router) {
		r.Get("/dashboard", a.handleDashboard)
		r.Post("/dashboard/retry", a.handleDashboardRetry)

		r.Get("/goals", a.handleGoals)
		r.Post("/goals", a.handleGoalSubmit)
		r.Post("/goals/retry", a.handleGoalsRetry)
		r.Get("/goals/export", a.handleGoalsExport)

		r.Get("/matches", a.handleMatches)
		r.Post("/matches/find", a.handleFindMatches)

		r.Get("/insights", a.handleInsights)
		r.Post("/insights/generate", a.handleGenerateInsights)

		r.Get("/network", a.handleNetwork)
		r.Post("/network/analyze", a.handleAnalyzeNetwork)

		r.Post("/leave", a.handleLeave)
	})
}

// set returns the view controllers for a user, creating them on first visit.
func (a *App) set(userID core.UserID) *views.Set {
	a.mu.Lock()
	defer a.mu.Unlock()
	if s, ok := a.sets[userID]; ok {
		return s
	}
	s := views.NewSet(a.backend, userID)
	a.sets[userID] = s
	return s
}

// handleLeave tears down a user's controllers, modeling navigation away.
func (a *App) handleLeave(w http.ResponseWriter, r *http.Request) {
	userID := core.UserID(chi.URLParam(r, "userID"))

	a.mu.Lock()
	if s, ok := a.sets[userID]; ok {
		s.Teardown()
		delete(a.sets, userID)
	}
	a.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// userID extracts and validates the user identifier route parameter.
func (a *App) userID(w http.ResponseWriter, r *http.Request) (core.UserID, bool) {
	userID, err := core.ParseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return "", false
	}
	return userID, true
}

// render executes a page template, falling back to a plain 500 on template
// failure.
func (a *App) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, name, data); err != nil {
		a.log.Error("render %s failed: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// Start runs the HTTP server.
func (a *App) Start(port string) error {
	a.log.Info("MentorMatch UI listening on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.router
}
