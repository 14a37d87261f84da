package demoserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentormatch/domain/core"
	"mentormatch/domain/forms"
	"mentormatch/domain/mentorship"
	"mentormatch/internal/logx"
)

// Server is the stand-in mentorship backend. It implements the REST contract
// the client layer consumes, under an /api prefix, with gin.
type Server struct {
	store  Store
	engine *Engine
	log    *logx.Logger
}

// NewServer wires a server around a store.
func NewServer(store Store) *Server {
	return &Server{
		store:  store,
		engine: NewEngine(),
		log:    logx.Default,
	}
}

// savedMatchLimit is how many of the ranked matches are persisted per search;
// returnedMatchLimit caps the response.
const (
	savedMatchLimit    = 5
	returnedMatchLimit = 10
)

// Router builds the gin engine with every route mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/profiles", s.listProfiles)
		api.POST("/profiles", s.createProfile)
		api.GET("/dashboard/:userID", s.dashboard)
		api.POST("/matches/:userID", s.findMatches)
		api.GET("/goals/:userID", s.listGoals)
		api.POST("/goals", s.createGoal)
		api.GET("/insights/:userID", s.insights)
		api.GET("/linkedin/network-analysis/:userID", s.networkAnalysis)
		api.POST("/linkedin/import/:userID", s.linkedinImport)
		api.POST("/sessions", s.createSession)
		api.GET("/sessions/:userID", s.listSessions)
	}
	return r
}

func (s *Server) listProfiles(c *gin.Context) {
	profiles, err := s.store.ListProfiles(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mentorship.NormalizeProfiles(profiles))
}

func (s *Server) createProfile(c *gin.Context) {
	var sub forms.ProfileSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	if !mentorship.Role(sub.Role).Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "role must be mentor or mentee"})
		return
	}

	profile := mentorship.Profile{
		ID:              core.UserID(core.NewID()),
		Name:            sub.Name,
		Email:           sub.Email,
		Role:            mentorship.Role(sub.Role),
		CurrentPosition: sub.CurrentPosition,
		Industry:        sub.Industry,
		ExperienceYears: sub.ExperienceYears,
		Skills:          sub.Skills,
		Goals:           sub.Goals,
		Bio:             sub.Bio,
		Interests:       sub.Interests,
		CreatedAt:       core.Now(),
	}
	profile.AIAnalysis = s.engine.AnalyzeProfile(profile)
	if style, ok := profile.AIAnalysis["communication_style"].(string); ok {
		profile.CommunicationStyle = style
	}

	if err := s.store.CreateProfile(c.Request.Context(), profile); err != nil {
		s.fail(c, err)
		return
	}
	s.log.Info("profile created: %s (%s)", profile.ID, profile.Role)
	c.JSON(http.StatusOK, profile.Normalized())
}

func (s *Server) dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	userID := core.UserID(c.Param("userID"))

	profile, ok, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}

	goals, err := s.store.GoalsByUser(ctx, userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	matches, err := s.store.MatchesByUser(ctx, userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	sessions, err := s.store.SessionsByUser(ctx, userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	insights, err := s.store.InsightsByUser(ctx, userID)
	if err != nil {
		s.fail(c, err)
		return
	}

	summary := mentorship.DashboardSummary{
		Profile:          profile,
		Stats:            s.engine.DashboardStats(goals, matches, sessions),
		RecentGoals:      tail(goals, 5),
		RecentMatches:    tail(matches, 5),
		UpcomingSessions: upcoming(sessions),
		RecentInsights:   tail(insights, 5),
	}
	c.JSON(http.StatusOK, summary.Normalized())
}

// tail returns the last n elements, newest-last storage order preserved.
func tail[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

func upcoming(sessions []mentorship.Session) []mentorship.Session {
	var out []mentorship.Session
	for _, sess := range sessions {
		if sess.Status != "completed" {
			out = append(out, sess)
		}
	}
	return out
}

func (s *Server) findMatches(c *gin.Context) {
	ctx := c.Request.Context()
	userID := core.UserID(c.Param("userID"))

	mentee, ok, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}

	candidates, err := s.store.ListProfiles(ctx)
	if err != nil {
		s.fail(c, err)
		return
	}

	ranked := s.engine.RankMentors(mentee, candidates)
	if err := s.store.SaveMatches(ctx, head(ranked, savedMatchLimit)); err != nil {
		s.fail(c, err)
		return
	}
	s.log.Info("matches for %s: %d above threshold", userID, len(ranked))
	c.JSON(http.StatusOK, gin.H{"matches": mentorship.NormalizeMatches(head(ranked, returnedMatchLimit))})
}

func head[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func (s *Server) listGoals(c *gin.Context) {
	goals, err := s.store.GoalsByUser(c.Request.Context(), core.UserID(c.Param("userID")))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mentorship.NormalizeGoals(goals))
}

func (s *Server) createGoal(c *gin.Context) {
	var sub forms.GoalSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	if !mentorship.GoalCategory(sub.Category).Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "unknown goal category"})
		return
	}

	goal := mentorship.Goal{
		ID:          core.GoalID(core.NewID()),
		UserID:      sub.UserID,
		Title:       sub.Title,
		Description: sub.Description,
		Category:    mentorship.GoalCategory(sub.Category),
		TargetDate:  core.NewTimestamp(sub.TargetDate),
		Progress:    0,
		Status:      "active",
		CreatedAt:   core.Now(),
	}
	goal.AIRecommendations = s.engine.GoalRecommendations(goal)

	if err := s.store.CreateGoal(c.Request.Context(), goal); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, goal.Normalized())
}

// insights regenerates on every request; a demo has no staleness policy worth
// persisting, but generated insights are still saved for the dashboard.
func (s *Server) insights(c *gin.Context) {
	ctx := c.Request.Context()
	userID := core.UserID(c.Param("userID"))

	profile, ok, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}

	insights, err := s.engine.GenerateInsights(ctx, profile)
	if err != nil {
		s.fail(c, err)
		return
	}
	if err := s.store.SaveInsights(ctx, insights); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": mentorship.NormalizeInsights(insights)})
}

func (s *Server) networkAnalysis(c *gin.Context) {
	ctx := c.Request.Context()
	userID := core.UserID(c.Param("userID"))

	profile, ok, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}
	c.JSON(http.StatusOK, NetworkAnalysisFor(profile).Normalized())
}

func (s *Server) linkedinImport(c *gin.Context) {
	userID := core.UserID(c.Param("userID"))
	_, ok, err := s.store.GetProfile(c.Request.Context(), userID)
	if err != nil {
		s.fail(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":               "imported",
		"connections_imported": 247,
		"profiles_analyzed":    247,
	})
}

func (s *Server) createSession(c *gin.Context) {
	var sess mentorship.Session
	if err := c.ShouldBindJSON(&sess); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	ctx := c.Request.Context()
	if _, ok, err := s.store.GetMatch(ctx, sess.MatchID); err != nil {
		s.fail(c, err)
		return
	} else if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Match not found"})
		return
	}
	sess.ID = core.NewID()
	if sess.Status == "" {
		sess.Status = "scheduled"
	}
	if err := s.store.CreateSession(ctx, sess); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (s *Server) listSessions(c *gin.Context) {
	sessions, err := s.store.SessionsByUser(c.Request.Context(), core.UserID(c.Param("userID")))
	if err != nil {
		s.fail(c, err)
		return
	}
	if sessions == nil {
		sessions = []mentorship.Session{}
	}
	c.JSON(http.StatusOK, sessions)
}

func (s *Server) fail(c *gin.Context, err error) {
	s.log.Error("request failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
}
