package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"mentormatch/domain/core"
	"mentormatch/domain/mentorship"
	"mentormatch/internal/demoserver"
)

// Store persists profiles and goals in Postgres; matches, insights and
// sessions stay in memory since they are regenerated on demand. It satisfies
// demoserver.Store so the backend can switch on DATABASE_URL alone.
type Store struct {
	*demoserver.MemStore
	db *sqlx.DB
}

var _ demoserver.Store = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	email       TEXT NOT NULL,
	role        TEXT NOT NULL,
	position    TEXT NOT NULL DEFAULT '',
	industry    TEXT NOT NULL DEFAULT '',
	exp_years   INT  NOT NULL DEFAULT 0,
	skills      JSONB NOT NULL DEFAULT '[]',
	goals       JSONB NOT NULL DEFAULT '[]',
	bio         TEXT NOT NULL DEFAULT '',
	interests   JSONB NOT NULL DEFAULT '[]',
	comm_style  TEXT NOT NULL DEFAULT '',
	ai_analysis JSONB,
	created_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
	id              TEXT PRIMARY KEY,
	user_id         TEXT NOT NULL REFERENCES profiles(id),
	title           TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	category        TEXT NOT NULL,
	target_date     TIMESTAMPTZ,
	progress        DOUBLE PRECISION NOT NULL DEFAULT 0,
	recommendations JSONB NOT NULL DEFAULT '[]',
	status          TEXT NOT NULL DEFAULT 'active',
	created_at      TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id);
`

// Open connects, verifies the connection and ensures the schema exists.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{MemStore: demoserver.NewMemStore(), db: db}, nil
}

// Close releases the database pool.
func (s *Store) Close() error {
	return s.db.Close()
}

type profileRow struct {
	ID         string         `db:"id"`
	Name       string         `db:"name"`
	Email      string         `db:"email"`
	Role       string         `db:"role"`
	Position   string         `db:"position"`
	Industry   string         `db:"industry"`
	ExpYears   int            `db:"exp_years"`
	Skills     []byte         `db:"skills"`
	Goals      []byte         `db:"goals"`
	Bio        string         `db:"bio"`
	Interests  []byte         `db:"interests"`
	CommStyle  string         `db:"comm_style"`
	AIAnalysis sql.NullString `db:"ai_analysis"`
	CreatedAt  time.Time      `db:"created_at"`
}

func toProfileRow(p mentorship.Profile) (profileRow, error) {
	skills, err := json.Marshal(emptyIfNil(p.Skills))
	if err != nil {
		return profileRow{}, err
	}
	goals, err := json.Marshal(emptyIfNil(p.Goals))
	if err != nil {
		return profileRow{}, err
	}
	interests, err := json.Marshal(emptyIfNil(p.Interests))
	if err != nil {
		return profileRow{}, err
	}
	row := profileRow{
		ID:        p.ID.String(),
		Name:      p.Name,
		Email:     p.Email,
		Role:      string(p.Role),
		Position:  p.CurrentPosition,
		Industry:  p.Industry,
		ExpYears:  p.ExperienceYears,
		Skills:    skills,
		Goals:     goals,
		Bio:       p.Bio,
		Interests: interests,
		CommStyle: p.CommunicationStyle,
		CreatedAt: p.CreatedAt.Time(),
	}
	if p.AIAnalysis != nil {
		raw, err := json.Marshal(p.AIAnalysis)
		if err != nil {
			return profileRow{}, err
		}
		row.AIAnalysis = sql.NullString{String: string(raw), Valid: true}
	}
	return row, nil
}

func (r profileRow) toProfile() (mentorship.Profile, error) {
	p := mentorship.Profile{
		ID:                 core.UserID(r.ID),
		Name:               r.Name,
		Email:              r.Email,
		Role:               mentorship.Role(r.Role),
		CurrentPosition:    r.Position,
		Industry:           r.Industry,
		ExperienceYears:    r.ExpYears,
		Bio:                r.Bio,
		CommunicationStyle: r.CommStyle,
		CreatedAt:          core.NewTimestamp(r.CreatedAt),
	}
	if err := json.Unmarshal(r.Skills, &p.Skills); err != nil {
		return mentorship.Profile{}, err
	}
	if err := json.Unmarshal(r.Goals, &p.Goals); err != nil {
		return mentorship.Profile{}, err
	}
	if err := json.Unmarshal(r.Interests, &p.Interests); err != nil {
		return mentorship.Profile{}, err
	}
	if r.AIAnalysis.Valid {
		if err := json.Unmarshal([]byte(r.AIAnalysis.String), &p.AIAnalysis); err != nil {
			return mentorship.Profile{}, err
		}
	}
	return p, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (s *Store) CreateProfile(ctx context.Context, p mentorship.Profile) error {
	row, err := toProfileRow(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	_, err = s.db.NamedExecContext(ctx, `
		INSERT INTO profiles (id, name, email, role, position, industry, exp_years,
			skills, goals, bio, interests, comm_style, ai_analysis, created_at)
		VALUES (:id, :name, :email, :role, :position, :industry, :exp_years,
			:skills, :goals, :bio, :interests, :comm_style, :ai_analysis, :created_at)`, row)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (s *Store) ListProfiles(ctx context.Context) ([]mentorship.Profile, error) {
	var rows []profileRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM profiles ORDER BY created_at`); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	out := make([]mentorship.Profile, 0, len(rows))
	for _, r := range rows {
		p, err := r.toProfile()
		if err != nil {
			return nil, fmt.Errorf("decode profile %s: %w", r.ID, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Store) GetProfile(ctx context.Context, id core.UserID) (mentorship.Profile, bool, error) {
	var row profileRow
	err := s.db.GetContext(ctx, &row, `SELECT * FROM profiles WHERE id = $1`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return mentorship.Profile{}, false, nil
	}
	if err != nil {
		return mentorship.Profile{}, false, fmt.Errorf("get profile: %w", err)
	}
	p, err := row.toProfile()
	if err != nil {
		return mentorship.Profile{}, false, fmt.Errorf("decode profile %s: %w", row.ID, err)
	}
	return p, true, nil
}

type goalRow struct {
	ID              string       `db:"id"`
	UserID          string       `db:"user_id"`
	Title           string       `db:"title"`
	Description     string       `db:"description"`
	Category        string       `db:"category"`
	TargetDate      sql.NullTime `db:"target_date"`
	Progress        float64      `db:"progress"`
	Recommendations []byte       `db:"recommendations"`
	Status          string       `db:"status"`
	CreatedAt       time.Time    `db:"created_at"`
}

func (s *Store) CreateGoal(ctx context.Context, g mentorship.Goal) error {
	recs, err := json.Marshal(emptyIfNil(g.AIRecommendations))
	if err != nil {
		return fmt.Errorf("encode goal: %w", err)
	}
	row := goalRow{
		ID:              g.ID.String(),
		UserID:          g.UserID.String(),
		Title:           g.Title,
		Description:     g.Description,
		Category:        string(g.Category),
		Progress:        g.Progress,
		Recommendations: recs,
		Status:          g.Status,
		CreatedAt:       g.CreatedAt.Time(),
	}
	if !g.TargetDate.IsZero() {
		row.TargetDate = sql.NullTime{Time: g.TargetDate.Time(), Valid: true}
	}
	_, err = s.db.NamedExecContext(ctx, `
		INSERT INTO goals (id, user_id, title, description, category, target_date,
			progress, recommendations, status, created_at)
		VALUES (:id, :user_id, :title, :description, :category, :target_date,
			:progress, :recommendations, :status, :created_at)`, row)
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	return nil
}

func (s *Store) GoalsByUser(ctx context.Context, userID core.UserID) ([]mentorship.Goal, error) {
	var rows []goalRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT * FROM goals WHERE user_id = $1 ORDER BY created_at`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	out := make([]mentorship.Goal, 0, len(rows))
	for _, r := range rows {
		g := mentorship.Goal{
			ID:          core.GoalID(r.ID),
			UserID:      core.UserID(r.UserID),
			Title:       r.Title,
			Description: r.Description,
			Category:    mentorship.GoalCategory(r.Category),
			Progress:    r.Progress,
			Status:      r.Status,
			CreatedAt:   core.NewTimestamp(r.CreatedAt),
		}
		if r.TargetDate.Valid {
			g.TargetDate = core.NewTimestamp(r.TargetDate.Time)
		}
		if err := json.Unmarshal(r.Recommendations, &g.AIRecommendations); err != nil {
			return nil, fmt.Errorf("decode goal %s: %w", r.ID, err)
		}
		out = append(out, g)
	}
	return out, nil
}
