package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"mentormatch/domain/core"
	"mentormatch/domain/forms"
	"mentormatch/domain/mentorship"
	"mentormatch/internal/apperr"
	"mentormatch/internal/config"
	"mentormatch/ports"
)

// Client implements ports.Backend over HTTP against the configured base
// address. All endpoints live under that single base; transport and non-2xx
// errors surface as REQUEST_FAILURE so views can transition to failed.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a backend client from configuration.
func NewClient(cfg config.BackendConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

var _ ports.Backend = (*Client)(nil)

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return apperr.RequestFailure(path, err)
	}
	return c.do(req, path, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return apperr.Wrapf(err, "marshal %s payload", path)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return apperr.RequestFailure(path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.RequestFailure(path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.RequestFailure(path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperr.RequestFailure(path, fmt.Errorf("http %d: %s", resp.StatusCode, truncate(raw, 200)))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperr.RequestFailure(path, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func truncate(raw []byte, n int) string {
	s := string(raw)
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

// ListProfiles calls GET /profiles.
func (c *Client) ListProfiles(ctx context.Context) ([]mentorship.Profile, error) {
	var profiles []mentorship.Profile
	if err := c.getJSON(ctx, "/profiles", &profiles); err != nil {
		return nil, err
	}
	return mentorship.NormalizeProfiles(profiles), nil
}

// CreateProfile calls POST /profiles.
func (c *Client) CreateProfile(ctx context.Context, payload forms.ProfileSubmission) (mentorship.Profile, error) {
	var profile mentorship.Profile
	if err := c.postJSON(ctx, "/profiles", payload, &profile); err != nil {
		return mentorship.Profile{}, err
	}
	return profile.Normalized(), nil
}

// Dashboard calls GET /dashboard/{userId}.
func (c *Client) Dashboard(ctx context.Context, userID core.UserID) (mentorship.DashboardSummary, error) {
	var summary mentorship.DashboardSummary
	if err := c.getJSON(ctx, "/dashboard/"+userID.String(), &summary); err != nil {
		return mentorship.DashboardSummary{}, err
	}
	return summary.Normalized(), nil
}

// FindMatches calls POST /matches/{userId}. The response wraps the list in a
// matches envelope.
func (c *Client) FindMatches(ctx context.Context, userID core.UserID) ([]mentorship.Match, error) {
	var envelope struct {
		Matches []mentorship.Match `json:"matches"`
	}
	if err := c.postJSON(ctx, "/matches/"+userID.String(), nil, &envelope); err != nil {
		return nil, err
	}
	return mentorship.NormalizeMatches(envelope.Matches), nil
}

// Goals calls GET /goals/{userId}.
func (c *Client) Goals(ctx context.Context, userID core.UserID) ([]mentorship.Goal, error) {
	var goals []mentorship.Goal
	if err := c.getJSON(ctx, "/goals/"+userID.String(), &goals); err != nil {
		return nil, err
	}
	return mentorship.NormalizeGoals(goals), nil
}

// CreateGoal calls POST /goals.
func (c *Client) CreateGoal(ctx context.Context, payload forms.GoalSubmission) (mentorship.Goal, error) {
	var goal mentorship.Goal
	if err := c.postJSON(ctx, "/goals", payload, &goal); err != nil {
		return mentorship.Goal{}, err
	}
	return goal.Normalized(), nil
}

// Insights calls GET /insights/{userId}. The response wraps the list in an
// insights envelope.
func (c *Client) Insights(ctx context.Context, userID core.UserID) ([]mentorship.Insight, error) {
	var envelope struct {
		Insights []mentorship.Insight `json:"insights"`
	}
	if err := c.getJSON(ctx, "/insights/"+userID.String(), &envelope); err != nil {
		return nil, err
	}
	return mentorship.NormalizeInsights(envelope.Insights), nil
}

// NetworkAnalysis calls GET /linkedin/network-analysis/{userId}.
func (c *Client) NetworkAnalysis(ctx context.Context, userID core.UserID) (mentorship.NetworkAnalysis, error) {
	var analysis mentorship.NetworkAnalysis
	if err := c.getJSON(ctx, "/linkedin/network-analysis/"+userID.String(), &analysis); err != nil {
		return mentorship.NetworkAnalysis{}, err
	}
	return analysis.Normalized(), nil
}
