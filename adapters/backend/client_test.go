package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentormatch/internal/apperr"
	"mentormatch/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.BackendConfig{BaseURL: server.URL, Timeout: 5 * time.Second})
}

func TestGoalsDecodesAndNormalizes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/goals/u-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"g-1","user_id":"u-1","title":"Lead","progress":40}]`))
	})

	goals, err := client.Goals(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "Lead", goals[0].Title)
	assert.NotNil(t, goals[0].AIRecommendations, "absent collections must normalize to empty")
}

func TestGoalsEmptyListIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	goals, err := client.Goals(context.Background(), "u-1")
	require.NoError(t, err, "a valid response with zero items is not an error")
	assert.Empty(t, goals)
}

func TestFindMatchesUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/matches/u-1", r.URL.Path)
		w.Write([]byte(`{"matches":[{"mentor_name":"Grace","match_score":0.856,"match_reasons":["Same industry"]}]}`))
	})

	matches, err := client.FindMatches(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 0.856, matches[0].MatchScore)
}

func TestInsightsUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"insights":[{"insight_type":"skill_gap","title":"T","confidence_score":0.8}]}`))
	})

	insights, err := client.Insights(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.NotNil(t, insights[0].Recommendations)
}

func TestServerErrorBecomesRequestFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Dashboard(context.Background(), "u-1")
	require.Error(t, err)
	assert.True(t, apperr.IsRequestFailure(err), "got code %s", apperr.GetCode(err))
}

func TestTransportErrorBecomesRequestFailure(t *testing.T) {
	client := NewClient(config.BackendConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})

	_, err := client.ListProfiles(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.IsRequestFailure(err))
}

func TestCreateProfileSendsPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/profiles", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"id":"u-9","name":"Ada","role":"mentee"}`))
	})

	profile, err := client.CreateProfile(context.Background(), profileSubmissionFixture())
	require.NoError(t, err)
	assert.Equal(t, "u-9", profile.ID.String())
	assert.NotNil(t, profile.Skills)
}
