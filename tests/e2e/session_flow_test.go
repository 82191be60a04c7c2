//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/companions-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/companions-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Scenario: finished voice sessions accumulate in the user's history.
// ---------------------------------------------------------------------------

func TestE2E_SessionHistory(t *testing.T) {
	ts := setupTestServer(t)
	_, token := newUser(t, ts, domain.PlanFree)

	companion := testhelper.SeedCompanion(t, ts.Pool, uuid.New())
	sessionPath := "/companions/" + companion.ID.String() + "/sessions"

	// Two finished sessions with the same companion. History keeps both.
	for i := 0; i < 2; i++ {
		resp := restRequest(t, ts, http.MethodPost, sessionPath, token, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := restRequest(t, ts, http.MethodGet, "/me/sessions", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ids := companionIDs(t, decodeBody(t, resp))
	assert.Equal(t, []string{companion.ID.String(), companion.ID.String()}, ids)
}

func TestE2E_SessionAppend_Unauthorized(t *testing.T) {
	ts := setupTestServer(t)

	companion := testhelper.SeedCompanion(t, ts.Pool, uuid.New())

	resp := restRequest(t, ts, http.MethodPost,
		"/companions/"+companion.ID.String()+"/sessions", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// The global recent feed is public.
func TestE2E_RecentSessions_Anonymous(t *testing.T) {
	ts := setupTestServer(t)

	resp := restRequest(t, ts, http.MethodGet, "/sessions/recent?limit=5", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestE2E_MySessions_LimitApplied(t *testing.T) {
	ts := setupTestServer(t)
	_, token := newUser(t, ts, domain.PlanFree)

	companion := testhelper.SeedCompanion(t, ts.Pool, uuid.New())
	sessionPath := "/companions/" + companion.ID.String() + "/sessions"

	for i := 0; i < 3; i++ {
		resp := restRequest(t, ts, http.MethodPost, sessionPath, token, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := restRequest(t, ts, http.MethodGet, "/me/sessions?limit=2", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, companionIDs(t, decodeBody(t, resp)), 2)
}
