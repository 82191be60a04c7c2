//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	bookmarkrepo "github.com/heartmarshall/companions-backend/internal/adapter/postgres/bookmark"
	companionrepo "github.com/heartmarshall/companions-backend/internal/adapter/postgres/companion"
	historyrepo "github.com/heartmarshall/companions-backend/internal/adapter/postgres/history"
	subscriptionrepo "github.com/heartmarshall/companions-backend/internal/adapter/postgres/subscription"
	"github.com/heartmarshall/companions-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/companions-backend/internal/adapter/rediscache"
	authpkg "github.com/heartmarshall/companions-backend/internal/auth"
	"github.com/heartmarshall/companions-backend/internal/config"
	"github.com/heartmarshall/companions-backend/internal/domain"
	bookmarksvc "github.com/heartmarshall/companions-backend/internal/service/bookmark"
	companionsvc "github.com/heartmarshall/companions-backend/internal/service/companion"
	historysvc "github.com/heartmarshall/companions-backend/internal/service/history"
	"github.com/heartmarshall/companions-backend/internal/transport/middleware"
	"github.com/heartmarshall/companions-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). Cache invalidation runs in
// noop mode; no Redis is involved.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	invalidator := rediscache.Noop{}

	companions := companionrepo.New(pool)
	bookmarks := bookmarkrepo.New(pool)
	history := historyrepo.New(pool)
	subscriptions := subscriptionrepo.New(pool)

	companionService := companionsvc.NewService(logger, companions, subscriptions, 10, 100)
	bookmarkService := bookmarksvc.NewService(logger, bookmarks, invalidator)
	historyService := historysvc.NewService(logger, history, invalidator, 10, 100)

	healthHandler := rest.NewHealthHandler(pool, "e2e")
	companionHandler := rest.NewCompanionHandler(companionService, logger)
	bookmarkHandler := rest.NewBookmarkHandler(bookmarkService, logger)
	historyHandler := rest.NewHistoryHandler(historyService, logger)

	mux := rest.NewMux(healthHandler, companionHandler, bookmarkHandler, historyHandler)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer")

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		}),
		middleware.Auth(jwtMgr),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// newUser creates a fresh identity with the given entitlement state and
// returns its ID plus a signed access token. plan == "" means no
// subscription row at all.
func newUser(t *testing.T, ts *testServer, plan domain.Plan, features ...domain.Feature) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	if plan != "" {
		testhelper.SeedSubscription(t, ts.Pool, userID, plan, features)
	}

	token, err := ts.jwt.SignToken(userID, 15*time.Minute)
	require.NoError(t, err)

	return userID, token
}

// restRequest sends a JSON request to the test server. An empty token sends
// no Authorization header. A nil body sends no payload.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewBuffer(raw)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, payload)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)

	return resp
}

// decodeBody reads and decodes the JSON response body into a map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NoError(t, resp.Body.Close())

	return body
}

// companionIDs extracts the id fields from a {"companions": [...]} payload.
func companionIDs(t *testing.T, body map[string]any) []string {
	t.Helper()

	list, ok := body["companions"].([]any)
	require.True(t, ok, "expected companions array in response")

	ids := make([]string, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		require.True(t, ok)
		id, ok := obj["id"].(string)
		require.True(t, ok)
		ids = append(ids, id)
	}

	return ids
}
