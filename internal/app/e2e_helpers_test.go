//go:build e2e

package app_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/projecthub-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/projecthub-backend/internal/app"
	"github.com/heartmarshall/projecthub-backend/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Redis  *miniredis.Miniredis
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:                "test-secret-at-least-32-chars-long!!",
			JWTIssuer:                "projecthub-e2e",
			AccessTokenTTL:           15 * time.Minute,
			RefreshTokenExpirationMs: 2592000000,
			PasswordHashCost:         4,
			LoginMaxAttempts:         3,
			LoginAttemptWindow:       15 * time.Minute,
		},
		Redis: config.RedisConfig{KeyPrefix: "e2e"},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{AuthPerMinute: 1000, CleanupInterval: time.Minute},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper) and an in-memory Redis.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	handler, cleanup := app.NewHandler(testConfig(), logger, pool, rdb)
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Redis:  mr,
	}
}

// restRequest sends a JSON request; token may be empty for anonymous calls.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	reqBody := bytes.NewReader(nil)
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeJSON reads and closes resp.Body.
func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

type session struct {
	Token        string
	RefreshToken string
	User         map[string]any
}

// requireSession asserts a 200 AuthResult and extracts it.
func requireSession(t *testing.T, resp *http.Response) session {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeJSON(t, resp)
	s := session{}
	s.Token, _ = body["token"].(string)
	s.RefreshToken, _ = body["refreshToken"].(string)
	s.User, _ = body["user"].(map[string]any)
	require.NotEmpty(t, s.Token)
	require.NotEmpty(t, s.RefreshToken)
	require.NotNil(t, s.User)
	return s
}

func registerCompany(t *testing.T, ts *testServer, company, domainName, email string) session {
	t.Helper()
	return requireSession(t, restRequest(t, ts, http.MethodPost, "/api/auth/register/company", "", map[string]any{
		"companyName": company,
		"domain":      domainName,
		"admin": map[string]string{
			"name":     "testadmin",
			"email":    email,
			"password": "password123",
		},
	}))
}

func countTokens(t *testing.T, ts *testServer, userID string) int {
	t.Helper()
	var n int
	err := ts.Pool.QueryRow(t.Context(), `SELECT count(*) FROM refresh_tokens WHERE user_id = $1`, userID).Scan(&n)
	require.NoError(t, err)
	return n
}
