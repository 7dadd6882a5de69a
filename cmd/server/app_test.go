package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/phrazzld/dax-daily/internal/api"
	"github.com/phrazzld/dax-daily/internal/config"
	"github.com/phrazzld/dax-daily/internal/platform/logger"
	"github.com/phrazzld/dax-daily/internal/service"
	"github.com/phrazzld/dax-daily/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "debug",
			ShutdownTimeoutSeconds: 5,
		},
		Auth: config.AuthConfig{
			JWTSecret:                   "test-secret-that-is-at-least-32-characters",
			BCryptCost:                  4,
			TokenLifetimeMinutes:        60,
			RefreshTokenLifetimeMinutes: 120,
		},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *application {
	t.Helper()

	_, log := logger.NewTestLogger(t)
	app, err := newApplication(context.Background(), cfg, log)
	require.NoError(t, err)
	t.Cleanup(app.cleanup)
	return app
}

func TestNewApplication_InMemory(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, testConfig())

	assert.Nil(t, app.db)
	assert.IsType(t, &memory.LearnerStore{}, app.learnerStore)
	assert.IsType(t, &memory.ProgressStore{}, app.progressStore)
	assert.Equal(t, 30, app.catalog.TotalDays())
	assert.NotNil(t, app.practiceService)
	assert.NotNil(t, app.learnerService)
}

func TestNewApplication_CurriculumOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	catalog := `
version: "2"
title: Tiny Course
days:
  - day: 1
    tier: foundation
    title: Sums
challenges:
  - day: 1
    tier: foundation
    title: Sums
    solution: Total = SUM(Sales[Amount])
    validation_rules:
      - type: contains
        value: SUM
`
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o600))

	cfg := testConfig()
	cfg.Curriculum.Path = path
	app := newTestApp(t, cfg)

	assert.Equal(t, "Tiny Course", app.catalog.Title())
	assert.Equal(t, 1, app.catalog.TotalDays())
}

func TestNewApplication_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing curriculum file", func(t *testing.T) {
		cfg := testConfig()
		cfg.Curriculum.Path = filepath.Join(t.TempDir(), "missing.yaml")
		_, err := newApplication(context.Background(), cfg, nil)
		assert.ErrorContains(t, err, "failed to load curriculum")
	})

	t.Run("short jwt secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.Auth.JWTSecret = "short"
		_, err := newApplication(context.Background(), cfg, nil)
		assert.ErrorContains(t, err, "failed to initialize JWT service")
	})
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	router := newTestApp(t, testConfig()).setupRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestRouter_LearnerJourney(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, testConfig())
	server := httptest.NewServer(app.setupRouter())
	t.Cleanup(server.Close)

	call := func(method, path string, body any, token string) *http.Response {
		t.Helper()
		var reader io.Reader
		if body != nil {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(b)
		}
		req, err := http.NewRequest(method, server.URL+path, reader)
		require.NoError(t, err)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := server.Client().Do(req)
		require.NoError(t, err)
		t.Cleanup(func() { _ = resp.Body.Close() })
		return resp
	}

	resp := call(http.MethodPost, "/api/auth/register",
		api.RegisterRequest{Email: "ada@example.com", Password: "correct horse battery"}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var auth api.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&auth))

	resp = call(http.MethodGet, "/api/days/5", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(http.MethodGet, "/api/days/5/solution", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var solution service.Solution
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&solution))

	resp = call(http.MethodPost, "/api/days/5/submissions", api.SubmissionRequest{Code: solution.Solution}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = call(http.MethodPost, "/api/days/5/submissions",
		api.SubmissionRequest{Code: solution.Solution}, auth.AccessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result service.SubmissionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Pass)
	assert.True(t, result.Recorded)

	resp = call(http.MethodGet, "/api/progress", nil, auth.AccessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var progress struct {
		CompletedDays []int `json:"completed_days"`
		Percent       int   `json:"percent"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&progress))
	assert.Equal(t, []int{5}, progress.CompletedDays)
	assert.Equal(t, 3, progress.Percent)
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	opts, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Empty(t, opts.migrate)

	opts, err = parseFlags([]string{"-migrate", "status"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "status", opts.migrate)

	_, err = parseFlags([]string{"-bogus"}, io.Discard)
	assert.Error(t, err)
}

func TestRunMigrations_RequiresDatabase(t *testing.T) {
	t.Parallel()

	err := runMigrations(context.Background(), testConfig(), "up", nil)
	assert.ErrorContains(t, err, "DAXDAILY_DATABASE_URL")
}
