package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/dax-daily/internal/api/middleware"
	"github.com/phrazzld/dax-daily/internal/config"
	"github.com/phrazzld/dax-daily/internal/curriculum"
	"github.com/phrazzld/dax-daily/internal/domain/validation"
	"github.com/phrazzld/dax-daily/internal/service"
	"github.com/phrazzld/dax-daily/internal/service/auth"
	"github.com/phrazzld/dax-daily/internal/store/memory"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret   = "test-secret-that-is-at-least-32-characters"
	testPassword = "correct horse battery"
)

type testEnv struct {
	router     http.Handler
	catalog    *curriculum.Catalog
	jwtService auth.JWTService
	learners   service.LearnerService
}

// newTestEnv wires the handlers over in-memory stores and the embedded
// curriculum, routed the same way as the server.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	catalog, err := curriculum.Default()
	require.NoError(t, err)

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:                   testSecret,
		BCryptCost:                  bcrypt.MinCost,
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 120,
	})
	require.NoError(t, err)

	learners := service.NewLearnerService(
		memory.NewLearnerStore(bcrypt.MinCost, nil),
		auth.NewBcryptVerifier(),
		nil,
	)
	practice := service.NewPracticeService(catalog, validation.NewEngine(), memory.NewProgressStore(), nil)

	authHandler := NewAuthHandler(learners, jwtService, time.Hour, nil)
	curriculumHandler := NewCurriculumHandler(practice, catalog.Title())
	practiceHandler := NewPracticeHandler(practice)
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(nil))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)
		r.Get("/curriculum", curriculumHandler.ListCurriculum)
		r.Get("/days/{day}", curriculumHandler.GetLesson)
		r.Get("/days/{day}/solution", curriculumHandler.GetSolution)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/days/{day}/submissions", practiceHandler.SubmitAnswer)
			r.Get("/progress", practiceHandler.GetProgress)
		})
	})

	return &testEnv{
		router:     r,
		catalog:    catalog,
		jwtService: jwtService,
		learners:   learners,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// register creates a learner and returns its auth response.
func (e *testEnv) register(t *testing.T, email string) AuthResponse {
	t.Helper()

	rr := e.do(t, http.MethodPost, "/api/auth/register", RegisterRequest{Email: email, Password: testPassword}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
