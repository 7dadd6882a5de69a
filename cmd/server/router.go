package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/dax-daily/internal/api"
	apiMiddleware "github.com/phrazzld/dax-daily/internal/api/middleware"
	"github.com/phrazzld/dax-daily/internal/api/shared"
)

// setupRouter registers every route and the middleware chain.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	authHandler := api.NewAuthHandler(
		app.learnerService,
		app.jwtService,
		app.config.Auth.TokenLifetime(),
		app.logger,
	)
	curriculumHandler := api.NewCurriculumHandler(app.practiceService, app.catalog.Title())
	practiceHandler := api.NewPracticeHandler(app.practiceService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

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

	r.Get("/health", app.handleHealth)

	return r
}

// handleHealth reports whether the server can serve requests. With a
// database configured it also pings the database.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	if app.db != nil {
		if err := app.db.PingContext(r.Context()); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
			return
		}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, api.HealthResponse{Status: "ok"})
}
