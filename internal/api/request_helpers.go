package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/dax-daily/internal/api/shared"
	"github.com/phrazzld/dax-daily/internal/domain"
)

// getLearnerIDFromContext returns the learner placed in the context by
// the auth middleware.
func getLearnerIDFromContext(r *http.Request) (uuid.UUID, bool) {
	return shared.GetLearnerID(r.Context())
}

// getPathDay parses the {day} URL parameter.
func getPathDay(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "day")
	if raw == "" {
		return 0, domain.NewValidationError("day", "is required", domain.ErrValidation)
	}

	day, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError("day", "has invalid format", domain.ErrInvalidFormat)
	}
	if err := domain.ValidateDay(day); err != nil {
		return 0, err
	}
	return day, nil
}

// handleLearnerIDAndPathDay extracts both the learner and the day,
// writing an error response and returning false if either is missing.
func handleLearnerIDAndPathDay(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	learnerID, ok := getLearnerIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return uuid.Nil, 0, false
	}

	day, err := getPathDay(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, 0, false
	}

	return learnerID, day, true
}
