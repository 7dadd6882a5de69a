package api

import (
	"net/http"

	"github.com/phrazzld/dax-daily/internal/api/shared"
	"github.com/phrazzld/dax-daily/internal/domain"
	"github.com/phrazzld/dax-daily/internal/service"
)

// PracticeHandler serves the authenticated submission and progress
// endpoints.
type PracticeHandler struct {
	practice service.PracticeService
}

// NewPracticeHandler creates a PracticeHandler.
func NewPracticeHandler(practice service.PracticeService) *PracticeHandler {
	if practice == nil {
		panic("practice cannot be nil")
	}
	return &PracticeHandler{practice: practice}
}

// SubmitAnswer handles POST /api/days/{day}/submissions. The response is
// 200 whether or not the answer passes; the verdict says which.
func (h *PracticeHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	learnerID, day, ok := handleLearnerIDAndPathDay(w, r)
	if !ok {
		return
	}

	var req SubmissionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleValidationError(w, r, err)
		return
	}

	result, err := h.practice.SubmitAnswer(r.Context(), learnerID, day, req.Code)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GetProgress handles GET /api/progress.
func (h *PracticeHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	learnerID, ok := getLearnerIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	summary, err := h.practice.GetProgress(r.Context(), learnerID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}
