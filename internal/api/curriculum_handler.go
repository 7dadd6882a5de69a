package api

import (
	"net/http"

	"github.com/phrazzld/dax-daily/internal/api/shared"
	"github.com/phrazzld/dax-daily/internal/domain"
	"github.com/phrazzld/dax-daily/internal/service"
)

// CurriculumHandler serves the public course content.
type CurriculumHandler struct {
	practice service.PracticeService
	title    string
}

// NewCurriculumHandler creates a CurriculumHandler. title is the course
// title shown in the listing.
func NewCurriculumHandler(practice service.PracticeService, title string) *CurriculumHandler {
	if practice == nil {
		panic("practice cannot be nil")
	}
	return &CurriculumHandler{practice: practice, title: title}
}

// ListCurriculum handles GET /api/curriculum.
func (h *CurriculumHandler) ListCurriculum(w http.ResponseWriter, r *http.Request) {
	resp := CurriculumResponse{
		Title:     h.title,
		TotalDays: len(h.practice.ListDays(r.Context())),
		Tiers:     make([]TierSection, 0, len(domain.Tiers)),
	}
	for _, tier := range domain.Tiers {
		days := h.practice.ListDaysByTier(r.Context(), tier)
		if len(days) == 0 {
			continue
		}
		resp.Tiers = append(resp.Tiers, TierSection{
			Tier:  tier,
			Label: tier.Label(),
			Days:  days,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetLesson handles GET /api/days/{day}.
func (h *CurriculumHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	day, err := getPathDay(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	lesson, err := h.practice.GetLesson(r.Context(), day)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, lesson)
}

// GetSolution handles GET /api/days/{day}/solution.
func (h *CurriculumHandler) GetSolution(w http.ResponseWriter, r *http.Request) {
	day, err := getPathDay(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	solution, err := h.practice.GetSolution(r.Context(), day)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, solution)
}
