package http

import (
	"encoding/json"
	"net/http"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/service"

	"github.com/gorilla/mux"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// Save handles PUT /me/profile.
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var input service.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, domain.NewValidationError("invalid request body"))
		return
	}

	profile, err := h.profileSvc.SaveProfile(r.Context(), userID(r), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// Get handles GET /users/{id}/profile (public summary view).
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.profileSvc.GetProfileSummary(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
