package http

import (
	"encoding/json"
	"net/http"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/service"

	"github.com/gorilla/mux"
)

type RatingHandler struct {
	ratingSvc service.RatingService
}

func NewRatingHandler(ratingSvc service.RatingService) *RatingHandler {
	return &RatingHandler{ratingSvc: ratingSvc}
}

type recordRatingRequest struct {
	RatedUserID string `json:"rated_user_id"`
	Rating      int32  `json:"rating"`
	Comment     string `json:"comment"`
	RentalID    string `json:"rental_id"`
}

type averageRatingResponse struct {
	UserID string   `json:"user_id"`
	Rating *float64 `json:"rating"` // null means unrated
}

// Record handles POST /ratings.
func (h *RatingHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.NewValidationError("invalid request body"))
		return
	}

	rating, err := h.ratingSvc.RecordRating(r.Context(), userID(r), req.RatedUserID, req.Rating, req.Comment, req.RentalID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rating)
}

// Average handles GET /users/{id}/rating.
func (h *RatingHandler) Average(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	avg, err := h.ratingSvc.GetAverageRating(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, averageRatingResponse{UserID: id, Rating: avg})
}
