package http

import (
	"encoding/json"
	"net/http"
	"time"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/service"

	"github.com/gorilla/mux"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	ItemID    string `json:"item_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type declineRentalRequest struct {
	Reason string `json:"reason"`
}

// rentalView is a rental plus the owner-response countdown for pending ones.
type rentalView struct {
	domain.Rental
	Countdown *domain.Countdown `json:"countdown,omitempty"`
}

func viewOf(rental *domain.Rental) rentalView {
	v := rentalView{Rental: *rental}
	if rental.Status == domain.RentalStatusPending {
		cd := domain.ResponseCountdown(rental.CreatedAt, time.Now().UTC())
		v.Countdown = &cd
	}
	return v
}

// Create handles POST /rentals.
func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.NewValidationError("invalid request body"))
		return
	}

	rental, err := h.rentalSvc.CreateRentalRequest(r.Context(), userID(r), req.ItemID, req.StartDate, req.EndDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, viewOf(rental))
}

// Approve handles POST /rentals/{id}/approve.
func (h *RentalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.ApproveRentalRequest(r.Context(), userID(r), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(rental))
}

// Decline handles POST /rentals/{id}/decline.
func (h *RentalHandler) Decline(w http.ResponseWriter, r *http.Request) {
	var req declineRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.NewValidationError("invalid request body"))
		return
	}

	rental, err := h.rentalSvc.DeclineRentalRequest(r.Context(), userID(r), mux.Vars(r)["id"], req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(rental))
}

// Complete handles POST /rentals/{id}/complete.
func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.CompleteRental(r.Context(), userID(r), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(rental))
}

// Cancel handles POST /rentals/{id}/cancel.
func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.CancelRental(r.Context(), userID(r), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(rental))
}

// Get handles GET /rentals/{id}.
func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.GetRental(r.Context(), userID(r), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, viewOf(rental))
}

// ListRentals handles GET /rentals (requests made by the caller).
func (h *RentalHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	details, err := h.rentalSvc.ListRentals(r.Context(), userID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, detailViews(details))
}

// ListLendings handles GET /lendings (requests against the caller's items).
func (h *RentalHandler) ListLendings(w http.ResponseWriter, r *http.Request) {
	details, err := h.rentalSvc.ListLendings(r.Context(), userID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, detailViews(details))
}

type rentalDetailView struct {
	domain.RentalDetail
	Countdown *domain.Countdown `json:"countdown,omitempty"`
}

func detailViews(details []domain.RentalDetail) []rentalDetailView {
	views := make([]rentalDetailView, 0, len(details))
	now := time.Now().UTC()
	for _, d := range details {
		v := rentalDetailView{RentalDetail: d}
		if d.Rental.Status == domain.RentalStatusPending {
			cd := domain.ResponseCountdown(d.Rental.CreatedAt, now)
			v.Countdown = &cd
		}
		views = append(views, v)
	}
	return views
}
