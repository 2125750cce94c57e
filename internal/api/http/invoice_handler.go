package http

import (
	"net/http"

	"rentmate-backend/internal/service"

	"github.com/gorilla/mux"
)

type InvoiceHandler struct {
	invoiceSvc service.InvoiceService
	rentalSvc  service.RentalService
}

func NewInvoiceHandler(invoiceSvc service.InvoiceService, rentalSvc service.RentalService) *InvoiceHandler {
	return &InvoiceHandler{invoiceSvc: invoiceSvc, rentalSvc: rentalSvc}
}

// Get handles GET /rentals/{id}/invoice. Only a party to the rental may
// fetch its invoice, so access is checked through the rental service first.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	rentalID := mux.Vars(r)["id"]

	if _, err := h.rentalSvc.GetRental(r.Context(), userID(r), rentalID); err != nil {
		respondError(w, err)
		return
	}

	invoice, err := h.invoiceSvc.GenerateInvoice(r.Context(), rentalID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, invoice)
}
