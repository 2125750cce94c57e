package http

import (
	"net/http"

	"rentmate-backend/internal/security"
	"rentmate-backend/internal/service"
	"rentmate-backend/internal/storage"

	"github.com/gorilla/mux"
)

// Handlers bundles the collaborators the router wires together.
type Handlers struct {
	ItemSvc    service.ItemService
	RentalSvc  service.RentalService
	RatingSvc  service.RatingService
	InvoiceSvc service.InvoiceService
	ProfileSvc service.ProfileService
	Blobs      storage.BlobStorage
	Validator  security.TokenValidator
}

// NewRouter builds the full HTTP API. Browsing listings, fetching images
// and reading a user's rating are public; everything else requires a
// bearer token.
func NewRouter(h Handlers) *mux.Router {
	items := NewItemHandler(h.ItemSvc)
	rentals := NewRentalHandler(h.RentalSvc)
	ratings := NewRatingHandler(h.RatingSvc)
	invoices := NewInvoiceHandler(h.InvoiceSvc, h.RentalSvc)
	profiles := NewProfileHandler(h.ProfileSvc)
	blobs := NewBlobHandler(h.Blobs)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api.HandleFunc("/items", items.List).Methods(http.MethodGet)
	api.HandleFunc("/items/{id}", items.Get).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/rating", ratings.Average).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/profile", profiles.Get).Methods(http.MethodGet)
	api.HandleFunc("/blobs/{key:.+}", blobs.Download).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(h.Validator))

	authed.HandleFunc("/items", items.Create).Methods(http.MethodPost)
	authed.HandleFunc("/my/items", items.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/items/{id}", items.Delete).Methods(http.MethodDelete)

	authed.HandleFunc("/rentals", rentals.Create).Methods(http.MethodPost)
	authed.HandleFunc("/rentals", rentals.ListRentals).Methods(http.MethodGet)
	authed.HandleFunc("/lendings", rentals.ListLendings).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/{id}", rentals.Get).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/{id}/approve", rentals.Approve).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}/decline", rentals.Decline).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}/complete", rentals.Complete).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}/cancel", rentals.Cancel).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}/invoice", invoices.Get).Methods(http.MethodGet)

	authed.HandleFunc("/ratings", ratings.Record).Methods(http.MethodPost)
	authed.HandleFunc("/me/profile", profiles.Save).Methods(http.MethodPut)

	return r
}
