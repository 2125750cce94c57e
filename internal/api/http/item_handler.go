package http

import (
	"net/http"
	"strconv"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/service"

	"github.com/gorilla/mux"
)

// maxItemFormSize bounds a multipart listing submission (fields + images).
const maxItemFormSize = 32 << 20

type ItemHandler struct {
	itemSvc service.ItemService
}

func NewItemHandler(itemSvc service.ItemService) *ItemHandler {
	return &ItemHandler{itemSvc: itemSvc}
}

// Create handles POST /items. The listing arrives as a multipart form with
// one or more "images" parts.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxItemFormSize); err != nil {
		respondError(w, domain.NewValidationError("invalid multipart form: %v", err))
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		respondError(w, domain.NewValidationError("price must be a number"))
		return
	}

	priceUnit := domain.PriceUnit(r.FormValue("price_unit"))
	if priceUnit == "" {
		priceUnit = domain.PriceUnitDay
	}

	input := service.ItemInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		PriceUnit:   priceUnit,
		Category:    r.FormValue("category"),
		Condition:   r.FormValue("condition"),
		Location:    r.FormValue("location"),
	}

	var images []service.ImageUpload
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			f, err := header.Open()
			if err != nil {
				respondError(w, domain.NewValidationError("unreadable image %q", header.Filename))
				return
			}
			defer f.Close()
			images = append(images, service.ImageUpload{
				FileName:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Reader:      f,
			})
		}
	}

	item, err := h.itemSvc.CreateItem(r.Context(), userID(r), input, images)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

// List handles GET /items (public browsing).
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemSvc.ListItems(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if items == nil {
		items = []domain.ItemWithImages{}
	}
	respondJSON(w, http.StatusOK, items)
}

// ListMine handles GET /my/items.
func (h *ItemHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemSvc.ListMyItems(r.Context(), userID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	if items == nil {
		items = []domain.ItemWithImages{}
	}
	respondJSON(w, http.StatusOK, items)
}

// Get handles GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.itemSvc.GetItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.itemSvc.DeleteItem(r.Context(), userID(r), mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
