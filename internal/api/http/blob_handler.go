package http

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"rentmate-backend/internal/logger"
	"rentmate-backend/internal/storage"

	"github.com/gorilla/mux"
)

type BlobHandler struct {
	store storage.BlobStorage
}

func NewBlobHandler(store storage.BlobStorage) *BlobHandler {
	return &BlobHandler{store: store}
}

// Download handles GET /blobs/{key:.*} and streams a stored image.
func (h *BlobHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	rc, err := h.store.Open(key)
	if err != nil {
		if os.IsNotExist(err) {
			http.NotFound(w, r)
			return
		}
		respondError(w, err)
		return
	}
	defer rc.Close()

	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	if _, err := io.Copy(w, rc); err != nil {
		logger.Error("failed to stream blob", "key", key, "error", err)
	}
}
