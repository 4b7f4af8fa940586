package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/quizforge/quizforge/internal/storage"
)

// MountDocuments serves the archived source documents written by the
// extract endpoint.
func MountDocuments(r chi.Router, bs storage.BlobStore) {
	// GET /documents/* -> the blob at whatever follows /documents/
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		if key == "" || strings.Contains(key, "..") {
			http.Error(w, "bad key", http.StatusBadRequest)
			return
		}
		rc, err := bs.Get(key)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		_, _ = io.Copy(w, rc)
	})
}
