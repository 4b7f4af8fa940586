package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	gocache "github.com/patrickmn/go-cache"
	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/extract"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/storage"
)

// ExtractHandler accepts a multipart .docx upload (field "document")
// and returns the extracted quiz. The upload is archived in the blob
// store so the source document can be retrieved later; archiving
// failures do not fail the request.
// POST /api/quizzes/extract
func ExtractHandler(bs storage.BlobStore, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		f, hdr, err := r.FormFile("document")
		if err != nil {
			http.Error(w, "no file uploaded", http.StatusBadRequest)
			return
		}
		defer f.Close()

		if !strings.HasSuffix(strings.ToLower(hdr.Filename), ".docx") {
			http.Error(w, "only .docx files are supported", http.StatusBadRequest)
			return
		}

		data, err := io.ReadAll(f)
		if err != nil {
			http.Error(w, "reading upload: "+err.Error(), http.StatusBadRequest)
			return
		}

		result, err := extract.Extract(data)
		if err != nil {
			if errors.Is(err, extract.ErrDocumentParse) {
				http.Error(w, "could not read this document", http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, "failed to process document", http.StatusInternalServerError)
			return
		}

		key := "uploads/" + uuid.NewString() + ".docx"
		if _, err := bs.Put(key, bytes.NewReader(data)); err != nil {
			// The quiz is already extracted; losing the archive copy is
			// not worth failing the upload.
			key = ""
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"title":       result.Title,
			"questions":   result.Questions,
			"documentKey": key,
		})
	}
}

type shareRequest struct {
	Quiz quiz.Quiz `json:"quiz"`
}

// ShareHandler persists a quiz and mints its share id.
// POST /api/quizzes/share
func ShareHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if !quiz.Validate(req.Quiz) {
			http.Error(w, "invalid quiz data format", http.StatusBadRequest)
			return
		}

		rec := quiz.Record{
			Title:   req.Quiz.Title,
			Data:    req.Quiz,
			UserID:  auth.SubjectFromContext(r.Context()),
			ShareID: newShareID(),
		}
		saved, err := store.Save(r.Context(), rec)
		if err != nil {
			http.Error(w, "failed to save quiz", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"shareId": saved.ShareID,
			"quizId":  saved.ID,
		})
	}
}

// GetByShareHandler serves a shared quiz. Shared quizzes are immutable
// snapshots, so reads go through a TTL cache.
// GET /api/quizzes/{shareID}
func GetByShareHandler(store quiz.Store, cache *gocache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shareID := chi.URLParam(r, "shareID")

		if cached, found := cache.Get(shareID); found {
			writeJSON(w, cached)
			return
		}

		rec, err := store.GetByShareID(r.Context(), shareID)
		if errors.Is(err, quiz.ErrNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "failed to retrieve quiz", http.StatusInternalServerError)
			return
		}

		cache.SetDefault(shareID, rec)
		writeJSON(w, rec)
	}
}

// ListHandler returns all stored quizzes.
// GET /api/quizzes
func ListHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := store.List(r.Context())
		if err != nil {
			http.Error(w, "failed to retrieve quizzes", http.StatusInternalServerError)
			return
		}
		if recs == nil {
			recs = []quiz.Record{}
		}
		writeJSON(w, recs)
	}
}

type updateRequest struct {
	Title string    `json:"title"`
	Data  quiz.Quiz `json:"data"`
}

// UpdateHandler replaces a stored quiz's content (editing UI).
// PUT /api/quizzes/{id}
func UpdateHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		rec, err := store.Update(r.Context(), id, req.Title, req.Data)
		if errors.Is(err, quiz.ErrNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "failed to update quiz", http.StatusInternalServerError)
			return
		}
		writeJSON(w, rec)
	}
}

// DeleteHandler removes a stored quiz.
// DELETE /api/quizzes/{id}
func DeleteHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		if err := store.Delete(r.Context(), id); err != nil {
			if errors.Is(err, quiz.ErrNotFound) {
				http.Error(w, "quiz not found", http.StatusNotFound)
				return
			}
			http.Error(w, "failed to delete quiz", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type gradeRequest struct {
	Answers map[string]string `json:"answers"`
}

// GradeHandler scores submitted answers against a shared quiz.
// POST /api/quizzes/{shareID}/grade
func GradeHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shareID := chi.URLParam(r, "shareID")
		var req gradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		rec, err := store.GetByShareID(r.Context(), shareID)
		if errors.Is(err, quiz.ErrNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, "failed to retrieve quiz", http.StatusInternalServerError)
			return
		}
		writeJSON(w, quiz.Grade(rec.Data, req.Answers))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// newShareID mints a short, URL-safe share token.
func newShareID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}
