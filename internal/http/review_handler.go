package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookshelf/internal/usecase"
)

type ReviewHandler struct {
	repo usecase.BookRepository
}

func NewReviewHandler(repo usecase.BookRepository) *ReviewHandler {
	return &ReviewHandler{repo: repo}
}

type upsertReviewRequest struct {
	Review string `json:"review" validate:"required"`
}

func (h *ReviewHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	isbn, ok := pathParam(r.URL.Path, "/books/review/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	username := UsernameFrom(r)
	if username == "" {
		JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req upsertReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(ValidateStruct(req)) > 0 {
		JSONError(w, http.StatusBadRequest, "Review text required")
		return
	}

	reviews, err := h.repo.UpsertReview(r.Context(), isbn, username, req.Review)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalid):
			JSONError(w, http.StatusBadRequest, "Review text required")
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "Book not found")
		default:
			JSONError(w, http.StatusInternalServerError, "Could not update book catalog")
		}
		return
	}

	JSON(w, http.StatusOK, map[string]any{
		"message": "Review added/updated",
		"reviews": reviews,
	})
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	isbn, ok := pathParam(r.URL.Path, "/books/review/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	username := UsernameFrom(r)
	if username == "" {
		JSONError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	reviews, err := h.repo.DeleteReview(r.Context(), isbn, username)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrReviewNotFound):
			JSONError(w, http.StatusNotFound, "Your review not found")
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "Book not found")
		default:
			JSONError(w, http.StatusInternalServerError, "Could not update book catalog")
		}
		return
	}

	JSON(w, http.StatusOK, map[string]any{
		"message": "Review deleted",
		"reviews": reviews,
	})
}
