package http

import (
	"errors"
	"net/http"
	"strings"

	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"
)

type BookHandler struct {
	repo usecase.BookRepository
}

func NewBookHandler(repo usecase.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

// pathParam extracts the single trailing segment after prefix. Crude
// path param extraction with net/http's ServeMux; the path arrives
// already URL-decoded, so author names with spaces work.
func pathParam(path, prefix string) (string, bool) {
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	rest := strings.TrimPrefix(path, prefix)
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.List(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Could not read book catalog")
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	JSON(w, http.StatusOK, books)
}

func (h *BookHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn, ok := pathParam(r.URL.Path, "/books/isbn/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	book, err := h.repo.GetByISBN(r.Context(), isbn)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "Book not found")
		default:
			JSONError(w, http.StatusInternalServerError, "Could not read book catalog")
		}
		return
	}
	JSON(w, http.StatusOK, book)
}

func (h *BookHandler) GetByAuthor(w http.ResponseWriter, r *http.Request) {
	author, ok := pathParam(r.URL.Path, "/books/author/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	books, err := h.repo.ListByAuthor(r.Context(), author)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Could not read book catalog")
		return
	}
	JSON(w, http.StatusOK, books)
}

func (h *BookHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	title, ok := pathParam(r.URL.Path, "/books/title/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	books, err := h.repo.SearchByTitle(r.Context(), title)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Could not read book catalog")
		return
	}
	JSON(w, http.StatusOK, books)
}

func (h *BookHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	isbn, ok := pathParam(r.URL.Path, "/books/review/")
	if !ok {
		http.NotFound(w, r)
		return
	}

	reviews, err := h.repo.GetReviews(r.Context(), isbn)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "Book not found")
		default:
			JSONError(w, http.StatusInternalServerError, "Could not read book catalog")
		}
		return
	}
	JSON(w, http.StatusOK, reviews)
}
