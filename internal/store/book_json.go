package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"
)

// BookJSON implements usecase.BookRepository over a single JSON document
// holding the whole catalog. Every read re-parses the file; every
// mutation rewrites it wholesale. Mutations hold mu across the
// read-modify-write sequence so concurrent writers cannot drop each
// other's updates, and the rewrite goes through a temp file + rename so
// readers never observe a partial document.
type BookJSON struct {
	path string
	mu   sync.Mutex
}

func NewBookJSON(path string) *BookJSON {
	return &BookJSON{path: path}
}

func (s *BookJSON) load() ([]entity.Book, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}
	var books []entity.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", s.path, err)
	}
	return books, nil
}

func (s *BookJSON) save(books []entity.Book) error {
	raw, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}

func indexByISBN(books []entity.Book, isbn string) int {
	for i := range books {
		if books[i].ISBN == isbn {
			return i
		}
	}
	return -1
}

func (s *BookJSON) List(ctx context.Context) ([]entity.Book, error) {
	return s.load()
}

func (s *BookJSON) GetByISBN(ctx context.Context, isbn string) (*entity.Book, error) {
	books, err := s.load()
	if err != nil {
		return nil, err
	}
	i := indexByISBN(books, isbn)
	if i < 0 {
		return nil, usecase.ErrNotFound
	}
	return &books[i], nil
}

func (s *BookJSON) ListByAuthor(ctx context.Context, author string) ([]entity.Book, error) {
	books, err := s.load()
	if err != nil {
		return nil, err
	}
	matched := []entity.Book{}
	for _, b := range books {
		if strings.EqualFold(b.Author, author) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (s *BookJSON) SearchByTitle(ctx context.Context, title string) ([]entity.Book, error) {
	books, err := s.load()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(title)
	matched := []entity.Book{}
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (s *BookJSON) GetReviews(ctx context.Context, isbn string) (map[string]string, error) {
	book, err := s.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	if book.Reviews == nil {
		return map[string]string{}, nil
	}
	return book.Reviews, nil
}

func (s *BookJSON) UpsertReview(ctx context.Context, isbn, username, review string) (map[string]string, error) {
	if strings.TrimSpace(review) == "" {
		return nil, usecase.ErrInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.load()
	if err != nil {
		return nil, err
	}
	i := indexByISBN(books, isbn)
	if i < 0 {
		return nil, usecase.ErrNotFound
	}
	if books[i].Reviews == nil {
		books[i].Reviews = make(map[string]string)
	}
	books[i].Reviews[username] = review
	if err := s.save(books); err != nil {
		return nil, err
	}
	return books[i].Reviews, nil
}

func (s *BookJSON) DeleteReview(ctx context.Context, isbn, username string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.load()
	if err != nil {
		return nil, err
	}
	i := indexByISBN(books, isbn)
	if i < 0 {
		return nil, usecase.ErrNotFound
	}
	if _, ok := books[i].Reviews[username]; !ok {
		return nil, usecase.ErrReviewNotFound
	}
	delete(books[i].Reviews, username)
	if err := s.save(books); err != nil {
		return nil, err
	}
	if books[i].Reviews == nil {
		return map[string]string{}, nil
	}
	return books[i].Reviews, nil
}
