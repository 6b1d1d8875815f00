package usecase

import (
	"context"
	"errors"

	"bookshelf/internal/entity"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrReviewNotFound = errors.New("review not found")
	ErrConflict       = errors.New("already exists")
	ErrInvalid        = errors.New("invalid input")
)

// BookRepository is the read/write surface over the book catalog.
// Lookups are exact on ISBN, case-insensitive exact on author, and
// case-insensitive substring on title.
type BookRepository interface {
	List(ctx context.Context) ([]entity.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*entity.Book, error)
	ListByAuthor(ctx context.Context, author string) ([]entity.Book, error)
	SearchByTitle(ctx context.Context, title string) ([]entity.Book, error)

	// GetReviews returns the review map of the matched book, empty but
	// non-nil when the book has no reviews yet.
	GetReviews(ctx context.Context, isbn string) (map[string]string, error)

	// UpsertReview sets the caller's review on the matched book and
	// returns the book's full review map after the write.
	UpsertReview(ctx context.Context, isbn, username, review string) (map[string]string, error)

	// DeleteReview removes the caller's review. ErrReviewNotFound is
	// returned when the book exists but carries no review by username.
	DeleteReview(ctx context.Context, isbn, username string) (map[string]string, error)
}
