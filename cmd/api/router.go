package main

import (
	"net/http"

	apphttp "bookshelf/internal/http"
	"bookshelf/internal/httpx"
	"bookshelf/internal/usecase"
)

type routerConfig struct {
	jwtSecret      string
	rateLimitRPS   float64
	rateLimitBurst int
	maxBodyBytes   int64
	allowedOrigins []string
}

// newRouter wires stores into handlers and builds the full middleware
// chain. Factored out of main so the end-to-end tests can stand up the
// exact production handler.
func newRouter(books usecase.BookRepository, users usecase.UserRepository, cfg routerConfig) http.Handler {
	bookHandler := apphttp.NewBookHandler(books)
	reviewHandler := apphttp.NewReviewHandler(books)
	userHandler := apphttp.NewUserHandler(users, cfg.jwtSecret)

	authRequired := apphttp.AuthMiddleware(cfg.jwtSecret)

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/books", bookHandler.List)
	mux.HandleFunc("/books/isbn/", bookHandler.GetByISBN)
	mux.HandleFunc("/books/author/", bookHandler.GetByAuthor)
	mux.HandleFunc("/books/title/", bookHandler.GetByTitle)

	// GET is public, PUT/DELETE go through the token gate.
	mux.Handle("/books/review/", apphttp.MethodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(bookHandler.GetReviews),
		http.MethodPut:    authRequired(http.HandlerFunc(reviewHandler.Upsert)),
		http.MethodDelete: authRequired(http.HandlerFunc(reviewHandler.Delete)),
	}))

	mux.Handle("/register", apphttp.MethodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(userHandler.Register),
	}))
	mux.Handle("/login", apphttp.MethodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(userHandler.Login),
	}))

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.rateLimitRPS, cfg.rateLimitBurst)

	return httpx.Chain(mux,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.allowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.maxBodyBytes),
		rateLimiter.Middleware,
	)
}
