// Command api runs the book review service.
//
// Environment:
//
//	APP_ADDR    listen address (default ":8080")
//	JWT_SECRET  token signing secret (default "secret123", dev only)
//	BOOKS_PATH  path to the catalog document (default "data/books.json")
//	CORS_ORIGINS comma-separated list of allowed origins (default none)
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"bookshelf/internal/store"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "secret123"

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	booksPath := getEnv("BOOKS_PATH", "data/books.json")
	jwtSecret := getEnv("JWT_SECRET", defaultJWTSecret)
	if jwtSecret == defaultJWTSecret {
		log.Println("JWT_SECRET not set, using the development default")
	}

	bookRepository := store.NewBookJSON(booksPath)
	if _, err := bookRepository.List(context.Background()); err != nil {
		log.Fatalf("cannot read book catalog: %v", err)
	}
	log.Printf("book catalog OK at %s", booksPath)

	userRepository := store.NewUserMem()

	router := newRouter(bookRepository, userRepository, routerConfig{
		jwtSecret:      jwtSecret,
		rateLimitRPS:   50,
		rateLimitBurst: 100,
		maxBodyBytes:   1 << 20,
		allowedOrigins: splitEnvList(os.Getenv("CORS_ORIGINS")),
	})

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitEnvList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
