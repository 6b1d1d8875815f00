package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bookshelf/internal/auth"
	"bookshelf/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TestCatalog returns the fixture catalog used across the test suite.
// ISBN 9780143126560 is the book exercised by the end-to-end scenario.
func TestCatalog() []entity.Book {
	return []entity.Book{
		{ISBN: "9780143126560", Title: "The Alchemist", Author: "Paulo Coelho"},
		{ISBN: "9780062315007", Title: "Sapiens: A Brief History of Humankind", Author: "Yuval Noah Harari"},
		{ISBN: "9780451524935", Title: "1984", Author: "George Orwell"},
		{
			ISBN: "9780747532743", Title: "Harry Potter and the Philosopher's Stone", Author: "J. K. Rowling",
			Reviews: map[string]string{"reader1": "A classic."},
		},
	}
}

// WriteTestCatalog writes the fixture catalog into a temp dir and
// returns the file path.
func WriteTestCatalog(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "books.json")
	raw, err := json.MarshalIndent(TestCatalog(), "", "  ")
	if err != nil {
		t.Fatalf("encode fixture catalog: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture catalog: %v", err)
	}
	return path
}

// GenerateTestToken generates a valid JWT for testing.
func GenerateTestToken(secret, username string) string {
	token, _ := auth.GenerateToken(secret, username, time.Hour)
	return token
}

// GenerateExpiredToken generates an already-expired JWT for testing.
func GenerateExpiredToken(secret, username string) string {
	c := auth.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates an HTTP request with an optional JSON body.
func NewRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	bodyBytes, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestWithAuth creates an HTTP request carrying a Bearer token.
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse is a decoded HTTP response for assertions.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes the recorder into a RecordResponse. The
// body map is nil when the response was empty or not a JSON object.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
