// Command client exercises every endpoint of a running api server. The
// source it replaces demonstrated callbacks, promises, and async/await
// separately; here the one asynchronous form is a goroutine delivering
// on a result channel, and the concurrent section fans three lookups
// out at once.
//
// Environment: API_URL (default "http://localhost:8080"), plus the
// username/password pair registered for the review round trip.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

const (
	demoUsername = "testuser"
	demoPassword = "testpass"
	demoISBN     = "9780143126560"
)

type apiClient struct {
	base  string
	token string
	http  *http.Client
}

type apiResult struct {
	Status int
	Body   json.RawMessage
	Err    error
}

// do issues one request and reports on the returned channel, so callers
// can fan out requests and collect results when they need them.
func (c *apiClient) do(method, path string, body any) <-chan apiResult {
	results := make(chan apiResult, 1)
	go func() {
		defer close(results)

		var reader io.Reader
		if body != nil {
			raw, err := json.Marshal(body)
			if err != nil {
				results <- apiResult{Err: err}
				return
			}
			reader = bytes.NewReader(raw)
		}

		req, err := http.NewRequest(method, c.base+path, reader)
		if err != nil {
			results <- apiResult{Err: err}
			return
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			results <- apiResult{Err: err}
			return
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			results <- apiResult{Err: err}
			return
		}
		results <- apiResult{Status: resp.StatusCode, Body: raw}
	}()
	return results
}

func show(label string, r apiResult) {
	fmt.Printf("--- %s ---\n", label)
	if r.Err != nil {
		fmt.Printf("error: %v\n", r.Err)
		return
	}
	fmt.Printf("%d %s\n", r.Status, bytes.TrimSpace(r.Body))
}

func main() {
	base := os.Getenv("API_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	client := &apiClient{base: base, http: &http.Client{Timeout: 10 * time.Second}}

	// public reads
	show("Get All Books", <-client.do(http.MethodGet, "/books", nil))
	show("Get Book By ISBN", <-client.do(http.MethodGet, "/books/isbn/"+demoISBN, nil))
	show("Get Books By Author", <-client.do(http.MethodGet, "/books/author/"+url.PathEscape("Paulo Coelho"), nil))
	show("Get Books By Title", <-client.do(http.MethodGet, "/books/title/sapiens", nil))
	show("Get Book Reviews", <-client.do(http.MethodGet, "/books/review/"+demoISBN, nil))

	// register + login; registration may 409 on a rerun, login still works
	credentials := map[string]string{"username": demoUsername, "password": demoPassword}
	show("Register", <-client.do(http.MethodPost, "/register", credentials))

	loginResult := <-client.do(http.MethodPost, "/login", credentials)
	show("Login", loginResult)
	if loginResult.Err != nil || loginResult.Status != http.StatusOK {
		log.Fatal("login failed, cannot continue with review calls")
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(loginResult.Body, &login); err != nil || login.Token == "" {
		log.Fatalf("login response missing token: %v", err)
	}
	client.token = login.Token

	// authenticated review round trip
	show("Add/Modify Review", <-client.do(http.MethodPut, "/books/review/"+demoISBN, map[string]string{"review": "Amazing book!"}))
	show("Delete Review", <-client.do(http.MethodDelete, "/books/review/"+demoISBN, nil))

	// concurrent lookups, collected after all three are in flight
	byISBN := client.do(http.MethodGet, "/books/isbn/"+demoISBN, nil)
	byAuthor := client.do(http.MethodGet, "/books/author/"+url.PathEscape("Paulo Coelho"), nil)
	byTitle := client.do(http.MethodGet, "/books/title/sapiens", nil)
	show("Concurrent: By ISBN", <-byISBN)
	show("Concurrent: By Author", <-byAuthor)
	show("Concurrent: By Title", <-byTitle)
}
