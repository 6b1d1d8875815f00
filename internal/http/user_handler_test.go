package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshelf/internal/auth"
	"bookshelf/internal/store"
	"bookshelf/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func registerTestUser(t *testing.T, handler *UserHandler, username, password string) {
	t.Helper()
	w := httptest.NewRecorder()
	handler.Register(w, testutil.NewRequest(http.MethodPost, "/register", map[string]string{
		"username": username,
		"password": password,
	}))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "valid registration",
			body:           map[string]string{"username": "testuser", "password": "testpass"},
			expectedStatus: http.StatusOK,
			expectedBody:   "User registered successfully",
		},
		{
			name:           "missing username",
			body:           map[string]string{"password": "testpass"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Username and password required",
		},
		{
			name:           "missing password",
			body:           map[string]string{"username": "testuser"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Username and password required",
		},
		{
			name:           "empty body",
			body:           map[string]string{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Username and password required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewUserHandler(store.NewUserMem(), testSecret)

			w := httptest.NewRecorder()
			handler.Register(w, testutil.NewRequest(http.MethodPost, "/register", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestUserHandler_Register_Duplicate(t *testing.T) {
	handler := NewUserHandler(store.NewUserMem(), testSecret)
	registerTestUser(t, handler, "testuser", "testpass")

	w := httptest.NewRecorder()
	handler.Register(w, testutil.NewRequest(http.MethodPost, "/register", map[string]string{
		"username": "testuser",
		"password": "otherpass",
	}))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "User exists")
}

func TestUserHandler_Login(t *testing.T) {
	handler := NewUserHandler(store.NewUserMem(), testSecret)
	registerTestUser(t, handler, "testuser", "testpass")

	w := httptest.NewRecorder()
	handler.Login(w, testutil.NewRequest(http.MethodPost, "/login", map[string]string{
		"username": "testuser",
		"password": "testpass",
	}))

	require.Equal(t, http.StatusOK, w.Code)

	resp := testutil.RecordHTTPResponse(w)
	token, _ := resp.Body["token"].(string)
	require.NotEmpty(t, token)

	claims, err := auth.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "testuser", claims.Username)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
	}{
		{"wrong password", map[string]string{"username": "testuser", "password": "wrongpass"}},
		{"unknown user", map[string]string{"username": "nobody", "password": "testpass"}},
		{"empty credentials", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewUserHandler(store.NewUserMem(), testSecret)
			registerTestUser(t, handler, "testuser", "testpass")

			w := httptest.NewRecorder()
			handler.Login(w, testutil.NewRequest(http.MethodPost, "/login", tt.body))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "Invalid credentials")
		})
	}
}
