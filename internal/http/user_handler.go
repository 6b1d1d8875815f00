package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bookshelf/internal/auth"
	"bookshelf/internal/entity"
	"bookshelf/internal/usecase"
)

type UserHandler struct {
	repo   usecase.UserRepository
	secret string
}

func NewUserHandler(repo usecase.UserRepository, secret string) *UserHandler {
	return &UserHandler{repo: repo, secret: secret}
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Username and password required")
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if len(ValidateStruct(req)) > 0 {
		JSONError(w, http.StatusBadRequest, "Username and password required")
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	newUser := &entity.User{
		Username: req.Username,
		Password: hashedPassword,
	}
	if err := h.repo.Create(r.Context(), newUser); err != nil {
		switch {
		case errors.Is(err, usecase.ErrConflict):
			JSONError(w, http.StatusConflict, "User exists")
		default:
			JSONError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	JSON(w, http.StatusOK, map[string]string{
		"message": "User registered successfully",
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Username and password required")
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	user, err := h.repo.GetByUsername(r.Context(), req.Username)
	if err != nil || !auth.VerifyPassword(user.Password, req.Password) {
		JSONError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.secret, user.Username, auth.TokenTTL)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	JSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}
