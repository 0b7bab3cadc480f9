package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"gotodo/internal/application/auth"
	"gotodo/internal/domain/user"
)

type AuthHandler struct {
	service       auth.Service
	secureCookies bool
}

func NewAuthHandler(service auth.Service, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		service:       service,
		secureCookies: secureCookies,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		SendValidationError(w, "Email and password are required")
		return
	}

	newUser, token, err := h.service.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailExists):
			SendError(w, "Email already exists", http.StatusConflict)
		case errors.Is(err, user.ErrInvalidEmail):
			SendValidationError(w, "Invalid email address")
		case errors.Is(err, user.ErrInvalidPassword):
			SendValidationError(w, "Password must be at least 6 characters")
		default:
			SendError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	SetAuthCookie(w, token, h.secureCookies)
	SendSuccess(w, http.StatusCreated, "User registered successfully", newUser.ToResponse())
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		SendValidationError(w, "Email and password are required")
		return
	}

	u, token, err := h.service.Login(req)
	if err != nil {
		// One message for unknown email and wrong password alike.
		if errors.Is(err, user.ErrInvalidCredentials) {
			SendError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		SendError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	SetAuthCookie(w, token, h.secureCookies)
	SendSuccess(w, http.StatusOK, "Login successful", u.ToResponse())
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ClearAuthCookie(w, h.secureCookies)
	SendSuccess(w, http.StatusOK, "Logged out successfully", nil)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := GetIdentity(r.Context())
	if !ok {
		SendError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetUser(id.UserID)
	if err != nil {
		SendError(w, "User not found", http.StatusNotFound)
		return
	}

	SendSuccess(w, http.StatusOK, "", u.ToResponse())
}
