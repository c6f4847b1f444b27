package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kaanc/movie-api/internal/domain"
	"github.com/kaanc/movie-api/internal/service"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleRegister processes a JSON registration request.
// POST /api/user/register
// Request:  {"username":"...","email":"...","password":"..."}
// Response: {"id":..,"username":"...","email":"...","photo_url":""}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			writeError(w, http.StatusBadRequest, "Username already registered")
		case errors.Is(err, domain.ErrDuplicateEmail):
			writeError(w, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			slog.Error("register user", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
		}
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}

// HandleLogin processes a JSON login request. The username field carries the
// account email, matching the original wire format.
// POST /api/user/login
// Request:  {"username":"<email>","password":"..."}
// Response: {"access_token":"...","refresh_token":"...","token_type":"bearer"}
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pair, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("login user", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"token_type":    "bearer",
	})
}

// HandleRefresh mints a new access token from a valid refresh token.
// POST /api/user/refresh
// Request:  {"refresh_token":"..."}
// Response: {"access_token":"...","token_type":"bearer"}
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	access, err := h.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			writeError(w, http.StatusUnauthorized, "Invalid refresh token")
		case errors.Is(err, domain.ErrUnavailable):
			slog.Error("refresh token", "error", err)
			writeError(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
		default:
			slog.Error("refresh token", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": access,
		"token_type":   "bearer",
	})
}

// HandleLogout revokes the presented access token.
// POST /api/user/logout
// Response: {"message":"Logged out successfully"}
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())

	if err := h.auth.Logout(r.Context(), identity.Token); err != nil {
		slog.Error("logout", "error", err)
		writeError(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
		return
	}

	writeMessage(w, "Logged out successfully")
}

// HandleProfile returns the authenticated user's record.
// GET /api/user/profile
func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	writeJSON(w, http.StatusOK, toUserDTO(identity.User))
}

// HandleUploadPhoto sets the authenticated user's profile photo URL, passed
// as a query or form parameter.
// POST /api/user/upload_photo?photo_url=...
// Response: {"message":"Photo uploaded"}
func (h *AuthHandler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	photoURL := r.FormValue("photo_url")

	if err := h.auth.UpdatePhoto(r.Context(), identity.User.ID, photoURL); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			slog.Error("upload photo", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
		}
		return
	}

	writeMessage(w, "Photo uploaded")
}
