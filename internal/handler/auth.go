package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/statusfeed/statusfeed-go/internal/middleware"
	"github.com/statusfeed/statusfeed-go/internal/model"
	"github.com/statusfeed/statusfeed-go/internal/service"
)

// AuthHandler handles HTTP requests for registration and sessions.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleRegister handles POST /api/users/register/ requests. The response
// never includes the password or its hash.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse(kindValidationFailed, "request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse(kindValidationFailed, "invalid request body"))
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFirstNameRequired),
			errors.Is(err, service.ErrLastNameRequired),
			errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrEmailTaken):
			writeJSON(w, http.StatusBadRequest, errorResponse(kindValidationFailed, err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse(kindInternal, "internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /api/users/login/ requests. On success the session
// token is set as an http-only cookie; the cookie itself carries no expiry,
// the token inside does.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse(kindValidationFailed, "request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse(kindValidationFailed, "invalid request body"))
		return
	}

	token, user, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusForbidden, errorResponse(kindAuthenticationFailed, err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse(kindInternal, "internal server error"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, user)
}

// HandleMe handles GET /api/users/me/ requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse(kindAuthenticationFailed, "Unauthorized"))
		return
	}

	writeJSON(w, http.StatusOK, model.NewUserResponse(user))
}

// HandleLogout handles POST /api/users/logout/ requests. The token itself
// stays valid until expiry; logout only clears the client's copy.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout complete"})
}
