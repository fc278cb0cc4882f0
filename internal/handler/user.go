package handler

import (
	"log/slog"
	"net/http"

	"blogapi/internal/domain/services"
	"blogapi/internal/httputil"
)

// UserHandler handles registration, login and profile HTTP requests
type UserHandler struct {
	userService services.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// registerResponse mirrors the registration contract: only the public
// identifying fields of the fresh account.
type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Register creates a new account
// POST /api/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)

	var req services.RegisterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Register(r.Context(), identity, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, registerResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// Token verifies credentials and issues an access/refresh pair
// POST /api/token
func (h *UserHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	pair, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, pair)
}

// refreshRequest is the token refresh payload
type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshToken exchanges a refresh token for a new access token
// POST /api/token/refresh
func (h *UserHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	access, err := h.userService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"access": access})
}

// Me returns the caller's own profile
// GET /api/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)

	user, err := h.userService.GetProfile(r.Context(), identity)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, user)
}

// UpdateMe edits the caller's own profile
// PATCH /api/me
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)

	var req services.UpdateProfileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), identity, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, user)
}
