package adminauth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Lcsmrct/hennalash-backend/internal/auth"
	"github.com/Lcsmrct/hennalash-backend/internal/httpx"
	"github.com/Lcsmrct/hennalash-backend/internal/middleware"
	"github.com/Lcsmrct/hennalash-backend/internal/transport"
	"github.com/Lcsmrct/hennalash-backend/internal/validation"
	"go.mongodb.org/mongo-driver/mongo"
)

const refreshCookieName = "hennalash_refresh"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	repo         Repository
	manager      *auth.Manager
	val          *validation.Validator
	log          *slog.Logger
	envUser      string
	envPassword  string
	cookieSecure bool
}

func NewHandler(repo Repository, manager *auth.Manager, val *validation.Validator, log *slog.Logger, envUser, envPassword string, cookieSecure bool) *Handler {
	return &Handler{
		repo:         repo,
		manager:      manager,
		val:          val,
		log:          log,
		envUser:      envUser,
		envPassword:  envPassword,
		cookieSecure: cookieSecure,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	if h.manager == nil {
		log.Warn("admin login: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	if !h.checkCredentials(r.Context(), req.Username, req.Password) {
		log.Warn("admin login: invalid credentials", slog.String("username", req.Username))
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	accessToken, err := h.manager.NewAccessToken(RoleAdmin)
	if err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}
	refreshToken, err := h.manager.NewRefreshToken(RoleAdmin)
	if err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	h.setAuthCookies(w, accessToken, refreshToken)
	log.Info("admin login: ok", slog.String("username", req.Username))
	transport.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// checkCredentials prefers a seeded admin account; the env pair remains as
// a bootstrap fallback for fresh deployments without a users collection.
func (h *Handler) checkCredentials(ctx context.Context, username, password string) bool {
	if h.repo != nil {
		lookupCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		user, err := h.repo.GetByUsername(lookupCtx, username)
		if err == nil {
			return user.Role == RoleAdmin && auth.ComparePassword(user.PasswordHash, password) == nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			h.log.Error("admin login: database error", slog.String("error", err.Error()))
			return false
		}
	}

	return h.envPassword != "" && username == h.envUser && password == h.envPassword
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if h.manager == nil {
		log.Warn("admin refresh: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	refreshCookie, err := r.Cookie(refreshCookieName)
	if err != nil || refreshCookie.Value == "" {
		log.Warn("admin refresh: missing refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}

	claims, err := h.manager.Parse(refreshCookie.Value)
	if err != nil || claims.Role != RoleAdmin {
		log.Warn("admin refresh: invalid refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}

	accessToken, err := h.manager.NewAccessToken(RoleAdmin)
	if err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}
	refreshToken, err := h.manager.NewRefreshToken(RoleAdmin)
	if err != nil {
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	h.setAuthCookies(w, accessToken, refreshToken)
	log.Info("admin refresh: ok")
	transport.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	h.clearAuthCookies(w)
	log.Info("admin logout: ok")
	transport.WriteJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (h *Handler) setAuthCookies(w http.ResponseWriter, access, refresh string) {
	accessCookie := &http.Cookie{
		Name:     middleware.AccessCookieName,
		Value:    access,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.manager.AccessTTL.Seconds()),
	}
	refreshCookie := &http.Cookie{
		Name:     refreshCookieName,
		Value:    refresh,
		Path:     "/api/admin",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.manager.RefreshTTL.Seconds()),
	}
	http.SetCookie(w, accessCookie)
	http.SetCookie(w, refreshCookie)
}

func (h *Handler) clearAuthCookies(w http.ResponseWriter) {
	expire := time.Now().Add(-1 * time.Hour)
	accessCookie := &http.Cookie{
		Name:     middleware.AccessCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expire,
		MaxAge:   -1,
	}
	refreshCookie := &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/api/admin",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expire,
		MaxAge:   -1,
	}
	http.SetCookie(w, accessCookie)
	http.SetCookie(w, refreshCookie)
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
