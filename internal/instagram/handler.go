package instagram

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Lcsmrct/hennalash-backend/internal/httpx"
	"github.com/Lcsmrct/hennalash-backend/internal/middleware"
	"github.com/Lcsmrct/hennalash-backend/internal/transport"
	"github.com/Lcsmrct/hennalash-backend/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) AuthURL(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	authURL, err := h.service.AuthURL()
	if err != nil {
		log.Warn("instagram auth-url: not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "configuration Instagram manquante", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]string{"auth_url": authURL})
}

func (h *Handler) Auth(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req AuthRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("instagram auth: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("instagram auth: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := h.service.Exchange(ctx, req.Code); err != nil {
		if errors.Is(err, ErrNotConfigured) {
			log.Warn("instagram auth: not configured")
			transport.WriteError(w, http.StatusServiceUnavailable, "configuration Instagram manquante", nil)
			return
		}
		log.Error("instagram auth: exchange failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadGateway, "échec de l'échange de token", nil)
		return
	}

	log.Info("instagram auth: token stored")
	transport.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "token Instagram configuré",
	})
}

func (h *Handler) Posts(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	posts, err := h.service.Posts(ctx)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			log.Warn("instagram posts: not configured")
			transport.WriteError(w, http.StatusServiceUnavailable, "configuration Instagram manquante", nil)
		case errors.Is(err, ErrTokenNotFound):
			log.Warn("instagram posts: no token")
			transport.WriteError(w, http.StatusNotFound, "token Instagram non trouvé", nil)
		case errors.Is(err, ErrTokenExpired):
			log.Warn("instagram posts: token expired")
			transport.WriteError(w, http.StatusUnauthorized, "token Instagram expiré", nil)
		default:
			log.Error("instagram posts: fetch failed", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusBadGateway, "erreur lors de la récupération des publications", nil)
		}
		return
	}

	log.Info("instagram posts: ok", slog.Int("count", len(posts)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}

func (h *Handler) Revoke(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Revoke(ctx); err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			log.Warn("instagram revoke: no token")
			transport.WriteError(w, http.StatusNotFound, "aucun token trouvé", nil)
			return
		}
		log.Error("instagram revoke: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("instagram revoke: ok")
	transport.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "token Instagram révoqué",
	})
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
