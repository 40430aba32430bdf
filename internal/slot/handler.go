package slot

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Lcsmrct/hennalash-backend/internal/cache"
	"github.com/Lcsmrct/hennalash-backend/internal/httpx"
	"github.com/Lcsmrct/hennalash-backend/internal/middleware"
	"github.com/Lcsmrct/hennalash-backend/internal/transport"
	"github.com/Lcsmrct/hennalash-backend/internal/validation"
	"github.com/go-chi/chi/v5"
)

const listCacheKey = "slots:all"

type Handler struct {
	service  *Service
	val      *validation.Validator
	log      *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, c cache.Cache, cacheTTL time.Duration) *Handler {
	return &Handler{
		service:  service,
		val:      val,
		log:      log,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if h.cache != nil {
		if cached, ok, err := h.cache.Get(r.Context(), listCacheKey); err == nil && ok {
			log.Info("slots list: cache hit")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("slots list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	if h.cache != nil {
		if payload, err := json.Marshal(items); err == nil {
			_ = h.cache.Set(r.Context(), listCacheKey, payload, h.cacheTTL)
		}
	}

	log.Info("slots list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("slots create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("slots create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	created, err := h.service.Create(ctx, req)
	if err != nil {
		if errors.Is(err, ErrDuplicateSlot) {
			log.Warn("slots create: duplicate", slog.String("date", req.Date), slog.String("time", req.Time))
			transport.WriteError(w, http.StatusConflict, "ce créneau existe déjà", nil)
			return
		}
		log.Error("slots create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("slots create: ok", slog.String("slot_id", created.ID), slog.String("date", created.Date), slog.String("time", created.Time))
	transport.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("slots availability: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req AvailabilityRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("slots availability: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("slots availability: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.SetAvailability(ctx, id, *req.IsAvailable); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("slots availability: not found", slog.String("slot_id", id))
			transport.WriteError(w, http.StatusNotFound, "créneau non trouvé", nil)
			return
		}
		log.Error("slots availability: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("slots availability: ok", slog.String("slot_id", id), slog.Bool("is_available", *req.IsAvailable))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "disponibilité mise à jour",
		"is_available": *req.IsAvailable,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("slots delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("slots delete: not found", slog.String("slot_id", id))
			transport.WriteError(w, http.StatusNotFound, "créneau non trouvé", nil)
			return
		}
		log.Error("slots delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("slots delete: ok", slog.String("slot_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"message": "créneau supprimé"})
}

func (h *Handler) invalidate(ctx context.Context) {
	if h.cache != nil {
		_ = h.cache.Delete(ctx, listCacheKey)
	}
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
