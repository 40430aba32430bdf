package review

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Lcsmrct/hennalash-backend/internal/httpx"
	"github.com/Lcsmrct/hennalash-backend/internal/middleware"
	"github.com/Lcsmrct/hennalash-backend/internal/transport"
	"github.com/Lcsmrct/hennalash-backend/internal/validation"
	"github.com/go-chi/chi/v5"
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	publishedOnly, err := httpx.ParseBool(r.URL.Query(), "published_only", true)
	if err != nil {
		log.Warn("reviews list: invalid query")
		transport.WriteError(w, http.StatusBadRequest, "invalid query", map[string]string{"published_only": "boolean"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.List(ctx, publishedOnly)
	if err != nil {
		log.Error("reviews list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("reviews list: ok", slog.Bool("published_only", publishedOnly), slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("reviews create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("reviews create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	created, err := h.service.Create(ctx, req)
	if err != nil {
		if errors.Is(err, ErrInvalidRating) {
			log.Warn("reviews create: invalid rating", slog.Int("rating", req.Rating))
			transport.WriteError(w, http.StatusBadRequest, "validation error", map[string]string{"rating": "range"})
			return
		}
		log.Error("reviews create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("reviews create: ok", slog.String("review_id", created.ID), slog.Int("rating", created.Rating))
	transport.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdatePublication(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("reviews publish: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req PublishRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("reviews publish: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("reviews publish: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.SetPublished(ctx, id, *req.IsPublished); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("reviews publish: not found", slog.String("review_id", id))
			transport.WriteError(w, http.StatusNotFound, "avis non trouvé", nil)
			return
		}
		log.Error("reviews publish: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("reviews publish: ok", slog.String("review_id", id), slog.Bool("is_published", *req.IsPublished))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "avis mis à jour",
		"is_published": *req.IsPublished,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("reviews delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("reviews delete: not found", slog.String("review_id", id))
			transport.WriteError(w, http.StatusNotFound, "avis non trouvé", nil)
			return
		}
		log.Error("reviews delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("reviews delete: ok", slog.String("review_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"message": "avis supprimé"})
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
