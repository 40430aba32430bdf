package clientportal

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

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("client login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("client login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.service.Login(ctx, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, ErrNoAppointments) {
			log.Warn("client login: no appointments", slog.String("email", req.Email))
			transport.WriteError(w, http.StatusNotFound, "aucun rendez-vous trouvé pour ces coordonnées", nil)
			return
		}
		log.Error("client login: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("client login: ok", slog.String("email", req.Email), slog.Int("count", result.AppointmentCount))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":           "connexion réussie",
		"client_name":       result.ClientName,
		"appointment_count": result.AppointmentCount,
	})
}

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	q := LoginRequest{
		Email: strings.TrimSpace(r.URL.Query().Get("email")),
		Phone: strings.TrimSpace(r.URL.Query().Get("phone")),
	}
	if err := h.val.Struct(q); err != nil {
		log.Warn("client appointments: invalid query")
		transport.WriteError(w, http.StatusBadRequest, "invalid query", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.ListForContact(ctx, q.Email, q.Phone)
	if err != nil {
		log.Error("client appointments: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("client appointments: ok", slog.String("email", q.Email), slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
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
