// Package clientportal gives clients read access to their own bookings
// without accounts: presenting the exact email+phone pair used when booking
// is the whole credential, and each request carries it again. Nothing is
// issued and nothing is stored.
package clientportal

import (
	"context"
	"errors"

	"github.com/Lcsmrct/hennalash-backend/internal/appointment"
)

var ErrNoAppointments = errors.New("no appointments for this contact")

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone"`
}

type LoginResult struct {
	ClientName       string `json:"client_name"`
	AppointmentCount int    `json:"appointment_count"`
}

type AppointmentFinder interface {
	FindByContact(ctx context.Context, email, phone string) ([]appointment.Appointment, error)
}

type Service struct {
	appointments AppointmentFinder
}

func NewService(appointments AppointmentFinder) *Service {
	return &Service{appointments: appointments}
}

// Login resolves the contact pair to its most recent booking. The match is
// exact and case-sensitive on both fields.
func (s *Service) Login(ctx context.Context, email, phone string) (LoginResult, error) {
	items, err := s.appointments.FindByContact(ctx, email, phone)
	if err != nil {
		return LoginResult{}, err
	}
	if len(items) == 0 {
		return LoginResult{}, ErrNoAppointments
	}
	return LoginResult{
		ClientName:       items[0].ClientName,
		AppointmentCount: len(items),
	}, nil
}

// ListForContact returns every booking under the pair, newest date first.
// An unknown pair is an empty list here, not an error.
func (s *Service) ListForContact(ctx context.Context, email, phone string) ([]appointment.Appointment, error) {
	return s.appointments.FindByContact(ctx, email, phone)
}
