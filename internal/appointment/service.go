package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrNotFound           = errors.New("appointment not found")
)

// listCap mirrors the historical fetch ceiling; the volume of a single
// artist's bookings never gets anywhere near it.
const listCap = 1000

type Mailer interface {
	SendClientConfirmation(ctx context.Context, appt Appointment) (string, error)
	SendOperatorAlert(ctx context.Context, appt Appointment, operatorEmail string) (string, error)
	SendStatusUpdate(ctx context.Context, appt Appointment) (string, error)
}

// Dispatcher hands a composed send decision to a background executor.
// Enqueue must never block; a false return means the send was dropped.
type Dispatcher interface {
	Enqueue(kind, ref, recipient string, send func(ctx context.Context) (string, error)) bool
}

type Service struct {
	repo          Repository
	location      *time.Location
	mailer        Mailer
	dispatch      Dispatcher
	operatorEmail string
}

func NewService(repo Repository, location *time.Location, mailer Mailer, dispatch Dispatcher, operatorEmail string) *Service {
	return &Service{
		repo:          repo,
		location:      location,
		mailer:        mailer,
		dispatch:      dispatch,
		operatorEmail: operatorEmail,
	}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Appointment, error) {
	serviceType := strings.ToLower(strings.TrimSpace(req.ServiceType))
	if !IsValidServiceType(serviceType) {
		return Appointment{}, ErrInvalidServiceType
	}

	appt := Appointment{
		ID:              uuid.NewString(),
		ClientName:      strings.TrimSpace(req.ClientName),
		ClientEmail:     strings.TrimSpace(req.ClientEmail),
		ClientPhone:     strings.TrimSpace(req.ClientPhone),
		ClientInstagram: strings.TrimSpace(req.ClientInstagram),
		ServiceType:     serviceType,
		Date:            req.Date,
		Time:            req.Time,
		LocationType:    req.LocationType,
		Address:         strings.TrimSpace(req.Address),
		AdditionalNotes: strings.TrimSpace(req.AdditionalNotes),
		Status:          StatusPending,
		CreatedAt:       time.Now().In(s.location),
	}

	if err := s.repo.Create(ctx, appt); err != nil {
		return Appointment{}, err
	}

	s.notifyCreated(appt)
	return appt, nil
}

func (s *Service) notifyCreated(appt Appointment) {
	if s.mailer == nil || s.dispatch == nil {
		return
	}
	created := appt
	s.dispatch.Enqueue("appointment_confirmation", created.ID, created.ClientEmail,
		func(ctx context.Context) (string, error) {
			return s.mailer.SendClientConfirmation(ctx, created)
		})
	if s.operatorEmail != "" {
		s.dispatch.Enqueue("operator_alert", created.ID, s.operatorEmail,
			func(ctx context.Context) (string, error) {
				return s.mailer.SendOperatorAlert(ctx, created, s.operatorEmail)
			})
	}
}

func (s *Service) Get(ctx context.Context, id string) (Appointment, error) {
	appt, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Appointment{}, ErrNotFound
		}
		return Appointment{}, err
	}
	return appt, nil
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx, listCap)
}

// UpdateStatus validates the target label and applies it. Any valid label
// may replace any other; the product has never enforced a transition table,
// and repeated confirmed/cancelled updates re-send the client email.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	id = strings.TrimSpace(id)
	status = strings.ToLower(strings.TrimSpace(status))
	if !IsValidStatus(status) {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}

	if status == StatusConfirmed || status == StatusCancelled {
		s.notifyStatusChanged(id)
	}
	return nil
}

// notifyStatusChanged defers the record read to send time so the email is
// composed from the stored document, not from any pre-update copy.
func (s *Service) notifyStatusChanged(id string) {
	if s.mailer == nil || s.dispatch == nil {
		return
	}
	s.dispatch.Enqueue("status_update", id, "",
		func(ctx context.Context) (string, error) {
			appt, err := s.repo.GetByID(ctx, id)
			if err != nil {
				return "", err
			}
			return s.mailer.SendStatusUpdate(ctx, appt)
		})
}

func (s *Service) FindByContact(ctx context.Context, email, phone string) ([]Appointment, error) {
	return s.repo.FindByContact(ctx, email, phone)
}
