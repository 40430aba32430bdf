package slot

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrDuplicateSlot reports a (date, time) pair that already exists.
	// Uniqueness is enforced by the store's unique index, so concurrent
	// creates for the same pair cannot both succeed.
	ErrDuplicateSlot = errors.New("slot already exists")
	ErrNotFound      = errors.New("slot not found")
)

const listCap = 1000

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

func (s *Service) List(ctx context.Context) ([]TimeSlot, error) {
	return s.repo.List(ctx, listCap)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (TimeSlot, error) {
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	ts := TimeSlot{
		ID:          uuid.NewString(),
		Date:        strings.TrimSpace(req.Date),
		Time:        strings.TrimSpace(req.Time),
		IsAvailable: available,
		CreatedAt:   time.Now().In(s.location),
	}

	if err := s.repo.Create(ctx, ts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return TimeSlot{}, ErrDuplicateSlot
		}
		return TimeSlot{}, err
	}
	return ts, nil
}

func (s *Service) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := s.repo.SetAvailability(ctx, strings.TrimSpace(id), available); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
