package contact

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
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

func (s *Service) Create(ctx context.Context, req CreateRequest) (Message, error) {
	msg := Message{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now().In(s.location),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

func (s *Service) List(ctx context.Context) ([]Message, error) {
	return s.repo.List(ctx, listCap)
}
