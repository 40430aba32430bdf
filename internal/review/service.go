package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrNotFound      = errors.New("review not found")
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

func (s *Service) List(ctx context.Context, publishedOnly bool) ([]Review, error) {
	return s.repo.List(ctx, publishedOnly, listCap)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return Review{}, ErrInvalidRating
	}

	rev := Review{
		ID:          uuid.NewString(),
		ClientName:  strings.TrimSpace(req.ClientName),
		ServiceType: strings.TrimSpace(req.ServiceType),
		Rating:      req.Rating,
		Comment:     strings.TrimSpace(req.Comment),
		IsPublished: false,
		CreatedAt:   time.Now().In(s.location),
	}

	if err := s.repo.Create(ctx, rev); err != nil {
		return Review{}, err
	}
	return rev, nil
}

func (s *Service) SetPublished(ctx context.Context, id string, published bool) error {
	if err := s.repo.SetPublished(ctx, strings.TrimSpace(id), published); err != nil {
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
