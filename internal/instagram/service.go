package instagram

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotConfigured = errors.New("instagram app not configured")
	ErrTokenNotFound = errors.New("instagram token not found")
	ErrTokenExpired  = errors.New("instagram token expired")
)

// tokenTTL matches the lifetime of an Instagram long-lived token.
const tokenTTL = 60 * 24 * time.Hour

type Fetcher interface {
	AuthURL() string
	ExchangeCode(ctx context.Context, code string) (accessToken, tokenType string, err error)
	FetchMedia(ctx context.Context, accessToken string) ([]Post, error)
}

type Service struct {
	repo   Repository
	client Fetcher
	now    func() time.Time
}

func NewService(repo Repository, client Fetcher) *Service {
	return &Service{
		repo:   repo,
		client: client,
		now:    time.Now,
	}
}

func (s *Service) AuthURL() (string, error) {
	if s.client == nil {
		return "", ErrNotConfigured
	}
	return s.client.AuthURL(), nil
}

// Exchange swaps the OAuth code for a bearer token and stores it under the
// artist's owner key, replacing whatever token was there before.
func (s *Service) Exchange(ctx context.Context, code string) error {
	if s.client == nil {
		return ErrNotConfigured
	}

	accessToken, tokenType, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		return err
	}

	now := s.now().UTC()
	token := Token{
		ID:          uuid.NewString(),
		UserID:      OwnerKey,
		AccessToken: accessToken,
		TokenType:   tokenType,
		ExpiresAt:   now.Add(tokenTTL),
		CreatedAt:   now,
	}
	return s.repo.Upsert(ctx, token)
}

func (s *Service) Posts(ctx context.Context) ([]Post, error) {
	if s.client == nil {
		return nil, ErrNotConfigured
	}

	token, err := s.repo.Get(ctx, OwnerKey)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	if token.Expired(s.now().UTC()) {
		return nil, ErrTokenExpired
	}

	return s.client.FetchMedia(ctx, token.AccessToken)
}

func (s *Service) Revoke(ctx context.Context) error {
	if err := s.repo.Delete(ctx, OwnerKey); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrTokenNotFound
		}
		return err
	}
	return nil
}
