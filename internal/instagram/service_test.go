package instagram

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	tokens map[string]Token
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tokens: map[string]Token{}}
}

func (r *fakeRepo) Upsert(ctx context.Context, token Token) error {
	r.tokens[token.UserID] = token
	return nil
}

func (r *fakeRepo) Get(ctx context.Context, userID string) (Token, error) {
	token, ok := r.tokens[userID]
	if !ok {
		return Token{}, mongo.ErrNoDocuments
	}
	return token, nil
}

func (r *fakeRepo) Delete(ctx context.Context, userID string) error {
	if _, ok := r.tokens[userID]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.tokens, userID)
	return nil
}

type fakeFetcher struct {
	media []Post
}

func (f *fakeFetcher) AuthURL() string { return "https://api.instagram.com/oauth/authorize?x=y" }

func (f *fakeFetcher) ExchangeCode(ctx context.Context, code string) (string, string, error) {
	return "token-" + code, "bearer", nil
}

func (f *fakeFetcher) FetchMedia(ctx context.Context, accessToken string) ([]Post, error) {
	return f.media, nil
}

func TestUnconfiguredService(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	if _, err := svc.AuthURL(); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if err := svc.Exchange(context.Background(), "code"); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := svc.Posts(context.Background()); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestExchangeStoresTokenUnderOwnerKey(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeFetcher{})
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	if err := svc.Exchange(context.Background(), "abc"); err != nil {
		t.Fatalf("Exchange error: %v", err)
	}

	token, ok := repo.tokens[OwnerKey]
	if !ok {
		t.Fatalf("token not stored under owner key")
	}
	if token.AccessToken != "token-abc" {
		t.Fatalf("unexpected access token: %q", token.AccessToken)
	}
	if want := now.Add(60 * 24 * time.Hour); !token.ExpiresAt.Equal(want) {
		t.Fatalf("unexpected expiry: %v, want %v", token.ExpiresAt, want)
	}
}

func TestPostsWithoutToken(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeFetcher{})
	if _, err := svc.Posts(context.Background()); err != ErrTokenNotFound {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}

func TestPostsExpiryBoundary(t *testing.T) {
	repo := newFakeRepo()
	fetcher := &fakeFetcher{media: []Post{{ID: "1", MediaType: "IMAGE"}}}
	svc := NewService(repo, fetcher)

	expiry := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo.tokens[OwnerKey] = Token{UserID: OwnerKey, AccessToken: "tok", ExpiresAt: expiry}

	// Exactly at expiry the token is still usable.
	svc.now = func() time.Time { return expiry }
	if _, err := svc.Posts(context.Background()); err != nil {
		t.Fatalf("Posts at expiry instant: %v", err)
	}

	svc.now = func() time.Time { return expiry.Add(time.Second) }
	if _, err := svc.Posts(context.Background()); err != ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestRevoke(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeFetcher{})
	repo.tokens[OwnerKey] = Token{UserID: OwnerKey}

	if err := svc.Revoke(context.Background()); err != nil {
		t.Fatalf("Revoke error: %v", err)
	}
	if err := svc.Revoke(context.Background()); err != ErrTokenNotFound {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
}
