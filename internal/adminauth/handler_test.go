package adminauth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Lcsmrct/hennalash-backend/internal/auth"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserRepo struct {
	users map[string]User
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	user, ok := r.users[username]
	if !ok {
		return User{}, mongo.ErrNoDocuments
	}
	return user, nil
}

func testHandler(t *testing.T, repo Repository, envUser, envPassword string) *Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(repo, nil, nil, logger, envUser, envPassword, false)
}

func TestCheckCredentialsSeededUser(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	repo := &fakeUserRepo{users: map[string]User{
		"sara": {Username: "sara", PasswordHash: hash, Role: RoleAdmin},
	}}
	h := testHandler(t, repo, "", "")

	if !h.checkCredentials(context.Background(), "sara", "s3cret") {
		t.Fatalf("expected seeded credentials to pass")
	}
	if h.checkCredentials(context.Background(), "sara", "wrong") {
		t.Fatalf("wrong password accepted")
	}
}

func TestCheckCredentialsRejectsNonAdminRole(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	repo := &fakeUserRepo{users: map[string]User{
		"sara": {Username: "sara", PasswordHash: hash, Role: "viewer"},
	}}
	h := testHandler(t, repo, "", "")

	if h.checkCredentials(context.Background(), "sara", "s3cret") {
		t.Fatalf("non-admin role accepted")
	}
}

func TestCheckCredentialsEnvFallback(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]User{}}
	h := testHandler(t, repo, "admin", "bootstrap")

	if !h.checkCredentials(context.Background(), "admin", "bootstrap") {
		t.Fatalf("expected env fallback to pass for unknown user")
	}
	if h.checkCredentials(context.Background(), "admin", "wrong") {
		t.Fatalf("wrong env password accepted")
	}
}

func TestCheckCredentialsNoEnvPair(t *testing.T) {
	h := testHandler(t, &fakeUserRepo{users: map[string]User{}}, "", "")
	if h.checkCredentials(context.Background(), "admin", "") {
		t.Fatalf("empty configuration must reject everything")
	}
}
