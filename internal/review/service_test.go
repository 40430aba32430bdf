package review

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	byID map[string]Review
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]Review{}}
}

func (r *fakeRepo) Create(ctx context.Context, rev Review) error {
	r.byID[rev.ID] = rev
	return nil
}

func (r *fakeRepo) List(ctx context.Context, publishedOnly bool, limit int64) ([]Review, error) {
	var out []Review
	for _, rev := range r.byID {
		if publishedOnly && !rev.IsPublished {
			continue
		}
		out = append(out, rev)
	}
	return out, nil
}

func (r *fakeRepo) SetPublished(ctx context.Context, id string, published bool) error {
	rev, ok := r.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	rev.IsPublished = published
	r.byID[id] = rev
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.byID, id)
	return nil
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		ClientName:  "Sara B",
		ServiceType: "simple",
		Rating:      5,
		Comment:     "Magnifique travail, très satisfaite.",
	}
}

func TestCreateStartsUnpublished(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	rev, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rev.IsPublished {
		t.Fatalf("new review must start unpublished")
	}
	if repo.byID[rev.ID].IsPublished {
		t.Fatalf("stored review must start unpublished")
	}
}

func TestCreateRejectsOutOfRangeRating(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	for _, rating := range []int{0, 6, -1} {
		req := validCreateRequest()
		req.Rating = rating
		if _, err := svc.Create(context.Background(), req); err != ErrInvalidRating {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
	if len(repo.byID) != 0 {
		t.Fatalf("nothing should be persisted on rejection")
	}
}

func TestListPublishedOnlyHidesPending(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	if _, err := svc.Create(context.Background(), validCreateRequest()); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	approved, err := svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := svc.SetPublished(context.Background(), approved.ID, true); err != nil {
		t.Fatalf("SetPublished error: %v", err)
	}

	visible, err := svc.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != approved.ID {
		t.Fatalf("expected only the approved review, got %d", len(visible))
	}

	all, err := svc.List(context.Background(), false)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both reviews, got %d", len(all))
	}
}

func TestSetPublishedNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)
	if err := svc.SetPublished(context.Background(), "missing", true); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)
	if err := svc.Delete(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
