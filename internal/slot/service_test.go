package slot

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepo struct {
	byID   map[string]TimeSlot
	byPair map[string]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[string]TimeSlot{}, byPair: map[string]string{}}
}

func pairKey(date, clock string) string { return date + "|" + clock }

func (r *fakeRepo) Create(ctx context.Context, s TimeSlot) error {
	key := pairKey(s.Date, s.Time)
	if _, exists := r.byPair[key]; exists {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	r.byPair[key] = s.ID
	r.byID[s.ID] = s
	return nil
}

func (r *fakeRepo) List(ctx context.Context, limit int64) ([]TimeSlot, error) {
	out := make([]TimeSlot, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	s, ok := r.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	s.IsAvailable = available
	r.byID[id] = s
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	s, ok := r.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.byPair, pairKey(s.Date, s.Time))
	delete(r.byID, id)
	return nil
}

func TestCreateDefaultsAvailable(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)

	ts, err := svc.Create(context.Background(), CreateRequest{Date: "2026-06-01", Time: "14:00"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !ts.IsAvailable {
		t.Fatalf("expected new slot to default to available")
	}
	if ts.ID == "" {
		t.Fatalf("expected a generated id")
	}
}

func TestCreateHonorsExplicitAvailability(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)

	unavailable := false
	ts, err := svc.Create(context.Background(), CreateRequest{Date: "2026-06-01", Time: "14:00", IsAvailable: &unavailable})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if ts.IsAvailable {
		t.Fatalf("expected slot to be created unavailable")
	}
}

func TestCreateDuplicatePair(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	req := CreateRequest{Date: "2026-06-01", Time: "14:00"}
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Create(context.Background(), req); err != ErrDuplicateSlot {
		t.Fatalf("expected ErrDuplicateSlot, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected a single stored slot, got %d", len(repo.byID))
	}
}

func TestCreateSamePairAfterDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	req := CreateRequest{Date: "2026-06-01", Time: "14:00"}
	ts, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := svc.Delete(context.Background(), ts.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("expected recreate to succeed after delete, got %v", err)
	}
}

func TestSetAvailabilityToggles(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, time.UTC)

	ts, err := svc.Create(context.Background(), CreateRequest{Date: "2026-06-01", Time: "14:00"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := svc.SetAvailability(context.Background(), ts.ID, false); err != nil {
		t.Fatalf("SetAvailability error: %v", err)
	}
	if repo.byID[ts.ID].IsAvailable {
		t.Fatalf("expected slot to be unavailable")
	}
}

func TestSetAvailabilityNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)
	if err := svc.SetAvailability(context.Background(), "missing", true); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), time.UTC)
	if err := svc.Delete(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
