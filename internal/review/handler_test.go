package review

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Lcsmrct/hennalash-backend/internal/validation"
)

func testHandler(repo Repository) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(NewService(repo, time.UTC), validation.New(), logger)
}

func TestCreateRejectsPublicationField(t *testing.T) {
	repo := newFakeRepo()
	h := testHandler(repo)

	// The request schema has no publication field, and decoding is strict,
	// so a client smuggling is_published is rejected outright.
	body := `{"client_name":"Sara B","service_type":"simple","rating":5,"comment":"Superbe","is_published":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("nothing should be persisted, got %d", len(repo.byID))
	}
}

func TestCreateHandlerStoresUnpublished(t *testing.T) {
	repo := newFakeRepo()
	h := testHandler(repo)

	body := `{"client_name":"Sara B","service_type":"simple","rating":5,"comment":"Superbe"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected 1 stored review, got %d", len(repo.byID))
	}
	for _, rev := range repo.byID {
		if rev.IsPublished {
			t.Fatalf("stored review must start unpublished")
		}
	}
}
