package clientportal

import (
	"context"
	"testing"

	"github.com/Lcsmrct/hennalash-backend/internal/appointment"
)

type fakeFinder struct {
	items map[string][]appointment.Appointment
}

func (f *fakeFinder) FindByContact(ctx context.Context, email, phone string) ([]appointment.Appointment, error) {
	return f.items[email+"|"+phone], nil
}

func TestLoginUnknownContact(t *testing.T) {
	svc := NewService(&fakeFinder{items: map[string][]appointment.Appointment{}})

	if _, err := svc.Login(context.Background(), "nobody@example.com", "+33600000000"); err != ErrNoAppointments {
		t.Fatalf("expected ErrNoAppointments, got %v", err)
	}
}

func TestLoginReturnsNameAndCount(t *testing.T) {
	finder := &fakeFinder{items: map[string][]appointment.Appointment{
		"sara@example.com|+33612345678": {
			{ClientName: "Sara B", Date: "2026-06-10"},
			{ClientName: "Sara B", Date: "2026-05-01"},
		},
	}}
	svc := NewService(finder)

	res, err := svc.Login(context.Background(), "sara@example.com", "+33612345678")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res.ClientName != "Sara B" {
		t.Fatalf("unexpected client name: %q", res.ClientName)
	}
	if res.AppointmentCount != 2 {
		t.Fatalf("expected 2 appointments, got %d", res.AppointmentCount)
	}
}

func TestListForContactEmptyIsNotAnError(t *testing.T) {
	svc := NewService(&fakeFinder{items: map[string][]appointment.Appointment{}})

	items, err := svc.ListForContact(context.Background(), "nobody@example.com", "+33600000000")
	if err != nil {
		t.Fatalf("ListForContact error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected an empty list, got %d", len(items))
	}
}
