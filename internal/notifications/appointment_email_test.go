package notifications

import (
	"strings"
	"testing"

	"github.com/Lcsmrct/hennalash-backend/internal/appointment"
)

func TestFormatDateFR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2026-06-01", "lundi 1 juin 2026"},
		{"2026-08-29", "samedi 29 août 2026"},
		{"2026-12-25", "vendredi 25 décembre 2026"},
	}
	for _, c := range cases {
		if got := FormatDateFR(c.in); got != c.want {
			t.Fatalf("FormatDateFR(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDateFRPassthrough(t *testing.T) {
	if got := FormatDateFR("pas-une-date"); got != "pas-une-date" {
		t.Fatalf("unparseable input must pass through, got %q", got)
	}
}

func TestLocationLabel(t *testing.T) {
	if got := locationLabel(appointment.LocationDomicile); got != "À domicile" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := locationLabel(appointment.LocationAtelier); got != "En atelier" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := locationLabel("ailleurs"); got != "ailleurs" {
		t.Fatalf("unknown location must pass through, got %q", got)
	}
}

func TestClientConfirmationBody(t *testing.T) {
	appt := appointment.Appointment{
		ClientName:   "Sara B",
		ServiceType:  appointment.ServiceMariee,
		Date:         "2026-06-01",
		Time:         "14:00",
		LocationType: appointment.LocationDomicile,
		Address:      "12 rue des Lilas, Paris",
	}

	body, err := renderTemplate(clientConfirmationTmpl, emailData(appt))
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	for _, want := range []string{"Sara B", "Henné Mariée", "lundi 1 juin 2026", "14:00", "À domicile", "12 rue des Lilas, Paris"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestOperatorAlertBodyIncludesContact(t *testing.T) {
	appt := appointment.Appointment{
		ClientName:      "Sara B",
		ClientEmail:     "sara@example.com",
		ClientPhone:     "+33612345678",
		ClientInstagram: "@sara.b",
		ServiceType:     appointment.ServiceSimple,
		Date:            "2026-06-01",
		Time:            "10:00",
		LocationType:    appointment.LocationAtelier,
	}

	body, err := renderTemplate(operatorAlertTmpl, emailData(appt))
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	// html/template escapes "+" in text nodes, so the phone appears as
	// "&#43;33612345678" in the raw body and renders as "+" in mail clients.
	for _, want := range []string{"sara@example.com", "&#43;33612345678", "@sara.b", "En atelier"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestStatusTemplatesDifferByStatus(t *testing.T) {
	confirmed := appointment.Appointment{
		ClientName:   "Sara B",
		ServiceType:  appointment.ServiceSimple,
		Date:         "2026-06-01",
		Time:         "14:00",
		LocationType: appointment.LocationAtelier,
		Status:       appointment.StatusConfirmed,
	}

	body, err := renderTemplate(statusConfirmedTmpl, emailData(confirmed))
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(body, "confirmé") {
		t.Fatalf("confirmed body missing confirmation wording:\n%s", body)
	}

	cancelled := confirmed
	cancelled.Status = appointment.StatusCancelled
	body, err = renderTemplate(statusCancelledTmpl, emailData(cancelled))
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(body, "annulé") {
		t.Fatalf("cancelled body missing cancellation wording:\n%s", body)
	}
}
