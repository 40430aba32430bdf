package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/Lcsmrct/hennalash-backend/internal/appointment"
)

const clientConfirmationTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Bonjour {{.ClientName}},</p>
  <p>Votre demande de rendez-vous a bien été reçue. Voici le récapitulatif :</p>
  <ul>
    <li>Prestation : {{.ServiceName}}</li>
    <li>Date : {{.Date}}</li>
    <li>Heure : {{.Time}}</li>
    <li>Lieu : {{.LocationLabel}}</li>
    {{if .Address}}<li>Adresse : {{.Address}}</li>{{end}}
    {{if .Notes}}<li>Remarques : {{.Notes}}</li>{{end}}
  </ul>
  <p>Vous recevrez un email dès que votre rendez-vous sera confirmé.</p>
  <p>À bientôt,<br>Hennaa.lash</p>
</body>
</html>`

const operatorAlertTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Nouvelle demande de rendez-vous :</p>
  <ul>
    <li>Prestation : {{.ServiceName}}</li>
    <li>Date : {{.Date}}</li>
    <li>Heure : {{.Time}}</li>
    <li>Lieu : {{.LocationLabel}}</li>
    {{if .Address}}<li>Adresse : {{.Address}}</li>{{end}}
    {{if .Notes}}<li>Remarques : {{.Notes}}</li>{{end}}
  </ul>
  <p>Contact client :</p>
  <ul>
    <li>Nom : {{.ClientName}}</li>
    <li>Email : {{.ClientEmail}}</li>
    <li>Téléphone : {{.ClientPhone}}</li>
    {{if .ClientInstagram}}<li>Instagram : {{.ClientInstagram}}</li>{{end}}
  </ul>
</body>
</html>`

const statusConfirmedTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Bonjour {{.ClientName}},</p>
  <p>Bonne nouvelle : votre rendez-vous est confirmé !</p>
  <ul>
    <li>Prestation : {{.ServiceName}}</li>
    <li>Date : {{.Date}}</li>
    <li>Heure : {{.Time}}</li>
    <li>Lieu : {{.LocationLabel}}</li>
    {{if .Address}}<li>Adresse : {{.Address}}</li>{{end}}
  </ul>
  <p>À très vite,<br>Hennaa.lash</p>
</body>
</html>`

const statusCancelledTemplate = `<!DOCTYPE html>
<html>
<body>
  <p>Bonjour {{.ClientName}},</p>
  <p>Votre rendez-vous du {{.Date}} à {{.Time}} a été annulé.</p>
  <p>N'hésitez pas à reprendre rendez-vous sur le site.</p>
  <p>Hennaa.lash</p>
</body>
</html>`

var (
	clientConfirmationTmpl = template.Must(template.New("client_confirmation").Parse(clientConfirmationTemplate))
	operatorAlertTmpl      = template.Must(template.New("operator_alert").Parse(operatorAlertTemplate))
	statusConfirmedTmpl    = template.Must(template.New("status_confirmed").Parse(statusConfirmedTemplate))
	statusCancelledTmpl    = template.Must(template.New("status_cancelled").Parse(statusCancelledTemplate))
)

type appointmentEmailData struct {
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	ClientInstagram string
	ServiceName     string
	Date            string
	Time            string
	LocationLabel   string
	Address         string
	Notes           string
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var frenchDays = map[time.Weekday]string{
	time.Monday:    "lundi",
	time.Tuesday:   "mardi",
	time.Wednesday: "mercredi",
	time.Thursday:  "jeudi",
	time.Friday:    "vendredi",
	time.Saturday:  "samedi",
	time.Sunday:    "dimanche",
}

// FormatDateFR renders an ISO date as the French long form the site uses,
// e.g. "lundi 1 juin 2026". Unparseable input passes through unchanged.
func FormatDateFR(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return fmt.Sprintf("%s %d %s %d", frenchDays[t.Weekday()], t.Day(), frenchMonths[t.Month()-1], t.Year())
}

func locationLabel(locationType string) string {
	switch locationType {
	case appointment.LocationDomicile:
		return "À domicile"
	case appointment.LocationAtelier:
		return "En atelier"
	default:
		return locationType
	}
}

func emailData(appt appointment.Appointment) appointmentEmailData {
	return appointmentEmailData{
		ClientName:      appt.ClientName,
		ClientEmail:     appt.ClientEmail,
		ClientPhone:     appt.ClientPhone,
		ClientInstagram: appt.ClientInstagram,
		ServiceName:     appointment.ServiceName(appt.ServiceType),
		Date:            FormatDateFR(appt.Date),
		Time:            appt.Time,
		LocationLabel:   locationLabel(appt.LocationType),
		Address:         appt.Address,
		Notes:           appt.AdditionalNotes,
	}
}

func renderTemplate(tmpl *template.Template, data appointmentEmailData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (c *BrevoClient) SendClientConfirmation(ctx context.Context, appt appointment.Appointment) (string, error) {
	subject := fmt.Sprintf("Demande de rendez-vous reçue - %s", appointment.ServiceName(appt.ServiceType))
	body, err := renderTemplate(clientConfirmationTmpl, emailData(appt))
	if err != nil {
		return "", err
	}
	return c.sendHTML(ctx, appt.ClientEmail, appt.ClientName, subject, body)
}

func (c *BrevoClient) SendOperatorAlert(ctx context.Context, appt appointment.Appointment, operatorEmail string) (string, error) {
	subject := fmt.Sprintf("Nouvelle demande de rendez-vous - %s le %s", appointment.ServiceName(appt.ServiceType), appt.Date)
	body, err := renderTemplate(operatorAlertTmpl, emailData(appt))
	if err != nil {
		return "", err
	}
	return c.sendHTML(ctx, operatorEmail, "", subject, body)
}

func (c *BrevoClient) SendStatusUpdate(ctx context.Context, appt appointment.Appointment) (string, error) {
	var (
		subject string
		tmpl    *template.Template
	)
	switch appt.Status {
	case appointment.StatusConfirmed:
		subject = "Votre rendez-vous est confirmé"
		tmpl = statusConfirmedTmpl
	case appointment.StatusCancelled:
		subject = "Votre rendez-vous a été annulé"
		tmpl = statusCancelledTmpl
	default:
		return "", fmt.Errorf("no status email for %q", appt.Status)
	}

	body, err := renderTemplate(tmpl, emailData(appt))
	if err != nil {
		return "", err
	}
	return c.sendHTML(ctx, appt.ClientEmail, appt.ClientName, subject, body)
}
