package appointment

import "time"

const (
	ServiceSimple = "simple"
	ServiceMoyen  = "moyen"
	ServiceCharge = "charge"
	ServiceMariee = "mariee"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"

	LocationDomicile = "domicile"
	LocationAtelier  = "atelier"
)

var validStatuses = map[string]struct{}{
	StatusPending:   {},
	StatusConfirmed: {},
	StatusCancelled: {},
}

func IsValidStatus(value string) bool {
	_, ok := validStatuses[value]
	return ok
}

// ServiceInfo is the fixed display catalog shown on the site and in
// confirmation emails. Prices are informational, never billed here.
type ServiceInfo struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Duration string `json:"duration"`
	Note     string `json:"note,omitempty"`
}

var Services = map[string]ServiceInfo{
	ServiceSimple: {Name: "Henné Simple", Price: 5, Duration: "30min"},
	ServiceMoyen:  {Name: "Henné Moyen", Price: 8, Duration: "45min-1h", Note: "par main"},
	ServiceCharge: {Name: "Henné Chargé", Price: 12, Duration: "1h-1h30", Note: "par main"},
	ServiceMariee: {Name: "Henné Mariée", Price: 20, Duration: "1h30-2h", Note: "par main"},
}

func IsValidServiceType(value string) bool {
	_, ok := Services[value]
	return ok
}

func ServiceName(serviceType string) string {
	if info, ok := Services[serviceType]; ok {
		return info.Name
	}
	return serviceType
}

type Appointment struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	ClientName      string    `bson:"client_name" json:"client_name"`
	ClientEmail     string    `bson:"client_email" json:"client_email"`
	ClientPhone     string    `bson:"client_phone" json:"client_phone"`
	ClientInstagram string    `bson:"client_instagram,omitempty" json:"client_instagram,omitempty"`
	ServiceType     string    `bson:"service_type" json:"service_type"`
	Date            string    `bson:"appointment_date" json:"appointment_date"`
	Time            string    `bson:"appointment_time" json:"appointment_time"`
	LocationType    string    `bson:"location_type" json:"location_type"`
	Address         string    `bson:"address,omitempty" json:"address,omitempty"`
	AdditionalNotes string    `bson:"additional_notes,omitempty" json:"additional_notes,omitempty"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

type CreateRequest struct {
	ClientName      string `json:"client_name" validate:"required,max=120"`
	ClientEmail     string `json:"client_email" validate:"required,email"`
	ClientPhone     string `json:"client_phone" validate:"required,phone"`
	ClientInstagram string `json:"client_instagram" validate:"omitempty,max=120"`
	ServiceType     string `json:"service_type" validate:"required"`
	Date            string `json:"appointment_date" validate:"required,date"`
	Time            string `json:"appointment_time" validate:"required,clock"`
	LocationType    string `json:"location_type" validate:"required,oneof=domicile atelier"`
	Address         string `json:"address" validate:"omitempty,max=300"`
	AdditionalNotes string `json:"additional_notes" validate:"omitempty,max=2000"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}
