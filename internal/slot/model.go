package slot

import "time"

// TimeSlot is a bookable (date, time) unit. Slots are pure inventory:
// nothing links them to appointments, the frontend cross-references the two
// itself and toggles availability after a booking.
type TimeSlot struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Date        string    `bson:"date" json:"date"`
	Time        string    `bson:"time" json:"time"`
	IsAvailable bool      `bson:"is_available" json:"is_available"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type CreateRequest struct {
	Date        string `json:"date" validate:"required,date"`
	Time        string `json:"time" validate:"required,clock"`
	IsAvailable *bool  `json:"is_available"`
}

type AvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}
