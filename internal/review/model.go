package review

import "time"

type Review struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	ClientName  string    `bson:"client_name" json:"client_name"`
	ServiceType string    `bson:"service_type" json:"service_type"`
	Rating      int       `bson:"rating" json:"rating"`
	Comment     string    `bson:"comment" json:"comment"`
	IsPublished bool      `bson:"is_published" json:"is_published"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// CreateRequest deliberately carries no publication field: a submitted
// review always starts unpublished, whatever the client sends.
type CreateRequest struct {
	ClientName  string `json:"client_name" validate:"required,max=120"`
	ServiceType string `json:"service_type" validate:"required,max=60"`
	Rating      int    `json:"rating" validate:"required"`
	Comment     string `json:"comment" validate:"required,max=2000"`
}

type PublishRequest struct {
	IsPublished *bool `json:"is_published" validate:"required"`
}
