package models

import "time"

type RequestStatus string

const (
	StatusNew RequestStatus = "new"
)

// ContactRequest is a single contact-form submission. Records are
// append-only: nothing in this service updates or deletes them.
type ContactRequest struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Company string `bson:"company,omitempty" json:"company,omitempty"`
	Message string `bson:"message" json:"message"`

	Status    RequestStatus `bson:"status" json:"status"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}
