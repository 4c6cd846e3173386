package models

import "time"

const (
	ContactStatusNew       = "new"
	ContactStatusResponded = "responded"
	ContactStatusResolved  = "resolved"
)

// Contact is a general contact-form submission (not tied to a property).
type Contact struct {
	BaseModel   `bson:",inline"`
	Name        string     `bson:"name" json:"name" validate:"required"`
	Email       string     `bson:"email" json:"email" validate:"required,email"`
	Phone       string     `bson:"phone,omitempty" json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Subject     string     `bson:"subject" json:"subject" validate:"required"`
	Message     string     `bson:"message" json:"message" validate:"required"`
	Status      string     `bson:"status" json:"status" validate:"required,oneof=new responded resolved"`
	IsRead      bool       `bson:"isRead" json:"isRead"`
	RespondedAt *time.Time `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
}
