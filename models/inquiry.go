package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	InquiryStatusNew           = "new"
	InquiryStatusContacted     = "contacted"
	InquiryStatusQualified     = "qualified"
	InquiryStatusClosed        = "closed"
	InquiryStatusNotInterested = "not-interested"
)

const (
	InquirySourceWebsite  = "website"
	InquirySourcePhone    = "phone"
	InquirySourceEmail    = "email"
	InquirySourceSocial   = "social"
	InquirySourceReferral = "referral"
	InquirySourceWalkIn   = "walk-in"
)

const (
	InquiryPriorityLow    = "low"
	InquiryPriorityMedium = "medium"
	InquiryPriorityHigh   = "high"
)

// Inquiry is a lead captured from the website or logged by staff. Property
// holds the free-text project name the visitor typed; PropertyID is filled by
// the best-effort title/location match after create.
type Inquiry struct {
	BaseModel       `bson:",inline"`
	Name            string              `bson:"name" json:"name" validate:"required"`
	Email           string              `bson:"email" json:"email" validate:"required,email"`
	Phone           string              `bson:"phone" json:"phone" validate:"required,min=7,max=20"`
	Property        string              `bson:"property,omitempty" json:"property,omitempty"`
	PropertyID      *primitive.ObjectID `bson:"propertyId,omitempty" json:"propertyId,omitempty"`
	Message         string              `bson:"message" json:"message" validate:"required"`
	Status          string              `bson:"status" json:"status" validate:"required,oneof=new contacted qualified closed not-interested"`
	Source          string              `bson:"source" json:"source" validate:"required,oneof=website phone email social referral walk-in"`
	Priority        string              `bson:"priority" json:"priority" validate:"required,oneof=low medium high"`
	AssignedTo      string              `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	Notes           string              `bson:"notes,omitempty" json:"notes,omitempty"`
	IsRead          bool                `bson:"isRead" json:"isRead"`
	LastContactedAt *time.Time          `bson:"lastContactedAt,omitempty" json:"lastContactedAt,omitempty"`
}

// InquiryWithProperty is the $lookup-joined shape returned when populate=true.
type InquiryWithProperty struct {
	Inquiry         `bson:",inline"`
	PropertyDetails *Property `bson:"propertyDetails,omitempty" json:"propertyDetails,omitempty"`
}
