package models

import "time"

const (
	PropertyStatusOngoing   = "ongoing"
	PropertyStatusCompleted = "completed"
	PropertyStatusUpcoming  = "upcoming"
)

const (
	PropertyTypeResidential = "residential"
	PropertyTypeCommercial  = "commercial"
	PropertyTypeVilla       = "villa"
	PropertyTypeApartment   = "apartment"
)

// Property is a development project shown on the public site. Price and area
// are display strings ("₹ 45 Lakh onwards", "1200 sq.ft") rather than numbers.
type Property struct {
	BaseModel   `bson:",inline"`
	Title       string     `bson:"title" json:"title" validate:"required"`
	Description string     `bson:"description" json:"description" validate:"required"`
	Location    string     `bson:"location" json:"location" validate:"required"`
	Price       string     `bson:"price" json:"price" validate:"required"`
	Area        string     `bson:"area" json:"area" validate:"required"`
	Bedrooms    int        `bson:"bedrooms" json:"bedrooms" validate:"min=0"`
	Bathrooms   int        `bson:"bathrooms" json:"bathrooms" validate:"min=0"`
	Status      string     `bson:"status" json:"status" validate:"required,oneof=ongoing completed upcoming"`
	Type        string     `bson:"type" json:"type" validate:"required,oneof=residential commercial villa apartment"`
	Amenities   []string   `bson:"amenities" json:"amenities"`
	Images      []string   `bson:"images" json:"images"`
	IsActive    bool       `bson:"isActive" json:"isActive"`
	IsFeatured  bool       `bson:"isFeatured" json:"isFeatured"`
	Views       int64      `bson:"views" json:"views"`
	Inquiries   int64      `bson:"inquiries" json:"inquiries"`
	DeletedAt   *time.Time `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
}
