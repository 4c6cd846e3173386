package models

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

const (
	ReviewCategoryQuality   = "quality"
	ReviewCategoryService   = "service"
	ReviewCategoryLocation  = "location"
	ReviewCategoryAmenities = "amenities"
	ReviewCategoryValue     = "value"
)

// Review is a customer testimonial. Only approved reviews are listed publicly;
// moderation happens through the admin back-office.
type Review struct {
	BaseModel    `bson:",inline"`
	Name         string `bson:"name" json:"name" validate:"required"`
	Email        string `bson:"email" json:"email" validate:"required,email"`
	Phone        string `bson:"phone,omitempty" json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Location     string `bson:"location" json:"location" validate:"required"`
	Rating       int    `bson:"rating" json:"rating" validate:"required,min=1,max=5"`
	Review       string `bson:"review" json:"review" validate:"required"`
	Property     string `bson:"property" json:"property" validate:"required"`
	PropertyType string `bson:"propertyType" json:"propertyType" validate:"required,oneof=residential commercial"`
	Category     string `bson:"category" json:"category" validate:"required,oneof=quality service location amenities value"`
	Verified     bool   `bson:"verified" json:"verified"`
	Helpful      int64  `bson:"helpful" json:"helpful"`
	Status       string `bson:"status" json:"status" validate:"required,oneof=pending approved rejected"`
}

// ReviewStats is the aggregate shape behind the admin dashboard.
type ReviewStats struct {
	Status        string  `bson:"_id" json:"status"`
	Count         int64   `bson:"count" json:"count"`
	AverageRating float64 `bson:"averageRating" json:"averageRating"`
}
