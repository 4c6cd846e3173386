package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// HomeSlide is one hero-carousel entry on the landing page, sequenced by Order.
type HomeSlide struct {
	BaseModel `bson:",inline"`
	Title     string `bson:"title" json:"title" validate:"required"`
	Subtitle  string `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Image     string `bson:"image" json:"image" validate:"required"`
	CTAText   string `bson:"ctaText,omitempty" json:"ctaText,omitempty"`
	CTALink   string `bson:"ctaLink,omitempty" json:"ctaLink,omitempty"`
	Order     int    `bson:"order" json:"order" validate:"min=0"`
	IsActive  bool   `bson:"isActive" json:"isActive"`
}

// HomeVideo is the promo video slot. At most one video is active at a time;
// activating one deactivates the rest.
type HomeVideo struct {
	BaseModel   `bson:",inline"`
	Title       string `bson:"title" json:"title" validate:"required"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	VideoURL    string `bson:"videoUrl" json:"videoUrl" validate:"required"`
	Thumbnail   string `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Order       int    `bson:"order" json:"order" validate:"min=0"`
	IsActive    bool   `bson:"isActive" json:"isActive"`
}

// FeaturedReview pins an approved review onto the landing page.
type FeaturedReview struct {
	BaseModel   `bson:",inline"`
	ReviewID    *primitive.ObjectID `bson:"reviewId,omitempty" json:"reviewId,omitempty"`
	DisplayName string              `bson:"displayName" json:"displayName" validate:"required"`
	Quote       string              `bson:"quote" json:"quote" validate:"required"`
	Order       int                 `bson:"order" json:"order" validate:"min=0"`
	IsActive    bool                `bson:"isActive" json:"isActive"`
}

// HomeContent is the composed payload behind GET /api/home.
type HomeContent struct {
	Slides          []HomeSlide      `json:"slides"`
	Video           *HomeVideo       `json:"video,omitempty"`
	FeaturedReviews []FeaturedReview `json:"featuredReviews"`
}
