package handlers

import (
	"net/http"

	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/database"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/models"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StatsController backs the admin dashboard with aggregate counts.
type StatsController struct {
	properties *database.Service[models.Property]
	inquiries  *database.Service[models.Inquiry]
	contacts   *database.Service[models.Contact]
	reviews    *database.Service[models.Review]
}

func NewStatsController() *StatsController {
	return &StatsController{
		properties: database.NewService[models.Property]("properties"),
		inquiries:  database.NewService[models.Inquiry]("inquiries"),
		contacts:   database.NewService[models.Contact]("contacts"),
		reviews:    database.NewService[models.Review]("reviews"),
	}
}

type statusCount struct {
	Status string `bson:"_id" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}

type viewsTotal struct {
	Views     int64 `bson:"views" json:"views"`
	Inquiries int64 `bson:"inquiries" json:"inquiries"`
}

// DashboardStats is the payload behind GET /api/admin/stats.
type DashboardStats struct {
	PropertiesByStatus []statusCount        `json:"propertiesByStatus"`
	InquiriesByStatus  []statusCount        `json:"inquiriesByStatus"`
	ReviewsByStatus    []models.ReviewStats `json:"reviewsByStatus"`
	TotalViews         int64                `json:"totalViews"`
	TotalInquiryCount  int64                `json:"totalInquiryCount"`
	UnreadInquiries    int64                `json:"unreadInquiries"`
	UnreadContacts     int64                `json:"unreadContacts"`
}

func groupByStatus() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

func (sc *StatsController) GetDashboardStats(c echo.Context) error {
	ctx := c.Request().Context()
	stats := DashboardStats{
		PropertiesByStatus: make([]statusCount, 0),
		InquiriesByStatus:  make([]statusCount, 0),
		ReviewsByStatus:    make([]models.ReviewStats, 0),
	}

	if err := sc.properties.Aggregate(ctx, groupByStatus(), &stats.PropertiesByStatus); err != nil {
		return respondError(c, err)
	}
	if err := sc.inquiries.Aggregate(ctx, groupByStatus(), &stats.InquiriesByStatus); err != nil {
		return respondError(c, err)
	}

	reviewPipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":           "$status",
			"count":         bson.M{"$sum": 1},
			"averageRating": bson.M{"$avg": "$rating"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	if err := sc.reviews.Aggregate(ctx, reviewPipeline, &stats.ReviewsByStatus); err != nil {
		return respondError(c, err)
	}

	totalsPipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":       nil,
			"views":     bson.M{"$sum": "$views"},
			"inquiries": bson.M{"$sum": "$inquiries"},
		}}},
	}
	totals := make([]viewsTotal, 0)
	if err := sc.properties.Aggregate(ctx, totalsPipeline, &totals); err != nil {
		return respondError(c, err)
	}
	if len(totals) > 0 {
		stats.TotalViews = totals[0].Views
		stats.TotalInquiryCount = totals[0].Inquiries
	}

	unreadInquiries, err := sc.inquiries.Count(ctx, bson.M{"isRead": false})
	if err != nil {
		return respondError(c, err)
	}
	stats.UnreadInquiries = unreadInquiries

	unreadContacts, err := sc.contacts.Count(ctx, bson.M{"isRead": false})
	if err != nil {
		return respondError(c, err)
	}
	stats.UnreadContacts = unreadContacts

	return c.JSON(http.StatusOK, models.OK(stats))
}
