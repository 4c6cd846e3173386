package handlers

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/database"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/models"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type InquiryController struct {
	service    *database.Service[models.Inquiry]
	properties *database.Service[models.Property]
}

func NewInquiryController() *InquiryController {
	return &InquiryController{
		service:    database.NewService[models.Inquiry]("inquiries"),
		properties: database.NewService[models.Property]("properties"),
	}
}

type CreateInquiryRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Property string `json:"property"`
	Message  string `json:"message"`
	Source   string `json:"source"`
}

// CreateInquiry captures a lead from the website. Linking the free-text
// property name to a listing is a best-effort side effect: its failure never
// fails the create.
func (ic *InquiryController) CreateInquiry(c echo.Context) error {
	var req CreateInquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}

	missing := utils.MissingFields(map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"phone":   req.Phone,
		"message": req.Message,
	}, []string{"name", "email", "phone", "message"})
	if len(missing) > 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("Missing required fields: "+strings.Join(missing, ", ")))
	}
	if !utils.IsValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid email format"))
	}
	if !utils.IsValidPhone(req.Phone) {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid phone format"))
	}

	source := req.Source
	if source == "" {
		source = models.InquirySourceWebsite
	}
	inquiry := models.Inquiry{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Property: req.Property,
		Message:  req.Message,
		Status:   models.InquiryStatusNew,
		Source:   source,
		Priority: models.InquiryPriorityMedium,
	}

	created, err := ic.service.Create(c.Request().Context(), &inquiry)
	if err != nil {
		return respondError(c, err)
	}

	if req.Property != "" {
		ic.linkToProperty(created)
	}

	return c.JSON(http.StatusCreated, models.OKMessage(created, "Inquiry submitted successfully"))
}

// linkToProperty resolves the free-text property name with a case-insensitive
// partial match on title/location, attaches the reference and bumps the
// listing's inquiry counter. Every failure is swallowed with a log line.
func (ic *InquiryController) linkToProperty(inquiry *models.Inquiry) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pattern := regexp.QuoteMeta(strings.TrimSpace(inquiry.Property))
	property, err := ic.properties.FindOne(ctx, bson.M{
		"isActive": true,
		"$or": bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"location": bson.M{"$regex": pattern, "$options": "i"}},
		},
	})
	if err != nil {
		if err != database.ErrNotFound {
			log.Warn().Err(err).Str("property", inquiry.Property).Msg("property lookup for inquiry link failed")
		}
		return
	}

	if _, err := ic.service.UpdateByID(ctx, inquiry.ID.Hex(), bson.M{"propertyId": property.ID}); err != nil {
		log.Warn().Err(err).Str("inquiry", inquiry.ID.Hex()).Msg("failed to attach property reference")
		return
	}
	inquiry.PropertyID = &property.ID

	if err := ic.properties.IncrementByID(ctx, property.ID.Hex(), "inquiries", 1); err != nil {
		log.Warn().Err(err).Str("property", property.ID.Hex()).Msg("failed to bump property inquiry counter")
	}
}

// buildInquiryFilter translates list query params into a bson filter. A
// malformed propertyId filters to nothing rather than erroring.
func buildInquiryFilter(params map[string]string) bson.M {
	filter := bson.M{}
	if s := params["status"]; s != "" {
		filter["status"] = s
	}
	if p := params["priority"]; p != "" {
		filter["priority"] = p
	}
	if s := params["source"]; s != "" {
		filter["source"] = s
	}
	if a := params["assignedTo"]; a != "" {
		filter["assignedTo"] = a
	}
	if pid := params["propertyId"]; pid != "" {
		if oid, err := database.ParseID(pid); err == nil {
			filter["propertyId"] = oid
		} else {
			filter["propertyId"] = primitive.NilObjectID
		}
	}
	switch params["isRead"] {
	case "true":
		filter["isRead"] = true
	case "false":
		filter["isRead"] = false
	}
	if search := params["search"]; search != "" {
		pattern := regexp.QuoteMeta(search)
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"phone": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"message": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	return filter
}

func (ic *InquiryController) ListInquiries(c echo.Context) error {
	ctx := c.Request().Context()

	params := map[string]string{
		"status":     c.QueryParam("status"),
		"priority":   c.QueryParam("priority"),
		"source":     c.QueryParam("source"),
		"assignedTo": c.QueryParam("assignedTo"),
		"propertyId": c.QueryParam("propertyId"),
		"isRead":     c.QueryParam("isRead"),
		"search":     c.QueryParam("search"),
	}
	filter := buildInquiryFilter(params)
	page, limit := pagination(c)
	skip, lim := database.PageWindow(page, limit)
	sort := database.SortSpec(c.QueryParam("sort"), c.QueryParam("order"))

	if c.QueryParam("populate") == "true" {
		return ic.listPopulated(c, filter, sort, skip, lim, page, limit)
	}

	inquiries, total, err := ic.service.Find(ctx, filter, database.FindOptions{
		Sort: sort, Skip: skip, Limit: lim,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OKList(inquiries, total, page, limit))
}

// listPopulated joins each inquiry with its linked property via $lookup.
func (ic *InquiryController) listPopulated(c echo.Context, filter bson.M, sort bson.D, skip, lim int64, page, limit int) error {
	ctx := c.Request().Context()

	total, err := ic.service.Count(ctx, filter)
	if err != nil {
		return respondError(c, err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: sort}},
		{{Key: "$skip", Value: skip}},
		{{Key: "$limit", Value: lim}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "properties",
			"localField":   "propertyId",
			"foreignField": "_id",
			"as":           "propertyDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$propertyDetails",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	results := make([]models.InquiryWithProperty, 0)
	if err := ic.service.Aggregate(ctx, pipeline, &results); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OKList(results, total, page, limit))
}

// GetInquiry fetches one lead and marks it read. The flip happens at most
// once and never fails the read.
func (ic *InquiryController) GetInquiry(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if oid, err := database.ParseID(id); err == nil {
		if _, err := ic.service.UpdateMany(ctx, bson.M{"_id": oid, "isRead": false}, bson.M{"isRead": true}); err != nil {
			log.Warn().Err(err).Str("id", id).Msg("failed to mark inquiry read")
		}
	}

	inquiry, err := ic.service.FindByID(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(inquiry))
}

type InquiryPatch struct {
	Status     *string `json:"status,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	AssignedTo *string `json:"assignedTo,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	IsRead     *bool   `json:"isRead,omitempty"`
}

// buildInquiryPatch strips unset fields and stamps lastContactedAt on any
// status change.
func buildInquiryPatch(p InquiryPatch, now time.Time) bson.M {
	patch := bson.M{}
	if p.Status != nil {
		patch["status"] = *p.Status
		patch["lastContactedAt"] = now
	}
	if p.Priority != nil {
		patch["priority"] = *p.Priority
	}
	if p.AssignedTo != nil {
		patch["assignedTo"] = *p.AssignedTo
	}
	if p.Notes != nil {
		patch["notes"] = *p.Notes
	}
	if p.IsRead != nil {
		patch["isRead"] = *p.IsRead
	}
	return patch
}

func (ic *InquiryController) UpdateInquiry(c echo.Context) error {
	var body InquiryPatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	patch := buildInquiryPatch(body, time.Now())
	if len(patch) == 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("No fields to update"))
	}

	updated, err := ic.service.UpdateByID(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OKMessage(updated, "Inquiry updated successfully"))
}

func (ic *InquiryController) DeleteInquiry(c echo.Context) error {
	if err := ic.service.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Envelope{Success: true, Message: "Inquiry deleted successfully"})
}
