package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/database"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/models"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

const propertyCacheTTL = 60 * time.Second

type PropertyController struct {
	service *database.Service[models.Property]
}

func NewPropertyController() *PropertyController {
	return &PropertyController{
		service: database.NewService[models.Property]("properties"),
	}
}

// buildPropertyFilter translates list query params into a bson filter.
// publicOnly restricts results to active listings.
func buildPropertyFilter(params map[string]string, publicOnly bool) bson.M {
	filter := bson.M{}
	if publicOnly {
		filter["isActive"] = true
	}
	if t := params["type"]; t != "" {
		filter["type"] = t
	}
	if s := params["status"]; s != "" {
		filter["status"] = s
	}
	switch params["featured"] {
	case "true":
		filter["isFeatured"] = true
	case "false":
		filter["isFeatured"] = false
	}
	return filter
}

type propertyListResult struct {
	Data  []models.Property `json:"data"`
	Total int64             `json:"total"`
}

func (pc *PropertyController) list(c echo.Context, publicOnly bool) error {
	ctx := c.Request().Context()

	params := map[string]string{
		"type":     c.QueryParam("type"),
		"status":   c.QueryParam("status"),
		"featured": c.QueryParam("featured"),
		"search":   c.QueryParam("search"),
		"page":     c.QueryParam("page"),
		"limit":    c.QueryParam("limit"),
		"sort":     c.QueryParam("sort"),
		"order":    c.QueryParam("order"),
	}
	page, limit := pagination(c)
	skip, lim := database.PageWindow(page, limit)
	filter := buildPropertyFilter(params, publicOnly)

	var cacheKey string
	if publicOnly {
		cacheKey = utils.GenerateQueryCacheKey("properties", params)
		var cached propertyListResult
		if hit, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && hit {
			return c.JSON(http.StatusOK, models.OKList(cached.Data, cached.Total, page, limit))
		}
	}

	opt := database.FindOptions{Skip: skip, Limit: lim}
	var (
		properties []models.Property
		total      int64
		err        error
	)
	if search := params["search"]; search != "" {
		if params["sort"] != "" {
			opt.Sort = database.SortSpec(params["sort"], params["order"])
		}
		properties, total, err = pc.service.Search(ctx, search, filter, opt)
	} else {
		opt.Sort = database.SortSpec(params["sort"], params["order"])
		properties, total, err = pc.service.Find(ctx, filter, opt)
	}
	if err != nil {
		return respondError(c, err)
	}

	if publicOnly {
		if err := utils.SetCached(ctx, cacheKey, propertyListResult{Data: properties, Total: total}, propertyCacheTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache property listing")
		}
	}
	return c.JSON(http.StatusOK, models.OKList(properties, total, page, limit))
}

// ListProperties serves the public catalogue: active listings only, cached.
func (pc *PropertyController) ListProperties(c echo.Context) error {
	return pc.list(c, true)
}

// ListAllProperties serves the back-office: inactive listings included.
func (pc *PropertyController) ListAllProperties(c echo.Context) error {
	return pc.list(c, false)
}

// GetProperty fetches one listing and bumps its view counter. The counter
// write is best-effort and never fails the read.
func (pc *PropertyController) GetProperty(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if err := pc.service.IncrementByID(ctx, id, "views", 1); err != nil {
		if err != database.ErrNotFound && err != database.ErrInvalidID {
			log.Warn().Err(err).Str("id", id).Msg("failed to bump property views")
		}
	}

	property, err := pc.service.FindByID(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(property))
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	var property models.Property
	if err := c.Bind(&property); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}

	missing := utils.MissingFields(map[string]string{
		"title":       property.Title,
		"description": property.Description,
		"location":    property.Location,
		"price":       property.Price,
		"area":        property.Area,
		"type":        property.Type,
		"status":      property.Status,
	}, []string{"title", "description", "location", "price", "area", "type", "status"})
	if len(missing) > 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("Missing required fields: "+strings.Join(missing, ", ")))
	}

	property.IsActive = true
	property.Views = 0
	property.Inquiries = 0
	if property.Amenities == nil {
		property.Amenities = []string{}
	}
	if property.Images == nil {
		property.Images = []string{}
	}

	created, err := pc.service.Create(c.Request().Context(), &property)
	if err != nil {
		return respondError(c, err)
	}
	pc.invalidateCache()
	return c.JSON(http.StatusCreated, models.OKMessage(created, "Property created successfully"))
}

// PropertyPatch is the partial update body; nil fields are left untouched.
type PropertyPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Price       *string   `json:"price,omitempty"`
	Area        *string   `json:"area,omitempty"`
	Bedrooms    *int      `json:"bedrooms,omitempty"`
	Bathrooms   *int      `json:"bathrooms,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
	IsFeatured  *bool     `json:"isFeatured,omitempty"`
}

func buildPropertyPatch(p PropertyPatch) bson.M {
	patch := bson.M{}
	if p.Title != nil {
		patch["title"] = *p.Title
	}
	if p.Description != nil {
		patch["description"] = *p.Description
	}
	if p.Location != nil {
		patch["location"] = *p.Location
	}
	if p.Price != nil {
		patch["price"] = *p.Price
	}
	if p.Area != nil {
		patch["area"] = *p.Area
	}
	if p.Bedrooms != nil {
		patch["bedrooms"] = *p.Bedrooms
	}
	if p.Bathrooms != nil {
		patch["bathrooms"] = *p.Bathrooms
	}
	if p.Status != nil {
		patch["status"] = *p.Status
	}
	if p.Type != nil {
		patch["type"] = *p.Type
	}
	if p.Amenities != nil {
		patch["amenities"] = *p.Amenities
	}
	if p.Images != nil {
		patch["images"] = *p.Images
	}
	if p.IsActive != nil {
		patch["isActive"] = *p.IsActive
	}
	if p.IsFeatured != nil {
		patch["isFeatured"] = *p.IsFeatured
	}
	return patch
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	var body PropertyPatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	patch := buildPropertyPatch(body)
	if len(patch) == 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("No fields to update"))
	}

	updated, err := pc.service.UpdateByID(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	pc.invalidateCache()
	return c.JSON(http.StatusOK, models.OKMessage(updated, "Property updated successfully"))
}

// DeleteProperty removes a listing. soft=true marks it inactive with a
// deletion timestamp instead of removing the document.
func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var err error
	if c.QueryParam("soft") == "true" {
		err = pc.service.SoftDeleteByID(ctx, id)
	} else {
		err = pc.service.DeleteByID(ctx, id)
	}
	if err != nil {
		return respondError(c, err)
	}
	pc.invalidateCache()
	return c.JSON(http.StatusOK, models.Envelope{Success: true, Message: "Property deleted successfully"})
}

func (pc *PropertyController) invalidateCache() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := utils.InvalidatePrefix(ctx, "properties"); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate property cache")
	}
}
