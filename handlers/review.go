package handlers

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/database"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/models"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/utils"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

type ReviewController struct {
	service *database.Service[models.Review]
}

func NewReviewController() *ReviewController {
	return &ReviewController{
		service: database.NewService[models.Review]("reviews"),
	}
}

type CreateReviewRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Rating       int    `json:"rating"`
	Review       string `json:"review"`
	Property     string `json:"property"`
	PropertyType string `json:"propertyType"`
	Category     string `json:"category"`
}

// CreateReview accepts a public testimonial. New reviews land in pending
// until an admin moderates them.
func (rc *ReviewController) CreateReview(c echo.Context) error {
	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}

	fields := map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"location": req.Location,
		"review":   req.Review,
		"property": req.Property,
	}
	if req.Rating != 0 {
		fields["rating"] = strconv.Itoa(req.Rating)
	}
	missing := utils.MissingFields(fields, []string{"name", "email", "location", "rating", "review", "property"})
	if len(missing) > 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("Missing required fields: "+strings.Join(missing, ", ")))
	}
	if !utils.IsValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid email format"))
	}
	if req.Phone != "" && !utils.IsValidPhone(req.Phone) {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid phone format"))
	}

	propertyType := req.PropertyType
	if propertyType == "" {
		propertyType = models.PropertyTypeResidential
	}
	category := req.Category
	if category == "" {
		category = models.ReviewCategoryQuality
	}

	review := models.Review{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		Rating:       utils.ClampRating(req.Rating),
		Review:       req.Review,
		Property:     req.Property,
		PropertyType: propertyType,
		Category:     category,
		Status:       models.ReviewStatusPending,
	}

	created, err := rc.service.Create(c.Request().Context(), &review)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, models.OKMessage(created, "Review submitted for moderation"))
}

// buildReviewFilter translates list query params into a bson filter.
// includeAll widens the listing beyond approved reviews; callers must gate it
// behind an admin token.
func buildReviewFilter(params map[string]string, includeAll bool) bson.M {
	filter := bson.M{}
	if !includeAll {
		filter["status"] = models.ReviewStatusApproved
	} else if s := params["status"]; s != "" {
		filter["status"] = s
	}
	if r := params["rating"]; r != "" {
		if n, err := strconv.Atoi(r); err == nil {
			filter["rating"] = n
		}
	}
	if p := params["property"]; p != "" {
		filter["property"] = bson.M{"$regex": regexp.QuoteMeta(p), "$options": "i"}
	}
	if cat := params["category"]; cat != "" {
		filter["category"] = cat
	}
	if search := params["search"]; search != "" {
		pattern := regexp.QuoteMeta(search)
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"review": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"property": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	return filter
}

// mapReviewSort translates the sortBy shorthand used by the reviews page.
func mapReviewSort(sortBy string) bson.D {
	switch sortBy {
	case "oldest":
		return bson.D{{Key: "createdAt", Value: 1}}
	case "highest":
		return bson.D{{Key: "rating", Value: -1}, {Key: "createdAt", Value: -1}}
	case "lowest":
		return bson.D{{Key: "rating", Value: 1}, {Key: "createdAt", Value: -1}}
	case "helpful":
		return bson.D{{Key: "helpful", Value: -1}, {Key: "createdAt", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

// isAdminRequest reports whether the request carries a valid admin bearer
// token. Used on public routes that accept an admin override.
func isAdminRequest(c echo.Context) bool {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return false
	}
	claims, err := utils.ValidateJWT(parts[1])
	if err != nil {
		return false
	}
	return claims.Role == models.RoleAdmin
}

// ListReviews serves approved reviews publicly; includeAll=true with an admin
// token lists every status for the moderation queue.
func (rc *ReviewController) ListReviews(c echo.Context) error {
	includeAll := c.QueryParam("includeAll") == "true" && isAdminRequest(c)

	filter := buildReviewFilter(map[string]string{
		"status":   c.QueryParam("status"),
		"rating":   c.QueryParam("rating"),
		"property": c.QueryParam("property"),
		"category": c.QueryParam("category"),
		"search":   c.QueryParam("search"),
	}, includeAll)
	page, limit := pagination(c)
	skip, lim := database.PageWindow(page, limit)

	reviews, total, err := rc.service.Find(c.Request().Context(), filter, database.FindOptions{
		Sort:  mapReviewSort(c.QueryParam("sortBy")),
		Skip:  skip,
		Limit: lim,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OKList(reviews, total, page, limit))
}

func (rc *ReviewController) GetReview(c echo.Context) error {
	review, err := rc.service.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(review))
}

type ReviewPatch struct {
	Status   *string `json:"status,omitempty"`
	Verified *bool   `json:"verified,omitempty"`
}

func buildReviewPatch(p ReviewPatch) bson.M {
	patch := bson.M{}
	if p.Status != nil {
		patch["status"] = *p.Status
	}
	if p.Verified != nil {
		patch["verified"] = *p.Verified
	}
	return patch
}

// UpdateReview moderates a review: status change and/or verified flag.
func (rc *ReviewController) UpdateReview(c echo.Context) error {
	var body ReviewPatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	patch := buildReviewPatch(body)
	if len(patch) == 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("No fields to update"))
	}

	updated, err := rc.service.UpdateByID(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OKMessage(updated, "Review updated successfully"))
}

// MarkHelpful bumps the public helpful counter.
func (rc *ReviewController) MarkHelpful(c echo.Context) error {
	id := c.Param("id")
	if err := rc.service.IncrementByID(c.Request().Context(), id, "helpful", 1); err != nil {
		return respondError(c, err)
	}
	review, err := rc.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(review))
}

func (rc *ReviewController) DeleteReview(c echo.Context) error {
	if err := rc.service.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Envelope{Success: true, Message: "Review deleted successfully"})
}
