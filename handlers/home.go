package handlers

import (
	"net/http"

	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/database"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/models"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// HomeController manages the landing-page content: hero slides, the promo
// video slot and featured testimonials.
type HomeController struct {
	slides   *database.Service[models.HomeSlide]
	videos   *database.Service[models.HomeVideo]
	featured *database.Service[models.FeaturedReview]
}

func NewHomeController() *HomeController {
	return &HomeController{
		slides:   database.NewService[models.HomeSlide]("homeslides"),
		videos:   database.NewService[models.HomeVideo]("homevideos"),
		featured: database.NewService[models.FeaturedReview]("featuredreviews"),
	}
}

var orderAsc = bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: 1}}

// GetHomeContent composes the public landing-page payload: active slides and
// testimonials in display order plus the single active video.
func (hc *HomeController) GetHomeContent(c echo.Context) error {
	ctx := c.Request().Context()

	slides, _, err := hc.slides.Find(ctx, bson.M{"isActive": true}, database.FindOptions{Sort: orderAsc})
	if err != nil {
		return respondError(c, err)
	}
	featured, _, err := hc.featured.Find(ctx, bson.M{"isActive": true}, database.FindOptions{Sort: orderAsc})
	if err != nil {
		return respondError(c, err)
	}

	content := models.HomeContent{
		Slides:          slides,
		FeaturedReviews: featured,
	}
	video, err := hc.videos.FindOne(ctx, bson.M{"isActive": true})
	if err == nil {
		content.Video = video
	} else if err != database.ErrNotFound {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.OK(content))
}

// --- Hero slides ---

func (hc *HomeController) ListSlides(c echo.Context) error {
	slides, _, err := hc.slides.Find(c.Request().Context(), bson.M{}, database.FindOptions{Sort: orderAsc})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(slides))
}

func (hc *HomeController) CreateSlide(c echo.Context) error {
	var slide models.HomeSlide
	if err := c.Bind(&slide); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	slide.IsActive = true

	created, err := hc.slides.Create(c.Request().Context(), &slide)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, models.OKMessage(created, "Slide created successfully"))
}

type SlidePatch struct {
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	Image    *string `json:"image,omitempty"`
	CTAText  *string `json:"ctaText,omitempty"`
	CTALink  *string `json:"ctaLink,omitempty"`
	Order    *int    `json:"order,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func buildSlidePatch(p SlidePatch) bson.M {
	patch := bson.M{}
	if p.Title != nil {
		patch["title"] = *p.Title
	}
	if p.Subtitle != nil {
		patch["subtitle"] = *p.Subtitle
	}
	if p.Image != nil {
		patch["image"] = *p.Image
	}
	if p.CTAText != nil {
		patch["ctaText"] = *p.CTAText
	}
	if p.CTALink != nil {
		patch["ctaLink"] = *p.CTALink
	}
	if p.Order != nil {
		patch["order"] = *p.Order
	}
	if p.IsActive != nil {
		patch["isActive"] = *p.IsActive
	}
	return patch
}

func (hc *HomeController) UpdateSlide(c echo.Context) error {
	var body SlidePatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	patch := buildSlidePatch(body)
	if len(patch) == 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("No fields to update"))
	}

	updated, err := hc.slides.UpdateByID(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OKMessage(updated, "Slide updated successfully"))
}

func (hc *HomeController) DeleteSlide(c echo.Context) error {
	if err := hc.slides.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Envelope{Success: true, Message: "Slide deleted successfully"})
}

// --- Promo video ---

func (hc *HomeController) ListVideos(c echo.Context) error {
	videos, _, err := hc.videos.Find(c.Request().Context(), bson.M{}, database.FindOptions{Sort: orderAsc})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(videos))
}

// CreateVideo stores a new promo video. A video created active displaces any
// currently active one.
func (hc *HomeController) CreateVideo(c echo.Context) error {
	ctx := c.Request().Context()

	var video models.HomeVideo
	if err := c.Bind(&video); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}

	if video.IsActive {
		if _, err := hc.videos.UpdateMany(ctx, bson.M{"isActive": true}, bson.M{"isActive": false}); err != nil {
			return respondError(c, err)
		}
	}

	created, err := hc.videos.Create(ctx, &video)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, models.OKMessage(created, "Video created successfully"))
}

type VideoPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	VideoURL    *string `json:"videoUrl,omitempty"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
	Order       *int    `json:"order,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func buildVideoPatch(p VideoPatch) bson.M {
	patch := bson.M{}
	if p.Title != nil {
		patch["title"] = *p.Title
	}
	if p.Description != nil {
		patch["description"] = *p.Description
	}
	if p.VideoURL != nil {
		patch["videoUrl"] = *p.VideoURL
	}
	if p.Thumbnail != nil {
		patch["thumbnail"] = *p.Thumbnail
	}
	if p.Order != nil {
		patch["order"] = *p.Order
	}
	if p.IsActive != nil {
		patch["isActive"] = *p.IsActive
	}
	return patch
}

// UpdateVideo patches a video. Activation deactivates every other video
// first so at most one stays active.
func (hc *HomeController) UpdateVideo(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var body VideoPatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	patch := buildVideoPatch(body)
	if len(patch) == 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("No fields to update"))
	}

	if body.IsActive != nil && *body.IsActive {
		oid, err := database.ParseID(id)
		if err != nil {
			return respondError(c, err)
		}
		if _, err := hc.videos.UpdateMany(ctx, bson.M{"_id": bson.M{"$ne": oid}, "isActive": true}, bson.M{"isActive": false}); err != nil {
			return respondError(c, err)
		}
	}

	updated, err := hc.videos.UpdateByID(ctx, id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OKMessage(updated, "Video updated successfully"))
}

func (hc *HomeController) DeleteVideo(c echo.Context) error {
	if err := hc.videos.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Envelope{Success: true, Message: "Video deleted successfully"})
}

// --- Featured testimonials ---

func (hc *HomeController) ListFeaturedReviews(c echo.Context) error {
	featured, _, err := hc.featured.Find(c.Request().Context(), bson.M{}, database.FindOptions{Sort: orderAsc})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(featured))
}

func (hc *HomeController) CreateFeaturedReview(c echo.Context) error {
	var featured models.FeaturedReview
	if err := c.Bind(&featured); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	featured.IsActive = true

	created, err := hc.featured.Create(c.Request().Context(), &featured)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, models.OKMessage(created, "Featured review created successfully"))
}

type FeaturedReviewPatch struct {
	DisplayName *string `json:"displayName,omitempty"`
	Quote       *string `json:"quote,omitempty"`
	Order       *int    `json:"order,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func buildFeaturedReviewPatch(p FeaturedReviewPatch) bson.M {
	patch := bson.M{}
	if p.DisplayName != nil {
		patch["displayName"] = *p.DisplayName
	}
	if p.Quote != nil {
		patch["quote"] = *p.Quote
	}
	if p.Order != nil {
		patch["order"] = *p.Order
	}
	if p.IsActive != nil {
		patch["isActive"] = *p.IsActive
	}
	return patch
}

func (hc *HomeController) UpdateFeaturedReview(c echo.Context) error {
	var body FeaturedReviewPatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	patch := buildFeaturedReviewPatch(body)
	if len(patch) == 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("No fields to update"))
	}

	updated, err := hc.featured.UpdateByID(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OKMessage(updated, "Featured review updated successfully"))
}

func (hc *HomeController) DeleteFeaturedReview(c echo.Context) error {
	if err := hc.featured.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Envelope{Success: true, Message: "Featured review deleted successfully"})
}
