package handlers

import (
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
)

type ContactController struct {
	service *database.Service[models.Contact]
}

func NewContactController() *ContactController {
	return &ContactController{
		service: database.NewService[models.Contact]("contacts"),
	}
}

type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (cc *ContactController) CreateContact(c echo.Context) error {
	var req CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}

	missing := utils.MissingFields(map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
		"message": req.Message,
	}, []string{"name", "email", "subject", "message"})
	if len(missing) > 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("Missing required fields: "+strings.Join(missing, ", ")))
	}
	if !utils.IsValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid email format"))
	}
	if req.Phone != "" && !utils.IsValidPhone(req.Phone) {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid phone format"))
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}

	created, err := cc.service.Create(c.Request().Context(), &contact)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, models.OKMessage(created, "Message sent successfully"))
}

func buildContactFilter(params map[string]string) bson.M {
	filter := bson.M{}
	if s := params["status"]; s != "" {
		filter["status"] = s
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
			bson.M{"subject": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"message": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}
	return filter
}

func (cc *ContactController) ListContacts(c echo.Context) error {
	filter := buildContactFilter(map[string]string{
		"status": c.QueryParam("status"),
		"isRead": c.QueryParam("isRead"),
		"search": c.QueryParam("search"),
	})
	page, limit := pagination(c)
	skip, lim := database.PageWindow(page, limit)

	contacts, total, err := cc.service.Find(c.Request().Context(), filter, database.FindOptions{
		Sort:  database.SortSpec(c.QueryParam("sort"), c.QueryParam("order")),
		Skip:  skip,
		Limit: lim,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OKList(contacts, total, page, limit))
}

// GetContact fetches one submission and marks it read, at most once.
func (cc *ContactController) GetContact(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if oid, err := database.ParseID(id); err == nil {
		if _, err := cc.service.UpdateMany(ctx, bson.M{"_id": oid, "isRead": false}, bson.M{"isRead": true}); err != nil {
			log.Warn().Err(err).Str("id", id).Msg("failed to mark contact read")
		}
	}

	contact, err := cc.service.FindByID(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(contact))
}

type ContactPatch struct {
	Status *string `json:"status,omitempty"`
	IsRead *bool   `json:"isRead,omitempty"`
}

// buildContactPatch strips unset fields; moving to responded stamps the
// response timestamp.
func buildContactPatch(p ContactPatch, now time.Time) bson.M {
	patch := bson.M{}
	if p.Status != nil {
		patch["status"] = *p.Status
		if *p.Status == models.ContactStatusResponded {
			patch["respondedAt"] = now
		}
	}
	if p.IsRead != nil {
		patch["isRead"] = *p.IsRead
	}
	return patch
}

// UpdateContact accepts either a patch body or the action=markRead shortcut
// used by the inbox list view.
func (cc *ContactController) UpdateContact(c echo.Context) error {
	if c.QueryParam("action") == "markRead" {
		updated, err := cc.service.UpdateByID(c.Request().Context(), c.Param("id"), bson.M{"isRead": true})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, models.OKMessage(updated, "Contact marked as read"))
	}

	var body ContactPatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	patch := buildContactPatch(body, time.Now())
	if len(patch) == 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("No fields to update"))
	}

	updated, err := cc.service.UpdateByID(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OKMessage(updated, "Contact updated successfully"))
}
