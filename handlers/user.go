package handlers

import (
	"net/http"
	"strings"

	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/database"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/models"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/utils"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserController manages back-office accounts. Every route is admin-gated.
type UserController struct {
	service *database.Service[models.User]
}

func NewUserController() *UserController {
	return &UserController{
		service: database.NewService[models.User]("users"),
	}
}

func (uc *UserController) ListUsers(c echo.Context) error {
	filter := bson.M{}
	if role := c.QueryParam("role"); role != "" {
		filter["role"] = role
	}
	switch c.QueryParam("isActive") {
	case "true":
		filter["isActive"] = true
	case "false":
		filter["isActive"] = false
	}

	page, limit := pagination(c)
	skip, lim := database.PageWindow(page, limit)

	users, total, err := uc.service.Find(c.Request().Context(), filter, database.FindOptions{
		Sort:  database.SortSpec(c.QueryParam("sort"), c.QueryParam("order")),
		Skip:  skip,
		Limit: lim,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OKList(users, total, page, limit))
}

func (uc *UserController) GetUser(c echo.Context) error {
	user, err := uc.service.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(user))
}

func (uc *UserController) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}

	missing := utils.MissingFields(map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
		"role":     req.Role,
	}, []string{"name", "email", "password", "role"})
	if len(missing) > 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("Missing required fields: "+strings.Join(missing, ", ")))
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return respondError(c, err)
	}

	permissions := req.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashed,
		Role:        req.Role,
		IsActive:    true,
		Permissions: permissions,
	}

	created, err := uc.service.Create(c.Request().Context(), &user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, models.Fail("User with this email already exists"))
		}
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, models.OKMessage(created, "User created successfully"))
}

func buildUserPatch(req models.UpdateUserRequest) (bson.M, error) {
	patch := bson.M{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.Email != nil {
		patch["email"] = *req.Email
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		patch["password"] = hashed
	}
	if req.Role != nil {
		patch["role"] = *req.Role
	}
	if req.IsActive != nil {
		patch["isActive"] = *req.IsActive
	}
	if req.Permissions != nil {
		patch["permissions"] = *req.Permissions
	}
	return patch, nil
}

func (uc *UserController) UpdateUser(c echo.Context) error {
	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	patch, err := buildUserPatch(req)
	if err != nil {
		return respondError(c, err)
	}
	if len(patch) == 0 {
		return c.JSON(http.StatusBadRequest, models.Fail("No fields to update"))
	}

	updated, err := uc.service.UpdateByID(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, models.Fail("User with this email already exists"))
		}
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OKMessage(updated, "User updated successfully"))
}

// DeleteUser deactivates by default (soft=true) or removes permanently.
func (uc *UserController) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var err error
	if c.QueryParam("soft") == "true" {
		err = uc.service.SoftDeleteByID(ctx, id)
	} else {
		err = uc.service.DeleteByID(ctx, id)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.Envelope{Success: true, Message: "User deleted successfully"})
}
