package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/database"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/models"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthController struct {
	service *database.Service[models.User]
}

func NewAuthController() *AuthController {
	return &AuthController{
		service: database.NewService[models.User]("users"),
	}
}

func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, models.Fail("Email and password are required"))
	}

	user, err := ac.service.FindOne(c.Request().Context(), bson.M{"email": req.Email})
	if err != nil {
		if err == database.ErrNotFound {
			return c.JSON(http.StatusUnauthorized, models.Fail("Invalid email or password"))
		}
		return respondError(c, err)
	}
	if !user.IsActive {
		return c.JSON(http.StatusUnauthorized, models.Fail("Account is deactivated"))
	}
	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, models.Fail("Invalid email or password"))
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return respondError(c, err)
	}

	ac.stampLastLogin(user.ID)

	return c.JSON(http.StatusOK, models.OK(models.LoginResponse{Token: token, User: *user}))
}

// stampLastLogin records the login time without blocking or failing the
// login itself.
func (ac *AuthController) stampLastLogin(id primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := ac.service.UpdateMany(ctx, bson.M{"_id": id}, bson.M{"lastLoginAt": time.Now()}); err != nil {
		log.Warn().Err(err).Str("user", id.Hex()).Msg("failed to stamp last login")
	}
}

// Me returns the authenticated user behind the bearer token.
func (ac *AuthController) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(primitive.ObjectID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, models.Fail("Invalid token"))
	}

	user, err := ac.service.FindOne(c.Request().Context(), bson.M{"_id": userID})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, models.OK(user))
}
