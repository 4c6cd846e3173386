package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/database"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/models"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// respondError maps the record access layer's error taxonomy onto HTTP status
// codes. Malformed ids and confirmed absences both map to 404: a malformed id
// can never name a resource. Store-level failures are logged in full and
// surfaced as a generic 500.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, database.ErrNotFound), errors.Is(err, database.ErrInvalidID):
		return c.JSON(http.StatusNotFound, models.Fail("Record not found"))
	case database.IsValidation(err):
		return c.JSON(http.StatusBadRequest, models.Fail(err.Error()))
	default:
		log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request failed")
		return c.JSON(http.StatusInternalServerError, models.Fail("Internal server error"))
	}
}

// parsePageLimit converts the page/limit query strings into sane values:
// 1-indexed page defaulting to 1, limit defaulting to 10.
func parsePageLimit(pageStr, limitStr string) (page, limit int) {
	page, limit = 1, 10
	if n, err := strconv.Atoi(pageStr); err == nil && n > 0 {
		page = n
	}
	if n, err := strconv.Atoi(limitStr); err == nil && n > 0 {
		limit = n
	}
	return page, limit
}

func pagination(c echo.Context) (page, limit int) {
	return parsePageLimit(c.QueryParam("page"), c.QueryParam("limit"))
}
