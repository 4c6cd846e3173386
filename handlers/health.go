package handlers

import (
	"net/http"

	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/config"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/models"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness plus document-store reachability.
func HealthCheck(c echo.Context) error {
	status := map[string]string{
		"status":   "ok",
		"database": "up",
	}
	code := http.StatusOK

	if err := config.Ping(c.Request().Context()); err != nil {
		status["status"] = "degraded"
		status["database"] = "down"
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, models.OK(status))
}
