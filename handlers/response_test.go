package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/database"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found maps to 404", err: database.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "malformed id also maps to 404", err: database.ErrInvalidID, wantStatus: http.StatusNotFound},
		{name: "validation maps to 400", err: &database.ValidationError{Fields: []string{"Status"}}, wantStatus: http.StatusBadRequest},
		{name: "anything else maps to 500", err: errors.New("connection reset"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/properties/x", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, respondError(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var env models.Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
		})
	}

	t.Run("store detail is not leaked on 500", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, respondError(c, errors.New("dial tcp 10.0.0.3:27017: i/o timeout")))
		assert.NotContains(t, rec.Body.String(), "27017")
	})
}
