package database

import (
	"errors"
	"testing"

	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	t.Run("valid hex id", func(t *testing.T) {
		oid := primitive.NewObjectID()
		parsed, err := ParseID(oid.Hex())
		require.NoError(t, err)
		assert.Equal(t, oid, parsed)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := ParseID("not-an-object-id")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := ParseID("")
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: []string{"Email", "Rating"}}
	assert.Equal(t, "validation failed on field(s): Email, Rating", err.Error())
	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(ErrNotFound))
	assert.False(t, IsValidation(errors.New("boom")))

	empty := &ValidationError{}
	assert.Equal(t, "validation failed", empty.Error())
}

func TestShapeValidation(t *testing.T) {
	base := func() models.Property {
		return models.Property{
			Title:       "Skyline Residency",
			Description: "3BHK towers near the ring road",
			Location:    "Baner, Pune",
			Price:       "85 Lakh onwards",
			Area:        "1450 sq.ft",
			Status:      models.PropertyStatusOngoing,
			Type:        models.PropertyTypeResidential,
		}
	}

	t.Run("valid property passes", func(t *testing.T) {
		p := base()
		assert.NoError(t, validate.Struct(&p))
	})

	t.Run("bogus status enum is rejected", func(t *testing.T) {
		p := base()
		p.Status = "bogus"
		err := toValidationError(validate.Struct(&p))
		require.Error(t, err)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "Status")
	})

	t.Run("negative bedrooms rejected", func(t *testing.T) {
		p := base()
		p.Bedrooms = -1
		err := toValidationError(validate.Struct(&p))
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "Bedrooms")
	})

	t.Run("missing required field rejected", func(t *testing.T) {
		p := base()
		p.Title = ""
		err := toValidationError(validate.Struct(&p))
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "Title")
	})

	t.Run("rating out of range rejected", func(t *testing.T) {
		r := models.Review{
			Name:         "A",
			Email:        "a@example.com",
			Location:     "Pune",
			Rating:       9,
			Review:       "great",
			Property:     "Skyline",
			PropertyType: models.PropertyTypeResidential,
			Category:     models.ReviewCategoryQuality,
			Status:       models.ReviewStatusPending,
		}
		err := toValidationError(validate.Struct(&r))
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "Rating")
	})
}

func TestMergePatch(t *testing.T) {
	current := &models.Property{
		Title:       "Skyline Residency",
		Description: "towers",
		Location:    "Pune",
		Price:       "85 Lakh",
		Area:        "1450 sq.ft",
		Bedrooms:    3,
		Status:      models.PropertyStatusOngoing,
		Type:        models.PropertyTypeVilla,
		IsActive:    true,
	}

	t.Run("patched fields overlay, others survive", func(t *testing.T) {
		merged, err := mergePatch(current, bson.M{"price": "90 Lakh", "status": "completed"})
		require.NoError(t, err)
		assert.Equal(t, "90 Lakh", merged.Price)
		assert.Equal(t, models.PropertyStatusCompleted, merged.Status)
		assert.Equal(t, "Skyline Residency", merged.Title)
		assert.Equal(t, 3, merged.Bedrooms)
		assert.True(t, merged.IsActive)
	})

	t.Run("empty patch is identity", func(t *testing.T) {
		merged, err := mergePatch(current, bson.M{})
		require.NoError(t, err)
		assert.Equal(t, current.Title, merged.Title)
		assert.Equal(t, current.Price, merged.Price)
	})

	t.Run("merged document re-validates", func(t *testing.T) {
		merged, err := mergePatch(current, bson.M{"status": "bogus"})
		require.NoError(t, err)
		assert.Error(t, validate.Struct(merged))
	})
}
