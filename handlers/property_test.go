package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildPropertyFilter(t *testing.T) {
	tests := []struct {
		name       string
		params     map[string]string
		publicOnly bool
		want       bson.M
	}{
		{
			name:       "public listing always scopes to active",
			params:     map[string]string{},
			publicOnly: true,
			want:       bson.M{"isActive": true},
		},
		{
			name:       "admin listing has no implicit scope",
			params:     map[string]string{},
			publicOnly: false,
			want:       bson.M{},
		},
		{
			name:       "type and status compose",
			params:     map[string]string{"type": "villa", "status": "ongoing"},
			publicOnly: false,
			want:       bson.M{"type": "villa", "status": "ongoing"},
		},
		{
			name:       "status alone",
			params:     map[string]string{"status": "completed"},
			publicOnly: false,
			want:       bson.M{"status": "completed"},
		},
		{
			name:       "featured true",
			params:     map[string]string{"featured": "true"},
			publicOnly: false,
			want:       bson.M{"isFeatured": true},
		},
		{
			name:       "featured false",
			params:     map[string]string{"featured": "false"},
			publicOnly: false,
			want:       bson.M{"isFeatured": false},
		},
		{
			name:       "featured garbage ignored",
			params:     map[string]string{"featured": "maybe"},
			publicOnly: false,
			want:       bson.M{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildPropertyFilter(tt.params, tt.publicOnly))
		})
	}
}

func TestBuildPropertyPatch(t *testing.T) {
	price := "95 Lakh onwards"
	status := "completed"
	active := false
	beds := 4

	t.Run("only set fields land in the patch", func(t *testing.T) {
		patch := buildPropertyPatch(PropertyPatch{Price: &price, Status: &status})
		assert.Equal(t, bson.M{"price": price, "status": status}, patch)
	})

	t.Run("false and zero values survive pointer stripping", func(t *testing.T) {
		patch := buildPropertyPatch(PropertyPatch{IsActive: &active, Bedrooms: &beds})
		assert.Equal(t, bson.M{"isActive": false, "bedrooms": 4}, patch)
	})

	t.Run("empty body yields empty patch", func(t *testing.T) {
		assert.Empty(t, buildPropertyPatch(PropertyPatch{}))
	})
}

func TestParsePageLimit(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", page: "", limit: "", wantPage: 1, wantLimit: 10},
		{name: "explicit values", page: "3", limit: "25", wantPage: 3, wantLimit: 25},
		{name: "zero page ignored", page: "0", limit: "10", wantPage: 1, wantLimit: 10},
		{name: "negative limit ignored", page: "2", limit: "-1", wantPage: 2, wantLimit: 10},
		{name: "garbage ignored", page: "abc", limit: "xyz", wantPage: 1, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := parsePageLimit(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}
