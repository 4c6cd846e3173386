package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildInquiryFilter(t *testing.T) {
	oid := primitive.NewObjectID()

	tests := []struct {
		name   string
		params map[string]string
		want   bson.M
	}{
		{
			name:   "empty params",
			params: map[string]string{},
			want:   bson.M{},
		},
		{
			name:   "status priority source compose",
			params: map[string]string{"status": "new", "priority": "high", "source": "website"},
			want:   bson.M{"status": "new", "priority": "high", "source": "website"},
		},
		{
			name:   "assignedTo",
			params: map[string]string{"assignedTo": "agent@example.com"},
			want:   bson.M{"assignedTo": "agent@example.com"},
		},
		{
			name:   "valid propertyId parses to objectid",
			params: map[string]string{"propertyId": oid.Hex()},
			want:   bson.M{"propertyId": oid},
		},
		{
			name:   "malformed propertyId matches nothing",
			params: map[string]string{"propertyId": "garbage"},
			want:   bson.M{"propertyId": primitive.NilObjectID},
		},
		{
			name:   "isRead false",
			params: map[string]string{"isRead": "false"},
			want:   bson.M{"isRead": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildInquiryFilter(tt.params))
		})
	}

	t.Run("search expands to field regexes", func(t *testing.T) {
		filter := buildInquiryFilter(map[string]string{"search": "rahul"})
		or, ok := filter["$or"].(bson.A)
		require.True(t, ok)
		assert.Len(t, or, 4)
	})

	t.Run("search input is regex-escaped", func(t *testing.T) {
		filter := buildInquiryFilter(map[string]string{"search": "a.b+c"})
		or := filter["$or"].(bson.A)
		first := or[0].(bson.M)["name"].(bson.M)
		assert.Equal(t, `a\.b\+c`, first["$regex"])
	})
}

func TestBuildInquiryPatch(t *testing.T) {
	now := time.Now()
	status := "contacted"
	notes := "called twice"
	read := true

	t.Run("status change stamps lastContactedAt", func(t *testing.T) {
		patch := buildInquiryPatch(InquiryPatch{Status: &status}, now)
		assert.Equal(t, "contacted", patch["status"])
		assert.Equal(t, now, patch["lastContactedAt"])
	})

	t.Run("non-status patch leaves the marker alone", func(t *testing.T) {
		patch := buildInquiryPatch(InquiryPatch{Notes: &notes, IsRead: &read}, now)
		assert.Equal(t, bson.M{"notes": notes, "isRead": true}, patch)
	})

	t.Run("empty body yields empty patch", func(t *testing.T) {
		assert.Empty(t, buildInquiryPatch(InquiryPatch{}, now))
	})
}
