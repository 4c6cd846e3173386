package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildContactFilter(t *testing.T) {
	t.Run("empty params", func(t *testing.T) {
		assert.Equal(t, bson.M{}, buildContactFilter(map[string]string{}))
	})

	t.Run("status and read flag", func(t *testing.T) {
		filter := buildContactFilter(map[string]string{"status": "new", "isRead": "true"})
		assert.Equal(t, bson.M{"status": "new", "isRead": true}, filter)
	})

	t.Run("search spans name email subject message", func(t *testing.T) {
		filter := buildContactFilter(map[string]string{"search": "pricing"})
		or, ok := filter["$or"].(bson.A)
		require.True(t, ok)
		assert.Len(t, or, 4)
	})
}

func TestBuildContactPatch(t *testing.T) {
	now := time.Now()
	responded := "responded"
	resolved := "resolved"
	read := true

	t.Run("responded status stamps respondedAt", func(t *testing.T) {
		patch := buildContactPatch(ContactPatch{Status: &responded}, now)
		assert.Equal(t, "responded", patch["status"])
		assert.Equal(t, now, patch["respondedAt"])
	})

	t.Run("other statuses do not stamp", func(t *testing.T) {
		patch := buildContactPatch(ContactPatch{Status: &resolved}, now)
		assert.Equal(t, bson.M{"status": "resolved"}, patch)
	})

	t.Run("read flag only", func(t *testing.T) {
		patch := buildContactPatch(ContactPatch{IsRead: &read}, now)
		assert.Equal(t, bson.M{"isRead": true}, patch)
	})
}
