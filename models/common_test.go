package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{name: "exact multiple", total: 30, limit: 10, want: 3},
		{name: "remainder adds a page", total: 31, limit: 10, want: 4},
		{name: "single partial page", total: 7, limit: 10, want: 1},
		{name: "empty result", total: 0, limit: 10, want: 0},
		{name: "limit one", total: 5, limit: 1, want: 5},
		{name: "zero limit", total: 5, limit: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit))
		})
	}
}

func TestEnvelopes(t *testing.T) {
	t.Run("list envelope carries pagination", func(t *testing.T) {
		env := OKList([]string{"a", "b"}, 25, 2, 10)
		assert.True(t, env.Success)
		require.NotNil(t, env.Total)
		assert.Equal(t, int64(25), *env.Total)
		assert.Equal(t, 2, *env.Page)
		assert.Equal(t, 10, *env.Limit)
		assert.Equal(t, 3, *env.TotalPages)
	})

	t.Run("failure envelope", func(t *testing.T) {
		env := Fail("Record not found")
		assert.False(t, env.Success)
		assert.Equal(t, "Record not found", env.Error)
		assert.Nil(t, env.Data)
	})

	t.Run("pagination fields omitted when absent", func(t *testing.T) {
		raw, err := json.Marshal(OK("x"))
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "totalPages")
		assert.NotContains(t, string(raw), "error")
	})
}

func TestBaseModelStamps(t *testing.T) {
	var b BaseModel
	now := time.Now()

	b.StampCreate(now)
	assert.False(t, b.ID.IsZero())
	assert.Equal(t, now, b.CreatedAt)
	assert.Equal(t, now, b.UpdatedAt)

	id := b.ID
	later := now.Add(time.Hour)
	b.StampUpdate(later)
	assert.Equal(t, id, b.ID)
	assert.Equal(t, now, b.CreatedAt)
	assert.Equal(t, later, b.UpdatedAt)
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	u := User{Name: "Admin", Email: "admin@example.com", Password: "hashed-secret", Role: RoleAdmin}
	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hashed-secret")
	assert.NotContains(t, string(raw), "password")
}
