package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateQueryCacheKey(t *testing.T) {
	t.Run("same params yield same key regardless of insertion order", func(t *testing.T) {
		a := GenerateQueryCacheKey("properties", map[string]string{"type": "villa", "status": "ongoing", "page": "1"})
		b := GenerateQueryCacheKey("properties", map[string]string{"page": "1", "status": "ongoing", "type": "villa"})
		assert.Equal(t, a, b)
	})

	t.Run("different params yield different keys", func(t *testing.T) {
		a := GenerateQueryCacheKey("properties", map[string]string{"page": "1"})
		b := GenerateQueryCacheKey("properties", map[string]string{"page": "2"})
		assert.NotEqual(t, a, b)
	})

	t.Run("prefix namespaces the key", func(t *testing.T) {
		a := GenerateQueryCacheKey("properties", map[string]string{"page": "1"})
		b := GenerateQueryCacheKey("reviews", map[string]string{"page": "1"})
		assert.NotEqual(t, a, b)
		assert.Contains(t, a, "properties:")
	})
}
