package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"rahul@example.com", true},
		{"a.b+tag@sub.domain.in", true},
		{"no-at-sign", false},
		{"@missing.local", false},
		{"user@", false},
		{"user@nodot", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+919876543210", true},
		{"020-2567-8900", true},
		{"98765 43210", true},
		{"12345", false},
		{"phone", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhone(tt.phone))
		})
	}
}

func TestIsOneOf(t *testing.T) {
	assert.True(t, IsOneOf("ongoing", "ongoing", "completed", "upcoming"))
	assert.False(t, IsOneOf("bogus", "ongoing", "completed", "upcoming"))
	assert.False(t, IsOneOf("", "ongoing"))
}

func TestMissingFields(t *testing.T) {
	t.Run("reports empties in declared order", func(t *testing.T) {
		missing := MissingFields(map[string]string{
			"name":    "",
			"email":   "a@b.co",
			"message": "",
		}, []string{"name", "email", "message"})
		assert.Equal(t, []string{"name", "message"}, missing)
	})

	t.Run("nothing missing", func(t *testing.T) {
		missing := MissingFields(map[string]string{"name": "x"}, []string{"name"})
		assert.Empty(t, missing)
	})
}

func TestClampRating(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 1}, {-3, 1}, {1, 1}, {3, 3}, {5, 5}, {6, 5}, {100, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampRating(tt.in))
	}
}
