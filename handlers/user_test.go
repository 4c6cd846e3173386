package handlers

import (
	"testing"

	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/models"
	"github.com/HarshwardhanPatil07/Piyush-Lifespaces-Pvt-Ltd-sub000/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserPatch(t *testing.T) {
	name := "New Name"
	role := "manager"
	inactive := false
	password := "s3cret!"
	perms := []string{"properties:write"}

	t.Run("plain fields pass through", func(t *testing.T) {
		patch, err := buildUserPatch(models.UpdateUserRequest{Name: &name, Role: &role, IsActive: &inactive, Permissions: &perms})
		require.NoError(t, err)
		assert.Equal(t, "New Name", patch["name"])
		assert.Equal(t, "manager", patch["role"])
		assert.Equal(t, false, patch["isActive"])
		assert.Equal(t, perms, patch["permissions"])
	})

	t.Run("password is hashed, never stored raw", func(t *testing.T) {
		patch, err := buildUserPatch(models.UpdateUserRequest{Password: &password})
		require.NoError(t, err)
		hashed, ok := patch["password"].(string)
		require.True(t, ok)
		assert.NotEqual(t, password, hashed)
		assert.NoError(t, utils.CheckPassword(hashed, password))
	})

	t.Run("empty request yields empty patch", func(t *testing.T) {
		patch, err := buildUserPatch(models.UpdateUserRequest{})
		require.NoError(t, err)
		assert.Empty(t, patch)
	})
}
