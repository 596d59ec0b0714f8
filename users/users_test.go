package users_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdsayeed/rentease-go/users"
)

func TestValidatePasswordStrength(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, users.ValidatePasswordStrength("Test123456"))
	})

	t.Run("too short", func(t *testing.T) {
		err := users.ValidatePasswordStrength("Ab1")
		require.Error(t, err)
		require.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("no uppercase", func(t *testing.T) {
		err := users.ValidatePasswordStrength("test123456")
		require.Error(t, err)
		require.Contains(t, err.Error(), "uppercase")
	})

	t.Run("no lowercase", func(t *testing.T) {
		err := users.ValidatePasswordStrength("TEST123456")
		require.Error(t, err)
		require.Contains(t, err.Error(), "lowercase")
	})

	t.Run("no number", func(t *testing.T) {
		err := users.ValidatePasswordStrength("TestTestTest")
		require.Error(t, err)
		require.Contains(t, err.Error(), "number")
	})
}

func TestRoleType_Valid(t *testing.T) {
	require.True(t, users.RoleCustomer.Valid())
	require.True(t, users.RoleAgent.Valid())
	require.True(t, users.RoleAdmin.Valid())
	require.False(t, users.RoleType("landlord").Valid())
	require.False(t, users.RoleType("").Valid())
}

func TestUser_HasFavorite(t *testing.T) {
	u := &users.User{Favorites: []string{"prop-1", "prop-2"}}
	require.True(t, u.HasFavorite("prop-2"))
	require.False(t, u.HasFavorite("prop-3"))
	require.False(t, (&users.User{}).HasFavorite("prop-1"))
}

func TestUser_FullName(t *testing.T) {
	u := &users.User{FirstName: "John", LastName: "Doe"}
	require.Equal(t, "John Doe", u.FullName())
}
