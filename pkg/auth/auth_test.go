package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cliff-de-tech/library-service/pkg/auth"
)

func identity(role auth.Role) auth.Identity {
	return auth.Identity{
		Username:    "tester",
		Role:        role,
		Permissions: role.Permissions(),
	}
}

func TestPermissionCheck(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name    string
		check   auth.Access
		id      auth.Identity
		allowed bool
	}{
		{name: "admin can delete", check: auth.PermissionCheck(auth.CanDelete), id: identity(auth.RoleAdmin), allowed: true},
		{name: "librarian can create", check: auth.PermissionCheck(auth.CanCreate), id: identity(auth.RoleLibrarian), allowed: true},
		{name: "librarian cannot delete", check: auth.PermissionCheck(auth.CanDelete), id: identity(auth.RoleLibrarian), allowed: false},
		{name: "member can view", check: auth.PermissionCheck(auth.CanView), id: identity(auth.RoleMember), allowed: true},
		{name: "member cannot edit", check: auth.PermissionCheck(auth.CanEdit), id: identity(auth.RoleMember), allowed: false},
		{name: "empty identity denied", check: auth.PermissionCheck(auth.CanView), id: auth.Identity{}, allowed: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.allowed, tt.check.Allowed(tt.id))
		})
	}
}

func TestRoleCheck(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name    string
		check   auth.Access
		id      auth.Identity
		allowed bool
	}{
		{name: "admin view for admin", check: auth.RoleCheck(auth.RoleAdmin), id: identity(auth.RoleAdmin), allowed: true},
		{name: "admin view for member", check: auth.RoleCheck(auth.RoleAdmin), id: identity(auth.RoleMember), allowed: false},
		{name: "librarian view for librarian", check: auth.RoleCheck(auth.RoleLibrarian), id: identity(auth.RoleLibrarian), allowed: true},
		{name: "member view for librarian", check: auth.RoleCheck(auth.RoleMember), id: identity(auth.RoleLibrarian), allowed: false},
		{name: "empty identity denied", check: auth.RoleCheck(auth.RoleMember), id: auth.Identity{}, allowed: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.allowed, tt.check.Allowed(tt.id))
		})
	}
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"ADMIN", "LIBRARIAN", "MEMBER"} {
		role, err := auth.ParseRole(s)
		require.NoError(t, err)
		require.Equal(t, s, string(role))
	}

	_, err := auth.ParseRole("admin")
	require.Error(t, err)
	_, err = auth.ParseRole("")
	require.Error(t, err)
}

func TestRolePermissions(t *testing.T) {
	t.Parallel()

	require.ElementsMatch(t,
		[]auth.Permission{auth.CanView, auth.CanCreate, auth.CanEdit, auth.CanDelete},
		auth.RoleAdmin.Permissions())
	require.ElementsMatch(t,
		[]auth.Permission{auth.CanView, auth.CanCreate, auth.CanEdit},
		auth.RoleLibrarian.Permissions())
	require.ElementsMatch(t,
		[]auth.Permission{auth.CanView},
		auth.RoleMember.Permissions())
	require.Empty(t, auth.Role("GUEST").Permissions())
}
