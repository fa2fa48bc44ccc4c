package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"
)

// JWTKey signs and verifies access tokens. app.Run overrides it
// from config before the server starts.
var JWTKey = []byte("library-dev-key")

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleLibrarian Role = "LIBRARIAN"
	RoleMember    Role = "MEMBER"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleAdmin, RoleLibrarian, RoleMember:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type Permission string

const (
	CanView   Permission = "can_view"
	CanCreate Permission = "can_create"
	CanEdit   Permission = "can_edit"
	CanDelete Permission = "can_delete"
)

// Permissions returns the grants attached to a role. Admins hold
// everything, librarians manage the catalog but cannot delete,
// members only read.
func (r Role) Permissions() []Permission {
	switch r {
	case RoleAdmin:
		return []Permission{CanView, CanCreate, CanEdit, CanDelete}
	case RoleLibrarian:
		return []Permission{CanView, CanCreate, CanEdit}
	case RoleMember:
		return []Permission{CanView}
	}
	return nil
}

// Identity is the authenticated principal attached to a request.
type Identity struct {
	Username    string
	Role        Role
	Permissions []Permission
}

func (id Identity) HasPermission(p Permission) bool {
	for _, have := range id.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// Access is a single authorization predicate evaluated before a
// gated operation runs.
type Access interface {
	Allowed(id Identity) bool
	fmt.Stringer
}

type PermissionCheck Permission

func (p PermissionCheck) Allowed(id Identity) bool {
	return id.HasPermission(Permission(p))
}

func (p PermissionCheck) String() string {
	return "permission " + string(p)
}

type RoleCheck Role

func (r RoleCheck) Allowed(id Identity) bool {
	return id.Role == Role(r)
}

func (r RoleCheck) String() string {
	return "role " + string(r)
}

type Claims struct {
	Profile struct {
		Username    string   `json:"username"`
		Role        string   `json:"role"`
		Permissions []string `json:"permissions"`
	} `json:"profile"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity maps token claims onto the request principal.
func (c *Claims) Identity() Identity {
	id := Identity{
		Username: c.Profile.Username,
		Role:     Role(c.Profile.Role),
	}
	for _, p := range c.Profile.Permissions {
		id.Permissions = append(id.Permissions, Permission(p))
	}
	return id
}

type contextKey int

const identityKey contextKey = iota + 1

func SetAuthContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
