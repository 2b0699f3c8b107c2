package auth

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"hostelms/internal/errors"
	"hostelms/internal/model"
)

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

// IsAdmin reports whether the caller carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == model.RoleAdmin
}

// CheckRole denies unauthenticated callers and callers whose role is outside
// the allowed set. An empty set allows any authenticated caller.
func CheckRole(ident *Identity, allowedRoles ...string) error {
	if ident == nil {
		return errors.Auth("user not authenticated")
	}
	if len(allowedRoles) == 0 {
		return nil
	}
	for _, role := range allowedRoles {
		if ident.Role == role {
			return nil
		}
	}
	return errors.Forbidden(fmt.Sprintf("access denied: this operation requires %s role", strings.Join(allowedRoles, " or ")))
}

// CheckOwner allows admins and the owner of the resource; everyone else is
// denied with the given message.
func CheckOwner(ident *Identity, ownerID uuid.UUID, denyMessage string) error {
	if ident == nil {
		return errors.Auth("user not authenticated")
	}
	if ident.Role == model.RoleAdmin || ident.UserID == ownerID {
		return nil
	}
	return errors.Forbidden(denyMessage)
}
