package auth

import (
	"github.com/recetario-dev/recetario/internal/models"
	"github.com/recetario-dev/recetario/internal/types"
)

// IsAdmin reports whether the authenticated actor holds the admin role.
func IsAdmin(actor types.AuthenticatedUser) bool {
	return actor.Role == models.RoleAdmin
}

// CanManageComment reports whether the actor may edit or delete the
// comment: its author, or an admin.
func CanManageComment(actor types.AuthenticatedUser, comment models.Comment) bool {
	return actor.ID == comment.UserID || IsAdmin(actor)
}
