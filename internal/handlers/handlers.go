package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recetario-dev/recetario/internal/auth"
	"github.com/recetario-dev/recetario/internal/models"
	"github.com/recetario-dev/recetario/internal/store"
	"github.com/recetario-dev/recetario/internal/types"
	"github.com/recetario-dev/recetario/internal/utils"
)

// Handler bundles the HTTP handlers around the injected store handle.
type Handler struct {
	Store *store.Store
}

func New(s *store.Store) *Handler {
	return &Handler{Store: s}
}

func userResponse(user models.User) types.UserResponse {
	return types.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// requireAdmin resolves the current user and rejects non-admins. Handlers
// behind RequireAuth use it for the admin-only routes.
func requireAdmin(ctx *gin.Context) (types.AuthenticatedUser, bool) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return types.AuthenticatedUser{}, false
	}

	if !auth.IsAdmin(currentUser) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Administrator privileges required"})
		return types.AuthenticatedUser{}, false
	}

	return currentUser, true
}
