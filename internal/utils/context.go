package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/recetario-dev/recetario/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (types.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return types.AuthenticatedUser{}, fmt.Errorf("user not authenticated")
	}

	authenticatedUser, ok := user.(types.AuthenticatedUser)

	if !ok {
		return types.AuthenticatedUser{}, fmt.Errorf("invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (string, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return "", err
	}

	return user.ID, nil
}

// ViewerID returns the authenticated user id or the empty string for
// anonymous requests, for handlers behind OptionalAuth.
func ViewerID(ctx *gin.Context) string {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return ""
	}

	return user.ID
}
