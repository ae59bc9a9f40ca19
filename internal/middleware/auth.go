package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/recetario-dev/recetario/internal/auth"
	"github.com/recetario-dev/recetario/internal/store"
	"github.com/recetario-dev/recetario/internal/types"
)

func bearerToken(ctx *gin.Context) string {
	authHeader := ctx.GetHeader("Authorization")

	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)

	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

func resolveUser(s *store.Store, token string) (types.AuthenticatedUser, bool) {
	userID, err := auth.VerifyToken(token)
	if err != nil {
		return types.AuthenticatedUser{}, false
	}

	user, err := s.UserByID(userID)
	if err != nil {
		return types.AuthenticatedUser{}, false
	}

	return types.AuthenticatedUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, true
}

// RequireAuth rejects requests without a valid Bearer token. On success the
// authenticated identity is stored in the request context as a value; no
// shared request state is mutated.
func RequireAuth(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)

		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		user, ok := resolveUser(s, token)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx.Set(types.ContextUserKey, user)
		ctx.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is presented and
// lets the request through anonymously otherwise. Used by public listings
// that annotate viewer-specific fields.
func OptionalAuth(s *store.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if token := bearerToken(ctx); token != "" {
			if user, ok := resolveUser(s, token); ok {
				ctx.Set(types.ContextUserKey, user)
			}
		}

		ctx.Next()
	}
}
