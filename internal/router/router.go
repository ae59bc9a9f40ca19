package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/recetario-dev/recetario/internal/handlers"
	"github.com/recetario-dev/recetario/internal/middleware"
	"github.com/recetario-dev/recetario/internal/store"
	"github.com/recetario-dev/recetario/internal/types"
)

func NewRouter(s *store.Store) *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.New(s)

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheck)

		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.GET("/me", middleware.RequireAuth(s), h.Me)
		api.PUT("/profile", middleware.RequireAuth(s), h.UpdateProfile)
		api.POST("/users/:id/promote", middleware.RequireAuth(s), h.PromoteUser)

		api.GET("/recipes", h.ListRecipes)
		api.GET("/recipes-summary", h.ListRecipesSummary)
		api.GET("/recipes/:id", h.GetRecipe)
		api.GET("/recipes/:id/comments", middleware.OptionalAuth(s), h.ListComments)

		authed := api.Group("", middleware.RequireAuth(s))
		{
			authed.POST("/recipes", h.CreateRecipe)
			authed.PUT("/recipes/:id", h.UpdateRecipe)
			authed.DELETE("/recipes/:id", h.DeleteRecipe)

			authed.POST("/recipes/:id/like", h.LikeRecipe)
			authed.DELETE("/recipes/:id/like", h.UnlikeRecipe)
			authed.GET("/favorites", h.ListFavorites)
			authed.GET("/favorites/ids", h.ListFavoriteIDs)

			authed.POST("/recipes/:id/comments", h.CreateComment)
			authed.PUT("/comments/:id", h.UpdateComment)
			authed.DELETE("/comments/:id", h.DeleteComment)
			authed.POST("/comments/:id/react", h.ReactToComment)

			authed.POST("/suggestions", h.CreateSuggestion)
			authed.GET("/suggestions", h.ListSuggestions)
			authed.DELETE("/suggestions/:id", h.DeleteSuggestion)
		}
	}

	return r
}
