package lists

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/huddleapp/huddle/internal/config"
	"github.com/huddleapp/huddle/internal/features/auth"
)

// RegisterRoutes wires the list endpoints behind the auth middleware.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, directory Directory) {
	repo := NewRepository(db)
	service := NewService(repo, directory)
	handler := NewHandler(service)

	group := router.Group("/lists")
	group.Use(auth.Middleware(cfg.JWTSecret))
	{
		group.POST("", handler.Create)
		group.GET("", handler.List)
		group.GET("/:listId", handler.Get)
		group.PUT("/:listId", handler.Update)
		group.DELETE("/:listId", handler.Delete)
		group.POST("/:listId/archive", handler.Archive)
		group.POST("/:listId/share", handler.Share)

		group.POST("/:listId/items", handler.AddItem)
		group.PUT("/:listId/items/:itemId", handler.UpdateItem)
		group.DELETE("/:listId/items/:itemId", handler.DeleteItem)
	}
}
