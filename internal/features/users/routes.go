package users

import (
	"github.com/gin-gonic/gin"

	"github.com/huddleapp/huddle/internal/config"
	"github.com/huddleapp/huddle/internal/features/auth"
	"github.com/huddleapp/huddle/internal/pkg/cloudinary"
)

// RegisterRoutes mounts the directory and profile endpoints. cld may be nil
// when Cloudinary is not configured; avatar uploads then answer 503.
func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, repo *auth.Repository, cld *cloudinary.Service) {
	handler := NewHandler(repo, cld)

	group := router.Group("/users")
	group.Use(auth.Middleware(cfg.JWTSecret))
	{
		group.GET("", handler.Directory)
		group.GET("/me", handler.Me)
		group.PUT("/me", handler.UpdateMe)
		group.PUT("/me/avatar", handler.UploadAvatar)
	}
}
