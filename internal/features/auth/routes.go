package auth

import (
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/huddleapp/huddle/internal/config"
	"github.com/huddleapp/huddle/internal/pkg/ratelimit"
)

// RegisterRoutes wires the sign-in endpoints. Sign-in is rate limited per
// client IP since it sits in front of the external identity provider.
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, firebase *fbauth.Client) *Repository {
	repo := NewRepository(db)
	handler := NewHandler(repo, firebase, cfg)

	limiter := ratelimit.New(20, time.Minute)

	group := router.Group("/auth")
	group.Use(ratelimit.Middleware(limiter))
	{
		group.POST("/google", handler.GoogleLogin)
		if firebase != nil {
			group.POST("/firebase", handler.FirebaseLogin)
		}
	}

	return repo
}
