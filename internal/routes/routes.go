package routes

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/huddleapp/huddle/internal/config"
	"github.com/huddleapp/huddle/internal/features/auth"
	"github.com/huddleapp/huddle/internal/features/lists"
	"github.com/huddleapp/huddle/internal/features/users"
	"github.com/huddleapp/huddle/internal/pkg/cloudinary"
	"github.com/huddleapp/huddle/internal/pkg/logger"
)

// listsDirectoryAdapter adapts auth.Repository to the lists.Directory interface.
type listsDirectoryAdapter struct {
	repo *auth.Repository
}

func (a *listsDirectoryAdapter) FindBySubject(ctx context.Context, subject string) (*auth.User, error) {
	return a.repo.GetBySubject(ctx, subject)
}

func (a *listsDirectoryAdapter) Summaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]auth.UserSummary, error) {
	found, err := a.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	summaries := make(map[primitive.ObjectID]auth.UserSummary, len(found))
	for i := range found {
		summaries[found[i].ID] = found[i].Summary()
	}
	return summaries, nil
}

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	api := router.Group("")

	firebase, err := auth.InitFirebase(cfg)
	if err != nil {
		logger.Warn("firebase disabled: %v", err)
	}

	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder)
	if err != nil {
		logger.Warn("cloudinary disabled: %v", err)
	}

	authRepo := auth.RegisterRoutes(api, db, cfg, firebase)
	directory := &listsDirectoryAdapter{repo: authRepo}

	lists.RegisterRoutes(api, db, cfg, directory)
	users.RegisterRoutes(api, cfg, authRepo, cld)
}
