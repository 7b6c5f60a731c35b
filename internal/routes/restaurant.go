package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodfast/foodfast-backend/internal/config"
	"github.com/foodfast/foodfast-backend/internal/handlers"
	infraRepo "github.com/foodfast/foodfast-backend/internal/infra/repository"
	"github.com/foodfast/foodfast-backend/internal/infra/userclient"
	ucrestaurant "github.com/foodfast/foodfast-backend/internal/usecase/restaurant"
)

func RegisterRestaurantRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	repo := infraRepo.NewRestaurantGormRepository(db)
	users := userclient.New(cfg.UserServiceURL, cfg.UserLookupTimeout)

	svc := ucrestaurant.NewService(repo, users)
	handler := handlers.NewRestaurantHandler(svc)

	api := r.Group("/api")
	{
		api.POST("/restaurants", handler.Create)
		api.GET("/restaurants", handler.List)
		api.GET("/restaurants/owner/:ownerId", handler.GetByOwner)
		api.GET("/restaurants/owner-email/:email", handler.GetByOwnerEmail)
	}
}
