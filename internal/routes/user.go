package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodfast/foodfast-backend/internal/config"
	"github.com/foodfast/foodfast-backend/internal/handlers"
	infraRepo "github.com/foodfast/foodfast-backend/internal/infra/repository"
	"github.com/foodfast/foodfast-backend/internal/middleware"
	ucuser "github.com/foodfast/foodfast-backend/internal/usecase/user"
)

func RegisterUserRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	repo := infraRepo.NewUserGormRepository(db)
	svc := ucuser.NewService(repo)

	userHandler := handlers.NewUserHandler(svc)
	authHandler := handlers.NewAuthHandler(svc, cfg)

	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		api.POST("/users", userHandler.Create)
		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.Get)
		api.GET("/users/email/:email", userHandler.GetByEmail)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.PATCH("/users/:id", userHandler.Update)
			secured.DELETE("/users/:id", userHandler.Delete)
		}
	}
}
