package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodfast/foodfast-backend/internal/cache"
	"github.com/foodfast/foodfast-backend/internal/config"
	domain "github.com/foodfast/foodfast-backend/internal/domain/product"
	"github.com/foodfast/foodfast-backend/internal/handlers"
	infraRepo "github.com/foodfast/foodfast-backend/internal/infra/repository"
	ucproduct "github.com/foodfast/foodfast-backend/internal/usecase/product"
)

func RegisterProductRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	var repo domain.Repository = infraRepo.NewProductGormRepository(db)

	// Cache is optional. A failed Redis connection at startup is fatal
	// only if caching was asked for.
	if cfg.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		repo = cache.NewCachedProductRepository(repo, rdb)
	}

	svc := ucproduct.NewService(repo)
	handler := handlers.NewProductHandler(svc)

	api := r.Group("/api")
	{
		api.POST("/products", handler.Create)
		api.GET("/products", handler.List)
		api.GET("/products/:id", handler.Get)
		api.PATCH("/products/:id", handler.Update)
		api.DELETE("/products/:id", handler.Delete)
	}
}
