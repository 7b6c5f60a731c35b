package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodfast/foodfast-backend/internal/config"
	dbpkg "github.com/foodfast/foodfast-backend/internal/db"
	"github.com/foodfast/foodfast-backend/internal/middleware"
	"github.com/foodfast/foodfast-backend/internal/models"
	"github.com/foodfast/foodfast-backend/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, &models.Restaurant{})

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRestaurantRoutes(r, db, cfg)

	log.Printf("restaurant service running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
