package main

import (
	"log"

	"github.com/Francesco-Napolitano/WebAppApi/config"
	"github.com/Francesco-Napolitano/WebAppApi/database"
	"github.com/Francesco-Napolitano/WebAppApi/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	gin.SetMode(cfg.Server.Mode)

	database.InitDB()

	r := routes.SetupRoutes()

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
