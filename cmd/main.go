package main

import (
	"os"

	"github.com/Letitbe098/Fitness-Tracker/config"
	"github.com/Letitbe098/Fitness-Tracker/routes"
	"github.com/Letitbe098/Fitness-Tracker/services"

	log "github.com/sirupsen/logrus"
)

func main() {
	db := config.InitDB()

	if err := services.NewCatalogService(db).Seed(); err != nil {
		log.Fatalf("catalog seed failed: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(db)
	log.Infof("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
