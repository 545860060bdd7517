package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"store-backend/internal/config"
	"store-backend/internal/database"
	"store-backend/internal/middleware"
	"store-backend/internal/routes"
)

func main() {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	client := database.Connect(cfg.MongoURI)
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDB)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))
	routes.RegisterRoutes(router, db, cfg, log)

	log.WithField("port", cfg.Port).Info("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
