package main

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/mergington/activities-gobackend/internal/config"
	"github.com/mergington/activities-gobackend/internal/handlers"
	"github.com/mergington/activities-gobackend/internal/services"
	"github.com/mergington/activities-gobackend/internal/store"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	// Connect to MongoDB
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("connected to MongoDB", zap.String("database", cfg.Database))

	db := client.Database(cfg.Database)

	// Initialize stores, services and handlers
	auth := services.NewTeacherAuthenticator(store.NewMongoTeacherStore(db))

	activityService := services.NewActivityService(store.NewMongoActivityStore(db), auth)
	activityHandler := handlers.NewActivityHandler(activityService)

	announcementService := services.NewAnnouncementService(store.NewMongoAnnouncementStore(db), auth)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)

	router := handlers.NewRouter(logger, activityHandler, announcementHandler)

	// Start server
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Info("server running", zap.String("port", cfg.Port))
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
