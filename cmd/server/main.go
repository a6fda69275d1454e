package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/coursecast/grade-service/internal/cache"
	"github.com/coursecast/grade-service/internal/config"
	"github.com/coursecast/grade-service/internal/events"
	"github.com/coursecast/grade-service/internal/handlers"
	"github.com/coursecast/grade-service/internal/services"
	"github.com/coursecast/grade-service/internal/utils"
	"github.com/coursecast/grade-service/internal/validator"
	"github.com/coursecast/grade-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = utils.NewDevelopmentLogger()
	}
	slogLogger := utils.ToSlogLogger(logger)

	// Redis cache is optional; the engine is pure and recomputes cheaply.
	var cacheService cache.CacheService
	if cfg.RedisURL != "" {
		redisClient, err := pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, running without cache", "error", err)
		} else {
			defer redisClient.Close()
			cacheService = cache.NewRedisCache(redisClient, slogLogger)
			logger.Info("Calculation cache enabled", "ttl", cfg.CacheTTL.String())
		}
	}

	// Kafka publishing is optional as well.
	var publisher events.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := events.NewKafkaEventPublisher(events.PublisherConfig{
			KafkaBrokers: cfg.KafkaBrokers,
			TopicName:    cfg.KafkaTopic,
			Logger:       slogLogger,
		})
		if err != nil {
			logger.Warn("Kafka unavailable, running without event publishing", "error", err)
		} else {
			defer kafkaPublisher.Close()
			publisher = kafkaPublisher
			logger.Info("Report event publishing enabled", "topic", cfg.KafkaTopic)
		}
	}

	v := validator.New()
	gradeService := services.NewGradeService(slogLogger, v, cacheService, publisher, cfg.CacheTTL)
	importService := services.NewGradeImportService(slogLogger)

	router := gin.New()
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(gin.Recovery())

	handlerManager := handlers.NewHandlerManager(gradeService, importService, v, logger)
	handlerManager.SetupRoutes(router)

	logger.Info("Starting grade service", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Error("Server exited", "error", err)
	}
}
