package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/occurrence_reporting_system/internal/config"
	v1 "github.com/shenikar/occurrence_reporting_system/internal/handler/http/v1"
	"github.com/shenikar/occurrence_reporting_system/internal/repository"
	"github.com/shenikar/occurrence_reporting_system/internal/service"
	"github.com/shenikar/occurrence_reporting_system/internal/webhook"
	"github.com/shenikar/occurrence_reporting_system/pkg/logger"
	"github.com/shenikar/occurrence_reporting_system/pkg/postgres"
	redisclient "github.com/shenikar/occurrence_reporting_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/occurrence_reporting_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Occurrence Reporting System API
// @version 1.0
// @description Registro, consulta e auditoria de ocorrências de emergência.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := postgres.RunMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	occurrenceRepo := repository.NewOccurrenceRepository(dbpool, redisClient)
	userRepo := repository.NewUserRepository(dbpool)
	vehicleRepo := repository.NewVehicleRepository(dbpool)
	municipalityRepo := repository.NewMunicipalityRepository(dbpool)
	auditRepo := repository.NewAuditLogRepository(dbpool)
	tokenRepo := repository.NewTokenRepository(redisClient)

	// Инициализация сервисов
	auditService := service.NewAuditService(auditRepo, userRepo, log)
	authService := service.NewAuthService(userRepo, tokenRepo, auditService, log, cfg)
	referenceService := service.NewReferenceService(vehicleRepo, municipalityRepo, log)
	occurrenceService := service.NewOccurrenceService(occurrenceRepo, userRepo, vehicleRepo, auditService, log, cfg, webhookPublisher)

	// Инициализация хэндлеров
	handler := v1.NewHandler(occurrenceService, authService, auditService, referenceService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер вебхуков
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
