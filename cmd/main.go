package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/shenikar/fortiq_portal/internal/config"
	v1 "github.com/shenikar/fortiq_portal/internal/handler/http/v1"
	"github.com/shenikar/fortiq_portal/internal/notify"
	"github.com/shenikar/fortiq_portal/internal/repository"
	"github.com/shenikar/fortiq_portal/internal/service"
	"github.com/shenikar/fortiq_portal/pkg/fetcher"
	"github.com/shenikar/fortiq_portal/pkg/logger"
	redisclient "github.com/shenikar/fortiq_portal/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/fortiq_portal/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Fortiq Portal API
// @version 1.0
// @description Backend for the Fortiq security agency and towerco portals.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey SessionAuth
// @in header
// @name X-Session-ID
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Клиент удаленного API
	apiClient := fetcher.New(cfg.APIBaseURL, log)

	// Инициализация репозиториев и очереди уведомлений
	apiRepo := repository.NewAPIRepository(apiClient)
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.SessionTTL)
	notifier := notify.NewRedisNotifier(redisClient, cfg.NotificationTTL)

	// Страницы сессий в памяти и их очистка
	workspaces := service.NewWorkspaces(cfg.WorkspaceIdleTTL, log)
	workspaces.Start(ctx, cfg.WorkspaceSweepInterval)

	// Инициализация сервисов
	sessionService := service.NewSessionService(sessionRepo, notifier, workspaces, log)
	sitesService := service.NewSitesService(apiRepo, notifier, workspaces, cfg.PageSize, log)
	reportService := service.NewReportService(apiRepo, notifier, workspaces, log)
	dashboardService := service.NewDashboardService(apiRepo, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(sessionService, sitesService, reportService, dashboardService, log)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики вызовов API
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Session-ID"},
	})

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: corsHandler.Handler(router),
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

	// Останавливаем очистку страниц сессий
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
