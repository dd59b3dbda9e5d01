package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"

	"github.com/shenikar/attendance_guard/internal/breaks"
	"github.com/shenikar/attendance_guard/internal/config"
	v1 "github.com/shenikar/attendance_guard/internal/handler/http/v1"
	"github.com/shenikar/attendance_guard/internal/location"
	"github.com/shenikar/attendance_guard/internal/metrics"
	"github.com/shenikar/attendance_guard/internal/ratelimit"
	"github.com/shenikar/attendance_guard/internal/repository"
	"github.com/shenikar/attendance_guard/internal/service"
	"github.com/shenikar/attendance_guard/internal/stream"
	"github.com/shenikar/attendance_guard/internal/tracking"
	"github.com/shenikar/attendance_guard/internal/webhook"
	"github.com/shenikar/attendance_guard/pkg/logger"
	"github.com/shenikar/attendance_guard/pkg/postgres"
	redisclient "github.com/shenikar/attendance_guard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/attendance_guard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Attendance Guard API
// @version 1.0
// @description Location integrity and attendance guard: geofence validation, clock action guarding, breaks and tracking.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

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
	if err := runMigrations(cfg, log); err != nil {
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

	clock := clockwork.NewRealClock()

	// Инициализация репозиториев
	zoneRepo := repository.NewZoneRepository(dbpool, redisClient, cfg.ZoneCacheTTL)
	violationRepo := repository.NewViolationRepository(dbpool)
	breakRepo := repository.NewBreakRepository(dbpool)

	zones := service.NewZoneCatalog(zoneRepo, log)

	// Каналы оповещений
	notifiers := []service.AlertNotifier{
		webhook.NewNotifier(webhook.NewRedisPublisher(redisClient)),
	}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaNotifier, err := stream.NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Fatalf("Failed to create Kafka notifier: %v", err)
		}
		defer kafkaNotifier.Close()
		notifiers = append(notifiers, kafkaNotifier)
		log.WithField("topic", cfg.KafkaTopic).Info("Streaming alerts to Kafka")
	}

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Поток местоположений. Без брокера местоположение всегда недоступно.
	locations := location.NewMQTTProvider(location.Options{
		BrokerURL: cfg.MQTTBrokerURL,
		ClientID:  cfg.MQTTClientID,
		Topic:     cfg.MQTTTopic,
		MaxAge:    cfg.LocationMaxAge,
	}, clock, log)
	if cfg.MQTTBrokerURL != "" {
		connectCtx, connectCancel := context.WithTimeout(ctx, 15*time.Second)
		err := locations.Connect(connectCtx)
		connectCancel()
		if err != nil {
			log.Fatalf("Failed to connect to MQTT broker: %v", err)
		}
		defer locations.Close()
		log.WithField("broker", cfg.MQTTBrokerURL).Info("Successfully connected to MQTT broker")
	} else {
		log.Warn("MQTT_BROKER_URL is not set, tracking will not receive locations")
	}

	// Инициализация сервисов
	limiter := ratelimit.New(cfg.RateLimitWindow, clock, log)
	go limiter.RunSweeper(ctx, cfg.RateLimitSweepInterval)

	breakTimer := breaks.NewTimer(breakRepo, clock, log, breaks.Options{
		MaxDuration:       cfg.BreakMaxDuration,
		CheckInterval:     cfg.BreakCheckInterval,
		OnPolicyViolation: service.BreakPolicyAlerter(notifiers, log),
	})
	active, err := breakRepo.ListActiveBreaks(ctx)
	if err != nil {
		log.Fatalf("Failed to load active breaks: %v", err)
	}
	log.WithField("restored", breakTimer.Restore(active)).Info("Active breaks restored")

	tracker := tracking.NewManager(locations, zones, violationRepo, clock, log, tracking.Options{
		Interval:       cfg.TrackingInterval,
		Notifiers:      service.ViolationNotifiers(notifiers),
		AccuracyPolicy: cfg.AccuracyPolicy,
	})

	guard := service.NewAttendanceGuard(zones, limiter, breakTimer, tracker, log, service.Options{
		AccuracyPolicy: cfg.AccuracyPolicy,
		WiFiStrict:     cfg.WiFiStrict,
	})

	// Инициализация хэндлеров
	handler := v1.NewHandler(guard, log, cfg)

	metrics.Register()

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), metrics.Instrument())
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	tracker.StopAll()
	breakTimer.Close()
	cancel()

	select {
	case <-webhookWorker.Done():
	case <-shutdownCtx.Done():
		log.Warn("Webhook worker did not stop in time")
	}

	log.Info("Server gracefully stopped")
}
