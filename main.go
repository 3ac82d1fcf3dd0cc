package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/gorm"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/repositories"
	"portfolio/internal/services"
	"portfolio/pkg/rabbitmq"
)

// application owns the server and every resource with a lifecycle.
type application struct {
	app     *fiber.App
	db      *gorm.DB
	limiter *middleware.RateLimitStore
	mq      *rabbitmq.Client
}

func main() {
	cfg := config.Load(viper.New())
	setupLogging(cfg)

	a, err := newApplication(cfg, time.Now)
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	if a.mq != nil {
		err := a.mq.ConsumeContactEvents(func(msg amqp.Delivery) error {
			event, err := rabbitmq.DecodeContactEvent(msg.Body)
			if err != nil {
				return err
			}
			slog.Info("new contact message", "id", event.ID, "name", event.Name, "subject", event.Subject)
			return nil
		})
		if err != nil {
			slog.Warn("failed to start contact event consumer", "error", err)
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "addr", cfg.Addr(), "env", cfg.Environment)
		if err := a.app.Listen(cfg.Addr()); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server")
	if err := a.app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("error during fiber shutdown", "error", err)
	}
	slog.Info("server gracefully stopped")
}

// newApplication wires the store, services, handlers and middleware.
// now is the clock shared by the rate limiter, the store and the services.
func newApplication(cfg config.Config, now func() time.Time) (*application, error) {
	db, err := database.Open(database.Options{
		Driver: cfg.DatabaseDriver,
		DSN:    cfg.DatabaseDSN,
		Now:    now,
	})
	if err != nil {
		return nil, err
	}

	a := &application{db: db}

	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.RabbitMQExchange})
		if err != nil {
			// Contact submissions still work without notifications.
			slog.Warn("rabbitmq unavailable, contact notifications disabled", "error", err)
		} else {
			a.mq = mq
			publisher = mq
		}
	}

	// --- Repositories ---
	projectRepo := repositories.NewGORMProjectRepository(db)
	contactRepo := repositories.NewGORMContactRepository(db)
	analyticsRepo := repositories.NewGORMAnalyticsRepository(db)
	skillRepo := repositories.NewGORMSkillRepository(db)

	// --- Services ---
	projectService := services.NewProjectService(projectRepo, now)
	contactService := services.NewContactService(contactRepo, publisher)
	analyticsService := services.NewAnalyticsService(analyticsRepo, now)
	skillService := services.NewSkillService(skillRepo)

	// --- Rate limiter and metrics ---
	a.limiter = middleware.NewRateLimitStore(cfg.RateLimitMax, cfg.RateLimitWindow, now)
	a.limiter.StartSweeper(cfg.RateLimitSweep)
	metrics := middleware.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:      "portfolio",
		ErrorHandler: middleware.ErrorHandler(cfg.Development()),
		ProxyHeader:  cfg.ProxyHeader,
	})
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.Development()}))
	app.Use(logger.New())
	app.Use(metrics.Middleware())
	app.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Store:    a.limiter,
		OnReject: metrics.RateLimited,
	}))

	app.Get("/metrics", metrics.Handler())

	api := app.Group("/api")
	handlers.NewHealthHandler(now).RegisterRoutes(api)
	handlers.NewProjectHandler(projectService).RegisterRoutes(api)
	handlers.NewContactHandler(contactService).RegisterRoutes(api)
	handlers.NewAnalyticsHandler(analyticsService).RegisterRoutes(api)
	handlers.NewSkillHandler(skillService).RegisterRoutes(api)

	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		app.Static("/", cfg.StaticDir)
	}

	a.app = app
	return a, nil
}

// Close releases the limiter sweeper, the broker connection and the database.
func (a *application) Close() {
	if a.limiter != nil {
		a.limiter.Close()
	}
	if a.mq != nil {
		if err := a.mq.Close(); err != nil {
			slog.Error("error closing rabbitmq client", "error", err)
		}
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}
}

func setupLogging(cfg config.Config) {
	level := slog.LevelInfo
	if cfg.Development() {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
}
