package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gecos_backend/internal/api"
	"gecos_backend/internal/booking"
	"gecos_backend/internal/config"
	"gecos_backend/internal/models"
	"gecos_backend/internal/repository"
	"gecos_backend/internal/service"
	"gecos_backend/internal/storage"
	"gecos_backend/internal/utils"
)

func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log := setupLogger(cfg.Env)

	utils.Init(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Error("failed to initialize database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Reservation{},
		&models.Subject{},
		&models.RevokedToken{},
	); err != nil {
		log.Error("failed to auto migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, log, booking.RealClock{}, service.Options{
		AllowAnonymousCreate: cfg.Auth.AllowAnonymousCreate,
	})

	r := gin.Default()
	api.SetupRoutes(r, services, cfg.CORS.AllowOrigins)

	log.Info("starting server",
		slog.String("addr", cfg.Server.Address),
		slog.Bool("allow_anonymous_create", cfg.Auth.AllowAnonymousCreate))
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Error("http server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func setupLogger(env string) *slog.Logger {
	switch env {
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case envLocal:
		fallthrough
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
