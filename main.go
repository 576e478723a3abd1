package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"link-organizer-system/handlers"
	"link-organizer-system/middleware"
	"link-organizer-system/models"
	"link-organizer-system/services"
	"link-organizer-system/utils"
	"link-organizer-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("failed to initialize logger:", err)
	}
	defer logger.Sync()

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // data-URL images for avatars/backgrounds
	})

	app.Use(middleware.RequestLogger(logger))

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOriginsString,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Storage: Postgres-backed key-value blobs, or a session-only in-memory
	// store when no DATABASE_URL is configured.
	var store services.Store
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Println("⚠️  DATABASE_URL not set — using in-memory storage, data will not survive a restart")
		store = services.NewMemoryStore(logger)
	} else {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Fatal("failed to connect to database:", err)
		}
		if err := db.AutoMigrate(&models.KVRecord{}); err != nil {
			log.Fatal("failed to migrate database:", err)
		}
		store = services.NewGormStore(db, logger)
	}

	profileService := services.NewProfileService(store, logger)
	missionService := services.NewMissionService(store, logger)
	progressionService := services.NewProgressionService(profileService, missionService, logger)
	linkService := services.NewLinkService(store, logger)
	currencyService := services.NewCurrencyService(store, logger)
	settingsService := services.NewSettingsService(store, logger)
	snapshotService := services.NewSnapshotService(store, profileService, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if utils.R2Configured() {
		if err := utils.InitR2(); err != nil {
			log.Fatal("failed to initialize R2 client:", err)
		}
		snapshotClient := workers.NewSnapshotClient(snapshotService)
		go workers.PollSnapshots(ctx, snapshotClient, 30*time.Minute)
		log.Println("✅ Snapshot export running (every 30m)")
	} else {
		log.Println("⚠️  R2 credentials not set — snapshot export disabled")
	}

	progressionService.StartMissionSyncScheduler(15 * time.Minute)

	handlers.SetupLinkRoutes(app, linkService, profileService, progressionService)
	handlers.SetupProfileRoutes(app, profileService, progressionService)
	handlers.SetupMissionRoutes(app, missionService, progressionService)
	handlers.SetupCurrencyRoutes(app, currencyService)
	handlers.SetupSettingsRoutes(app, settingsService)

	go func() {
		if err := app.Listen(":5200"); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Println("✅ Server running on http://localhost:5200")
	log.Println("✅ Mission re-sync scheduler running (every 15m)")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
}
