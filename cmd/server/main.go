package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/creatordash/configs"
	"github.com/maheshrc27/creatordash/internal/api/handlers"
	"github.com/maheshrc27/creatordash/internal/api/middleware"
	job "github.com/maheshrc27/creatordash/internal/jobs"
	"github.com/maheshrc27/creatordash/internal/queue"
	"github.com/maheshrc27/creatordash/internal/repository"
	"github.com/maheshrc27/creatordash/internal/service"
	"github.com/maheshrc27/creatordash/pkg/retry"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    25 * 1024 * 1024, // 25 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	contentRepo := repository.NewContentRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	apiKeyRepository := repository.NewApiKeyRepository(db)

	authService := service.NewAuthService(*cfg, db, userRepo, profileRepo)
	userService := service.NewUserService(userRepo)
	profileService := service.NewProfileService(profileRepo, retry.DefaultPolicy())
	storageService := service.NewStorageService(*cfg, assetRepo)
	contentService := service.NewContentService(contentRepo, profileService, retry.DefaultPolicy())
	activityService := service.NewActivityService(activityRepo)
	apiKeyService := service.NewApiKeyService(apiKeyRepository)

	authMiddleware := middleware.NewAuthMiddleware(*cfg, apiKeyService)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallbackHandler)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	user := handlers.NewUserHandler(userService)
	api.Get("/user/info", user.GetUserInfo)

	profile := handlers.NewProfileHandler(profileService)
	api.Get("/profile", profile.GetProfile)
	api.Post("/profile/timezone", profile.UpdateTimezone)

	apiKeys := handlers.NewApiKeyHandler(apiKeyService)
	api.Post("/api_key/new", apiKeys.CreateApiKey)
	api.Get("/api_key/list", apiKeys.ListKeys)
	api.Post("/api_key/remove", apiKeys.RemoveAPIKey)

	content := handlers.NewContentHandler(contentService, storageService, client)
	api.Post("/content/create", content.CreateContent)
	api.Get("/content", content.ListContent)
	api.Post("/content/update", content.UpdateContent)
	api.Post("/content/status", content.UpdateContentStatus)
	api.Post("/content/remove", content.RemoveContent)

	activity := handlers.NewActivityHandler(activityService)
	api.Get("/activity", activity.ListActivity)

	// cron jobs
	cleanupJob := job.NewAssetCleanupJob(assetRepo, storageService)

	// queue
	queueW := queue.NewQueue(contentRepo, activityRepo, profileService)

	c := cron.New()
	c.AddFunc("@every 01h00m00s", cleanupJob.CleanupOrphans)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeContentReminder, queueW.HandleContentReminderTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
