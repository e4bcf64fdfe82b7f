package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"APP_PASSWORD_HASH",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()

	if os.Getenv("GO_ENV") != "test" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := config.LoadDatabaseConfig().Connect(ctx)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		utils.MongoClient = client
	}
}

func setupRouter(owners config.OwnerSet, storage config.StorageConfig) *gin.Engine {
	router := gin.Default()

	notesRepo := repository.GetNotesRepo(utils.MongoClient)
	notesService := &usecase.NotesService{
		Gateway: notesRepo,
		Owners:  owners,
	}

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.Static(storage.PublicPath, storage.UploadPath)

	// Public routes (no token required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, owners)
			})
		}
	}

	// Protected routes (token required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		users := protected.Group("/users")
		users.Use(middleware.CacheControlMiddleware("3600"))
		{
			users.GET("/", func(c *gin.Context) {
				handler.GetUsersHandler(c, owners)
			})
		}

		notes := protected.Group("/notes")
		{
			notes.GET("/", func(c *gin.Context) {
				handler.GetNotesHandler(c, notesService)
			})
			notes.POST("/", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})

			// Checklist operations
			notes.PUT("/:id/checklist", func(c *gin.Context) {
				handler.UpdateChecklistHandler(c, notesService)
			})
			notes.POST("/:id/checklist/items", func(c *gin.Context) {
				handler.AddChecklistItemHandler(c, notesService)
			})
			notes.DELETE("/:id/checklist/items/:index", func(c *gin.Context) {
				handler.RemoveChecklistItemHandler(c, notesService)
			})
			notes.PUT("/:id/checklist/items/:index", func(c *gin.Context) {
				handler.ToggleChecklistItemHandler(c, notesService)
			})
			notes.POST("/:id/checklist/clear-checked", func(c *gin.Context) {
				handler.ClearCheckedItemsHandler(c, notesService)
			})
			notes.POST("/:id/checklist/clear", func(c *gin.Context) {
				handler.ClearChecklistHandler(c, notesService)
			})
			notes.POST("/:id/checklist/restart", func(c *gin.Context) {
				handler.RestartChecklistHandler(c, notesService)
			})

			// Lifecycle actions
			notes.POST("/:id/touch", func(c *gin.Context) {
				handler.TouchNoteHandler(c, notesService)
			})
			notes.POST("/:id/check", func(c *gin.Context) {
				handler.CheckNoteHandler(c, notesService)
			})
			notes.POST("/:id/copy", func(c *gin.Context) {
				handler.CopyNoteHandler(c, notesService)
			})
			notes.POST("/:id/share", func(c *gin.Context) {
				handler.ShareNoteHandler(c, notesService)
			})
		}

		checked := protected.Group("/checked-notes")
		{
			checked.GET("/", func(c *gin.Context) {
				handler.GetCheckedNotesHandler(c, notesService)
			})
			checked.POST("/:id/uncheck", func(c *gin.Context) {
				handler.UncheckNoteHandler(c, notesService)
			})
		}

		protected.POST("/upload",
			middleware.RequestSizeLimiter(10<<20),
			func(c *gin.Context) {
				handler.UploadImageHandler(c, storage)
			})
	}

	return router
}

func main() {
	owners := config.LoadOwnerSet()
	storage := config.LoadStorageConfig()

	// Redis is optional; without it list responses always hit Mongo.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err := services.NewNoteCache(redisURL,
			utils.GetEnvAsDuration("NOTE_CACHE_TTL", 30*time.Second))
		if err != nil {
			log.Printf("Note cache disabled: %v", err)
		} else {
			services.GlobalNoteCache = cache
		}
	}

	dbConfig := config.LoadDatabaseConfig()
	db := utils.MongoClient.Database(dbConfig.DatabaseName)
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	utils.StartSystemMetrics(15 * time.Second)

	router := setupRouter(owners, storage)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
