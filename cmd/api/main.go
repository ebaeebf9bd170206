package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/middleware"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	validator := services.NewDocumentValidator()
	extractor := services.NewTextExtractor()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	if cfg.Gemini.APIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set, analysis requests will be rejected")
	} else {
		log.Println("✅ Gemini AI initialized successfully")
	}

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(
		validator,
		storageService,
		extractor,
		geminiService,
		analysisRepo,
		cfg.Worker.Concurrency,
	)
	log.Println("✅ Analyzer service initialized")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService)
	exportHandler := handlers.NewExportHandler(services.NewExportService())
	historyHandler := handlers.NewHistoryHandler(analysisRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxBodySize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-User-ID",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	authenticated := api.Group("", middleware.RequireUser())
	authenticated.Post("/analyze", analyzeHandler.HandleAnalyze)
	authenticated.Post("/export-csv", exportHandler.HandleExportCSV)
	authenticated.Get("/history", historyHandler.HandleGetHistory)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"POST /api/v1/export-csv",
				"GET /api/v1/history",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
