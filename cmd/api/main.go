package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/talent-screen/internal/config"
	"alfredoptarigan/talent-screen/internal/handlers"
	"alfredoptarigan/talent-screen/internal/repositories"
	"alfredoptarigan/talent-screen/internal/services"
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
	candidateRepo := repositories.NewCandidateRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	assessmentRepo := repositories.NewAssessmentRepository(db)
	responseRepo := repositories.NewResponseRepository(db)
	proctoringRepo := repositories.NewProctoringRepository(db)
	evalRepo := repositories.NewEvaluationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractorService := services.NewExtractorService()
	profileService := services.NewProfileService(cfg.Resume.CurrentYear)
	matcherService := services.NewMatcherService()
	sandboxService := services.NewSandboxService(cfg.Sandbox)
	graderService := services.NewGraderService()
	scoringService := services.NewScoringService()
	synthesizerService := services.NewSynthesizerService()
	log.Println("✅ Services initialized successfully")

	// Initialize evaluator
	evaluatorService := services.NewEvaluatorService(
		evalRepo,
		assessmentRepo,
		responseRepo,
		proctoringRepo,
		candidateRepo,
		jobRepo,
		matcherService,
		scoringService,
		synthesizerService,
	)
	log.Println("✅ Evaluator service initialized")

	// Initialize worker
	worker := services.NewWorker(
		evalRepo,
		evaluatorService,
		cfg.Worker.Concurrency,
	)

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)

	// Initialize handlers
	validate := validator.New()

	resumeHandler := handlers.NewResumeHandler(
		candidateRepo,
		jobRepo,
		storageService,
		extractorService,
		profileService,
		matcherService,
		cfg.Storage.MaxFileSize,
	)
	jobHandler := handlers.NewJobHandler(
		jobRepo,
		candidateRepo,
		evalRepo,
		matcherService,
		validate,
	)
	questionHandler := handlers.NewQuestionHandler(
		questionRepo,
		jobRepo,
		validate,
	)
	assessmentHandler := handlers.NewAssessmentHandler(
		assessmentRepo,
		responseRepo,
		questionRepo,
		candidateRepo,
		jobRepo,
		evalRepo,
		graderService,
		sandboxService,
		scoringService,
		worker,
		validate,
	)
	proctoringHandler := handlers.NewProctoringHandler(
		proctoringRepo,
		assessmentRepo,
		scoringService,
		validate,
	)
	evaluationHandler := handlers.NewEvaluationHandler(evalRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Talent Screen API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
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
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
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

	// Candidates
	api.Get("/candidates", resumeHandler.HandleListCandidates)
	api.Post("/candidates/resume", resumeHandler.HandleUpload)
	api.Get("/candidates/:id/profile", resumeHandler.HandleGetProfile)
	api.Get("/candidates/:id/evaluation", evaluationHandler.HandleGetByCandidate)

	// Jobs
	api.Post("/jobs", jobHandler.HandleCreate)
	api.Get("/jobs", jobHandler.HandleList)
	api.Get("/jobs/:id", jobHandler.HandleGet)
	api.Put("/jobs/:id", jobHandler.HandleUpdate)
	api.Delete("/jobs/:id", jobHandler.HandleDelete)
	api.Post("/jobs/:id/match/:candidateID", jobHandler.HandleMatch)
	api.Get("/jobs/:id/shortlist", jobHandler.HandleShortlist)

	// Questions
	api.Post("/questions", questionHandler.HandleCreate)
	api.Post("/questions/bulk", questionHandler.HandleCreateBulk)
	api.Get("/questions", questionHandler.HandleList)

	// Assessments
	api.Post("/assessments", assessmentHandler.HandleStart)
	api.Get("/assessments/:id/questions", assessmentHandler.HandleGetQuestions)
	api.Get("/assessments/:id/status", assessmentHandler.HandleGetStatus)
	api.Post("/assessments/:id/responses", assessmentHandler.HandleSubmitResponse)
	api.Post("/assessments/:id/complete", assessmentHandler.HandleComplete)
	api.Post("/execute", assessmentHandler.HandleExecute)

	// Proctoring
	api.Post("/proctoring/events", proctoringHandler.HandleCreateEvent)
	api.Get("/proctoring/assessments/:id/events", proctoringHandler.HandleListEvents)
	api.Get("/proctoring/assessments/:id/summary", proctoringHandler.HandleGetSummary)

	// Evaluations
	api.Get("/evaluations/:id", evaluationHandler.HandleGetByID)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Talent Screen API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/candidates/resume",
				"POST /api/v1/jobs",
				"POST /api/v1/assessments",
				"POST /api/v1/execute",
				"GET /api/v1/jobs/:id/shortlist",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
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
