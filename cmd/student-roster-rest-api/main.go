// cmd/student-roster-rest-api/main.go
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

	v1 "github.com/MGTheTrain/student-roster/internal/api/rest/v1"
	"github.com/MGTheTrain/student-roster/internal/app"
	"github.com/MGTheTrain/student-roster/internal/domain/roster"
	"github.com/MGTheTrain/student-roster/internal/infrastructure/persistence"
	"github.com/MGTheTrain/student-roster/internal/infrastructure/spreadsheet"
	"github.com/MGTheTrain/student-roster/internal/pkg/config"
	"github.com/MGTheTrain/student-roster/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Warn("failed to close database", "error", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *appServices
}

type appServices struct {
	student   roster.StudentService
	classroom roster.ClassroomService
	transfer  roster.RosterTransferService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	studentRepo, err := persistence.NewGormStudentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create student repository: %w", err)
	}

	classroomRepo, err := persistence.NewGormClassroomRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create classroom repository: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(studentRepo, classroomRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: services,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.New()
	r.Use(gin.Recovery(), v1.RequestID(), v1.RequestLogger(log))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", v1.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", v1.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.student,
		deps.services.classroom,
		deps.services.transfer,
		func(ctx context.Context) error { return persistence.Ping(ctx, deps.db) },
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown", "signal", sig.String())
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	studentRepo roster.StudentRepository,
	classroomRepo roster.ClassroomRepository,
	log logger.Logger,
) (*appServices, error) {
	studentService, err := app.NewStudentService(studentRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create student service: %w", err)
	}

	classroomService, err := app.NewClassroomService(classroomRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create classroom service: %w", err)
	}

	codec, err := spreadsheet.NewExcelRosterCodec(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create roster codec: %w", err)
	}

	transferService, err := app.NewRosterTransferService(studentRepo, codec, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create roster transfer service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		student:   studentService,
		classroom: classroomService,
		transfer:  transferService,
	}, nil
}
