package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"stargate-service/internal/domain/repository"
	"stargate-service/internal/infrastructure/config"
	"stargate-service/internal/infrastructure/persistence"
	"stargate-service/internal/infrastructure/router"
	"stargate-service/internal/interface/handler"
	gormRepo "stargate-service/internal/interface/repository"
	"stargate-service/internal/usecase"
	"stargate-service/pkg/logger"
	"stargate-service/pkg/metrics"
	"stargate-service/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Stargate Service", "version", cfg.AppVersion, "driver", cfg.DBDriver)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := persistence.OpenDatabase(cfg.DBDriver, cfg.DatabaseDSN, cfg.DBMaxOpenConns)
	if err != nil {
		log.Fatal("Failed to connect to database", "error", err)
	}
	defer persistence.Close(gormDB)

	if cfg.AutoMigrate {
		log.Info("Applying database migrations")
		if err := persistence.Migrate(gormDB, cfg.DBDriver); err != nil {
			log.Fatal("Failed to migrate database", "error", err)
		}
	}

	// Submission log goes to MongoDB when configured
	var mongoClient *mongo.Client
	var submissionRepository repository.SubmissionRepository
	if cfg.MongoEnabled() {
		log.Info("Connecting to MongoDB")
		var mongoDB *mongo.Database
		mongoClient, mongoDB, err = persistence.OpenMongo(ctx, persistence.MongoOptions{
			URI:            cfg.MongoURI,
			Database:       cfg.MongoDB,
			Username:       cfg.MongoUser,
			Password:       cfg.MongoPassword,
			AppName:        "stargate-service/" + cfg.AppVersion,
			ConnectTimeout: cfg.MongoTimeout,
		})
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
		submissionRepository = gormRepo.NewMongoSubmissionRepository(ctx, mongoDB, cfg.MongoTimeout, log)
	} else {
		log.Warn("MONGODB_DSN not set, keeping duty submissions in memory")
		submissionRepository = gormRepo.NewInMemorySubmissionRepository()
	}

	// Set up repositories
	personRepository := gormRepo.NewGormPersonRepository(gormDB)
	dutyRepository := gormRepo.NewGormAstronautDutyRepository(gormDB)
	detailRepository := gormRepo.NewGormAstronautDetailRepository(gormDB)
	unitOfWork := gormRepo.NewGormUnitOfWork(gormDB)

	appMetrics := metrics.NewMetrics(cfg.MetricsNamespace, prometheus.DefaultRegisterer)

	personService := usecase.NewPersonService(personRepository, dutyRepository, detailRepository, appMetrics, log)
	dutyWorkflow := usecase.NewDutyWorkflow(
		personRepository,
		dutyRepository,
		unitOfWork,
		submissionRepository,
		validator.New(),
		appMetrics,
		log,
	)

	if cfg.SeedData {
		if err := usecase.SeedDemoData(ctx, personService, dutyWorkflow); err != nil {
			log.Fatal("Failed to seed data", "error", err)
		}
	}

	// Set up HTTP server
	mux := router.New(router.Config{
		PersonHandler: handler.NewPersonHandler(personService, log),
		DutyHandler:   handler.NewDutyHandler(personService, dutyWorkflow, log),
		Gatherer:      prometheus.DefaultGatherer,
		Health: func(ctx context.Context) error {
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		Logger: log,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("Stargate Service stopped")
}
