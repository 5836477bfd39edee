package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"stargate-service/internal/infrastructure/config"
	"stargate-service/internal/infrastructure/persistence"
	"stargate-service/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
)

func main() {
	var (
		command = flag.String("command", "", "Migration command: up, down, version, force")
		steps   = flag.Int("steps", 0, "Number of migration steps (for up/down)")
		version = flag.Int("version", 0, "Migration version (for force)")
	)
	flag.Parse()

	if *command == "" {
		fmt.Println("Usage: go run cmd/migrate/main.go -command [up|down|version|force] [options]")
		fmt.Println("Commands:")
		fmt.Println("  up             - Apply all pending migrations")
		fmt.Println("  down           - Rollback migrations")
		fmt.Println("  version        - Show current migration version")
		fmt.Println("  force          - Force set migration version")
		fmt.Println("")
		fmt.Println("Options:")
		fmt.Println("  -steps N       - Number of steps for up/down")
		fmt.Println("  -version N     - Version number for force")
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()

	db, err := persistence.OpenDatabase(cfg.DBDriver, cfg.DatabaseDSN, 1)
	if err != nil {
		log.Fatal("Failed to connect to database", "error", err)
	}

	m, err := persistence.NewMigrator(db, cfg.DBDriver)
	if err != nil {
		log.Fatal("Failed to create migration instance", "error", err)
	}
	// Closes the migration driver and the connection pool with it
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn("Failed to close migration instance", "sourceError", srcErr, "databaseError", dbErr)
		}
	}()

	switch *command {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("No migrations to apply")
			return
		}
		if err != nil {
			log.Fatal("Migration up failed", "error", err)
		}
		log.Info("Migrations applied successfully")

	case "down":
		n := 1
		if *steps > 0 {
			n = *steps
		}
		err = m.Steps(-n)
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("No migrations to rollback")
			return
		}
		if err != nil {
			log.Fatal("Migration down failed", "error", err)
		}
		log.Info("Migrations rolled back successfully", "steps", n)

	case "version":
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Info("No migrations applied yet")
			return
		}
		if err != nil {
			log.Fatal("Failed to get version", "error", err)
		}
		log.Info("Current migration version", "version", v, "dirty", dirty)

	case "force":
		if *version == 0 {
			log.Fatal("Version number required for force command")
		}
		if err := m.Force(*version); err != nil {
			log.Fatal("Force migration failed", "error", err)
		}
		log.Info("Migration version forced", "version", *version)

	default:
		log.Fatal("Unknown command", "command", *command)
	}
}
