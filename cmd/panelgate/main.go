// Panel Gate - Security Panel Gateway
//
// This is the main entry point for the Panel Gate application. Panel
// Gate fronts a small building security installation: operators log in
// from wall keypads, lock and arm commands go out over MQTT, sensor
// events come back in, and everything lands in an append-only activity
// log.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/nerrad567/panelgate/migrations"

	"github.com/nerrad567/panelgate/internal/activity"
	"github.com/nerrad567/panelgate/internal/api"
	"github.com/nerrad567/panelgate/internal/auth"
	"github.com/nerrad567/panelgate/internal/bridge"
	"github.com/nerrad567/panelgate/internal/gateway"
	"github.com/nerrad567/panelgate/internal/infrastructure/config"
	"github.com/nerrad567/panelgate/internal/infrastructure/database"
	"github.com/nerrad567/panelgate/internal/infrastructure/influxdb"
	"github.com/nerrad567/panelgate/internal/infrastructure/logging"
	"github.com/nerrad567/panelgate/internal/infrastructure/mqtt"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Panel Gate",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database
	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	// Run migrations
	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	// Repositories
	operatorRepo := auth.NewOperatorRepository(db)
	activityLog := activity.NewRepository(db)

	// First boot: seed the initial admin operator
	if _, seedErr := auth.SeedAdmin(ctx, operatorRepo, log); seedErr != nil {
		return fmt.Errorf("seeding admin operator: %w", seedErr)
	}

	// Connect to MQTT broker
	mqttClient, err := mqtt.Connect(cfg.MQTT)
	if err != nil {
		return fmt.Errorf("connecting to MQTT: %w", err)
	}
	defer func() {
		log.Info("disconnecting from MQTT")
		if closeErr := mqttClient.Close(); closeErr != nil {
			log.Error("error closing MQTT", "error", closeErr)
		}
	}()
	log.Info("MQTT connected",
		"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
		"client_id", cfg.MQTT.Broker.ClientID,
	)

	mqttClient.SetLogger(log)
	mqttClient.SetOnConnect(func() {
		log.Info("MQTT reconnected")
	})
	mqttClient.SetOnDisconnect(func(err error) {
		log.Warn("MQTT disconnected", "error", err)
	})

	// Connect to InfluxDB (optional sensor history mirror)
	var influxClient *influxdb.Client
	var mirror bridge.Mirror
	if cfg.InfluxDB.Enabled {
		influxClient, err = influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		mirror = influxClient
		log.Info("InfluxDB connected", "url", cfg.InfluxDB.URL, "bucket", cfg.InfluxDB.Bucket)
	} else {
		log.Info("InfluxDB disabled")
	}

	// Event bridge: sensor ingestion and command publishing
	eventBridge := bridge.New(bridge.Deps{
		Transport: mqttClient,
		Log:       activityLog,
		Mirror:    mirror,
		Logger:    log,
		QoS:       byte(cfg.MQTT.QoS),
	})
	if startErr := eventBridge.Start(ctx); startErr != nil {
		return fmt.Errorf("starting event bridge: %w", startErr)
	}
	defer func() {
		log.Info("stopping event bridge")
		if closeErr := eventBridge.Close(); closeErr != nil {
			log.Error("error closing event bridge", "error", closeErr)
		}
	}()

	// Gateway service
	svc := gateway.New(gateway.Deps{
		Credentials: auth.NewCredentialStore(operatorRepo),
		Tokens:      auth.NewTokenService(cfg.Security.JWT.Secret, cfg.AccessTokenTTL()),
		Publisher:   eventBridge,
		Log:         activityLog,
		Logger:      log,
	})

	// HTTP API server
	apiServer, err := api.New(api.Deps{
		Config:  cfg.API,
		Logger:  log,
		Gateway: svc,
		Checks: map[string]api.HealthChecker{
			"database": db,
			"mqtt":     mqttClient,
		},
		Version: version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if startErr := apiServer.Start(ctx); startErr != nil {
		return fmt.Errorf("starting API server: %w", startErr)
	}
	defer func() {
		log.Info("stopping API server")
		if closeErr := apiServer.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	// Verify all connections are healthy
	if err := healthCheck(ctx, db, mqttClient, influxClient); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls run in reverse order:
	// 1. API server (stops accepting commands)
	// 2. Event bridge (drains buffered sensor events)
	// 3. InfluxDB (if enabled)
	// 4. MQTT
	// 5. Database

	log.Info("Panel Gate stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses PANELGATE_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("PANELGATE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// healthCheck verifies all infrastructure connections are healthy.
func healthCheck(ctx context.Context, db *database.DB, mqttClient *mqtt.Client, influxClient *influxdb.Client) error {
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := mqttClient.HealthCheck(ctx); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}

	if influxClient != nil {
		if err := influxClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}

	return nil
}
