package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"production/cmd"
	adapter_http "production/internal/adapters/in/http"
	"production/internal/adapters/out/postgres"
	"production/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	if err := postgres.RunMigrations(dsn); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreatePurgeHiddenOrdersCommandHandler(),
		configs.HiddenOrderRetention,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		HiddenOrderRetention: hiddenOrderRetention(),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// hiddenOrderRetention reads HIDDEN_ORDER_RETENTION (a Go duration, e.g.
// "720h"); hidden orders older than this are purged. Defaults to 30 days.
func hiddenOrderRetention() time.Duration {
	raw := goDotEnvVariable("HIDDEN_ORDER_RETENTION")
	if raw == "" {
		return 30 * 24 * time.Hour
	}

	retention, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Error parsing HIDDEN_ORDER_RETENTION: %v", err)
	}
	return retention
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := adapter_http.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateStartOrderCommandHandler(),
		app.CreateStopOrderCommandHandler(),
		app.CreateCompleteReclamationOrderCommandHandler(),
		app.CreateHideOrderCommandHandler(),
		app.CreateRestoreOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateSetRatingCommandHandler(),
		app.CreateSetResourceStatusCommandHandler(),
		app.CreateClaimStageCommandHandler(),
		app.CreateAdvanceStageCommandHandler(),
		app.CreateRecordBreakCommandHandler(),
		app.CreateGetOrderStagesQueryHandler(),
		app.CreateGetActiveStagesQueryHandler(),
		app.CreateGetClaimableStagesQueryHandler(),
		app.CreateGetEligibleBreakDepartmentsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
