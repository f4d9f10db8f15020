package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"logistics/cmd"
	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/generated/servers"
	"logistics/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const defaultEscalationGraceHours = 48

func main() {
	configs := getConfigs()

	err := cmd.CreateDBIfNotExists(
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	if err != nil {
		log.Fatalf("Database bootstrap failed: %v", err)
	}

	connStr := cmd.MakeConnectionString(
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	gormDB := cmd.MustConnectDB(connStr)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		NDREscalationSchedule:   goDotEnvVariable("NDR_ESCALATION_SCHEDULE"),
		NDREscalationGraceHours: goDotEnvVariable("NDR_ESCALATION_GRACE_HOURS"),
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

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	graceHours, err := strconv.Atoi(configs.NDREscalationGraceHours)
	if err != nil || graceHours <= 0 {
		graceHours = defaultEscalationGraceHours
	}

	jobManager := jobs.NewJobManager(
		app.CreateEscalateOverdueNDRsCommandHandler(),
		configs.NDREscalationSchedule,
		time.Duration(graceHours)*time.Hour,
		logger,
	)

	if startErr := jobManager.StartAll(); startErr != nil {
		log.Fatalf("Failed to start jobs: %v", startErr)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateAssignPartnerCommandHandler(),
		app.CreateTransitionShipmentCommandHandler(),
		app.CreateRecordFailedAttemptCommandHandler(),
		app.CreateLogNDRContactCommandHandler(),
		app.CreateResolveNDRCommandHandler(),
		app.CreateSelectPartnerQueryHandler(),
		app.CreateGetAllowedTransitionsQueryHandler(),
		app.CreateGetStatusHistoryQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
