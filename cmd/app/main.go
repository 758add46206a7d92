package main

import (
	"fmt"
	"log/slog"
	"os"

	"atelier/cmd"
	httpadapter "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/kafka"
	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/core/ports"
	"atelier/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	if err := orderrepo.MigrateSchema(gormDB); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	publisher := createPublisher(configs, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", "error", err)
		}
	}()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager := jobs.NewJobManager(app.CreateGetOverdueMilestonesQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func createPublisher(configs cmd.Config, logger *slog.Logger) ports.OrderEventPublisher {
	if configs.KafkaHost == "" {
		logger.Warn("KAFKA_HOST is not set, order change events will be discarded")
		return kafka.NopOrderEventPublisher{}
	}
	return kafka.NewOrderEventPublisher(configs.KafkaHost, configs.KafkaOrderChangedTopic, logger)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:            app.CreateCreateOrderCommandHandler(),
		AdvanceStatus:          app.CreateAdvanceStatusCommandHandler(),
		UpdateConsultation:     app.CreateUpdateConsultationCommandHandler(),
		UpdateDelivery:         app.CreateUpdateDeliveryCommandHandler(),
		UpdateEmergencyContact: app.CreateUpdateEmergencyContactCommandHandler(),
		OpenRevision:           app.CreateOpenRevisionCommandHandler(),
		ReviewRevision:         app.CreateReviewRevisionCommandHandler(),
		AddMilestone:           app.CreateAddMilestoneCommandHandler(),
		MarkMilestonePaid:      app.CreateMarkMilestonePaidCommandHandler(),
		OpenDispute:            app.CreateOpenDisputeCommandHandler(),
		ResolveDispute:         app.CreateResolveDisputeCommandHandler(),
		RequestAlteration:      app.CreateRequestAlterationCommandHandler(),
		ReviewAlteration:       app.CreateReviewAlterationCommandHandler(),
		RequestRefund:          app.CreateRequestRefundCommandHandler(),
		ProcessRefund:          app.CreateProcessRefundCommandHandler(),
		GetOrder:               app.CreateGetOrderQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
