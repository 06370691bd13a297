package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"pizzaria/cmd"
	httpin "pizzaria/internal/adapters/in/http"
	"pizzaria/internal/adapters/out/postgres/orderrepo"
	"pizzaria/internal/adapters/out/postgres/quoterepo"
	"pizzaria/internal/adapters/out/postgres/settingsrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err := app.SeedPricingConfig(context.Background(), configs); err != nil {
		log.Fatalf("Error seeding pricing config: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app.CreateHTTPServer(), configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		EventLogPath:       goDotEnvVariable("EVENT_LOG_PATH"),
		MapsBaseURL:        goDotEnvVariable("MAPS_BASE_URL"),
		GeocodingAPIKey:    goDotEnvVariable("GEOCODING_API_KEY"),
		DeliveryOriginLat:  goDotEnvVariable("DELIVERY_ORIGIN_LAT"),
		DeliveryOriginLng:  goDotEnvVariable("DELIVERY_ORIGIN_LNG"),
		DeliveryPricePerKm: goDotEnvVariable("DELIVERY_PRICE_PER_KM"),
		DeliveryMinFee:     goDotEnvVariable("DELIVERY_MIN_FEE"),
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
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&quoterepo.QuoteDTO{},
		&settingsrepo.PauseFlagDTO{},
		&settingsrepo.PricingConfigDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startWebServer(server *httpin.Server, port string) {
	e := echo.New()
	e.Validator = httpin.NewRequestValidator()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
