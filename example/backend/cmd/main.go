package main

import (
	"context"

	"github.com/kelseyhightower/envconfig"
	"github.com/kodausch/advertising-go-client/example/backend/internal"
	"github.com/kodausch/advertising-go-client/example/backend/internal/database"
	"github.com/kodausch/advertising-go-client/example/backend/internal/http"

	_ "github.com/joho/godotenv/autoload"
)

type serverConfig struct {
	Address string `envconfig:"SERVER_ADDRESS" default:":8080"`
}

func main() {
	ctx := context.Background()
	logger := internal.NewLogger()
	defer func() { _ = logger.Sync() }()

	var config serverConfig
	if err := envconfig.Process("", &config); err != nil {
		logger.Fatalf("failed to process server config: %v", err)
	}

	var databaseConfig database.Config
	if err := envconfig.Process("", &databaseConfig); err != nil {
		logger.Fatalf("failed to process database config: %v", err)
	}

	databaseClient, err := database.NewMongoDBClient(ctx, &databaseConfig)
	if err != nil {
		logger.Fatalf("failed to create MongoDB client: %v", err)
	}
	defer func() { _ = databaseClient.Disconnect(ctx) }()

	campaignRepository, err := database.NewCampaignRepository(ctx, databaseClient.Database())
	if err != nil {
		logger.Fatalf("failed to create campaign repository: %v", err)
	}

	campaignService := internal.NewCampaignService(campaignRepository)

	logger.Infow("starting advert source", "address", config.Address)
	if err := http.StartServer(campaignService, logger, config.Address); err != nil {
		logger.Fatalf("failed to start HTTP server: %v", err)
	}
}
