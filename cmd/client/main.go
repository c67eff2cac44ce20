package main

import (
	"context"
	"fmt"

	"github.com/lyra-school/lyra-client/internal/client"
	"github.com/lyra-school/lyra-client/internal/config"
	"github.com/lyra-school/lyra-client/internal/logger"
	"github.com/lyra-school/lyra-client/internal/service"
	"github.com/lyra-school/lyra-client/internal/tui"
	"github.com/lyra-school/lyra-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("lyra-client", "")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, closeStorages, err := client.OpenStorages(context.Background(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open storages")
	}
	defer func() {
		if err := closeStorages(); err != nil {
			log.Err(err).Msg("close storages")
		}
	}()

	services := service.NewServices(storages, *cfg, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
