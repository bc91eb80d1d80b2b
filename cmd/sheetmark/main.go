package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sheetmark/internal/adapter"
	"github.com/MKhiriev/sheetmark/internal/bridge"
	"github.com/MKhiriev/sheetmark/internal/config"
	"github.com/MKhiriev/sheetmark/internal/logger"
	"github.com/MKhiriev/sheetmark/internal/service"
	"github.com/MKhiriev/sheetmark/internal/store"
	"github.com/MKhiriev/sheetmark/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sheetmark")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	sheets, err := adapter.NewHTTPSheetAdapter(cfg.Adapter, cfg.Sheets, adapter.StaticTokenSource(cfg.Sheets.AccessToken), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create sheet adapter")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewServices(storages, sheets, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ExportMode {
		added, err := services.SyncService.Export(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
		log.Info().Int("added", added).Msg("export finished")
		return
	}

	eventBridge := bridge.NewEventBridge(ctx, services.MirrorService, log)
	workers.NewWorkers(eventBridge).Run()

	services.SyncJob.Start(ctx, cfg.Workers.SyncInterval)

	<-ctx.Done()
	log.Info().Msg("shutting down")

	services.SyncJob.Stop()
	eventBridge.Wait()
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
