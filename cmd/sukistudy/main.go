package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mrdjohnson/sukistudy/internal/api"
	"github.com/mrdjohnson/sukistudy/internal/app"
	"github.com/mrdjohnson/sukistudy/internal/config"
	"github.com/mrdjohnson/sukistudy/internal/logger"
	"github.com/mrdjohnson/sukistudy/internal/store"
	"github.com/mrdjohnson/sukistudy/internal/syncer"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sukistudy")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open local mirror")
	}
	defer func() { _ = db.Close() }()

	storages := store.NewStorages(db, log)

	client, err := api.NewClient(cfg.API, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	engine := syncer.NewEngine(client, storages, log)

	studyApp := app.NewApp(client, storages, engine, cfg.Sync, log)
	defer studyApp.Close()

	user, err := studyApp.RestoreSession(ctx)
	if errors.Is(err, app.ErrNoSession) {
		token := os.Getenv("SUKISTUDY_TOKEN")
		if token == "" {
			log.Fatal().Msg("no stored session: set SUKISTUDY_TOKEN to log in")
		}
		user, err = studyApp.Login(ctx, token)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("start session")
	}
	log.Info().Str("user", user.Username).Int("level", user.Level).Msg("session active, mirror syncing in background")

	<-ctx.Done()
	log.Info().Msg("shutting down")
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
