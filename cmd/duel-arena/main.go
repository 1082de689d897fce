package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ericogr/duel-arena/internal/api"
	"github.com/ericogr/duel-arena/internal/constants"
	"github.com/ericogr/duel-arena/internal/engine"
	"github.com/ericogr/duel-arena/internal/hub"
	"github.com/ericogr/duel-arena/internal/logging"
	"github.com/ericogr/duel-arena/internal/render"
	"github.com/ericogr/duel-arena/internal/service"
	"github.com/ericogr/duel-arena/internal/version"
)

func main() {
	cfg := loadConfigOrExit()
	if err := logging.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "invalid logging configuration: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()
	logging.Info("starting duel-arena", logging.Fields{"version": version.Version, "commit": version.Commit})

	// The catalog is loaded once; a bad table stops the process before it serves anything.
	catalog := loadCatalogOrExit(cfg.Skills.Path)
	repo := createRepositoryOrExit(cfg.Storage)
	issuer := createIssuerOrExit(cfg.Auth)

	feed := hub.NewBroadcaster()
	rt := service.NewRuntime(engine.New(catalog), repo, render.New(cfg.Render.Language), feed)
	router := api.NewRouter(api.NewRoomHandler(rt, feed, cfg.Render.Language), issuer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg.Server.Address, router); err != nil {
		logging.Fatal("server stopped with error", err, logging.Fields{constants.LogFieldAddr: cfg.Server.Address})
	}
	logging.Info("server stopped", nil)
}
