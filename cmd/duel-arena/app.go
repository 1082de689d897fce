package main

import (
	"github.com/ericogr/duel-arena/internal/api"
	"github.com/ericogr/duel-arena/internal/config"
	"github.com/ericogr/duel-arena/internal/constants"
	"github.com/ericogr/duel-arena/internal/logging"
	"github.com/ericogr/duel-arena/internal/skills"
	"github.com/ericogr/duel-arena/internal/storage"
)

func loadConfigOrExit() *config.Config {
	cfg, err := config.LoadDefault()
	if err != nil {
		logging.Fatal("Missing or invalid duel configuration", err, logging.Fields{"hint": "see duel.toml or set " + constants.EnvConfigPath})
	}
	return cfg
}

func loadCatalogOrExit(path string) *skills.Catalog {
	catalog, err := skills.LoadFile(path)
	if err != nil {
		logging.Fatal("Failed to load skill table", err, logging.Fields{"skills_path": path})
	}
	logging.Info("skill table loaded", logging.Fields{"skills_path": path, "skills": catalog.Len()})
	return catalog
}

func createRepositoryOrExit(cfg config.StorageConfig) storage.Repository {
	db, err := storage.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{"db_path": cfg.DBPath})
	}
	repo := storage.NewSQLiteRepository(db)
	if cfg.Cache {
		repo = storage.NewCachedRepository(repo)
	}
	return repo
}

func createIssuerOrExit(cfg config.AuthConfig) *api.TokenIssuer {
	issuer, err := api.NewTokenIssuer(cfg.SessionSecret, cfg.TokenTTL)
	if err != nil {
		logging.Fatal("Failed to initialize token issuer", err, nil)
	}
	return issuer
}
