package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"pokedex/catalog"
	"pokedex/config"
	"pokedex/logger"
	"pokedex/pokemon"
	"pokedex/server"
	"pokedex/storage"
	"pokedex/store"
)

func main() {
	app := &cli.App{
		Name:  "pokedexd",
		Usage: "start the pokedex catalog daemon and API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the yaml configuration file",
				Value:   "pokedex.yaml",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "port to serve the API on, overrides the configuration file",
			},
			&cli.StringFlag{
				Name:    "storeType",
				Aliases: []string{"st"},
				Usage:   `store type to use, allowed values: "memory", "persisted", overrides the configuration file`,
				Action: func(ctx *cli.Context, v string) error {
					if v != "memory" && v != "persisted" {
						return errors.New(`invalid storeType, allowed values: "memory", "persisted"`)
					}
					return nil
				},
			},
			&cli.StringFlag{
				Name:  "logLevel",
				Usage: `log level to use, allowed values: "debug", "info", "error", overrides the configuration file`,
				Action: func(ctx *cli.Context, v string) error {
					if v != "debug" && v != "info" && v != "error" {
						return errors.New(`invalid logLevel, allowed values: "debug", "info", "error"`)
					}
					return nil
				},
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := config.Load(ctx.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if ctx.Int("port") != 0 {
				cfg.Port = ctx.Int("port")
			}
			if ctx.String("storeType") != "" {
				cfg.Store.Type = ctx.String("storeType")
			}
			if ctx.String("logLevel") != "" {
				cfg.LogLevel = ctx.String("logLevel")
			}

			logger.Setup(cfg.LogLevel, "pokedexd")
			return startDaemon(cfg)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func startDaemon(cfg *config.Config) error {
	medium, err := newMedium(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := medium.Close(); err != nil {
			log.Err(err).Msg("failed to close storage medium")
		}
	}()

	persistentStore := store.New(medium)
	fetcher := pokemon.NewClient(cfg.Catalog.BaseUrl)
	service := catalog.New(fetcher, persistentStore, cfg.Catalog.Limit)
	defer service.Stop()

	// Launch background routines
	go service.ProcessRefreshes()
	go service.RunPeriodicRefresh(time.Duration(cfg.Catalog.RefreshMinutes) * time.Minute)

	// Warm the cache on startup
	service.Refresh()

	// Run API
	log.Info().Msgf("Pokedex API listening on %s:%d", cfg.Host, cfg.Port)
	api := server.Api{Address: cfg.Host, Port: cfg.Port, Store: persistentStore, Catalog: service}
	api.StartRouter()
	return nil
}

func newMedium(cfg *config.Config) (storage.Medium, error) {
	switch cfg.Store.Type {
	case "memory":
		return storage.NewMemoryMedium(), nil
	case "persisted":
		return storage.NewBoltMedium(cfg.Store.Path, 0600, "pokedex")
	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.Store.Type)
	}
}
