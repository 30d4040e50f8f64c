package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/kalandadze/GwentMarketplace/internal/market/bootstrap"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/database"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/env"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/logging"
)

const networkProtocol = "tcp"

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.StdoutLogger

	cfg := bootstrap.MarketConfig{
		HttpPort: ":8080",
		DbSettings: database.PostgresSettings{
			User:     "admin",
			Password: "password",
			Host:     "localhost",
			Port:     "5432",
			DBName:   "gwent_market_db",
		},
	}

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)

	lis, err := net.Listen(networkProtocol, cfg.HttpPort)
	if err != nil {
		logger.Error("failed to listen", "port", cfg.HttpPort, "error", err.Error())
		os.Exit(1)
	}

	app := bootstrap.NewMarketApp(cfg, logger)

	if err := app.Run(mainCtx, lis); err != nil {
		logger.Error("market app stopped with error", "error", err.Error())
		app.Shutdown()
		os.Exit(1)
	}

	app.Shutdown()
}
