package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/kalandadze/GwentMarketplace/internal/market/application"
	"github.com/kalandadze/GwentMarketplace/internal/market/catalog"
	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	marketh "github.com/kalandadze/GwentMarketplace/internal/market/infrastructure/http"
	"github.com/kalandadze/GwentMarketplace/internal/market/infrastructure/postgres"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/database"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/logging"
	"github.com/kalandadze/GwentMarketplace/migrations"
)

const shutdownTimeout = 5 * time.Second

type MarketApp struct {
	cfg    MarketConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewMarketApp(cfg MarketConfig, logger logging.Logger) *MarketApp {
	return &MarketApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *MarketApp) Run(ctx context.Context, lis net.Listener) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetUrl()

	err := database.MigrateDatabase(dbURL, migrations.FS, ".", "pgx", "postgres")
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	a.dbpool = dbpool
	txManager := database.NewDelegateTxManager(dbpool)

	loader := catalog.NewLoader(txManager, logger)
	if err := loader.Seed(ctx); err != nil {
		return fmt.Errorf("failed to seed card catalog: %w", err)
	}

	registry := domain.DefaultPackRegistry()
	random := domain.SystemRandom{}

	cardLister := postgres.NewCardLister(txManager, logger)
	cardBuyer := postgres.NewCardBuyer(txManager, logger)
	quickseller := postgres.NewQuickseller(txManager, logger)
	packOpener := postgres.NewPackOpener(txManager, registry, random, logger)

	usersRepository := postgres.NewUsersRepository(dbpool)
	templatesRepository := postgres.NewTemplatesRepository(dbpool)
	instancesRepository := postgres.NewInstancesRepository(dbpool)
	listingsRepository := postgres.NewListingsRepository(dbpool)

	listCase := application.NewListCardCase(cardLister)
	buyCase := application.NewBuyCardCase(cardBuyer)
	sellCase := application.NewQuicksellCase(quickseller)
	openPackCase := application.NewOpenPackCase(packOpener, registry)
	listingsCase := application.NewListingsCase(listingsRepository, instancesRepository, templatesRepository, logger)
	cardInfoCase := application.NewCardInfoCase(instancesRepository)
	profileCase := application.NewProfileCase(usersRepository, listingsRepository, logger)

	marketHandler := marketh.NewMarketHandler(listCase, buyCase, sellCase, listingsCase, cardInfoCase, profileCase, logger)
	packHandler := marketh.NewPackHandler(openPackCase, logger)

	a.server = &http.Server{
		Handler: marketh.NewRouter(marketHandler, packHandler),
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "addr", lis.Addr().String())

		if err := a.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve HTTP: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

func (a *MarketApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("failed to shut down HTTP server", "error", err.Error())
	}

	a.dbpool.Close()
	a.logger.Info("HTTP server stopped")
}
