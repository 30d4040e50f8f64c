package bootstrap

import "github.com/kalandadze/GwentMarketplace/internal/pkg/database"

type MarketConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string
}
