package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/market/infrastructure/postgres"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/database"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/logging"
)

//go:embed cards.json
var cardsJSON []byte

// Initial unowned pool per template, by rarity.
var poolSizes = map[domain.Rarity]int{
	domain.RarityCommon:    40,
	domain.RarityRare:      15,
	domain.RarityEpic:      5,
	domain.RarityLegendary: 2,
}

type cardRecord struct {
	Name      string `json:"name"`
	Set       string `json:"set"`
	Category  string `json:"category"`
	Ability   string `json:"ability"`
	Flavor    string `json:"flavor"`
	Rarity    string `json:"rarity"`
	Faction   string `json:"faction"`
	Type      string `json:"type"`
	Power     int    `json:"power"`
	Provision int    `json:"provision"`
}

// Loader seeds the card catalog on startup: every embedded template plus its
// initial unowned pool copies, all in one transaction. A non-empty catalog is
// left untouched.
type Loader struct {
	txManager database.TxManager
	logger    logging.Logger
}

func NewLoader(txManager database.TxManager, logger logging.Logger) *Loader {
	return &Loader{
		txManager: txManager,
		logger:    logger,
	}
}

func (l *Loader) Seed(ctx context.Context) error {
	var records []cardRecord
	if err := json.Unmarshal(cardsJSON, &records); err != nil {
		return fmt.Errorf("failed to parse embedded card set: %w", err)
	}

	return l.txManager.WithinTransaction(ctx, func(ctx context.Context, tx database.QueryExecuter) error {
		var count int
		err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM card_templates`).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to count templates: %w", err)
		}

		if count > 0 {
			l.logger.Info("card catalog already loaded, skipping seed")
			return nil
		}

		for _, record := range records {
			err = l.seedTemplate(ctx, tx, record)
			if err != nil {
				return err
			}
		}

		l.logger.Info("card catalog seeded", "templates", len(records))
		return nil
	})
}

func (l *Loader) seedTemplate(ctx context.Context, tx database.QueryExecuter, record cardRecord) error {
	rarity := domain.Rarity(record.Rarity)

	poolSize, ok := poolSizes[rarity]
	if !ok {
		l.logger.Error("embedded card set carries unknown rarity", "rarity", record.Rarity, "template", record.Name)
		return &domain.UnknownRarityError{Msg: fmt.Sprintf("unexpected rarity: %s", record.Rarity)}
	}

	template := domain.CardTemplate{
		Name:       record.Name,
		Set:        record.Set,
		Category:   record.Category,
		Ability:    record.Ability,
		Flavor:     record.Flavor,
		Rarity:     rarity,
		Faction:    record.Faction,
		Type:       record.Type,
		Power:      record.Power,
		Provision:  record.Provision,
		ImageUrl:   fmt.Sprintf("https://gwent.one/image/gwent/assets/card/art/medium/%s.png", record.Name),
		FactionUrl: fmt.Sprintf("https://gwent.one/img/icon/search/faction/%s.png", factionSlug(record.Faction)),
	}

	_, err := postgres.InsertTemplate(ctx, tx, template)
	if err != nil {
		return err
	}

	for copyNumber := 1; copyNumber <= poolSize; copyNumber++ {
		_, err = postgres.InsertInstance(ctx, tx, domain.CardInstance{
			TemplateName: template.Name,
			CopyNumber:   copyNumber,
			Owner:        domain.SystemPool(),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func factionSlug(faction string) string {
	slug := make([]rune, 0, len(faction))
	for _, r := range faction {
		switch {
		case r == ' ':
			slug = append(slug, '_')
		case r >= 'A' && r <= 'Z':
			slug = append(slug, r+('a'-'A'))
		default:
			slug = append(slug, r)
		}
	}

	return string(slug)
}
