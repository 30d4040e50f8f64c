package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/database"
)

type TemplatesRepository struct {
	executor database.QueryExecuter
}

func NewTemplatesRepository(executor database.QueryExecuter) *TemplatesRepository {
	return &TemplatesRepository{
		executor: executor,
	}
}

func (tr *TemplatesRepository) FindByName(ctx context.Context, name string) (domain.CardTemplate, error) {
	findTemplateSQL := `SELECT ` + templateColumns + ` FROM card_templates WHERE name = $1`

	template, err := scanTemplate(tr.executor.QueryRow(ctx, findTemplateSQL, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CardTemplate{}, &domain.CardNotFoundError{Msg: fmt.Sprintf("card template %s does not exist", name)}
		}

		return domain.CardTemplate{}, fmt.Errorf("failed to find template: %w", err)
	}

	return template, nil
}

func (tr *TemplatesRepository) CountByRarity(ctx context.Context, rarity domain.Rarity) (int, error) {
	return CountTemplatesByRarity(ctx, tr.executor, rarity)
}

func (tr *TemplatesRepository) FindByRarityAtOffset(ctx context.Context, rarity domain.Rarity, offset int) (domain.CardTemplate, error) {
	return FindTemplateByRarityAtOffset(ctx, tr.executor, rarity, offset)
}

func (tr *TemplatesRepository) Count(ctx context.Context) (int, error) {
	countSQL := `SELECT COUNT(*) FROM card_templates`

	var count int
	err := tr.executor.QueryRow(ctx, countSQL).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count templates: %w", err)
	}

	return count, nil
}

// InsertTemplate is used by catalog seeding; core logic never creates
// templates.
func InsertTemplate(ctx context.Context, executor database.QueryExecuter, t domain.CardTemplate) (int64, error) {
	insertTemplateSQL := `INSERT INTO card_templates
(name, card_set, category, ability, flavor, rarity, faction, card_type, power, provision, image_url, faction_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

	var id int64
	err := executor.QueryRow(ctx, insertTemplateSQL,
		t.Name, t.Set, t.Category, t.Ability, t.Flavor, t.Rarity,
		t.Faction, t.Type, t.Power, t.Provision, t.ImageUrl, t.FactionUrl).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert template: %w", err)
	}

	return id, nil
}
