package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/database"
)

const templateColumns = `id, name, card_set, category, ability, flavor, rarity, faction, card_type, power, provision, image_url, faction_url`

// PickTemplate selects one template of the given rarity uniformly at random.
// Zero templates for a recognized rarity means the catalog is malformed.
func PickTemplate(ctx context.Context, querier database.Querier, rarity domain.Rarity, random domain.RandomSource) (domain.CardTemplate, error) {
	count, err := CountTemplatesByRarity(ctx, querier, rarity)
	if err != nil {
		return domain.CardTemplate{}, err
	}
	if count == 0 {
		return domain.CardTemplate{}, &domain.NoTemplatesForRarityError{Msg: fmt.Sprintf("no card templates with rarity %s", rarity)}
	}

	return FindTemplateByRarityAtOffset(ctx, querier, rarity, random.IntN(count))
}

func CountTemplatesByRarity(ctx context.Context, querier database.Querier, rarity domain.Rarity) (int, error) {
	countSQL := `SELECT COUNT(*) FROM card_templates WHERE rarity = $1`

	var count int
	err := querier.QueryRow(ctx, countSQL, rarity).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count templates by rarity: %w", err)
	}

	return count, nil
}

func FindTemplateByRarityAtOffset(ctx context.Context, querier database.Querier, rarity domain.Rarity, offset int) (domain.CardTemplate, error) {
	selectSQL := `SELECT ` + templateColumns + ` FROM card_templates WHERE rarity = $1 ORDER BY id OFFSET $2 LIMIT 1`

	template, err := scanTemplate(querier.QueryRow(ctx, selectSQL, rarity, offset))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CardTemplate{}, &domain.NoTemplatesForRarityError{Msg: fmt.Sprintf("no card template with rarity %s at offset %d", rarity, offset)}
		}

		return domain.CardTemplate{}, fmt.Errorf("failed to fetch template at offset: %w", err)
	}

	return template, nil
}

func scanTemplate(row pgx.Row) (domain.CardTemplate, error) {
	var t domain.CardTemplate
	err := row.Scan(&t.ID, &t.Name, &t.Set, &t.Category, &t.Ability, &t.Flavor,
		&t.Rarity, &t.Faction, &t.Type, &t.Power, &t.Provision, &t.ImageUrl, &t.FactionUrl)
	if err != nil {
		return domain.CardTemplate{}, err
	}

	return t, nil
}

// MintInstance creates the next copy of a template. The template row is
// locked first: the copy number is count+1, and the held lock is what keeps
// two concurrent mints of the same template from computing the same number.
// Minting is not idempotent; every call produces a new instance.
func MintInstance(ctx context.Context, tx database.QueryExecuter, templateName string, ownerID int64) (domain.CardInstance, error) {
	lockTemplateSQL := `SELECT id FROM card_templates WHERE name = $1 FOR UPDATE`

	var templateID int64
	err := tx.QueryRow(ctx, lockTemplateSQL, templateName).Scan(&templateID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CardInstance{}, &domain.CardNotFoundError{Msg: fmt.Sprintf("card template %s does not exist", templateName)}
		}

		return domain.CardInstance{}, fmt.Errorf("failed to lock template row: %w", err)
	}

	count, err := CountInstancesByTemplate(ctx, tx, templateName)
	if err != nil {
		return domain.CardInstance{}, err
	}

	copyNumber := count + 1

	insertInstanceSQL := `INSERT INTO card_instances (template_name, copy_number, owner_id) VALUES ($1, $2, $3) RETURNING id`

	var instanceID int64
	err = tx.QueryRow(ctx, insertInstanceSQL, templateName, copyNumber, ownerID).Scan(&instanceID)
	if err != nil {
		return domain.CardInstance{}, fmt.Errorf("failed to insert card instance: %w", err)
	}

	return domain.CardInstance{
		ID:           instanceID,
		TemplateName: templateName,
		CopyNumber:   copyNumber,
		Owner:        domain.OwnedBy(ownerID),
	}, nil
}

func CountInstancesByTemplate(ctx context.Context, querier database.Querier, templateName string) (int, error) {
	countSQL := `SELECT COUNT(*) FROM card_instances WHERE template_name = $1`

	var count int
	err := querier.QueryRow(ctx, countSQL, templateName).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count instances by template: %w", err)
	}

	return count, nil
}
