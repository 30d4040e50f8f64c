package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/database"
)

type InstancesRepository struct {
	executor database.QueryExecuter
}

func NewInstancesRepository(executor database.QueryExecuter) *InstancesRepository {
	return &InstancesRepository{
		executor: executor,
	}
}

func (ir *InstancesRepository) FindByTemplateAndNumber(ctx context.Context, templateName string, copyNumber int) (domain.CardInstance, error) {
	findInstanceSQL := `SELECT id, template_name, copy_number, owner_id
FROM card_instances
WHERE template_name = $1 AND copy_number = $2`

	instance, err := scanInstance(ir.executor.QueryRow(ctx, findInstanceSQL, templateName, copyNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CardInstance{}, &domain.CardNotFoundError{Msg: fmt.Sprintf("card %s #%d does not exist", templateName, copyNumber)}
		}

		return domain.CardInstance{}, fmt.Errorf("failed to find card instance: %w", err)
	}

	return instance, nil
}

func (ir *InstancesRepository) CountByTemplate(ctx context.Context, templateName string) (int, error) {
	return CountInstancesByTemplate(ctx, ir.executor, templateName)
}

func (ir *InstancesRepository) FindUnownedByTemplate(ctx context.Context, templateName string) ([]domain.CardInstance, error) {
	findUnownedSQL := `SELECT id, template_name, copy_number, owner_id
FROM card_instances
WHERE template_name = $1 AND owner_id IS NULL
ORDER BY copy_number`

	rows, err := ir.executor.Query(ctx, findUnownedSQL, templateName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unowned instances: %w", err)
	}
	defer rows.Close()

	var instances []domain.CardInstance
	for rows.Next() {
		instance, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card instance row: %w", err)
		}

		instances = append(instances, instance)
	}

	return instances, rows.Err()
}

func scanInstance(row pgx.Row) (domain.CardInstance, error) {
	var instance domain.CardInstance
	var ownerID *int64

	err := row.Scan(&instance.ID, &instance.TemplateName, &instance.CopyNumber, &ownerID)
	if err != nil {
		return domain.CardInstance{}, err
	}

	if ownerID != nil {
		instance.Owner = domain.OwnedBy(*ownerID)
	} else {
		instance.Owner = domain.SystemPool()
	}

	return instance, nil
}

// InsertInstance is used by catalog seeding and tests; pack openings go
// through MintInstance, which assigns the copy number under lock.
func InsertInstance(ctx context.Context, executor database.QueryExecuter, instance domain.CardInstance) (int64, error) {
	insertInstanceSQL := `INSERT INTO card_instances (template_name, copy_number, owner_id) VALUES ($1, $2, $3) RETURNING id`

	var ownerID *int64
	if id, owned := instance.Owner.UserID(); owned {
		ownerID = &id
	}

	var id int64
	err := executor.QueryRow(ctx, insertInstanceSQL, instance.TemplateName, instance.CopyNumber, ownerID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert card instance: %w", err)
	}

	return id, nil
}
