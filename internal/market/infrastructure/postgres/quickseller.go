package postgres

import (
	"context"
	"fmt"

	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/database"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/logging"
)

// Quickseller sells an owned instance back to the system at half base price.
// The instance survives with its copy number; only the owner is cleared.
type Quickseller struct {
	txManager database.TxManager
	logger    logging.Logger
}

func NewQuickseller(txManager database.TxManager, logger logging.Logger) *Quickseller {
	return &Quickseller{
		txManager: txManager,
		logger:    logger,
	}
}

func (qs *Quickseller) Quicksell(ctx context.Context, sellerEmail string, templateName string, copyNumber int) error {
	return qs.txManager.WithinTransaction(ctx, func(ctx context.Context, tx database.QueryExecuter) error {
		instance, found, err := LockInstance(ctx, tx, templateName, copyNumber)
		if err != nil {
			return err
		}
		if !found {
			return &domain.CardNotFoundError{Msg: fmt.Sprintf("card %s #%d does not exist", templateName, copyNumber)}
		}

		seller, err := LockUserByEmail(ctx, tx, sellerEmail)
		if err != nil {
			return err
		}

		if !instance.ownedBy(seller.ID) {
			return &domain.NotOwnerError{Msg: "you do not own the card"}
		}

		price, err := domain.QuicksellPrice(instance.Rarity)
		if err != nil {
			qs.logger.Error("card instance carries unknown rarity", "rarity", instance.Rarity, "instance_id", instance.ID)
			return err
		}

		creditBalanceSQL := `UPDATE users SET balance = balance + $1 WHERE id = $2`
		_, err = tx.Exec(ctx, creditBalanceSQL, price, seller.ID)
		if err != nil {
			return fmt.Errorf("failed to credit seller balance: %w", err)
		}

		clearOwnerSQL := `UPDATE card_instances SET owner_id = NULL WHERE id = $1`
		_, err = tx.Exec(ctx, clearOwnerSQL, instance.ID)
		if err != nil {
			return fmt.Errorf("failed to return card to system pool: %w", err)
		}

		return nil
	})
}
