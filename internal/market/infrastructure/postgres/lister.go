package postgres

import (
	"context"
	"fmt"

	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/database"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/logging"
)

// CardLister puts an owned card instance up for sale. While listed the
// instance's owner is cleared, which escrows it out of the seller's
// tradeable collection until sale or cancellation.
type CardLister struct {
	txManager database.TxManager
	logger    logging.Logger
}

func NewCardLister(txManager database.TxManager, logger logging.Logger) *CardLister {
	return &CardLister{
		txManager: txManager,
		logger:    logger,
	}
}

func (cl *CardLister) List(ctx context.Context, sellerEmail string, templateName string, copyNumber int, price int64) error {
	if price <= 0 {
		return &domain.InvalidArgumentsError{Msg: "listing price must be positive"}
	}

	return cl.txManager.WithinTransaction(ctx, func(ctx context.Context, tx database.QueryExecuter) error {
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

		_, listed, err := LockListing(ctx, tx, templateName, copyNumber)
		if err != nil {
			return err
		}
		if listed {
			return &domain.AlreadyListedError{Msg: "card is already listed"}
		}

		insertListingSQL := `INSERT INTO listings (template_name, copy_number, seller_id, price) VALUES ($1, $2, $3, $4)`
		_, err = tx.Exec(ctx, insertListingSQL, templateName, copyNumber, seller.ID, price)
		if err != nil {
			return fmt.Errorf("failed to insert listing: %w", err)
		}

		clearOwnerSQL := `UPDATE card_instances SET owner_id = NULL WHERE id = $1`
		_, err = tx.Exec(ctx, clearOwnerSQL, instance.ID)
		if err != nil {
			return fmt.Errorf("failed to escrow card instance: %w", err)
		}

		return nil
	})
}
