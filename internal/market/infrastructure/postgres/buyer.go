package postgres

import (
	"context"
	"fmt"

	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/database"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/logging"
)

// CardBuyer settles purchases. A listed card transfers at the listing price
// from seller to buyer; an unowned card sells out of the system pool at its
// rarity's base price. An owned, unlisted card is not for sale. Buying your
// own listing nets to zero and takes the card back, which doubles as listing
// cancellation.
type CardBuyer struct {
	txManager database.TxManager
	logger    logging.Logger
}

func NewCardBuyer(txManager database.TxManager, logger logging.Logger) *CardBuyer {
	return &CardBuyer{
		txManager: txManager,
		logger:    logger,
	}
}

func (cb *CardBuyer) Buy(ctx context.Context, buyerEmail string, templateName string, copyNumber int) error {
	return cb.txManager.WithinTransaction(ctx, func(ctx context.Context, tx database.QueryExecuter) error {
		instance, found, err := LockInstance(ctx, tx, templateName, copyNumber)
		if err != nil {
			return err
		}
		if !found {
			return &domain.CardNotForSaleError{Msg: "card is not listed for sale, or has already been sold"}
		}

		listing, listed, err := LockListing(ctx, tx, templateName, copyNumber)
		if err != nil {
			return err
		}

		if listed {
			return cb.buyListed(ctx, tx, buyerEmail, instance, listing)
		}

		if instance.OwnerID != nil {
			return &domain.CardNotForSaleError{Msg: "card is not listed for sale, or has already been sold"}
		}

		return cb.buyFromPool(ctx, tx, buyerEmail, instance)
	})
}

func (cb *CardBuyer) buyListed(ctx context.Context, tx database.QueryExecuter, buyerEmail string, instance instanceRow, listing listingRow) error {
	buyer, seller, err := LockUserPair(ctx, tx, buyerEmail, listing.SellerID)
	if err != nil {
		return err
	}

	if buyer.Balance < listing.Price {
		return &domain.InsufficientBalanceError{Msg: "not enough balance for card"}
	}

	err = debitBalance(ctx, tx, buyer.ID, listing.Price)
	if err != nil {
		return err
	}

	creditBalanceSQL := `UPDATE users SET balance = balance + $1 WHERE id = $2`
	_, err = tx.Exec(ctx, creditBalanceSQL, listing.Price, seller.ID)
	if err != nil {
		return fmt.Errorf("failed to credit seller balance: %w", err)
	}

	deleteListingSQL := `DELETE FROM listings WHERE id = $1`
	_, err = tx.Exec(ctx, deleteListingSQL, listing.ID)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	return assignOwner(ctx, tx, instance.ID, buyer.ID)
}

func (cb *CardBuyer) buyFromPool(ctx context.Context, tx database.QueryExecuter, buyerEmail string, instance instanceRow) error {
	price, err := domain.BasePrice(instance.Rarity)
	if err != nil {
		cb.logger.Error("card instance carries unknown rarity", "rarity", instance.Rarity, "instance_id", instance.ID)
		return err
	}

	buyer, err := LockUserByEmail(ctx, tx, buyerEmail)
	if err != nil {
		return err
	}

	if buyer.Balance < price {
		return &domain.InsufficientBalanceError{Msg: "not enough balance for card"}
	}

	err = debitBalance(ctx, tx, buyer.ID, price)
	if err != nil {
		return err
	}

	return assignOwner(ctx, tx, instance.ID, buyer.ID)
}

// debitBalance keeps the non-negative balance guard in the statement itself,
// so a stale read can never drive a balance below zero.
func debitBalance(ctx context.Context, executor database.Executor, userID int64, amount int64) error {
	debitSQL := `UPDATE users SET balance = balance - $1 WHERE id = $2 AND balance >= $1`
	tag, err := executor.Exec(ctx, debitSQL, amount, userID)
	if err != nil {
		return fmt.Errorf("failed to debit balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.InsufficientBalanceError{Msg: "not enough balance"}
	}

	return nil
}

func assignOwner(ctx context.Context, executor database.Executor, instanceID int64, ownerID int64) error {
	assignOwnerSQL := `UPDATE card_instances SET owner_id = $1 WHERE id = $2`
	_, err := executor.Exec(ctx, assignOwnerSQL, ownerID, instanceID)
	if err != nil {
		return fmt.Errorf("failed to assign card owner: %w", err)
	}

	return nil
}
