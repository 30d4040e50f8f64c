package postgres

import (
	"context"
	"errors"

	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/database"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/logging"
)

// PackOpener performs the whole "buy pack, mint cards, credit collection"
// flow as one transaction. If anything fails nothing is minted and the buyer
// keeps their balance.
type PackOpener struct {
	txManager database.TxManager
	registry  *domain.PackRegistry
	random    domain.RandomSource
	logger    logging.Logger
}

func NewPackOpener(txManager database.TxManager, registry *domain.PackRegistry, random domain.RandomSource, logger logging.Logger) *PackOpener {
	return &PackOpener{
		txManager: txManager,
		registry:  registry,
		random:    random,
		logger:    logger,
	}
}

func (po *PackOpener) Open(ctx context.Context, packName string, buyerEmail string) ([]domain.CardInstance, error) {
	pack, err := po.registry.Find(packName)
	if err != nil {
		return nil, err
	}

	var minted []domain.CardInstance

	err = po.txManager.WithinTransaction(ctx, func(ctx context.Context, tx database.QueryExecuter) error {
		// the transaction may be retried; start each attempt clean
		minted = nil

		buyer, err := LockUserByEmail(ctx, tx, buyerEmail)
		if err != nil {
			return err
		}

		if buyer.Balance < pack.Price {
			return &domain.InsufficientBalanceError{Msg: "not enough balance for this pack"}
		}

		rarities := domain.DrawRarities(pack.Probabilities, pack.CardCount, po.random)

		for _, rarity := range rarities {
			template, err := PickTemplate(ctx, tx, rarity, po.random)
			if err != nil {
				if errors.Is(err, &domain.NoTemplatesForRarityError{}) {
					po.logger.Error("catalog has no templates for rarity", "rarity", rarity, "pack", pack.Name)
				}
				return err
			}

			instance, err := MintInstance(ctx, tx, template.Name, buyer.ID)
			if err != nil {
				return err
			}

			minted = append(minted, instance)
		}

		return debitBalance(ctx, tx, buyer.ID, pack.Price)
	})

	if err != nil {
		return nil, err
	}

	return minted, nil
}
