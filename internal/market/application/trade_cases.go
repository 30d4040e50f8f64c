package application

import (
	"context"

	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
)

type ListCardCase struct {
	cardLister domain.CardLister
}

func NewListCardCase(cardLister domain.CardLister) *ListCardCase {
	return &ListCardCase{
		cardLister: cardLister,
	}
}

func (lc *ListCardCase) ListCard(ctx context.Context, sellerEmail string, templateName string, copyNumber int, price int64) error {
	return lc.cardLister.List(ctx, sellerEmail, templateName, copyNumber, price)
}

type BuyCardCase struct {
	cardBuyer domain.CardBuyer
}

func NewBuyCardCase(cardBuyer domain.CardBuyer) *BuyCardCase {
	return &BuyCardCase{
		cardBuyer: cardBuyer,
	}
}

func (bc *BuyCardCase) BuyCard(ctx context.Context, buyerEmail string, templateName string, copyNumber int) error {
	return bc.cardBuyer.Buy(ctx, buyerEmail, templateName, copyNumber)
}

type QuicksellCase struct {
	quickseller domain.Quickseller
}

func NewQuicksellCase(quickseller domain.Quickseller) *QuicksellCase {
	return &QuicksellCase{
		quickseller: quickseller,
	}
}

func (qc *QuicksellCase) Quicksell(ctx context.Context, sellerEmail string, templateName string, copyNumber int) error {
	return qc.quickseller.Quicksell(ctx, sellerEmail, templateName, copyNumber)
}
