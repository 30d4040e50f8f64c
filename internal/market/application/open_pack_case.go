package application

import (
	"context"

	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
)

type OpenPackCase struct {
	packOpener domain.PackOpener
	registry   *domain.PackRegistry
}

func NewOpenPackCase(packOpener domain.PackOpener, registry *domain.PackRegistry) *OpenPackCase {
	return &OpenPackCase{
		packOpener: packOpener,
		registry:   registry,
	}
}

func (oc *OpenPackCase) OpenPack(ctx context.Context, packName string, buyerEmail string) ([]domain.CardInstance, error) {
	return oc.packOpener.Open(ctx, packName, buyerEmail)
}

func (oc *OpenPackCase) AllPacks() []domain.PackDefinition {
	return oc.registry.All()
}
