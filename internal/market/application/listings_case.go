package application

import (
	"context"

	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/logging"
)

// Offer is one buyable card: either a seller's listing at their price, or an
// unowned pool card at the rarity's base price.
type Offer struct {
	TemplateName string
	CopyNumber   int
	Price        int64
	SellerID     int64
	System       bool
}

// ListingsCase builds the sale board for one template: explicit listings
// first, then pool cards that are not already listed. A listed card's owner
// is cleared, so the pool query would surface it too; the dedupe by copy
// number keeps each card to a single offer.
type ListingsCase struct {
	listingRepository  domain.ListingRepository
	instanceRepository domain.InstanceRepository
	templateRepository domain.TemplateRepository
	logger             logging.Logger
}

func NewListingsCase(
	listingRepository domain.ListingRepository,
	instanceRepository domain.InstanceRepository,
	templateRepository domain.TemplateRepository,
	logger logging.Logger,
) *ListingsCase {
	return &ListingsCase{
		listingRepository:  listingRepository,
		instanceRepository: instanceRepository,
		templateRepository: templateRepository,
		logger:             logger,
	}
}

func (lc *ListingsCase) GetOffers(ctx context.Context, templateName string) ([]Offer, error) {
	template, err := lc.templateRepository.FindByName(ctx, templateName)
	if err != nil {
		return nil, err
	}

	listings, err := lc.listingRepository.FindByTemplate(ctx, templateName)
	if err != nil {
		return nil, err
	}

	offers := make([]Offer, 0, len(listings))
	listed := make(map[int]struct{}, len(listings))

	for _, listing := range listings {
		offers = append(offers, Offer{
			TemplateName: listing.TemplateName,
			CopyNumber:   listing.CopyNumber,
			Price:        listing.Price,
			SellerID:     listing.SellerID,
		})
		listed[listing.CopyNumber] = struct{}{}
	}

	basePrice, err := domain.BasePrice(template.Rarity)
	if err != nil {
		lc.logger.Error("card template carries unknown rarity", "rarity", template.Rarity, "template", templateName)
		return nil, err
	}

	unowned, err := lc.instanceRepository.FindUnownedByTemplate(ctx, templateName)
	if err != nil {
		return nil, err
	}

	for _, instance := range unowned {
		if _, ok := listed[instance.CopyNumber]; ok {
			continue
		}

		offers = append(offers, Offer{
			TemplateName: instance.TemplateName,
			CopyNumber:   instance.CopyNumber,
			Price:        basePrice,
			System:       true,
		})
	}

	return offers, nil
}
