package application

import (
	"testing"

	loggingmocks "github.com/kalandadze/GwentMarketplace/gen/mocks/logging"
	marketmocks "github.com/kalandadze/GwentMarketplace/gen/mocks/market"
	"github.com/golang/mock/gomock"
	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/logging"
	"github.com/stretchr/testify/assert"
)

func TestListingsCase_GetOffers(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name         string
		templateName string

		prepareFn func(t *testing.T, ctrl *gomock.Controller) (domain.ListingRepository, domain.InstanceRepository, domain.TemplateRepository, logging.Logger)

		expectedOffers []Offer
		expectedErr    error
	}

	tests := []testCase{
		{
			name:         "listings come first, pool fills the rest",
			templateName: "Foglet",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.ListingRepository, domain.InstanceRepository, domain.TemplateRepository, logging.Logger) {
				listings := marketmocks.NewMockListingRepository(ctrl)
				instances := marketmocks.NewMockInstanceRepository(ctrl)
				templates := marketmocks.NewMockTemplateRepository(ctrl)
				logger := loggingmocks.NewMockLogger(ctrl)

				templates.EXPECT().FindByName(gomock.Any(), "Foglet").Return(domain.CardTemplate{
					Name:   "Foglet",
					Rarity: domain.RarityCommon,
				}, nil)
				listings.EXPECT().FindByTemplate(gomock.Any(), "Foglet").Return([]domain.Listing{
					{ID: 5, TemplateName: "Foglet", CopyNumber: 2, SellerID: 7, Price: 300},
				}, nil)
				// copy 2 sits in escrow with no owner, so the pool query
				// returns it too; the dedupe must drop it
				instances.EXPECT().FindUnownedByTemplate(gomock.Any(), "Foglet").Return([]domain.CardInstance{
					{ID: 10, TemplateName: "Foglet", CopyNumber: 1, Owner: domain.SystemPool()},
					{ID: 11, TemplateName: "Foglet", CopyNumber: 2, Owner: domain.SystemPool()},
					{ID: 12, TemplateName: "Foglet", CopyNumber: 3, Owner: domain.SystemPool()},
				}, nil)

				return listings, instances, templates, logger
			},
			expectedOffers: []Offer{
				{TemplateName: "Foglet", CopyNumber: 2, Price: 300, SellerID: 7},
				{TemplateName: "Foglet", CopyNumber: 1, Price: 500, System: true},
				{TemplateName: "Foglet", CopyNumber: 3, Price: 500, System: true},
			},
			expectedErr: nil,
		},
		{
			name:         "no listings means pure pool offers at base price",
			templateName: "Geralt of Rivia",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.ListingRepository, domain.InstanceRepository, domain.TemplateRepository, logging.Logger) {
				listings := marketmocks.NewMockListingRepository(ctrl)
				instances := marketmocks.NewMockInstanceRepository(ctrl)
				templates := marketmocks.NewMockTemplateRepository(ctrl)
				logger := loggingmocks.NewMockLogger(ctrl)

				templates.EXPECT().FindByName(gomock.Any(), "Geralt of Rivia").Return(domain.CardTemplate{
					Name:   "Geralt of Rivia",
					Rarity: domain.RarityLegendary,
				}, nil)
				listings.EXPECT().FindByTemplate(gomock.Any(), "Geralt of Rivia").Return([]domain.Listing{}, nil)
				instances.EXPECT().FindUnownedByTemplate(gomock.Any(), "Geralt of Rivia").Return([]domain.CardInstance{
					{ID: 20, TemplateName: "Geralt of Rivia", CopyNumber: 1, Owner: domain.SystemPool()},
				}, nil)

				return listings, instances, templates, logger
			},
			expectedOffers: []Offer{
				{TemplateName: "Geralt of Rivia", CopyNumber: 1, Price: 10000, System: true},
			},
			expectedErr: nil,
		},
		{
			name:         "template not found",
			templateName: "Unknown Card",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.ListingRepository, domain.InstanceRepository, domain.TemplateRepository, logging.Logger) {
				listings := marketmocks.NewMockListingRepository(ctrl)
				instances := marketmocks.NewMockInstanceRepository(ctrl)
				templates := marketmocks.NewMockTemplateRepository(ctrl)
				logger := loggingmocks.NewMockLogger(ctrl)

				templates.EXPECT().FindByName(gomock.Any(), "Unknown Card").Return(domain.CardTemplate{}, &domain.CardNotFoundError{Msg: "card not found"})

				return listings, instances, templates, logger
			},
			expectedOffers: nil,
			expectedErr:    &domain.CardNotFoundError{},
		},
		{
			name:         "template carries unknown rarity",
			templateName: "Foglet",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.ListingRepository, domain.InstanceRepository, domain.TemplateRepository, logging.Logger) {
				listings := marketmocks.NewMockListingRepository(ctrl)
				instances := marketmocks.NewMockInstanceRepository(ctrl)
				templates := marketmocks.NewMockTemplateRepository(ctrl)
				logger := loggingmocks.NewMockLogger(ctrl)

				templates.EXPECT().FindByName(gomock.Any(), "Foglet").Return(domain.CardTemplate{
					Name:   "Foglet",
					Rarity: domain.Rarity("Mythic"),
				}, nil)
				listings.EXPECT().FindByTemplate(gomock.Any(), "Foglet").Return([]domain.Listing{}, nil)
				logger.EXPECT().Error(gomock.Any(), gomock.Any())

				return listings, instances, templates, logger
			},
			expectedOffers: nil,
			expectedErr:    &domain.UnknownRarityError{},
		},
		{
			name:         "pool fetch error",
			templateName: "Foglet",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.ListingRepository, domain.InstanceRepository, domain.TemplateRepository, logging.Logger) {
				listings := marketmocks.NewMockListingRepository(ctrl)
				instances := marketmocks.NewMockInstanceRepository(ctrl)
				templates := marketmocks.NewMockTemplateRepository(ctrl)
				logger := loggingmocks.NewMockLogger(ctrl)

				templates.EXPECT().FindByName(gomock.Any(), "Foglet").Return(domain.CardTemplate{
					Name:   "Foglet",
					Rarity: domain.RarityCommon,
				}, nil)
				listings.EXPECT().FindByTemplate(gomock.Any(), "Foglet").Return([]domain.Listing{}, nil)
				instances.EXPECT().FindUnownedByTemplate(gomock.Any(), "Foglet").Return(nil, assert.AnError)

				return listings, instances, templates, logger
			},
			expectedOffers: nil,
			expectedErr:    assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			listings, instances, templates, logger := tt.prepareFn(t, ctrl)
			listingsCase := NewListingsCase(listings, instances, templates, logger)

			offers, err := listingsCase.GetOffers(t.Context(), tt.templateName)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedOffers, offers)
			}
		})
	}
}
