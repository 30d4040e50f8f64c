package application

import (
	"context"

	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/logging"
	"golang.org/x/sync/errgroup"
)

type Profile struct {
	User       domain.User
	Collection []domain.CardInstance
	Listings   []domain.Listing
}

// ProfileCase aggregates everything a user's profile page shows: balance,
// owned cards and live listings. The collection and listing fetches are
// independent, so they run concurrently once the user is resolved.
type ProfileCase struct {
	userRepository    domain.UserRepository
	listingRepository domain.ListingRepository
	logger            logging.Logger
}

func NewProfileCase(userRepository domain.UserRepository, listingRepository domain.ListingRepository, logger logging.Logger) *ProfileCase {
	return &ProfileCase{
		userRepository:    userRepository,
		listingRepository: listingRepository,
		logger:            logger,
	}
}

func (pc *ProfileCase) GetProfile(ctx context.Context, email string) (Profile, error) {
	user, err := pc.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return Profile{}, err
	}

	group, groupCtx := errgroup.WithContext(ctx)

	var collection []domain.CardInstance
	var listings []domain.Listing

	group.Go(func() error {
		var err error
		collection, err = pc.userRepository.Collection(groupCtx, user.ID)
		return err
	})

	group.Go(func() error {
		var err error
		listings, err = pc.listingRepository.FindBySeller(groupCtx, user.ID)
		return err
	})

	err = group.Wait()
	if err != nil {
		return Profile{}, err
	}

	return Profile{
		User:       user,
		Collection: collection,
		Listings:   listings,
	}, nil
}
