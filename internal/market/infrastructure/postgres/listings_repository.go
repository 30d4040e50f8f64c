package postgres

import (
	"context"
	"fmt"

	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/database"
)

type ListingsRepository struct {
	executor database.QueryExecuter
}

func NewListingsRepository(executor database.QueryExecuter) *ListingsRepository {
	return &ListingsRepository{
		executor: executor,
	}
}

const listingColumns = `id, template_name, copy_number, seller_id, price`

func (lr *ListingsRepository) FindByTemplate(ctx context.Context, templateName string) ([]domain.Listing, error) {
	findListingsSQL := `SELECT ` + listingColumns + ` FROM listings WHERE template_name = $1 ORDER BY price, copy_number`

	return lr.queryListings(ctx, findListingsSQL, templateName)
}

func (lr *ListingsRepository) FindBySeller(ctx context.Context, sellerID int64) ([]domain.Listing, error) {
	findListingsSQL := `SELECT ` + listingColumns + ` FROM listings WHERE seller_id = $1 ORDER BY template_name, copy_number`

	return lr.queryListings(ctx, findListingsSQL, sellerID)
}

func (lr *ListingsRepository) queryListings(ctx context.Context, sql string, args ...any) ([]domain.Listing, error) {
	rows, err := lr.executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var listing domain.Listing
		err = rows.Scan(&listing.ID, &listing.TemplateName, &listing.CopyNumber, &listing.SellerID, &listing.Price)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}

		listings = append(listings, listing)
	}

	return listings, rows.Err()
}
