package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/database"
)

// instanceRow is a card instance locked inside a transaction, joined with its
// template's rarity so pricing never needs a second lookup.
type instanceRow struct {
	ID      int64
	OwnerID *int64
	Rarity  domain.Rarity
}

func (r instanceRow) ownedBy(userID int64) bool {
	return r.OwnerID != nil && *r.OwnerID == userID
}

type userRow struct {
	ID      int64
	Email   string
	Balance int64
}

type listingRow struct {
	ID       int64
	SellerID int64
	Price    int64
}

// LockInstance acquires the row lock on one card instance. The instance lock
// is always taken before any user lock, so every ledger operation orders its
// locks the same way.
func LockInstance(ctx context.Context, querier database.Querier, templateName string, copyNumber int) (instanceRow, bool, error) {
	lockInstanceSQL := `SELECT ci.id, ci.owner_id, t.rarity
FROM card_instances ci
JOIN card_templates t ON t.name = ci.template_name
WHERE ci.template_name = $1 AND ci.copy_number = $2
FOR UPDATE OF ci`

	var instance instanceRow
	err := querier.QueryRow(ctx, lockInstanceSQL, templateName, copyNumber).
		Scan(&instance.ID, &instance.OwnerID, &instance.Rarity)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return instanceRow{}, false, nil
		}

		return instanceRow{}, false, fmt.Errorf("failed to lock card instance row: %w", err)
	}

	return instance, true, nil
}

// LockUserByEmail locks a single user's row for balance mutation.
func LockUserByEmail(ctx context.Context, querier database.Querier, email string) (userRow, error) {
	lockUserSQL := `SELECT id, email, balance FROM users WHERE email = $1 FOR UPDATE`

	var user userRow
	err := querier.QueryRow(ctx, lockUserSQL, email).Scan(&user.ID, &user.Email, &user.Balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return userRow{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with email %s not found", email)}
		}

		return userRow{}, fmt.Errorf("failed to lock user row: %w", err)
	}

	return user, nil
}

// LockUserPair locks the buyer (by email) and the seller (by id) in one
// statement ordered by id, so crossed purchases cannot deadlock. When the
// buyer is the seller a single row comes back and both results alias it.
func LockUserPair(ctx context.Context, querier database.Querier, buyerEmail string, sellerID int64) (buyer userRow, seller userRow, err error) {
	usersSelectSQL := `SELECT id, email, balance
FROM users
WHERE email = $1 OR id = $2
ORDER BY id
FOR UPDATE`

	rows, err := querier.Query(ctx, usersSelectSQL, buyerEmail, sellerID)
	if err != nil {
		return userRow{}, userRow{}, fmt.Errorf("failed to select users for update: %w", err)
	}

	users := make([]userRow, 0, 2)
	for rows.Next() {
		var user userRow
		err = rows.Scan(&user.ID, &user.Email, &user.Balance)
		if err != nil {
			return userRow{}, userRow{}, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	rows.Close()

	var buyerFound, sellerFound bool
	for _, user := range users {
		if user.Email == buyerEmail {
			buyer = user
			buyerFound = true
		}
		if user.ID == sellerID {
			seller = user
			sellerFound = true
		}
	}

	if !buyerFound {
		return userRow{}, userRow{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with email %s not found", buyerEmail)}
	}
	if !sellerFound {
		return userRow{}, userRow{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", sellerID)}
	}

	return buyer, seller, nil
}

// LockListing fetches and locks the active listing for an instance, if any.
func LockListing(ctx context.Context, querier database.Querier, templateName string, copyNumber int) (listingRow, bool, error) {
	lockListingSQL := `SELECT id, seller_id, price
FROM listings
WHERE template_name = $1 AND copy_number = $2
FOR UPDATE`

	var listing listingRow
	err := querier.QueryRow(ctx, lockListingSQL, templateName, copyNumber).
		Scan(&listing.ID, &listing.SellerID, &listing.Price)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return listingRow{}, false, nil
		}

		return listingRow{}, false, fmt.Errorf("failed to lock listing row: %w", err)
	}

	return listing, true, nil
}
