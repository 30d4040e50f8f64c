package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kalandadze/GwentMarketplace/internal/market/domain"
	"github.com/kalandadze/GwentMarketplace/internal/pkg/database"
)

type UsersRepository struct {
	executor database.QueryExecuter
}

func NewUsersRepository(executor database.QueryExecuter) *UsersRepository {
	return &UsersRepository{
		executor: executor,
	}
}

func (ur *UsersRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	findUserSQL := `SELECT id, email, username, balance FROM users WHERE email = $1`

	var user domain.User
	err := ur.executor.QueryRow(ctx, findUserSQL, email).
		Scan(&user.ID, &user.Email, &user.Username, &user.Balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with email %s does not exist", email)}
		}

		return domain.User{}, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

func (ur *UsersRepository) Collection(ctx context.Context, userID int64) ([]domain.CardInstance, error) {
	collectionSQL := `SELECT id, template_name, copy_number
FROM card_instances
WHERE owner_id = $1
ORDER BY template_name, copy_number`

	rows, err := ur.executor.Query(ctx, collectionSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collection: %w", err)
	}
	defer rows.Close()

	var collection []domain.CardInstance
	for rows.Next() {
		var instance domain.CardInstance
		err = rows.Scan(&instance.ID, &instance.TemplateName, &instance.CopyNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card instance row: %w", err)
		}

		instance.Owner = domain.OwnedBy(userID)
		collection = append(collection, instance)
	}

	return collection, rows.Err()
}

// Create inserts a new user with the given starting balance.
func (ur *UsersRepository) Create(ctx context.Context, email string, username string, balance int64) (domain.User, error) {
	insertUserSQL := `INSERT INTO users (email, username, balance) VALUES ($1, $2, $3) RETURNING id`

	var id int64
	err := ur.executor.QueryRow(ctx, insertUserSQL, email, username, balance).Scan(&id)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return domain.User{ID: id, Email: email, Username: username, Balance: balance}, nil
}
