// README: Order store backed by PostgreSQL.
package checkout

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, o Order) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO orders (order_id, user_id, selected_option, total_cost, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		o.ID, o.UserID, o.SelectedOption, o.Total.Amount.String(), o.Total.Currency, o.CreatedAt)
	return err
}
