// README: User store backed by PostgreSQL.
package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("user not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, id int64) (*User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT user_id, name, home_plan
		FROM users
		WHERE user_id = $1`, id)

	var u User
	err := row.Scan(&u.ID, &u.Name, &u.HomePlan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetProfile(ctx context.Context, userID int64) (*UsageProfile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT user_id, avg_daily_mb, avg_daily_min, avg_daily_sms
		FROM usage_profiles
		WHERE user_id = $1`, userID)

	var p UsageProfile
	err := row.Scan(&p.UserID, &p.AvgDailyMB, &p.AvgDailyMin, &p.AvgDailySMS)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) UpsertUser(ctx context.Context, u User) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO users (user_id, name, home_plan)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING`,
		u.ID, u.Name, u.HomePlan)
	return err
}

func (s *Store) UpsertProfile(ctx context.Context, p UsageProfile) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO usage_profiles (user_id, avg_daily_mb, avg_daily_min, avg_daily_sms)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO NOTHING`,
		p.UserID, p.AvgDailyMB, p.AvgDailyMin, p.AvgDailySMS)
	return err
}
