// README: Trip store backed by PostgreSQL.
package trip

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("trip not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// CreateWithDays inserts the trip and its day rows in one transaction.
func (s *Store) CreateWithDays(ctx context.Context, t Trip, days []Day) (*Trip, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		INSERT INTO trips (user_id, country_code, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING trip_id`,
		t.UserID, t.CountryCode, t.StartDate, t.EndDate)
	if err := row.Scan(&t.ID); err != nil {
		return nil, err
	}

	for i := range days {
		days[i].TripID = t.ID
		row := tx.QueryRow(ctx, `
			INSERT INTO trip_days (trip_id, date, country_code1, country_code2, multi_country)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			days[i].TripID, days[i].Date, days[i].CountryCode1, days[i].CountryCode2, days[i].MultiCountry)
		if err := row.Scan(&days[i].ID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	t.Days = days
	return &t, nil
}

func (s *Store) Get(ctx context.Context, id int64) (*Trip, error) {
	row := s.db.QueryRow(ctx, `
		SELECT trip_id, user_id, country_code, start_date, end_date
		FROM trips
		WHERE trip_id = $1`, id)

	var t Trip
	err := row.Scan(&t.ID, &t.UserID, &t.CountryCode, &t.StartDate, &t.EndDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) ListByUser(ctx context.Context, userID int64) ([]Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT trip_id, user_id, country_code, start_date, end_date
		FROM trips
		WHERE user_id = $1
		ORDER BY trip_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrips(rows)
}

func (s *Store) ListAll(ctx context.Context) ([]Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT trip_id, user_id, country_code, start_date, end_date
		FROM trips
		ORDER BY trip_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrips(rows)
}

func scanTrips(rows pgx.Rows) ([]Trip, error) {
	var out []Trip
	for rows.Next() {
		var t Trip
		if err := rows.Scan(&t.ID, &t.UserID, &t.CountryCode, &t.StartDate, &t.EndDate); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
