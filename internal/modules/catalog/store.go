// README: Catalog store backed by PostgreSQL.
package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("pack not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) ListCountries(ctx context.Context) ([]Country, error) {
	rows, err := s.db.Query(ctx, `
		SELECT country_code, country_name, region
		FROM countries
		ORDER BY country_code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Country
	for rows.Next() {
		var c Country
		if err := rows.Scan(&c.Code, &c.Name, &c.Region); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) ListRates(ctx context.Context) ([]RateEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT country_code, data_per_mb, voice_per_min, sms_per_msg, currency
		FROM roaming_rates
		ORDER BY country_code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RateEntry
	for rows.Next() {
		var r RateEntry
		if err := rows.Scan(&r.CountryCode, &r.DataPerMB, &r.VoicePerMin, &r.SMSPerMsg, &r.Currency); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) ListPacks(ctx context.Context) ([]Pack, error) {
	rows, err := s.db.Query(ctx, `
		SELECT pack_id, name, coverage_scope, coverage_value,
		       data_gb, voice_min, sms, price, validity_days, currency
		FROM roaming_packs
		ORDER BY pack_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Pack
	for rows.Next() {
		var p Pack
		if err := rows.Scan(&p.ID, &p.Name, &p.CoverageScope, &p.CoverageValue,
			&p.DataGB, &p.VoiceMin, &p.SMS, &p.Price, &p.ValidityDays, &p.Currency); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) GetPack(ctx context.Context, id int64) (*Pack, error) {
	row := s.db.QueryRow(ctx, `
		SELECT pack_id, name, coverage_scope, coverage_value,
		       data_gb, voice_min, sms, price, validity_days, currency
		FROM roaming_packs
		WHERE pack_id = $1`, id)

	var p Pack
	err := row.Scan(&p.ID, &p.Name, &p.CoverageScope, &p.CoverageValue,
		&p.DataGB, &p.VoiceMin, &p.SMS, &p.Price, &p.ValidityDays, &p.Currency)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upserts below back the CSV loader. Existing rows win: the loader only
// fills gaps, matching the insert-if-absent refresh semantics.

func (s *Store) UpsertCountry(ctx context.Context, c Country) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO countries (country_code, country_name, region)
		VALUES ($1, $2, $3)
		ON CONFLICT (country_code) DO NOTHING`,
		c.Code, c.Name, c.Region)
	return err
}

func (s *Store) UpsertRate(ctx context.Context, r RateEntry) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO roaming_rates (country_code, data_per_mb, voice_per_min, sms_per_msg, currency)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (country_code) DO NOTHING`,
		r.CountryCode, r.DataPerMB, r.VoicePerMin, r.SMSPerMsg, r.Currency)
	return err
}

func (s *Store) UpsertPack(ctx context.Context, p Pack) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO roaming_packs (pack_id, name, coverage_scope, coverage_value,
		                           data_gb, voice_min, sms, price, validity_days, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (pack_id) DO NOTHING`,
		p.ID, p.Name, p.CoverageScope, p.CoverageValue,
		p.DataGB, p.VoiceMin, p.SMS, p.Price, p.ValidityDays, p.Currency)
	return err
}
