// README: Trip service; persists trips and expands date ranges into day rows.
package trip

import (
	"context"
	"errors"

	"roamcost/internal/modules/simulation"
)

var ErrBadRequest = errors.New("bad request")

// Repo is the persistence boundary for trips and their day rows.
type Repo interface {
	CreateWithDays(ctx context.Context, t Trip, days []Day) (*Trip, error)
	Get(ctx context.Context, id int64) (*Trip, error)
	ListByUser(ctx context.Context, userID int64) ([]Trip, error)
	ListAll(ctx context.Context) ([]Trip, error)
}

type Service struct {
	store Repo
}

func NewService(store Repo) *Service {
	return &Service{store: store}
}

// CreateWithDays stores the trip and one row per calendar day, inclusive of
// both endpoints. Trip and day rows commit in one transaction.
func (s *Service) CreateWithDays(ctx context.Context, t Trip) (*Trip, error) {
	if t.UserID == 0 || t.CountryCode == "" {
		return nil, ErrBadRequest
	}

	count, err := simulation.DaysInclusive(simulation.Leg{
		CountryCode: t.CountryCode,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
	})
	if err != nil {
		return nil, err
	}

	days := make([]Day, 0, count)
	d := t.StartDate
	for i := 0; i < count; i++ {
		days = append(days, Day{
			Date:         d,
			CountryCode1: t.CountryCode,
			MultiCountry: false,
		})
		d = d.AddDate(0, 0, 1)
	}

	return s.store.CreateWithDays(ctx, t, days)
}

func (s *Service) Get(ctx context.Context, id int64) (*Trip, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Trip, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]Trip, error) {
	return s.store.ListAll(ctx)
}
