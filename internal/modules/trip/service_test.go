// README: Tests for trip creation and day expansion with an in-memory repo.
package trip

import (
	"context"
	"errors"
	"testing"
	"time"

	"roamcost/internal/modules/simulation"
)

type memRepo struct {
	nextID int64
	trips  map[int64]Trip
}

func newMemRepo() *memRepo {
	return &memRepo{nextID: 1, trips: make(map[int64]Trip)}
}

func (m *memRepo) CreateWithDays(_ context.Context, t Trip, days []Day) (*Trip, error) {
	t.ID = m.nextID
	m.nextID++
	for i := range days {
		days[i].TripID = t.ID
	}
	t.Days = days
	m.trips[t.ID] = t
	return &t, nil
}

func (m *memRepo) Get(_ context.Context, id int64) (*Trip, error) {
	t, ok := m.trips[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (m *memRepo) ListByUser(_ context.Context, userID int64) ([]Trip, error) {
	var out []Trip
	for _, t := range m.trips {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memRepo) ListAll(_ context.Context) ([]Trip, error) {
	var out []Trip
	for _, t := range m.trips {
		out = append(out, t)
	}
	return out, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateWithDaysExpandsRange(t *testing.T) {
	svc := NewService(newMemRepo())

	created, err := svc.CreateWithDays(context.Background(), Trip{
		UserID:      1,
		CountryCode: "DE",
		StartDate:   day(2025, 8, 20),
		EndDate:     day(2025, 8, 25),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("trip id not assigned")
	}
	if len(created.Days) != 6 {
		t.Fatalf("got %d day rows, want 6", len(created.Days))
	}
	if !created.Days[0].Date.Equal(day(2025, 8, 20)) || !created.Days[5].Date.Equal(day(2025, 8, 25)) {
		t.Fatalf("day range wrong: %v .. %v", created.Days[0].Date, created.Days[5].Date)
	}
	for _, d := range created.Days {
		if d.CountryCode1 != "DE" || d.MultiCountry {
			t.Fatalf("day row = %+v", d)
		}
		if d.TripID != created.ID {
			t.Fatalf("day not linked to trip: %+v", d)
		}
	}
}

func TestCreateWithDaysSingleDay(t *testing.T) {
	svc := NewService(newMemRepo())

	created, err := svc.CreateWithDays(context.Background(), Trip{
		UserID:      1,
		CountryCode: "FR",
		StartDate:   day(2025, 9, 1),
		EndDate:     day(2025, 9, 1),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(created.Days) != 1 {
		t.Fatalf("got %d day rows, want 1", len(created.Days))
	}
}

func TestCreateWithDaysValidation(t *testing.T) {
	svc := NewService(newMemRepo())

	cases := []struct {
		name string
		trip Trip
		want error
	}{
		{"missing user", Trip{CountryCode: "DE", StartDate: day(2025, 8, 20), EndDate: day(2025, 8, 21)}, ErrBadRequest},
		{"missing country", Trip{UserID: 1, StartDate: day(2025, 8, 20), EndDate: day(2025, 8, 21)}, ErrBadRequest},
		{"reversed range", Trip{UserID: 1, CountryCode: "DE", StartDate: day(2025, 8, 21), EndDate: day(2025, 8, 20)}, simulation.ErrInvalidRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateWithDays(context.Background(), tc.trip); !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestGetAndList(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	first, err := svc.CreateWithDays(ctx, Trip{UserID: 1, CountryCode: "DE", StartDate: day(2025, 8, 20), EndDate: day(2025, 8, 21)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateWithDays(ctx, Trip{UserID: 2, CountryCode: "US", StartDate: day(2025, 8, 22), EndDate: day(2025, 8, 23)}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CountryCode != "DE" {
		t.Fatalf("trip = %+v", got)
	}

	mine, err := svc.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("got %d trips for user 1, want 1", len(mine))
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d trips, want 2", len(all))
	}

	if _, err := svc.Get(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
