// README: Tests for order placement and checkout validation.
package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

type memOrders struct {
	inserted []Order
	err      error
}

func (m *memOrders) Insert(_ context.Context, o Order) error {
	if m.err != nil {
		return m.err
	}
	m.inserted = append(m.inserted, o)
	return nil
}

func validCommand() Command {
	return Command{
		UserID:         1,
		SelectedOption: "Europe 5GB x1 (EUR)",
		TotalCost:      decimal.NewFromFloat(22.4),
		Currency:       "EUR",
	}
}

func TestProcessPlacesOrder(t *testing.T) {
	store := &memOrders{}
	svc := NewService(store)

	id, err := svc.Process(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if !strings.HasPrefix(id, "ORDER-") {
		t.Fatalf("order id = %q, want ORDER- prefix", id)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d orders, want 1", len(store.inserted))
	}

	o := store.inserted[0]
	if o.ID != id || o.UserID != 1 || o.SelectedOption != "Europe 5GB x1 (EUR)" {
		t.Fatalf("order = %+v", o)
	}
	if !o.Total.Amount.Equal(decimal.NewFromFloat(22.4)) || o.Total.Currency != "EUR" {
		t.Fatalf("total = %+v", o.Total)
	}
	if o.CreatedAt.IsZero() {
		t.Fatal("created_at not set")
	}
}

func TestProcessGeneratesUniqueIDs(t *testing.T) {
	svc := NewService(&memOrders{})

	first, err := svc.Process(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	second, err := svc.Process(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if first == second {
		t.Fatalf("order ids collide: %q", first)
	}
}

func TestProcessValidation(t *testing.T) {
	svc := NewService(&memOrders{})

	cases := []struct {
		name   string
		mutate func(*Command)
	}{
		{"missing user", func(c *Command) { c.UserID = 0 }},
		{"missing option", func(c *Command) { c.SelectedOption = "" }},
		{"missing currency", func(c *Command) { c.Currency = "" }},
		{"negative cost", func(c *Command) { c.TotalCost = decimal.NewFromFloat(-1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := validCommand()
			tc.mutate(&cmd)
			if _, err := svc.Process(context.Background(), cmd); !errors.Is(err, ErrBadRequest) {
				t.Fatalf("error = %v, want ErrBadRequest", err)
			}
		})
	}
}

func TestProcessZeroCostAllowed(t *testing.T) {
	svc := NewService(&memOrders{})

	cmd := validCommand()
	cmd.TotalCost = decimal.Zero
	if _, err := svc.Process(context.Background(), cmd); err != nil {
		t.Fatalf("zero-cost order rejected: %v", err)
	}
}

func TestProcessPropagatesStoreError(t *testing.T) {
	storeErr := errors.New("insert failed")
	svc := NewService(&memOrders{err: storeErr})

	if _, err := svc.Process(context.Background(), validCommand()); !errors.Is(err, storeErr) {
		t.Fatalf("error = %v, want store error", err)
	}
}
