// README: Checkout service; places an order for a selected roaming option.
package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"roamcost/internal/logging"
	"roamcost/internal/types"
)

var ErrBadRequest = errors.New("bad request")

// Orders is the persistence boundary for placed orders.
type Orders interface {
	Insert(ctx context.Context, o Order) error
}

type Service struct {
	orders Orders
}

func NewService(orders Orders) *Service {
	return &Service{orders: orders}
}

type Command struct {
	UserID         int64
	SelectedOption string
	TotalCost      decimal.Decimal
	Currency       string
}

// Process validates the selection, assigns an order id, and persists the
// order. Returns the order id.
func (s *Service) Process(ctx context.Context, cmd Command) (string, error) {
	if cmd.UserID == 0 || cmd.SelectedOption == "" || cmd.Currency == "" {
		return "", ErrBadRequest
	}
	if cmd.TotalCost.IsNegative() {
		return "", ErrBadRequest
	}

	o := Order{
		ID:             "ORDER-" + uuid.NewString(),
		UserID:         cmd.UserID,
		SelectedOption: cmd.SelectedOption,
		Total:          types.Money{Amount: cmd.TotalCost, Currency: cmd.Currency},
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.orders.Insert(ctx, o); err != nil {
		return "", err
	}

	logging.Logger.Info("checkout processed",
		zap.Int64("user_id", o.UserID),
		zap.String("order_id", o.ID),
		zap.String("option", o.SelectedOption),
		zap.String("total", o.Total.Amount.String()),
		zap.String("currency", o.Total.Currency))
	return o.ID, nil
}
