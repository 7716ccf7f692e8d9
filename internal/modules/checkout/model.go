// README: Checkout order model.
package checkout

import (
	"time"

	"roamcost/internal/types"
)

type Order struct {
	ID             string
	UserID         int64
	SelectedOption string
	Total          types.Money
	CreatedAt      time.Time
}
