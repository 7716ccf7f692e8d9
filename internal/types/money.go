// README: Common money value object used across modules.
package types

import "github.com/shopspring/decimal"

type Money struct {
	Amount   decimal.Decimal
	Currency string
}

func NewMoney(amount string, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: d, Currency: currency}, nil
}
