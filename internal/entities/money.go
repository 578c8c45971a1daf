package entities

import "github.com/shopspring/decimal"

// DefaultCurrency is reported for carts and orders without items.
const DefaultCurrency = "IRR"

type Money struct {
	Amount   decimal.Decimal
	Currency string
}

func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// Times multiplies the amount by a line quantity.
func (m Money) Times(quantity int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(quantity))),
		Currency: m.Currency,
	}
}

// Line is anything that contributes a priced total to a cart or order.
type Line interface {
	LineTotal() Money
}

// Total sums line totals. Mixed currencies are not converted: the currency of
// the first line wins, DefaultCurrency is used when there are no lines.
func Total[L Line](lines []L) Money {
	if len(lines) == 0 {
		return Money{Amount: decimal.Zero, Currency: DefaultCurrency}
	}

	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.LineTotal().Amount)
	}
	return Money{Amount: sum, Currency: lines[0].LineTotal().Currency}
}
