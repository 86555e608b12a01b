package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// Zero returns a zero amount in the given currency.
func Zero(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

// Add assumes both operands share a currency; the engine never mixes units.
func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

func (m Money) Sub(other Money) Money {
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}
}

func (m Money) MulInt(n int64) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(n)), Currency: m.Currency}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}
